package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/chazu/asciimarch/pkg/config"
)

// EvalTimeout is the default limit for a single evaluation.
const EvalTimeout = 5 * time.Second

// evalResult passes an evaluation result back through a channel.
type evalResult struct {
	settings config.Settings
	errors   []EvalError
	err      error
}

// waitWithTimeout waits for a result from ch, failing once timeout has
// passed. A result whose generation is no longer current is discarded.
//
// On timeout the goroutine may still be running; the generation check
// discards its result when it eventually completes.
func waitWithTimeout(
	ch <-chan evalResult,
	gen uint64,
	mu *sync.Mutex,
	currentGen *uint64,
	timeout time.Duration,
) (config.Settings, []EvalError, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		mu.Lock()
		current := *currentGen
		mu.Unlock()

		if gen != current {
			return config.Settings{}, nil, fmt.Errorf("evaluation superseded by newer request")
		}
		return res.settings, res.errors, res.err

	case <-timer.C:
		return config.Settings{}, nil, fmt.Errorf("evaluation timed out after %s", timeout)
	}
}
