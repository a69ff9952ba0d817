// Package engine evaluates settings scripts. A script is a zygomys Lisp
// program whose builtins adjust a copy of the default settings; the
// result is validated before it is returned.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chazu/asciimarch/pkg/config"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError represents a non-fatal error in a settings script, such as a
// parse error, a bad builtin argument or an invalid resulting setting.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine evaluates settings scripts. It is safe for concurrent use; each
// call to Evaluate runs in a fresh sandbox and only the most recent call
// may deliver a result.
type Engine struct {
	mu         sync.Mutex
	generation uint64
	timeout    time.Duration
}

// NewEngine creates an Engine using EvalTimeout.
func NewEngine() *Engine {
	return &Engine{timeout: EvalTimeout}
}

// Evaluate runs source against the default settings.
//
// Return semantics:
//   - On success: returns settings + nil errors + nil error
//   - On parse/eval/validation failure: returns defaults + eval errors + nil error
//   - On fatal failure (timeout, panic, superseded): returns defaults + nil + error
func (e *Engine) Evaluate(source string) (config.Settings, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		s, evalErrs := e.evaluate(source)
		ch <- evalResult{settings: s, errors: evalErrs}
	}()

	s, evalErrs, err := waitWithTimeout(ch, gen, &e.mu, &e.generation, e.timeout)
	if err != nil || len(evalErrs) > 0 {
		return config.Default(), evalErrs, err
	}
	return s, nil, nil
}

// evaluate performs the zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (config.Settings, []EvalError) {
	s := config.Default()

	// Empty source keeps every default.
	if strings.TrimSpace(source) == "" {
		return s, nil
	}

	// Sandbox mode keeps scripts away from the filesystem and syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()
	registerBuiltins(env, &s)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return s, parseZygomysError(err)
	}
	if _, err := env.Run(); err != nil {
		return s, parseZygomysError(err)
	}

	if err := s.Validate(); err != nil {
		return s, validationErrors(err)
	}
	return s, nil
}

// validationErrors flattens a joined validation error into EvalErrors.
func validationErrors(err error) []EvalError {
	var out []EvalError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, EvalError{Message: e.Error()})
		}
		return out
	}
	return []EvalError{{Message: err.Error()}}
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into EvalErrors, keeping the
// line number when the message carries one.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{
				Line:    line,
				Message: strings.TrimSpace(m[2]),
			}}
		}
	}

	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
