// Command asciimarch ray marches an animated signed distance field scene
// and draws it as coloured ASCII in the terminal.
//
// Usage:
//
//	asciimarch [play] [-settings file.zy] [-log file]
//	asciimarch snapshot [-settings file.zy] [-cols N] [-rows N] [-time T]
//	asciimarch export -o scene.stl [-time T] [-cells N]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "asciimarch:", err)
		os.Exit(1)
	}
}

// run dispatches a subcommand. With no subcommand it plays interactively.
func run(args []string, stdout, stderr io.Writer) error {
	cmd := "play"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	fs := flag.NewFlagSet("asciimarch "+cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	logPath := fs.String("log", "", "log file (default: discard while playing, stderr otherwise)")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cmd {
	case "play":
		settingsPath := fs.String("settings", "", "settings script (zygomys lisp)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		logger, closeLog, err := openLog(*logPath, io.Discard)
		if err != nil {
			return err
		}
		defer closeLog()

		app := NewApp(AppOptions{SettingsPath: *settingsPath, Logger: logger})
		s, err := app.LoadSettings()
		if err != nil {
			return err
		}
		if err := app.Interactive(ctx, s); err != nil {
			logger.Printf("fatal: %v", err)
			return err
		}
		return nil

	case "snapshot":
		settingsPath := fs.String("settings", "", "settings script (zygomys lisp)")
		cols := fs.Int("cols", 80, "grid columns")
		rows := fs.Int("rows", 40, "grid rows")
		t := fs.Float64("time", 0, "scene time")
		if err := fs.Parse(args); err != nil {
			return err
		}
		logger, closeLog, err := openLog(*logPath, stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		app := NewApp(AppOptions{SettingsPath: *settingsPath, Logger: logger})
		s, err := app.LoadSettings()
		if err != nil {
			return err
		}
		f, err := app.Snapshot(ctx, s, *cols, *rows, *t)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, f.String())
		return err

	case "export":
		out := fs.String("o", "scene.stl", "output STL file")
		t := fs.Float64("time", 0, "scene time")
		cells := fs.Int("cells", 0, "marching cubes resolution (0: default)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		logger, closeLog, err := openLog(*logPath, stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		app := NewApp(AppOptions{MeshCells: *cells, Logger: logger})
		return app.Export(*out, *t)

	default:
		return fmt.Errorf("unknown command %q (want play, snapshot or export)", cmd)
	}
}

// openLog returns a logger writing to path, or to fallback when path is
// empty. The returned func closes the file.
func openLog(path string, fallback io.Writer) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(fallback, "asciimarch: ", log.LstdFlags), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "asciimarch: ", log.LstdFlags), func() { f.Close() }, nil
}
