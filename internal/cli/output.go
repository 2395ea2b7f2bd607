package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// newLogger maps the verbosity count onto logrus levels: errors only by
// default, then warn, info, debug and trace for each extra -v.
func newLogger(w io.Writer, verbosity int, quiet bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(levelFor(verbosity, quiet))
	return logger
}

func levelFor(verbosity int, quiet bool) logrus.Level {
	if quiet {
		return logrus.PanicLevel
	}
	switch {
	case verbosity <= 0:
		return logrus.ErrorLevel
	case verbosity == 1:
		return logrus.WarnLevel
	case verbosity == 2:
		return logrus.InfoLevel
	case verbosity == 3:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// startProgress shows a spinner on w while work is running and returns the
// function that stops it. Nothing is drawn unless w is a terminal.
func startProgress(w io.Writer, quiet bool, suffix string) func() {
	if quiet || !isTerminal(w) {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
		spinner.WithWriter(w),
		spinner.WithSuffix(suffix),
	)
	s.Start()
	return s.Stop
}

func printError(w io.Writer, err error) {
	prefix := color.New(color.FgRed, color.Bold)
	if isTerminal(w) {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	prefix.Fprint(w, "Error:")
	fmt.Fprintf(w, " %s\n", err)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
