// Package log provides simple level logging, adapted from
// grailbio-base's log package: an Outputter interface decouples the
// leveled API from where messages actually go, with a standard-library
// *log.Logger-backed Outputter wired in by default. The flag-parsing
// half of the teacher's package is dropped since the CLI driver wires
// the level from a cobra flag directly via SetLevel.
package log

import (
	"fmt"
	golog "log"
	"os"
)

// Level is a log verbosity level; lower values are higher priority.
type Level int

const (
	Off   = Level(-3)
	Error = Level(-2)
	Info  = Level(0)
	Debug = Level(1)
)

func (l Level) String() string {
	switch l {
	case Off:
		return "off"
	case Error:
		return "error"
	case Info:
		return "info"
	case Debug:
		return "debug"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel parses the --log flag's accepted values.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "off":
		return Off, nil
	case "error":
		return Error, nil
	case "info":
		return Info, nil
	case "debug":
		return Debug, nil
	default:
		return Off, fmt.Errorf("invalid log level %q", s)
	}
}

// Outputter is a destination for leveled log output.
type Outputter interface {
	Level() Level
	Output(calldepth int, level Level, s string) error
}

type stdOutputter struct {
	level  Level
	logger *golog.Logger
}

func (o *stdOutputter) Level() Level { return o.level }

func (o *stdOutputter) Output(calldepth int, level Level, s string) error {
	if o.level < level {
		return nil
	}
	return o.logger.Output(calldepth+1, s)
}

var out Outputter = &stdOutputter{level: Info, logger: golog.New(os.Stderr, "", golog.LstdFlags)}

// SetOutputter installs a new outputter, returning the previous one.
// Not safe to call concurrently with logging calls.
func SetOutputter(newOut Outputter) Outputter {
	old := out
	out = newOut
	return old
}

// SetLevel sets the level of the default outputter, if it is still
// installed (a no-op after SetOutputter replaces it).
func SetLevel(level Level) {
	if o, ok := out.(*stdOutputter); ok {
		o.level = level
	}
}

// At reports whether the current outputter accepts level.
func At(level Level) bool { return level <= out.Level() }

func (l Level) Print(v ...interface{}) {
	if At(l) {
		out.Output(2, l, fmt.Sprint(v...))
	}
}

func (l Level) Printf(format string, v ...interface{}) {
	if At(l) {
		out.Output(2, l, fmt.Sprintf(format, v...))
	}
}

func Printf(format string, v ...interface{}) {
	Info.Printf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	Error.Printf(format, v...)
}

func Fatalf(format string, v ...interface{}) {
	out.Output(2, Error, fmt.Sprintf(format, v...))
	os.Exit(1)
}
