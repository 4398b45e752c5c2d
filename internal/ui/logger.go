package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

const logTimeFormat = "2006-01-02 15:04:05"

// Level is a log severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARNING",
	LevelError: "ERROR",
}

var levelColors = map[Level]*color.Color{
	LevelDebug: color.New(color.FgHiBlack),
	LevelInfo:  color.New(color.FgCyan),
	LevelWarn:  color.New(color.FgYellow),
	LevelError: color.New(color.FgRed, color.Bold),
}

// Clearer is implemented by live terminal widgets that must be erased
// before a log line is printed over them
type Clearer interface {
	Clear() error
}

// Logger writes timestamped log lines for one harness run. It is created
// once at startup and its settings do not change afterwards.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	name     string
	minLevel Level
	now      func() time.Time
	overlay  Clearer
}

// NewLogger creates a Logger writing to out. Debug lines are only written
// when verbose is set.
func NewLogger(out io.Writer, name string, verbose bool) *Logger {
	minLevel := LevelInfo
	if verbose {
		minLevel = LevelDebug
	}
	return &Logger{
		out:      out,
		name:     name,
		minLevel: minLevel,
		now:      time.Now,
	}
}

// Attach registers a widget that is cleared before each log line
func (l *Logger) Attach(c Clearer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.overlay = c
}

// SetVerbose enables debug lines. It is called once, after the command
// line is parsed and before any case runs.
func (l *Logger) SetVerbose(verbose bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if verbose {
		l.minLevel = LevelDebug
	} else {
		l.minLevel = LevelInfo
	}
}

// Verbose reports whether debug lines are written
func (l *Logger) Verbose() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.minLevel <= LevelDebug
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

func (l *Logger) logf(level Level, format string, args ...any) {
	if level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.overlay != nil {
		_ = l.overlay.Clear()
	}

	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	fmt.Fprintf(l.out, "%s %s [%s] %s\n",
		l.now().Format(logTimeFormat),
		levelColors[level].Sprint(levelNames[level]),
		l.name,
		msg,
	)
}
