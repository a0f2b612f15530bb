package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file used when the config leaves log.path empty.
const DefaultPath = "logs/editor.txt"

// maxLines caps the lines kept in memory for the console view.
const maxLines = 500

// Logger stores timestamped lines in memory (for the console) and appends them to a file on disk.
// An empty path disables the file. Debug lines are dropped unless debug is on.
type Logger struct {
	mu    sync.Mutex
	path  string
	debug bool
	out   io.Writer
	lines []string
}

// New returns a Logger writing to path and ensures its directory exists.
func New(path string, debug bool) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, debug: debug, lines: make([]string, 0)}
}

// Discard returns a Logger that only keeps lines in memory.
func Discard() *Logger {
	return New("", false)
}

// SetOutput mirrors every line to w as well (e.g. os.Stderr). Nil turns mirroring off.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	l.out = w
	l.mu.Unlock()
}

// SetDebug turns debug lines on or off.
func (l *Logger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

// Log records a plain line, e.g. a console input.
func (l *Logger) Log(line string) {
	l.write("", line)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.mu.Lock()
	dbg := l.debug
	l.mu.Unlock()
	if !dbg {
		return
	}
	l.write("DEBUG", fmt.Sprintf(format, args...))
}

func (l *Logger) Infof(format string, args ...any) {
	l.write("INFO", fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(format string, args ...any) {
	l.write("WARN", fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.write("ERROR", fmt.Sprintf(format, args...))
}

// write prefixes the line with [timestamp] and the level, keeps it, and appends it to the file.
func (l *Logger) write(level, line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line
	if level != "" {
		stamped = "[" + ts + "] " + level + ": " + line
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
	if l.out != nil {
		_, _ = io.WriteString(l.out, stamped+"\n")
	}
	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
