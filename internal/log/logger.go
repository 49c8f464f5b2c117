// Package log provides logging functionality to both console and file.
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileName is the log file created inside the log directory.
const FileName = "zelenko.log"

const timestampLayout = "2006-01-02 15:04:05"

// Logger writes output to both console and a log file.
type Logger struct {
	mu     sync.Mutex
	file   *os.File
	out    io.Writer
	errOut io.Writer
}

// New creates a new logger that writes to both console and a log file
// in logDir.
func New(logDir string) (*Logger, error) {
	return NewWithConsole(logDir, os.Stdout, os.Stderr)
}

// NewWithConsole is New with explicit console writers.
func NewWithConsole(logDir string, out, errOut io.Writer) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, FileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{
		file:   file,
		out:    io.MultiWriter(out, file),
		errOut: errOut,
	}, nil
}

// Printf writes a formatted message to console and log file.
func (l *Logger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.out, format, args...)
}

// Println writes a message to console and log file with a newline.
func (l *Logger) Println(args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintln(l.out, args...)
}

// Errorf writes a formatted error message to stderr and log file.
func (l *Logger) Errorf(format string, args ...interface{}) {
	formatted := stamp(format, args...)
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprint(l.errOut, formatted)
	_, _ = fmt.Fprint(l.file, formatted)
}

// Filef writes a timestamped message to the log file only.
// Use it while the TUI owns the terminal.
func (l *Logger) Filef(format string, args ...interface{}) {
	formatted := stamp(format, args...)
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprint(l.file, formatted)
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func stamp(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	return fmt.Sprintf("[%s] %s\n", time.Now().Format(timestampLayout), msg)
}

// Global logger instance
var globalLogger *Logger

// Init initializes the global logger.
// Also redirects Go's standard log package to the log file so background
// messages don't corrupt the TUI.
func Init(logDir string) error {
	logger, err := New(logDir)
	if err != nil {
		return err
	}
	globalLogger = logger

	stdlog.SetOutput(logger.file)
	stdlog.SetFlags(stdlog.Ldate | stdlog.Ltime)

	return nil
}

// Printf uses the global logger to print formatted output.
func Printf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Printf(format, args...)
	} else {
		fmt.Printf(format, args...)
	}
}

// Println uses the global logger to print output with newline.
func Println(args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Println(args...)
	} else {
		fmt.Println(args...)
	}
}

// Errorf uses the global logger to print formatted error output.
func Errorf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Errorf(format, args...)
	} else {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// Filef uses the global logger to write to the log file only.
// Without a global logger the message goes through the standard log package.
func Filef(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Filef(format, args...)
	} else {
		stdlog.Printf(format, args...)
	}
}

// Close closes the global logger.
func Close() error {
	if globalLogger != nil {
		err := globalLogger.Close()
		globalLogger = nil
		stdlog.SetOutput(os.Stderr)
		return err
	}
	return nil
}
