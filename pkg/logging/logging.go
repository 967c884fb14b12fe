// Package logging routes log output either to a slog text handler (CLI mode)
// or to a channel drained by the TUI activity log (TUI mode).
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SlogLevel maps the level onto log/slog.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogEntry is the structured log entry passed to the TUI.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Subsystem string
	Message   string
	Err       error
}

const tuiChannelBufferSize = 1024

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
	tuiLogChannel chan LogEntry
	tuiLevel      LogLevel
	isTuiMode     bool
)

// InitForTUI switches logging to TUI mode and returns the channel the TUI
// reads entries from. Entries below filterLevel are dropped.
func InitForTUI(filterLevel LogLevel) <-chan LogEntry {
	mu.Lock()
	defer mu.Unlock()

	isTuiMode = true
	tuiLevel = filterLevel
	tuiLogChannel = make(chan LogEntry, tuiChannelBufferSize)
	// Anything logged via slog directly still lands somewhere readable.
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: filterLevel.SlogLevel()}))
	return tuiLogChannel
}

// InitForCLI writes log lines to output with slog's text format.
func InitForCLI(filterLevel LogLevel, output io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	isTuiMode = false
	tuiLogChannel = nil
	defaultLogger = slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: filterLevel.SlogLevel()}))
	slog.SetDefault(defaultLogger)
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...interface{}) {
	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	mu.RLock()
	defer mu.RUnlock()

	if isTuiMode {
		if level < tuiLevel || tuiLogChannel == nil {
			return
		}
		entry := LogEntry{
			Timestamp: time.Now(),
			Level:     level,
			Subsystem: subsystem,
			Message:   msg,
			Err:       err,
		}
		// Never block the update loop on a full buffer.
		select {
		case tuiLogChannel <- entry:
		default:
		}
		return
	}

	if defaultLogger == nil {
		fmt.Fprintf(os.Stderr, "[LOGGING_ERROR] Logger not initialized. Log: [%s] %s\n", level, msg)
		return
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	defaultLogger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}

// CloseTUIChannel closes the TUI log channel. Should be called on application shutdown.
func CloseTUIChannel() {
	mu.Lock()
	defer mu.Unlock()
	if tuiLogChannel != nil {
		close(tuiLogChannel)
		tuiLogChannel = nil
	}
}
