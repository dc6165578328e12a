// Package notify dispatches short user-facing notices such as
// "Task completed" or "Sign-in failed".
package notify

import (
	"context"

	"go.uber.org/zap"
)

// Level is the severity of a notice
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is one user-facing message
type Notice struct {
	Level   Level  `json:"level"`
	Title   string `json:"title"`
	Message string `json:"message,omitempty"`
}

// Info builds an info notice
func Info(title, message string) Notice {
	return Notice{Level: LevelInfo, Title: title, Message: message}
}

// Success builds a success notice
func Success(title, message string) Notice {
	return Notice{Level: LevelSuccess, Title: title, Message: message}
}

// Error builds an error notice
func Error(title, message string) Notice {
	return Notice{Level: LevelError, Title: title, Message: message}
}

// Notifier delivers notices. Implementations must be safe for concurrent use.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// LogNotifier writes notices to a zap logger
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier over logger. A nil logger uses the
// global one.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.L()
	}
	return &LogNotifier{logger: logger.Named("notify")}
}

// Notify logs n at a level matching its severity
func (l *LogNotifier) Notify(_ context.Context, n Notice) {
	fields := []zap.Field{zap.String("severity", string(n.Level)), zap.String("message", n.Message)}
	if n.Level == LevelError {
		l.logger.Warn(n.Title, fields...)
		return
	}
	l.logger.Info(n.Title, fields...)
}

type discard struct{}

func (discard) Notify(context.Context, Notice) {}

// Discard drops every notice
var Discard Notifier = discard{}
