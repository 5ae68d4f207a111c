package middleware

import (
	"context"
	"time"

	"taskcli/internal/exitcode"
	"taskcli/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const RunIDKey contextKey = "run_id"

// Handler runs one command and returns its exit code.
type Handler func(ctx context.Context, command string, args []string) int

type Middleware func(Handler) Handler

// Chain wraps h so that the first middleware is the outermost.
func Chain(h Handler, middlewares ...Middleware) Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// RunID tags the invocation with a fresh uuid unless the context already
// carries one.
func RunID(next Handler) Handler {
	return func(ctx context.Context, command string, args []string) int {
		if GetRunID(ctx) == "" {
			ctx = WithRunID(ctx, uuid.New().String())
		}
		return next(ctx, command, args)
	}
}

func Logging(next Handler) Handler {
	return func(ctx context.Context, command string, args []string) int {
		start := time.Now()
		runID := GetRunID(ctx)

		logger.Debug(
			"CMD_IN: command started",
			zap.String("run_id", runID),
			zap.String("command", command),
			zap.Strings("args", args),
		)

		code := next(ctx, command, args)

		logLevel := zap.InfoLevel
		switch code {
		case exitcode.Success, exitcode.UserError:
		default:
			logLevel = zap.WarnLevel
		}
		logger.Log(
			logLevel,
			"CMD_OUT: command finished",
			zap.String("run_id", runID),
			zap.String("command", command),
			zap.Int("exit_code", code),
			zap.Duration("ms", time.Since(start)),
		)
		return code
	}
}

func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RunIDKey, id)
}

func GetRunID(ctx context.Context) string {
	if id, ok := ctx.Value(RunIDKey).(string); ok {
		return id
	}
	return ""
}
