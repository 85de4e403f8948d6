package logger

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Log is the global logger, set up by Initialize. Until then it is a no-op
// logger, so packages may log unconditionally.
var Log *zap.Logger = zap.NewNop()

// Initialize builds the global logger for the given level ("debug", "info",
// "warn", "error") and environment ("development" or "production").
func Initialize(level, env string) error {
	logLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	var config zap.Config

	if env == "development" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	config.Level = logLevel

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	Log = logger

	return nil
}

// responseWriter wraps http.ResponseWriter and remembers the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs URI, method, duration and status of every request.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()
		wrappedWriter := newResponseWriter(w)

		next.ServeHTTP(wrappedWriter, r)

		duration := time.Since(startTime)

		Log.Info("request handled",
			zap.String("uri", r.RequestURI),
			zap.String("method", r.Method),
			zap.Duration("duration", duration),
			zap.Int("status", wrappedWriter.statusCode),
		)
	})
}
