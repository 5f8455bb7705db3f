package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Log - синглтон для логирования, ничего не пишет до вызова Initialize.
var Log *zap.Logger = zap.NewNop()

// Initialize создаёт production логгер с заданным уровнем.
//
// Уровень: "debug", "info", "warn", "error", "dpanic", "panic" или "fatal".
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zl
	return nil
}

type (
	responseData struct {
		status int
		size   int
	}

	loggingResponseWriter struct {
		http.ResponseWriter
		responseData *responseData
	}
)

// Write - запоминает размер тела ответа.
func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	if r.responseData.status == 0 {
		r.responseData.status = http.StatusOK
	}
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

// WriteHeader - запоминает код статуса.
func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	if r.responseData.status == 0 {
		r.responseData.status = statusCode
	}
}

// WithLogging - оборачивает h и пишет одну запись лога на запрос.
func WithLogging(h http.Handler) http.Handler {
	logFn := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		responseData := &responseData{}
		lw := loggingResponseWriter{
			ResponseWriter: w,
			responseData:   responseData,
		}
		h.ServeHTTP(&lw, r)

		status := responseData.status
		if status == 0 {
			status = http.StatusOK
		}
		Log.Info("request HTTP",
			zap.String("uri", r.RequestURI),
			zap.String("method", r.Method),
			zap.Duration("duration", time.Since(start)),
			zap.Int("size", responseData.size),
			zap.Int("status", status),
		)
	}

	return http.HandlerFunc(logFn)
}
