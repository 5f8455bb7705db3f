package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	require.NoError(t, Initialize("debug"))
	assert.True(t, Log.Core().Enabled(zap.DebugLevel))

	require.NoError(t, Initialize("warn"))
	assert.False(t, Log.Core().Enabled(zap.InfoLevel))

	assert.Error(t, Initialize("loud"))
}

func TestWithLogging(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	core, logs := observer.New(zap.InfoLevel)
	Log = zap.New(core)

	tests := []struct {
		name    string
		handler http.HandlerFunc
		status  int
		size    int
	}{
		{
			name: "explicit status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte("created"))
			},
			status: http.StatusCreated,
			size:   7,
		},
		{
			name: "implicit status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			status: http.StatusOK,
			size:   2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WithLogging(tt.handler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/links", nil))

			entries := logs.TakeAll()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, "request HTTP", entries[0].Message)
			assert.Equal(t, int64(tt.status), fields["status"])
			assert.Equal(t, int64(tt.size), fields["size"])
			assert.Equal(t, http.MethodGet, fields["method"])
		})
	}
}
