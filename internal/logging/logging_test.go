package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{name: "nil config uses defaults", cfg: nil},
		{name: "json to stderr", cfg: &Config{Level: "info", Format: "json", Output: "stderr"}},
		{name: "console to stdout", cfg: &Config{Level: "debug", Format: "console", Output: "stdout"}},
		{name: "uppercase level accepted", cfg: &Config{Level: "WARN", Format: "json", Output: "stderr"}},
		{name: "invalid level", cfg: &Config{Level: "loud", Format: "json", Output: "stderr"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger)
		})
	}
}

func TestContextLogger(t *testing.T) {
	ctx := context.Background()

	// Without a stored logger the nop logger comes back.
	assert.NotNil(t, FromContext(ctx))

	logger := zap.NewNop().With(zap.String("marker", "stored"))
	ctx = WithContext(ctx, logger)
	assert.Same(t, logger, FromContext(ctx))
}

func TestMiddlewarePropagatesLogger(t *testing.T) {
	logger := zap.NewNop()

	var sawLogger bool
	handler := Middleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLogger = FromContext(r.Context()) != nil
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.True(t, sawLogger)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
