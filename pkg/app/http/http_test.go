package http

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/jackpot-middleware/pkg/app/errors"
	"github.com/chainsafe/jackpot-middleware/pkg/config"
	"github.com/chainsafe/jackpot-middleware/pkg/game"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var got ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"service error", apperrors.BadRequestError(nil, "invalid JSON"), http.StatusBadRequest, "invalid JSON"},
		{"game error", game.ErrCommitmentPending, http.StatusConflict,
			"Reveal your pending guess before committing a new one."},
		{"unknown error", errors.New("db exploded"), http.StatusInternalServerError, "Unexpected error."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HandleError(func(http.ResponseWriter, *http.Request) error { return tt.err })

			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			got := decodeError(t, rec)
			assert.Equal(t, tt.message, got.Error)
			assert.Equal(t, tt.status, got.Code)
		})
	}
}

func TestHandleError_Success(t *testing.T) {
	h := HandleError(func(w http.ResponseWriter, _ *http.Request) error {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return nil
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServeAndWait_Shutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := &config.ServerConfig{Host: "127.0.0.1", Port: freePort(t), ShutdownTimeout: time.Second}

	done := make(chan error, 1)
	go func() {
		done <- ServeAndWait(ctx, http.NotFoundHandler(), zap.NewNop(), cfg)
	}()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServeAndWait_BindFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := &config.ServerConfig{Host: "127.0.0.1", Port: ln.Addr().(*net.TCPAddr).Port}
	err = ServeAndWait(context.Background(), http.NotFoundHandler(), nil, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}
