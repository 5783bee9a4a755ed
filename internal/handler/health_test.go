package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PvPTrack_Go/internal/builder"
)

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	handler := HandleHealthz()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Build Published - Success", func(t *testing.T) {
		src := newSource(fixtureResult())

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(src).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		assert.Contains(t, w.Body.String(), `"runId":"run-1"`)
		src.AssertExpectations(t)
	})

	t.Run("Nothing Built Yet", func(t *testing.T) {
		src := newSource(nil)

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(src).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), StatusUnavailable)
		assert.Contains(t, w.Body.String(), ErrMsgNotReady)
	})
}

func TestHandleVersion(t *testing.T) {
	t.Setenv("VERSION", "1.2.3")

	t.Run("before first build", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleVersion(newSource(nil)).ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"version":"1.2.3"`)
		assert.Contains(t, w.Body.String(), `"go_version":"go`)
		assert.NotContains(t, w.Body.String(), "data_run_id")
	})

	t.Run("reports served run", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleVersion(newSource(&builder.Result{RunID: "run-42"})).ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

		assert.Contains(t, w.Body.String(), `"data_run_id":"run-42"`)
	})
}
