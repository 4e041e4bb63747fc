package http_test

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/ecoleta/internal/handlers/dto"
)

func TestItemHandler_ListItems(t *testing.T) {
	srv := newTestServer(t)

	w := srv.get("/items")
	require.Equal(t, http.StatusOK, w.Code)

	items := decode[[]dto.ItemResponse](t, w)
	require.Len(t, items, 6)
	assert.Equal(t, uint(1), items[0].ID)
	assert.Equal(t, "Lâmpadas", items[0].Title)
	assert.Equal(t, testBaseURL+"/uploads/lampadas.svg", items[0].ImageURL)
}

func TestRouter_Operational(t *testing.T) {
	srv := newTestServer(t)

	t.Run("health", func(t *testing.T) {
		w := srv.get("/health")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","env":"test","database":"up"}`, w.Body.String())
	})

	t.Run("request id em toda resposta", func(t *testing.T) {
		w := srv.get("/items")
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("metrics", func(t *testing.T) {
		srv.get("/items")

		w := srv.get("/metrics")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `ecoleta_http_requests_total{method="GET",route="/items",status="200"}`)
	})

	t.Run("pontos criados contam na métrica", func(t *testing.T) {
		srv.createPoint(t, pointForm())

		expected := `
# HELP ecoleta_points_created_total Total number of collection points created.
# TYPE ecoleta_points_created_total counter
ecoleta_points_created_total 1
`
		require.NoError(t, testutil.GatherAndCompare(srv.metrics.Registry(), strings.NewReader(expected), "ecoleta_points_created_total"))
	})

	t.Run("arquivos estáticos de uploads", func(t *testing.T) {
		created := srv.createPoint(t, pointForm())

		w := srv.get("/uploads/photos/" + created["image"].(string))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "fake image bytes", w.Body.String())
	})

	t.Run("ícone de item", func(t *testing.T) {
		uploads := filepath.Dir(srv.storage.Dir())
		require.NoError(t, os.WriteFile(filepath.Join(uploads, "lampadas.svg"), []byte("<svg/>"), 0o644)) //nolint:gosec

		w := srv.get("/uploads/lampadas.svg")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
