package http_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	httphandlers "github.com/rafabene/ecoleta/internal/handlers/http"
	"github.com/rafabene/ecoleta/internal/infrastructure/config"
	"github.com/rafabene/ecoleta/internal/infrastructure/i18n"
	"github.com/rafabene/ecoleta/internal/infrastructure/logging"
	"github.com/rafabene/ecoleta/internal/infrastructure/metrics"
	"github.com/rafabene/ecoleta/internal/infrastructure/persistence/database"
	"github.com/rafabene/ecoleta/internal/infrastructure/storage"
	"github.com/rafabene/ecoleta/internal/services"
)

const testBaseURL = "http://api.ecoleta.test"

type testServer struct {
	router  *gin.Engine
	db      *gorm.DB
	storage *storage.DiskStorage
	metrics *metrics.Metrics
}

// newTestServer monta a aplicação completa sobre sqlite em memória
func newTestServer(t *testing.T, configure ...func(*config.Config)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env: "test",
		Server: config.ServerConfig{
			Port:    "3333",
			BaseURL: testBaseURL,
		},
		Database: config.DatabaseConfig{
			Driver:     config.DriverSQLite,
			SQLitePath: ":memory:",
		},
		Storage: config.StorageConfig{
			UploadsDir:     t.TempDir(),
			MaxUploadBytes: 1 << 20,
		},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 0},
		CORS:      config.CORSConfig{AllowedOrigins: "*"},
		I18n:      config.I18nConfig{DefaultLanguage: "en"},
	}
	for _, fn := range configure {
		fn(cfg)
	}

	logger := logging.NewNopLogger()

	db, err := database.NewDatabaseConnection(&cfg.Database, "error", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db))
	_, err = database.SeedItems(db)
	require.NoError(t, err)

	disk, err := storage.NewDiskStorage(filepath.Join(cfg.Storage.UploadsDir, storage.PhotosSubdir), cfg.Storage.MaxUploadBytes)
	require.NoError(t, err)

	i18nService, err := i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage)
	require.NoError(t, err)

	m := metrics.New()

	itemService := services.NewItemService(database.NewItemRepository(db), logger)
	pointService := services.NewPointService(
		database.NewPointRepository(db),
		database.NewUnitOfWork(db),
		disk,
		logger,
	)

	router, err := httphandlers.NewRouter(httphandlers.RouterDeps{
		Config:  cfg,
		Logger:  logger,
		I18n:    i18nService,
		Metrics: m,
		Items:   httphandlers.NewItemHandler(itemService),
		Points:  httphandlers.NewPointHandler(pointService, m),
		Health:  httphandlers.NewHealthHandler(cfg.Env, nil),
	})
	require.NoError(t, err)

	return &testServer{router: router, db: db, storage: disk, metrics: m}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) get(path string) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, path, nil))
}

// pointForm retorna um formulário válido de cadastro
func pointForm() map[string]string {
	return map[string]string{
		"name":      "Mercado do Bairro",
		"email":     "contato@mercado.com",
		"whatsapp":  "11999999999",
		"latitude":  "-23.5505",
		"longitude": "-46.6333",
		"city":      "São Paulo",
		"uf":        "SP",
		"items":     "1,2,3",
	}
}

// multipartRequest monta um POST /points; image vazio omite o arquivo
func multipartRequest(t *testing.T, fields map[string]string, image string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	if image != "" {
		part, err := writer.CreateFormFile("image", image)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/points", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func (s *testServer) createPoint(t *testing.T, fields map[string]string) map[string]any {
	t.Helper()

	w := s.do(multipartRequest(t, fields, "fachada.jpg"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func (s *testServer) countRows(t *testing.T, table string) int64 {
	t.Helper()

	var count int64
	require.NoError(t, s.db.Table(table).Count(&count).Error)
	return count
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
