//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"

	"github.com/adanilkinca/techcockbar/config"
	"github.com/adanilkinca/techcockbar/db"
	"github.com/adanilkinca/techcockbar/internal/testutils"
	"github.com/adanilkinca/techcockbar/middleware"
	"github.com/adanilkinca/techcockbar/repositories"
	"github.com/adanilkinca/techcockbar/services"
	"github.com/adanilkinca/techcockbar/websocket"
)

var (
	router *gin.Engine
	hub    *websocket.Hub
)

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}
	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	hub = websocket.NewHub()
	go hub.Run(ctx)

	router = testutils.SetupRouter(hub)

	// setup
	if err := seedTestData(); err != nil {
		log.Fatal(err)
	}

	code := m.Run()
	cancel()
	cleanup()
	os.Exit(code)
}

// seedTestData creates the bootstrap superuser and the starter menu the same
// way the CLI commands do.
func seedTestData() error {
	svcs := services.New(repositories.New(), nil)
	if _, err := svcs.User.CreateSuperuser("admin", "admin123", nil); err != nil {
		return err
	}
	if _, err := svcs.Seed.EnsureSeedData(); err != nil {
		return err
	}
	return nil
}

// --- Helper functions ---
// doRequest is a generalized helper to make HTTP requests in tests.
// A nil body sends no payload; anything else is marshalled as JSON.
// Pass expectStatus 0 to skip the status assertion.
func doRequest(t *testing.T, method, path string, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request

	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}

	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}
