package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/itsd-lab/vendorgate/internal/api/middleware"
	"github.com/itsd-lab/vendorgate/internal/api/routes"
	"github.com/itsd-lab/vendorgate/internal/config"
	"github.com/itsd-lab/vendorgate/internal/testutils"
	"github.com/stretchr/testify/require"

	_ "github.com/lib/pq"
)

var router *gin.Engine

func TestMain(m *testing.M) {
	gormDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	config.LoadConfig()
	middleware.Init()

	gin.SetMode(gin.TestMode)
	router = gin.New()
	routes.RegisterRoutes(router, gormDB)

	// setup: one user per role
	registerUserForTests("root", "123456", "admin")
	registerUserForTests("alice", "123456", "assessor")
	registerUserForTests("rex", "123456", "reviewer")

	code := m.Run()
	os.Exit(code)
}

// --- Helper functions ---
// doRequest marshals body (when non-nil) as JSON and replays the request
// through the in-process router.
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

func urlf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

func registerUserForTests(username, password, role string) {
	w := httptest.NewRecorder()
	reqBody := fmt.Sprintf(`{"username":%q,"password":%q,"role":%q}`, username, password, role)
	req, _ := http.NewRequest("POST", "/register", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
}
