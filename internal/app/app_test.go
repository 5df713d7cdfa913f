package app

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"autozar_backend/internal/auth"
	"autozar_backend/internal/catalog"
	"autozar_backend/internal/config"
	"autozar_backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "integration-secret"

type TestServer struct {
	Server *httptest.Server
	Tokens *auth.TokenManager
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.JWT.Secret = testSecret
	cfg.RateLimit.RequestsPerSecond = 0
	return cfg
}

func NewTestServer(t *testing.T, cfg *config.Config) *TestServer {
	t.Helper()

	router, err := SetupRouter(cfg, storage.NewMemoryStore(), catalog.MustLoad())
	require.NoError(t, err)

	tokens, err := auth.NewTokenManager(cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return &TestServer{Server: server, Tokens: tokens}
}

func (ts *TestServer) Login(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := ts.Tokens.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(raw)
}

func TestSetupRouter_RequiresSecret(t *testing.T) {
	cfg := config.Default()
	cfg.JWT.Secret = ""
	_, err := SetupRouter(cfg, storage.NewMemoryStore(), catalog.MustLoad())
	assert.ErrorIs(t, err, auth.ErrEmptySecret)
}

func TestStorageConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Type = config.StorageBadger
	cfg.Storage.GCIntervalMin = 5

	sc := StorageConfig(cfg)
	assert.Equal(t, "badger", sc.Type)
	assert.Equal(t, "./data/badger", sc.Path)
	assert.Equal(t, 5*time.Minute, sc.GCInterval)
	assert.Equal(t, "autozar", sc.Database)
}

func TestMarketplace(t *testing.T) {
	ts := NewTestServer(t, testConfig())
	seller := ts.Login(t, "seller-100", auth.RoleSeller)
	admin := ts.Login(t, "admin-1", auth.RoleAdmin)

	t.Run("GET /health", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, bodyStr, "ok")
	})

	t.Run("GET /api/v1/listings/:category - request id and seed", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/listings/service_center", "", nil)
		require.Equal(t, http.StatusOK, res.StatusCode, "Body: "+bodyStr)
		assert.NotEmpty(t, res.Header.Get("X-Request-ID"))
		assert.Contains(t, bodyStr, `"total":4`)
	})

	var listingID string

	t.Run("POST /api/v1/my/listings - seller submits", func(t *testing.T) {
		payload := map[string]interface{}{
			"category": "vehicle",
			"title":    "Toyota Alphard 2018, гаальгүй",
			"region":   "Улаанбаатар, Чингэлтэй",
			"priceMnt": 95000000,
			"contact":  map[string]string{"name": "Тулга", "phone": "99001122"},
			"vehicle": map[string]interface{}{
				"manufacturer": "Toyota",
				"model":        "Alphard",
				"year":         2018,
				"mileageKm":    61000,
				"fuel":         "petrol",
				"transmission": "automatic",
				"bodyType":     "van",
				"steering":     "right",
			},
		}
		res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/my/listings", seller, payload)
		require.Equal(t, http.StatusCreated, res.StatusCode, "Body: "+bodyStr)

		var created struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		}
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
		assert.Equal(t, "draft", created.Status)
		listingID = created.ID
	})

	t.Run("POST /api/v1/my/listings/:id/payment - publishes", func(t *testing.T) {
		require.NotEmpty(t, listingID)
		plan := map[string]interface{}{"tier": "silver", "durationDays": 14, "method": "socialpay", "amountMnt": 15000}
		res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/my/listings/"+listingID+"/payment", seller, plan)
		require.Equal(t, http.StatusOK, res.StatusCode, "Body: "+bodyStr)
		assert.Contains(t, bodyStr, `"tier":"silver"`)

		res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/listings/vehicle?q=alphard", "", nil)
		require.Equal(t, http.StatusOK, res.StatusCode, "Body: "+bodyStr)
		assert.Contains(t, bodyStr, listingID)
		assert.Contains(t, bodyStr, `"total":1`)
	})

	t.Run("POST /api/v1/admin/listings/:id/moderate - reject hides listing", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/listings/"+listingID+"/moderate", admin,
			map[string]string{"outcome": "reject", "reason": "wrong photos"})
		require.Equal(t, http.StatusOK, res.StatusCode, "Body: "+bodyStr)

		res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/listing/"+listingID, "", nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.JSONEq(t, `{"data":null}`, bodyStr)
	})

	t.Run("GET /metrics", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, http.MethodGet, "/metrics", "", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, bodyStr, "autozar_")
	})
}

func TestMarketplace_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.RequestsPerSecond = 0.001
	cfg.RateLimit.Burst = 2
	ts := NewTestServer(t, cfg)

	codes := make([]int, 0, 3)
	for range 3 {
		res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/plans", "", nil)
		codes = append(codes, res.StatusCode)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestMarketplace_CORSPreflight(t *testing.T) {
	ts := NewTestServer(t, testConfig())
	res, _ := ts.SendRequest(t, http.MethodOptions, "/api/v1/listings/vehicle", "", nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	assert.True(t, strings.Contains(res.Header.Get("Access-Control-Allow-Methods"), "GET"))
}
