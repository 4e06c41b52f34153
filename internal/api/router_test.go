package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bookstore/internal/api/controllers"
	"bookstore/internal/config"
	"bookstore/internal/models/response_models"
	"bookstore/internal/repositories"
	"bookstore/internal/services"
	"bookstore/internal/testutil"
	mem "bookstore/pkg/memcache"
	"bookstore/pkg/middleware"
	"bookstore/pkg/utils"
)

type testServer struct {
	t         *testing.T
	router    *gin.Engine
	tokens    *utils.TokenManager
	uploadDir string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	tokens := testutil.NewTokenManager(t)
	revoked := mem.NewRevokedTokens()
	logger := zap.NewNop()

	cfg := &config.Config{
		Environment: "test",
		CORS:        config.CORS{AllowedOrigins: []string{"http://localhost:5173"}},
		Upload:      config.Upload{Dir: t.TempDir(), MaxBytes: 1024},
	}

	accountRepo := repositories.NewAccountRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	productRepo := repositories.NewProductRepository(db)

	uploads, err := services.NewUploadService(cfg.Upload, logger)
	require.NoError(t, err)

	router := NewRouter(RouterParams{
		Config:    cfg,
		Logger:    logger,
		Tokens:    tokens,
		Revoked:   revoked,
		Accounts:  controllers.NewAccountController(services.NewAccountService(accountRepo, tokens, revoked, logger)),
		Orders:    controllers.NewOrderController(services.NewOrderService(orderRepo, false, logger)),
		Products:  controllers.NewProductController(services.NewProductService(productRepo)),
		Uploads:   controllers.NewUploadController(uploads),
		Dashboard: controllers.NewDashboardController(services.NewDashboardService(repositories.NewDashboardRepository(db), orderRepo)),
	})

	return &testServer{t: t, router: router, tokens: tokens, uploadDir: cfg.Upload.Dir}
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) register(email string, roleID int) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/auth/register", "", gin.H{"email": email, "password": "secret", "role_id": roleID})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	var resp response_models.AuthResponse
	decode(s.t, w, &resp)
	return resp.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorResponse
	decode(t, w, &body)
	return body.Message
}

func orderBody() gin.H {
	return gin.H{
		"items":      []gin.H{{"_id": 1, "title": "Dune", "newPrice": 10.5, "quantity": 2}},
		"totalPrice": 21,
		"shippingInfo": gin.H{
			"name": "Ann", "email": "ann@example.com", "phone": "555", "address": "1 Main St",
			"city": "Springfield", "state": "IL", "zipcode": "62701", "country": "US",
		},
	}
}

func productBody(title string, price float64) gin.H {
	return gin.H{
		"title": title, "description": "A novel", "newPrice": price,
		"coverImage": "/uploads/books/x.png", "category": "fiction",
	}
}

func TestWelcome(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.TraceHeader))
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/auth/register", "", gin.H{"email": "reader@example.com", "password": "pw"})
	require.Equal(t, http.StatusCreated, w.Code)
	var reg response_models.AuthResponse
	decode(t, w, &reg)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "USER", reg.Role)

	w = s.do(http.MethodPost, "/api/auth/register", "", gin.H{"email": "reader@example.com", "password": "other"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already exists", errorMessage(t, w))

	w = s.do(http.MethodPost, "/api/auth/register", "", gin.H{"email": "", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email and password required", errorMessage(t, w))

	w = s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "reader@example.com", "password": "pw"})
	require.Equal(t, http.StatusOK, w.Code)
	var login response_models.AuthResponse
	decode(t, w, &login)
	assert.Equal(t, "USER", login.Role)

	wrongPassword := s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "reader@example.com", "password": "nope"})
	unknownEmail := s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "ghost@example.com", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	assert.Equal(t, wrongPassword.Code, unknownEmail.Code)
	assert.Equal(t, "Invalid credentials", errorMessage(t, wrongPassword))
	assert.Equal(t, errorMessage(t, wrongPassword), errorMessage(t, unknownEmail))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not logged in", errorMessage(t, w))

	w = s.do(http.MethodGet, "/api/orders", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", errorMessage(t, w))

	expired, err := s.tokens.CreateTokenWithTTL(1, "late@example.com", utils.RoleUser, -time.Minute)
	require.NoError(t, err)
	w = s.do(http.MethodGet, "/api/orders", expired, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", errorMessage(t, w))
}

func TestUserIsForbiddenOnAdminRoutes(t *testing.T) {
	s := newTestServer(t)
	user := s.register("user@example.com", utils.UserRoleID)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/orders/admin"},
		{http.MethodDelete, "/api/orders/1"},
		{http.MethodGet, "/api/users"},
		{http.MethodPut, "/api/users/1"},
		{http.MethodDelete, "/api/users/1"},
		{http.MethodPost, "/api/dashboard/products"},
		{http.MethodPut, "/api/dashboard/products/1"},
		{http.MethodDelete, "/api/dashboard/products/1"},
		{http.MethodPost, "/api/dashboard/uploads/book-cover"},
		{http.MethodGet, "/api/admin/dashboard"},
	}
	for _, route := range routes {
		w := s.do(route.method, route.path, user, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", route.method, route.path)
		assert.Equal(t, "Forbidden", errorMessage(t, w))

		w = s.do(route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestOrders(t *testing.T) {
	s := newTestServer(t)
	alice := s.register("alice@example.com", utils.UserRoleID)
	bob := s.register("bob@example.com", utils.UserRoleID)
	admin := s.register("admin@example.com", utils.AdminRoleID)

	w := s.do(http.MethodPost, "/api/orders", alice, orderBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created response_models.OrderResponse
	decode(t, w, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "alice@example.com", created.UserEmail)

	w = s.do(http.MethodPost, "/api/orders", alice, gin.H{"items": []gin.H{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing order data", errorMessage(t, w))

	var own []response_models.OrderResponse
	decode(t, s.do(http.MethodGet, "/api/orders", alice, nil), &own)
	require.Len(t, own, 1)
	assert.Equal(t, created.ID, own[0].ID)

	var bobs []response_models.OrderResponse
	decode(t, s.do(http.MethodGet, "/api/orders", bob, nil), &bobs)
	assert.Empty(t, bobs)

	w = s.do(http.MethodGet, "/api/orders/admin", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []response_models.OrderResponse
	decode(t, w, &all)
	require.Len(t, all, 1)
	assert.Equal(t, "alice@example.com", all[0].UserEmail)

	w = s.do(http.MethodDelete, "/api/orders/abc", admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid id", errorMessage(t, w))

	path := fmt.Sprintf("/api/orders/%d", created.ID)
	for i := 0; i < 2; i++ {
		w = s.do(http.MethodDelete, path, admin, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Order deleted"}`, w.Body.String())
	}

	decode(t, s.do(http.MethodGet, "/api/orders", alice, nil), &own)
	assert.Empty(t, own)
	decode(t, s.do(http.MethodGet, "/api/orders/admin", admin, nil), &all)
	assert.Empty(t, all)
}

func TestUsersAdministration(t *testing.T) {
	s := newTestServer(t)
	admin := s.register("admin@example.com", utils.AdminRoleID)
	s.register("user@example.com", utils.UserRoleID)

	w := s.do(http.MethodGet, "/api/users", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	var accounts []response_models.AccountResponse
	decode(t, w, &accounts)
	require.Len(t, accounts, 2)
	userID := accounts[1].ID

	w = s.do(http.MethodPut, fmt.Sprintf("/api/users/%d", userID), admin, gin.H{"email": "renamed@example.com", "role_id": utils.AdminRoleID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated response_models.AccountResponse
	decode(t, w, &updated)
	assert.Equal(t, "renamed@example.com", updated.Email)
	assert.Equal(t, "ADMIN", updated.Role)

	w = s.do(http.MethodPut, "/api/users/9999", admin, gin.H{"email": "x@example.com", "role_id": utils.UserRoleID})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPut, fmt.Sprintf("/api/users/%d", userID), admin, gin.H{"email": "  ", "role_id": utils.UserRoleID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid email", errorMessage(t, w))

	w = s.do(http.MethodPut, fmt.Sprintf("/api/users/%d", userID), admin, gin.H{"email": "x@example.com", "role_id": 7})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid role", errorMessage(t, w))

	for i := 0; i < 2; i++ {
		w = s.do(http.MethodDelete, fmt.Sprintf("/api/users/%d", userID), admin, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	}

	decode(t, s.do(http.MethodGet, "/api/users", admin, nil), &accounts)
	assert.Len(t, accounts, 1)
}

func TestProducts(t *testing.T) {
	s := newTestServer(t)
	admin := s.register("admin@example.com", utils.AdminRoleID)

	w := s.do(http.MethodPost, "/api/dashboard/products", admin, productBody("Dune", 9.999))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created response_models.ProductResponse
	decode(t, w, &created)
	assert.Equal(t, 9.99, created.NewPrice)

	w = s.do(http.MethodPost, "/api/dashboard/products", admin, productBody("  ", 1))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid product data", errorMessage(t, w))

	path := fmt.Sprintf("/api/dashboard/products/%d", created.ID)
	for _, read := range []string{"/api/products", "/api/dashboard/products"} {
		w = s.do(http.MethodGet, read, "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []response_models.ProductResponse
		decode(t, w, &list)
		assert.Len(t, list, 1)
	}

	w = s.do(http.MethodGet, fmt.Sprintf("/api/products/%d", created.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/products/nope", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid id", errorMessage(t, w))

	w = s.do(http.MethodPut, path, admin, productBody("Dune Messiah", 12))
	require.Equal(t, http.StatusOK, w.Code)
	var updated response_models.ProductResponse
	decode(t, w, &updated)
	assert.Equal(t, "Dune Messiah", updated.Title)

	w = s.do(http.MethodDelete, path, admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w = s.do(method, path, admin, productBody("Gone", 1))
		assert.Equal(t, http.StatusNotFound, w.Code, method)
		assert.Equal(t, "Not found", errorMessage(t, w))
	}
}

// A 1x1 PNG.
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func (s *testServer) upload(token, field, name string, content []byte) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, name)
	require.NoError(s.t, err)
	_, err = part.Write(content)
	require.NoError(s.t, err)
	require.NoError(s.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/dashboard/uploads/book-cover", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestUploadBookCover(t *testing.T) {
	s := newTestServer(t)
	admin := s.register("admin@example.com", utils.AdminRoleID)

	w := s.upload(admin, "file", "cover.png", tinyPNG)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp response_models.UploadResponse
	decode(t, w, &resp)
	assert.Equal(t, "/uploads/books/"+resp.Filename, resp.URL)
	_, err := os.Stat(filepath.Join(s.uploadDir, "books", resp.Filename))
	require.NoError(t, err)

	w = s.do(http.MethodGet, resp.URL, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, tinyPNG, w.Body.Bytes())

	w = s.upload(admin, "file", "notes.txt", []byte("plain text, not an image"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Only image files are allowed", errorMessage(t, w))

	w = s.upload(admin, "other", "cover.png", tinyPNG)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file uploaded", errorMessage(t, w))

	w = s.upload(admin, "file", "big.png", append(append([]byte{}, tinyPNG...), make([]byte, 2048)...))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "File too large", errorMessage(t, w))
}

func TestLogoutRevokesAdminAccess(t *testing.T) {
	s := newTestServer(t)
	admin := s.register("admin@example.com", utils.AdminRoleID)

	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/users", admin, nil).Code)

	w := s.do(http.MethodPost, "/api/auth/logout", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/users", admin, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", errorMessage(t, w))
}

func TestAdminDashboard(t *testing.T) {
	s := newTestServer(t)
	admin := s.register("admin@example.com", utils.AdminRoleID)
	user := s.register("user@example.com", utils.UserRoleID)

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/dashboard/products", admin, productBody("Dune", 10)).Code)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/orders", user, orderBody()).Code)

	w := s.do(http.MethodGet, "/api/admin/dashboard", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats response_models.DashboardResponse
	decode(t, w, &stats)
	assert.Equal(t, int64(1), stats.TotalBooks)
	assert.Equal(t, int64(1), stats.TotalOrders)
	assert.Equal(t, 21.0, stats.TotalSales)
	assert.Equal(t, 1, stats.TrendingBooks)
	require.Len(t, stats.OrdersPerMonth, 12)
	assert.Equal(t, 1, stats.OrdersPerMonth[11].Count)
}
