package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/artcocktail/artcocktail/app/models"
	"github.com/artcocktail/artcocktail/internal/server"
	"github.com/artcocktail/artcocktail/pkg/auth"
	"github.com/artcocktail/artcocktail/pkg/database"
	"github.com/artcocktail/artcocktail/pkg/limiter"
)

type fakeDisk struct {
	files map[string][]byte
}

func (d *fakeDisk) Put(path string, content []byte) error {
	d.files[path] = content
	return nil
}

func (d *fakeDisk) PutStream(path string, r io.Reader) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	d.files[path] = content
	return nil
}

func (d *fakeDisk) Get(path string) ([]byte, error) { return d.files[path], nil }
func (d *fakeDisk) Exists(path string) bool         { _, ok := d.files[path]; return ok }
func (d *fakeDisk) Delete(path string) error        { delete(d.files, path); return nil }
func (d *fakeDisk) URL(path string) string          { return "/uploads/" + path }

type apiEnv struct {
	db  *gorm.DB
	srv *httptest.Server
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()

	db, err := database.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Artwork{}, &models.Order{}, &models.OrderItem{},
	))

	lim := limiter.NewInMemory(10000, time.Minute)
	handler := server.BuildHandler(db, &fakeDisk{files: map[string][]byte{}}, lim)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Cleanup(func() { lim.Close() })

	return &apiEnv{db: db, srv: srv}
}

// createUser inserts a user row directly and mints a token for it.
func (e *apiEnv) createUser(t *testing.T, email, role string) (models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	user := models.User{Name: "Test " + role, Email: email, Password: hash, Role: role}
	require.NoError(t, e.db.Create(&user).Error)

	token, err := auth.GenerateToken(user.ID, user.Role)
	require.NoError(t, err)
	return user, token
}

func (e *apiEnv) request(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, e.srv.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var body struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Data
}

func checkoutBody() map[string]interface{} {
	return map[string]interface{}{
		"items": []map[string]interface{}{
			{"artworkId": 0, "title": "Golden Horizon", "price": 4500, "imageUrl": "/uploads/a.jpg", "quantity": 1},
		},
		"totalAmount": 4500,
		"shippingAddress": map[string]string{
			"fullName":   "Jane Buyer",
			"address":    "12 Gallery Lane",
			"city":       "Lisbon",
			"postalCode": "1000-001",
			"phone":      "+351900000000",
		},
	}
}

func TestRegisterAndLoginFlow(t *testing.T) {
	env := newAPIEnv(t)

	resp := env.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Jane", "email": "jane@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := decodeData(t, resp)
	assert.NotEmpty(t, data["token"])

	resp = env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "jane@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = decodeData(t, resp)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)

	resp = env.request(t, http.MethodGet, "/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestRegisterValidation(t *testing.T) {
	env := newAPIEnv(t)

	resp := env.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Jane", "email": "not-an-email", "password": "x",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCatalogIsPublic(t *testing.T) {
	env := newAPIEnv(t)

	resp := env.request(t, http.MethodGet, "/api/artworks", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	env := newAPIEnv(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/auth/profile"},
		{http.MethodPost, "/api/orders"},
		{http.MethodGet, "/api/orders/my"},
		{http.MethodGet, "/api/orders"},
	} {
		resp := env.request(t, tc.method, tc.path, "", nil)
		resp.Body.Close()
		assert.Equalf(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", tc.method, tc.path)
	}
}

func TestAdminRoutesRejectPlainUser(t *testing.T) {
	env := newAPIEnv(t)
	_, token := env.createUser(t, "user@example.com", models.RoleUser)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/orders"},
		{http.MethodPost, "/api/artworks"},
		{http.MethodDelete, "/api/artworks/1"},
		{http.MethodPut, "/api/orders/1/status"},
		{http.MethodDelete, "/api/orders/1"},
	} {
		resp := env.request(t, tc.method, tc.path, token, nil)
		resp.Body.Close()
		assert.Equalf(t, http.StatusForbidden, resp.StatusCode, "%s %s", tc.method, tc.path)
	}
}

func TestDeletedUserTokenRejected(t *testing.T) {
	env := newAPIEnv(t)
	user, token := env.createUser(t, "gone@example.com", models.RoleUser)

	require.NoError(t, env.db.Delete(&models.User{}, user.ID).Error)

	resp := env.request(t, http.MethodGet, "/api/auth/profile", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCheckoutFlow(t *testing.T) {
	env := newAPIEnv(t)
	_, userToken := env.createUser(t, "buyer@example.com", models.RoleUser)
	_, adminToken := env.createUser(t, "admin@example.com", models.RoleAdmin)

	resp := env.request(t, http.MethodPost, "/api/orders", userToken, checkoutBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := decodeData(t, resp)
	assert.Equal(t, "Pending", data["status"])
	orderID := data["id"].(float64)

	// Owner sees it under /my.
	resp = env.request(t, http.MethodGet, "/api/orders/my", userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Admin moves it to Shipped.
	resp = env.request(t, http.MethodPut,
		"/api/orders/"+itoa(orderID)+"/status", adminToken,
		map[string]string{"status": "Shipped"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = decodeData(t, resp)
	assert.Equal(t, "Shipped", data["status"])

	// Unknown status value is rejected.
	resp = env.request(t, http.MethodPut,
		"/api/orders/"+itoa(orderID)+"/status", adminToken,
		map[string]string{"status": "Teleported"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	env := newAPIEnv(t)
	_, token := env.createUser(t, "buyer@example.com", models.RoleUser)

	body := checkoutBody()
	body["items"] = []map[string]interface{}{}
	resp := env.request(t, http.MethodPost, "/api/orders", token, body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdminArtworkUpload(t *testing.T) {
	env := newAPIEnv(t)
	_, adminToken := env.createUser(t, "admin@example.com", models.RoleAdmin)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Golden Horizon"))
	require.NoError(t, mw.WriteField("description", "Warm sunset tones in heavy acrylic."))
	require.NoError(t, mw.WriteField("price", "4500"))
	require.NoError(t, mw.WriteField("category", "painting"))
	part, err := mw.CreateFormFile("image", "horizon.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, env.srv.URL+"/api/artworks", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+adminToken)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := decodeData(t, resp)
	assert.Equal(t, "Golden Horizon", data["title"])
	assert.NotEmpty(t, data["imageUrl"])
}

func TestHealthReportsConnectivity(t *testing.T) {
	env := newAPIEnv(t)

	resp := env.request(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeData(t, resp)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "connected", data["database"])

	// A dead store still answers 200; only the body changes.
	sqlDB, err := env.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	resp = env.request(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = decodeData(t, resp)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "disconnected", data["database"])
}

func TestUnknownArtworkIs404(t *testing.T) {
	env := newAPIEnv(t)

	resp := env.request(t, http.MethodGet, "/api/artworks/9999", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func itoa(f float64) string {
	return strconv.FormatInt(int64(f), 10)
}
