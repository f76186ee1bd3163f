package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ayodiya/hux-assessment-backend/config"
	"github.com/ayodiya/hux-assessment-backend/internal/handler"
	"github.com/ayodiya/hux-assessment-backend/internal/middleware"
	"github.com/ayodiya/hux-assessment-backend/internal/model"
	"github.com/ayodiya/hux-assessment-backend/internal/router"
	"github.com/ayodiya/hux-assessment-backend/internal/service"
	"github.com/ayodiya/hux-assessment-backend/pkg/redis"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// In-memory stores backing the full HTTP stack.

type memUserStore struct {
	users  map[string]*model.User
	nextID uint
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *memUserStore) GetByID(_ context.Context, id uint) (*model.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserStore) Create(_ context.Context, user *model.User) error {
	m.nextID++
	user.ID = m.nextID
	stored := *user
	m.users[user.Email] = &stored
	return nil
}

type memTokenStore struct {
	tokens map[string]*model.Token
}

func (m *memTokenStore) Create(_ context.Context, token *model.Token) error {
	m.tokens[token.Token] = token
	return nil
}

func (m *memTokenStore) GetByValue(_ context.Context, tokenValue string) (*model.Token, error) {
	token, ok := m.tokens[tokenValue]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return token, nil
}

func (m *memTokenStore) DeleteByValue(_ context.Context, tokenValue string) error {
	if _, ok := m.tokens[tokenValue]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.tokens, tokenValue)
	return nil
}

type memContactStore struct {
	contacts map[string]*model.Contact
	nextID   uint
}

func (m *memContactStore) GetDuplicate(_ context.Context, userID uint, firstName, lastName, phoneNo string) (*model.Contact, error) {
	for _, contact := range m.contacts {
		if contact.UserID == userID && contact.FirstName == firstName &&
			contact.LastName == lastName && contact.PhoneNo == phoneNo {
			copied := *contact
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memContactStore) GetBySlug(_ context.Context, userID uint, slug string) (*model.Contact, error) {
	contact, ok := m.contacts[slug]
	if !ok || contact.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *contact
	return &copied, nil
}

func (m *memContactStore) GetAllByUser(_ context.Context, userID uint) ([]model.Contact, error) {
	var out []model.Contact
	for _, contact := range m.contacts {
		if contact.UserID == userID {
			out = append(out, *contact)
		}
	}
	return out, nil
}

func (m *memContactStore) Create(_ context.Context, contact *model.Contact) error {
	m.nextID++
	contact.ID = m.nextID
	stored := *contact
	m.contacts[contact.Slug] = &stored
	return nil
}

func (m *memContactStore) UpdateBySlug(_ context.Context, userID uint, slug string, fields *model.Contact) (*model.Contact, error) {
	existing, ok := m.contacts[slug]
	if !ok || existing.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	delete(m.contacts, slug)
	updated := *existing
	updated.FirstName = fields.FirstName
	updated.LastName = fields.LastName
	updated.Email = fields.Email
	updated.PhoneNo = fields.PhoneNo
	updated.Slug = fields.Slug
	m.contacts[updated.Slug] = &updated
	copied := updated
	return &copied, nil
}

func (m *memContactStore) DeleteBySlug(_ context.Context, userID uint, slug string) error {
	contact, ok := m.contacts[slug]
	if !ok || contact.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(m.contacts, slug)
	return nil
}

func newTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App: config.AppConfig{Name: "contacts-service", Environment: "test"},
		JWT: config.JWTConfig{
			Secret:         "integration-test-secret",
			ExpirationTime: time.Hour,
			Issuer:         "contacts-service-test",
		},
	}

	tokenService := service.NewTokenService(cfg.JWT, &memTokenStore{tokens: make(map[string]*model.Token)})
	userService := service.NewUserService(
		&memUserStore{users: make(map[string]*model.User)},
		service.NewCredentialStore(),
		tokenService,
	)
	contactService := service.NewContactService(
		&memContactStore{contacts: make(map[string]*model.Contact)},
		nil,
	)

	r := router.NewRouter(
		cfg,
		handler.NewAuthHandler(userService),
		handler.NewContactHandler(contactService),
		handler.NewHealthHandler(nil, redis.NewClient(redis.Config{Enabled: false})),
		middleware.NewJWTMiddleware(tokenService),
	)
	r.SetupRoutes()
	return r.Engine()
}

func doJSON(engine *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body %q: %v", rec.Body.String(), err)
	}
	return body
}

const registerBody = `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","phoneNo":"08012345678","password":"password123"}`

func registerAndGetToken(t *testing.T, engine *gin.Engine) string {
	t.Helper()
	rec := doJSON(engine, http.MethodPost, "/api/auth/create-user", "", registerBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("registration status = %d; body %s", rec.Code, rec.Body.String())
	}
	token, _ := decodeBody(t, rec)["token"].(string)
	if token == "" {
		t.Fatal("registration returned no token")
	}
	return token
}

func TestRegisterEndpoint(t *testing.T) {
	engine := newTestServer()

	rec := doJSON(engine, http.MethodPost, "/api/auth/create-user", "", registerBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["status"] != "success" {
		t.Errorf("status field = %v", body["status"])
	}
	if body["message"] != "User registered successfully" {
		t.Errorf("message = %v", body["message"])
	}
	details, ok := body["userDetails"].(map[string]interface{})
	if !ok {
		t.Fatal("userDetails missing")
	}
	if details["email"] != "ada@example.com" {
		t.Errorf("userDetails.email = %v", details["email"])
	}
	if _, exposed := details["password"]; exposed {
		t.Error("userDetails must not expose the password")
	}

	// Duplicate registration collapses to the domain failure envelope.
	rec = doJSON(engine, http.MethodPost, "/api/auth/create-user", "", registerBody)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate status = %d, want 400", rec.Code)
	}
	if msg := decodeBody(t, rec)["msg"]; msg != "User already exists" {
		t.Errorf("msg = %v", msg)
	}
}

func TestLoginEndpoint(t *testing.T) {
	engine := newTestServer()
	registerAndGetToken(t, engine)

	rec := doJSON(engine, http.MethodPost, "/api/auth/login", "",
		`{"email":"ada@example.com","password":"password123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["message"] != "User logged in successfully" {
		t.Errorf("message = %v", body["message"])
	}
	if token, _ := body["token"].(string); token == "" {
		t.Error("login returned no token")
	}

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "unknown email", body: `{"email":"ghost@example.com","password":"password123"}`, wantMsg: "User with the email does not exists"},
		{name: "wrong password", body: `{"email":"ada@example.com","password":"wrong-password"}`, wantMsg: "Password not correct"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(engine, http.MethodPost, "/api/auth/login", "", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body %s", rec.Code, rec.Body.String())
			}
			if msg := decodeBody(t, rec)["msg"]; msg != tt.wantMsg {
				t.Errorf("msg = %v, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestLogoutEndpoint(t *testing.T) {
	engine := newTestServer()
	token := registerAndGetToken(t, engine)

	rec := doJSON(engine, http.MethodGet, "/api/auth/logout", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	if msg := decodeBody(t, rec)["message"]; msg != "Logout successfully" {
		t.Errorf("message = %v", msg)
	}

	// The token still verifies but its session row is gone.
	rec = doJSON(engine, http.MethodGet, "/api/auth/logout", token, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("second logout status = %d, want 400; body %s", rec.Code, rec.Body.String())
	}
	if msg := decodeBody(t, rec)["msg"]; msg != "No login session available" {
		t.Errorf("msg = %v", msg)
	}
}

func TestContactEndpointsRequireAuth(t *testing.T) {
	engine := newTestServer()

	rec := doJSON(engine, http.MethodGet, "/api/contact/all", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestContactLifecycle(t *testing.T) {
	engine := newTestServer()
	token := registerAndGetToken(t, engine)

	const contactBody = `{"firstName":"Grace","lastName":"Hopper","email":"grace@example.com","phoneNo":"08098765432"}`

	// Create
	rec := doJSON(engine, http.MethodPost, "/api/contact/add", token, contactBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add status = %d; body %s", rec.Code, rec.Body.String())
	}
	if msg := decodeBody(t, rec)["message"]; msg != "Contact created successfully" {
		t.Errorf("message = %v", msg)
	}

	// Duplicate
	rec = doJSON(engine, http.MethodPost, "/api/contact/add", token, contactBody)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate add status = %d, want 400", rec.Code)
	}
	if msg := decodeBody(t, rec)["msg"]; msg != "The contact already exists" {
		t.Errorf("msg = %v", msg)
	}

	// List
	rec = doJSON(engine, http.MethodGet, "/api/contact/all", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d; body %s", rec.Code, rec.Body.String())
	}
	all, ok := decodeBody(t, rec)["allContacts"].([]interface{})
	if !ok || len(all) != 1 {
		t.Fatalf("allContacts = %v, want 1 entry", all)
	}
	entry := all[0].(map[string]interface{})
	slugValue, _ := entry["slug"].(string)
	if !strings.HasPrefix(slugValue, "grace-") {
		t.Fatalf("slug = %q, want grace- prefix", slugValue)
	}

	// Read one
	rec = doJSON(engine, http.MethodGet, "/api/contact/"+slugValue, token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("single status = %d; body %s", rec.Code, rec.Body.String())
	}
	contact, ok := decodeBody(t, rec)["contact"].(map[string]interface{})
	if !ok || contact["firstName"] != "Grace" {
		t.Errorf("contact = %v", contact)
	}

	// Edit
	rec = doJSON(engine, http.MethodPatch, "/api/contact/"+slugValue, token,
		`{"firstName":"Margaret","lastName":"Hamilton","email":"margaret@example.com","phoneNo":"08022222222"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("edit status = %d; body %s", rec.Code, rec.Body.String())
	}
	edited, ok := decodeBody(t, rec)["editedContact"].(map[string]interface{})
	if !ok {
		t.Fatal("editedContact missing")
	}
	newSlug, _ := edited["slug"].(string)
	if !strings.HasPrefix(newSlug, "margaret-") {
		t.Errorf("edited slug = %q, want margaret- prefix", newSlug)
	}

	// Delete
	rec = doJSON(engine, http.MethodDelete, "/api/contact/"+newSlug, token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d; body %s", rec.Code, rec.Body.String())
	}
	if msg := decodeBody(t, rec)["message"]; msg != "Contact deleted successfully" {
		t.Errorf("message = %v", msg)
	}

	// Gone
	rec = doJSON(engine, http.MethodGet, "/api/contact/"+newSlug, token, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing contact status = %d, want 400", rec.Code)
	}
	if msg := decodeBody(t, rec)["msg"]; msg != "The contact does not exists" {
		t.Errorf("msg = %v", msg)
	}
}

func TestHealthEndpoint(t *testing.T) {
	engine := newTestServer()

	rec := doJSON(engine, http.MethodGet, "/api/health", "", "")

	// The test server runs without a database, so the report degrades to
	// unhealthy; the disabled cache only annotates it.
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503; body %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["status"] != "unhealthy" {
		t.Errorf("status field = %v, want unhealthy", body["status"])
	}
	if body["database"] != "unreachable" {
		t.Errorf("database = %v, want unreachable", body["database"])
	}
	if body["cache"] != "disabled" {
		t.Errorf("cache = %v, want disabled", body["cache"])
	}
	if service, _ := body["service"].(string); service == "" {
		t.Error("service name missing from the report")
	}
	if timestamp, _ := body["timestamp"].(string); timestamp == "" {
		t.Error("timestamp missing from the report")
	}
}

func TestContactValidationEndpoint(t *testing.T) {
	engine := newTestServer()
	token := registerAndGetToken(t, engine)

	rec := doJSON(engine, http.MethodPost, "/api/contact/add", token,
		`{"firstName":"Grace","lastName":"Hopper","phoneNo":"0809"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422; body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Errors []map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	found := false
	for _, violation := range body.Errors {
		if violation["phoneNo"] == "must be at least 11 characters long" {
			found = true
		}
	}
	if !found {
		t.Errorf("phoneNo violation missing in %s", rec.Body.String())
	}
}
