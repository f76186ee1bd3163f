package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ayodiya/hux-assessment-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

func newValidationFixture() *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation := NewValidationMiddleware()

	engine := gin.New()
	engine.POST("/contacts",
		validation.ValidateRequestBody(func() interface{} { return &dto.ContactRequest{} }),
		func(c *gin.Context) {
			// Body must still be readable after the middleware consumed it.
			body, err := io.ReadAll(c.Request.Body)
			if err != nil || len(body) == 0 {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "body lost"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	engine.POST("/users",
		validation.ValidateRequestBody(func() interface{} { return &dto.CreateUserRequest{} }),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	return engine
}

func postJSON(engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeViolations(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body struct {
		Errors []map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body %q: %v", rec.Body.String(), err)
	}
	merged := make(map[string]string)
	for _, violation := range body.Errors {
		for field, message := range violation {
			merged[field] = message
		}
	}
	return merged
}

func TestValidateRequestBodyPasses(t *testing.T) {
	engine := newValidationFixture()

	rec := postJSON(engine, "/contacts",
		`{"firstName":"Grace","lastName":"Hopper","email":"grace@example.com","phoneNo":"08098765432"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
}

func TestValidateRequestBodyViolations(t *testing.T) {
	engine := newValidationFixture()

	tests := []struct {
		name        string
		path        string
		body        string
		wantField   string
		wantMessage string
	}{
		{
			name:        "short first name",
			path:        "/contacts",
			body:        `{"firstName":"Al","lastName":"Hopper","phoneNo":"08098765432"}`,
			wantField:   "firstName",
			wantMessage: "must be at least 3 characters long",
		},
		{
			name:        "short phone number",
			path:        "/contacts",
			body:        `{"firstName":"Grace","lastName":"Hopper","phoneNo":"0809876543"}`,
			wantField:   "phoneNo",
			wantMessage: "must be at least 11 characters long",
		},
		{
			name:        "long phone number",
			path:        "/contacts",
			body:        `{"firstName":"Grace","lastName":"Hopper","phoneNo":"080987654321"}`,
			wantField:   "phoneNo",
			wantMessage: "must not be over 11 characters long",
		},
		{
			name:        "bad email",
			path:        "/users",
			body:        `{"firstName":"Grace","lastName":"Hopper","email":"nope","phoneNo":"08098765432","password":"password123"}`,
			wantField:   "email",
			wantMessage: "must be a valid email",
		},
		{
			name:        "short password",
			path:        "/users",
			body:        `{"firstName":"Grace","lastName":"Hopper","email":"g@example.com","phoneNo":"08098765432","password":"short"}`,
			wantField:   "password",
			wantMessage: "must be at least 8 characters long",
		},
		{
			name:        "missing everything",
			path:        "/contacts",
			body:        `{}`,
			wantField:   "firstName",
			wantMessage: "must be at least 3 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(engine, tt.path, tt.body)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want 422; body %s", rec.Code, rec.Body.String())
			}
			violations := decodeViolations(t, rec)
			if got := violations[tt.wantField]; got != tt.wantMessage {
				t.Errorf("%s message = %q, want %q", tt.wantField, got, tt.wantMessage)
			}
		})
	}
}

func TestValidateRequestBodyMalformedJSON(t *testing.T) {
	engine := newValidationFixture()

	rec := postJSON(engine, "/contacts", `{"firstName":`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestValidateRequestBodyOptionalContactEmail(t *testing.T) {
	engine := newValidationFixture()

	rec := postJSON(engine, "/contacts",
		`{"firstName":"Grace","lastName":"Hopper","phoneNo":"08098765432"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("contact without email: status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
}
