package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"dossier_service/internal/adapter/http/middleware"
	"dossier_service/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("handler-secret")

var (
	clientActor = entities.Actor{UserID: "user-1", Role: entities.RoleClient}
	staffActor  = entities.Actor{UserID: "staff-1", Role: entities.RoleStaff}
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func authed() gin.HandlerFunc {
	return middleware.Auth(testSecret)
}

func bearer(t *testing.T, a entities.Actor) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": a.UserID, "role": string(a.Role)}).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + s
}

func do(r *gin.Engine, method, path, body, auth string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
