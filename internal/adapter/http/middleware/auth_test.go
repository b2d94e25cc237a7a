package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dossier_service/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func newAuthRouter(secret []byte) *gin.Engine {
	r := gin.New()
	r.GET("/me", Auth(secret), func(c *gin.Context) {
		a := ActorFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": a.UserID, "role": string(a.Role)})
	})
	return r
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	valid := signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
		"sub":  "user-1",
		"role": "Staff",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	cases := []struct {
		name   string
		secret []byte
		header string
		want   int
		body   string
	}{
		{name: "missing header", secret: testSecret, header: "", want: http.StatusUnauthorized},
		{name: "malformed header", secret: testSecret, header: "Token abc", want: http.StatusUnauthorized},
		{name: "garbage token", secret: testSecret, header: "Bearer abc.def.ghi", want: http.StatusUnauthorized},
		{name: "wrong secret", secret: []byte("other"), header: "Bearer " + valid, want: http.StatusUnauthorized},
		{name: "secret not configured", secret: nil, header: "Bearer " + valid, want: http.StatusUnauthorized},
		{name: "expired", secret: testSecret, header: "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": "u", "exp": time.Now().Add(-time.Hour).Unix()}), want: http.StatusUnauthorized},
		{name: "no subject", secret: testSecret, header: "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"role": "client"}), want: http.StatusUnauthorized},
		{name: "valid", secret: testSecret, header: "Bearer " + valid, want: http.StatusOK, body: `{"role":"staff","user_id":"user-1"}`},
		{name: "default role", secret: testSecret, header: "bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": "u2"}), want: http.StatusOK, body: `{"role":"client","user_id":"u2"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			newAuthRouter(tc.secret).ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d body=%s", tc.want, w.Code, w.Body.String())
			}
			if tc.body != "" && w.Body.String() != tc.body {
				t.Fatalf("unexpected body %s", w.Body.String())
			}
		})
	}
}

func TestActorFromContext_Public(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if a := ActorFromContext(c); a != (entities.Actor{}) {
		t.Fatalf("expected zero actor, got %+v", a)
	}
}
