package handlers

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/youthblossom/canopy/internal/models"
	"github.com/youthblossom/canopy/internal/store"
)

// Default secret if env not set
func jwtSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("dev-secret-key") // change in production: export JWT_SECRET=...
}

type authClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func signToken(u *models.User) (string, error) {
	claims := authClaims{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(8 * time.Hour)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=3"`
}

type userView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// POST /api/auth/login
func Login(users *store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if !decodeValid(w, r, &req) {
			return
		}

		user, err := users.FindByEmail(req.Email)
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "lookup failed")
			return
		}
		if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		token, err := signToken(user)
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, "could not sign token")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"token": token,
			"user":  userView{ID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role},
		})
	}
}

type ctxKey int

const userCtxKey ctxKey = iota

// RequireAuth is middleware: rejects requests without a valid bearer token
// and stashes the verified claims in the request context.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			writeMessage(w, http.StatusUnauthorized, "Missing token")
			return
		}

		claims := &authClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return jwtSecret(), nil
		})
		if err != nil || !parsed.Valid {
			writeMessage(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userCtxKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole guards a subtree to the given roles. Must run after RequireAuth.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := CurrentUser(r)
			if user == nil {
				writeMessage(w, http.StatusUnauthorized, "Missing token")
				return
			}
			for _, role := range allowed {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeMessage(w, http.StatusForbidden, "Insufficient permissions")
		})
	}
}

// CurrentUser returns the verified claims, or nil outside RequireAuth.
func CurrentUser(r *http.Request) *authClaims {
	claims, _ := r.Context().Value(userCtxKey).(*authClaims)
	return claims
}
