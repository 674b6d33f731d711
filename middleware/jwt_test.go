package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sgfrotas.com.br/api/models"
)

func testUser() *models.User {
	motorista := uuid.New()
	return &models.User{
		ID:          uuid.New(),
		Username:    "joao.silva",
		Role:        models.RoleOperator,
		MotoristaID: &motorista,
	}
}

func TestGenerateTokenPair(t *testing.T) {
	u := testUser()

	pair, err := GenerateTokenPair(u)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	claims, err := ParseRefreshToken(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.UserID)
	assert.Equal(t, u.Username, claims.Username)
	assert.Equal(t, models.RoleOperator, claims.Role)
	assert.Equal(t, u.MotoristaID.String(), claims.MotoristaID)

	// o token de acesso não serve para renovar a sessão
	_, err = ParseRefreshToken(pair.Access)
	assert.Error(t, err)
}

func TestJWTMiddleware(t *testing.T) {
	u := testUser()
	pair, err := GenerateTokenPair(u)
	require.NoError(t, err)

	var seen *Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetClaims(r)
		w.WriteHeader(http.StatusOK)
	})
	handler := JWTMiddleware(next)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"token de acesso válido", "Bearer " + pair.Access, http.StatusOK},
		{"sem cabeçalho", "", http.StatusUnauthorized},
		{"esquema errado", "Basic abc123", http.StatusUnauthorized},
		{"token adulterado", "Bearer " + pair.Access + "x", http.StatusUnauthorized},
		{"refresh token na API", "Bearer " + pair.Refresh, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, "/api/veiculos", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusOK {
				require.NotNil(t, seen)
				assert.Equal(t, u.Username, seen.Username)
				assert.Equal(t, u.ID.String(), seen.UserID)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	admin := &models.User{ID: uuid.New(), Username: "admin", Role: models.RoleAdmin}
	operador := testUser()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	protected := JWTMiddleware(RequireRole([]string{models.RoleAdmin, models.RoleManager}, next))

	call := func(u *models.User) int {
		pair, err := GenerateTokenPair(u)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
		req.Header.Set("Authorization", "Bearer "+pair.Access)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, call(admin))
	assert.Equal(t, http.StatusForbidden, call(operador))
}
