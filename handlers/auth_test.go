package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func postJSON(handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"JSON malformado", `{"username": `, http.StatusBadRequest},
		{"sem username", `{"password": "segredo1", "role": "OPERATOR"}`, http.StatusBadRequest},
		{"senha curta", `{"username": "ana", "password": "123", "role": "OPERATOR"}`, http.StatusBadRequest},
		{"role desconhecida", `{"username": "ana", "password": "segredo1", "role": "SUPERVISOR"}`, http.StatusBadRequest},
		{"role ADMIN bloqueada", `{"username": "ana", "password": "segredo1", "role": "ADMIN"}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(Register, tc.body)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
