package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"sgfrotas.com.br/api/models"
)

func TestParseDuracao(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"ausente", ``, models.DefaultTripDurationMin},
		{"null", `null`, models.DefaultTripDurationMin},
		{"número", `90`, 90},
		{"número como string", `"90"`, 90},
		{"string com espaços", `" 45 "`, models.DefaultTripDurationMin},
		{"texto inválido", `"abc"`, models.DefaultTripDurationMin},
		{"zero", `0`, models.DefaultTripDurationMin},
		{"negativo", `-15`, models.DefaultTripDurationMin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseDuracao(json.RawMessage(tc.raw)))
		})
	}
}

func TestFinishTripRejectsBadOdometer(t *testing.T) {
	id := uuid.NewString()

	for _, body := range []string{
		`{"hodometro_chegada": "abc"}`,
		`{"hodometro_chegada": 12.5}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/viagens/"+id+"/finalizar", strings.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"id": id})
		rec := httptest.NewRecorder()
		FinishTrip(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.Contains(t, rec.Body.String(), "hodometro_chegada inválido")
	}
}
