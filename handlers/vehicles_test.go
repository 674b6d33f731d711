package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sgfrotas.com.br/api/config"
	"sgfrotas.com.br/api/models"
)

func useMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqldb.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqldb,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
	return mock
}

func TestUpdateVehicleKeepsPathID(t *testing.T) {
	mock := useMockDB(t)

	pathID := uuid.New()
	bodyID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "veiculos" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "placa", "marca", "modelo", "ano", "tipo_combustivel", "status", "hodometro_atual",
		}).AddRow(pathID.String(), "ABC1D23", "Volkswagen", "Saveiro", 2021,
			models.CombustivelFlex, models.VeiculoAtivo, 45210))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "veiculos" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// a client sending a different id in the body must not retarget the row
	body := fmt.Sprintf(
		`{"id": %q, "placa": "ABC1D23", "marca": "Volkswagen", "modelo": "Saveiro", "ano": 2021, "tipo_combustivel": "FLEX", "status": "ATIVO", "hodometro_atual": 45900}`,
		bodyID,
	)
	req := httptest.NewRequest(http.MethodPut, "/api/veiculos/"+pathID.String(), strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": pathID.String()})
	rec := httptest.NewRecorder()
	UpdateVehicle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got models.Vehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, pathID, got.ID)
	assert.EqualValues(t, 45900, got.HodometroAtual)
	assert.NoError(t, mock.ExpectationsWereMet())
}
