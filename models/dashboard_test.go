package models

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestDashboardResumo(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "veiculos" WHERE status = \$1`).
		WithArgs(VeiculoAtivo).WillReturnRows(countRows(8))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "veiculos" WHERE status = \$1`).
		WithArgs(VeiculoManutencao).WillReturnRows(countRows(2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "veiculos" WHERE status = \$1`).
		WithArgs(VeiculoInativo).WillReturnRows(countRows(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "manutencoes" WHERE status = \$1`).
		WithArgs(ManutencaoPendente).WillReturnRows(countRows(4))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "manutencoes" WHERE status = \$1`).
		WithArgs(ManutencaoVencida).WillReturnRows(countRows(3))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "veiculos" WHERE ipva_validade < \$1 OR licenciamento_validade < \$2`).
		WillReturnRows(countRows(5))

	resumo, err := NewDashboardService(db).Resumo()
	require.NoError(t, err)

	assert.Equal(t, &DashboardResumo{
		VeiculosAtivos:       8,
		VeiculosManutencao:   2,
		VeiculosInativos:     1,
		ManutencoesPendentes: 4,
		ManutencoesVencidas:  3,
		DocumentacaoVencida:  5,
	}, resumo)
	assert.NoError(t, mock.ExpectationsWereMet())
}
