package models

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqldb.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqldb,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func tripRow(id, veiculoID, motoristaID uuid.UUID, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "veiculo_id", "motorista_id", "status",
		"origem", "destino", "hodometro_saida", "hodometro_chegada",
	}).AddRow(id.String(), veiculoID.String(), motoristaID.String(), status,
		"Garagem Central", "Obra Norte", 0, 0)
}

func veiculoRow(id uuid.UUID, hodometro int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "placa", "status", "hodometro_atual"}).
		AddRow(id.String(), "ABC1D23", VeiculoAtivo, hodometro)
}

func TestTripStart(t *testing.T) {
	tripID := uuid.New()
	veiculoID := uuid.New()
	motoristaID := uuid.New()

	t.Run("inicia viagem e captura o hodômetro do veículo", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "viagens" WHERE id = \$1`).
			WillReturnRows(tripRow(tripID, veiculoID, motoristaID, ViagemNaoIniciada))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "viagens"`).
			WithArgs(motoristaID.String(), ViagemEmAndamento, tripID.String()).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT \* FROM "veiculos" WHERE id = \$1`).
			WillReturnRows(veiculoRow(veiculoID, 45210))
		mock.ExpectExec(`UPDATE "viagens" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		gestor := &User{Role: RoleManager}
		antes := time.Now()
		trip, err := NewTripService(db).Start(tripID, gestor, 90)
		require.NoError(t, err)

		assert.Equal(t, ViagemEmAndamento, trip.Status)
		assert.EqualValues(t, 45210, trip.HodometroSaida)
		require.NotNil(t, trip.DataHoraInicio)
		require.NotNil(t, trip.DataHoraFim)
		assert.WithinDuration(t, antes.Add(90*time.Minute), *trip.DataHoraFim, 5*time.Second)
		// gestor sem motorista vinculado não reatribui a viagem
		assert.Equal(t, motoristaID, trip.MotoristaID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("operador com motorista vinculado assume a viagem", func(t *testing.T) {
		db, mock := newMockDB(t)
		vinculado := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "viagens" WHERE id = \$1`).
			WillReturnRows(tripRow(tripID, veiculoID, motoristaID, ViagemNaoIniciada))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "viagens"`).
			WithArgs(vinculado.String(), ViagemEmAndamento, tripID.String()).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT \* FROM "veiculos" WHERE id = \$1`).
			WillReturnRows(veiculoRow(veiculoID, 45210))
		mock.ExpectExec(`UPDATE "viagens" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		operador := &User{Role: RoleOperator, MotoristaID: &vinculado}
		trip, err := NewTripService(db).Start(tripID, operador, 0)
		require.NoError(t, err)

		assert.Equal(t, vinculado, trip.MotoristaID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflito quando o motorista já tem viagem em andamento", func(t *testing.T) {
		db, mock := newMockDB(t)
		vinculado := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "viagens" WHERE id = \$1`).
			WillReturnRows(tripRow(tripID, veiculoID, motoristaID, ViagemNaoIniciada))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "viagens"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		operador := &User{Role: RoleOperator, MotoristaID: &vinculado}
		_, err := NewTripService(db).Start(tripID, operador, 60)
		assert.ErrorIs(t, err, ErrTripConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflito vale também para gestores", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "viagens" WHERE id = \$1`).
			WillReturnRows(tripRow(tripID, veiculoID, motoristaID, ViagemNaoIniciada))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "viagens"`).
			WithArgs(motoristaID.String(), ViagemEmAndamento, tripID.String()).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		_, err := NewTripService(db).Start(tripID, &User{Role: RoleManager}, 60)
		assert.ErrorIs(t, err, ErrTripConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	for _, status := range []string{ViagemEmAndamento, ViagemFinalizada} {
		t.Run("recusa iniciar viagem "+status, func(t *testing.T) {
			db, mock := newMockDB(t)

			mock.ExpectBegin()
			mock.ExpectQuery(`SELECT \* FROM "viagens" WHERE id = \$1`).
				WillReturnRows(tripRow(tripID, veiculoID, motoristaID, status))
			mock.ExpectRollback()

			_, err := NewTripService(db).Start(tripID, &User{Role: RoleManager}, 60)
			assert.ErrorIs(t, err, ErrInvalidState)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("viagem inexistente", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "viagens" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		_, err := NewTripService(db).Start(tripID, &User{Role: RoleManager}, 60)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestTripFinish(t *testing.T) {
	tripID := uuid.New()
	veiculoID := uuid.New()
	motoristaID := uuid.New()

	t.Run("hodômetro maior eleva o veículo", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "viagens" WHERE id = \$1`).
			WillReturnRows(tripRow(tripID, veiculoID, motoristaID, ViagemEmAndamento))
		mock.ExpectQuery(`SELECT \* FROM "veiculos" WHERE id = \$1`).
			WillReturnRows(veiculoRow(veiculoID, 50000))
		mock.ExpectExec(`UPDATE "veiculos" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "viagens" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		hodometro := int64(50500)
		trip, err := NewTripService(db).Finish(tripID, &hodometro)
		require.NoError(t, err)

		assert.Equal(t, ViagemFinalizada, trip.Status)
		assert.EqualValues(t, 50500, trip.HodometroChegada)
		require.NotNil(t, trip.DataHoraFim)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("hodômetro menor não rebaixa o veículo", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "viagens" WHERE id = \$1`).
			WillReturnRows(tripRow(tripID, veiculoID, motoristaID, ViagemEmAndamento))
		mock.ExpectQuery(`SELECT \* FROM "veiculos" WHERE id = \$1`).
			WillReturnRows(veiculoRow(veiculoID, 50000))
		// no vehicle update expected
		mock.ExpectExec(`UPDATE "viagens" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		hodometro := int64(49000)
		trip, err := NewTripService(db).Finish(tripID, &hodometro)
		require.NoError(t, err)

		assert.EqualValues(t, 49000, trip.HodometroChegada)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sem hodômetro informado usa o do veículo", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "viagens" WHERE id = \$1`).
			WillReturnRows(tripRow(tripID, veiculoID, motoristaID, ViagemEmAndamento))
		mock.ExpectQuery(`SELECT \* FROM "veiculos" WHERE id = \$1`).
			WillReturnRows(veiculoRow(veiculoID, 50000))
		mock.ExpectExec(`UPDATE "viagens" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		trip, err := NewTripService(db).Finish(tripID, nil)
		require.NoError(t, err)
		assert.EqualValues(t, 50000, trip.HodometroChegada)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	for _, status := range []string{ViagemNaoIniciada, ViagemFinalizada} {
		t.Run("recusa finalizar viagem "+status, func(t *testing.T) {
			db, mock := newMockDB(t)

			mock.ExpectBegin()
			mock.ExpectQuery(`SELECT \* FROM "viagens" WHERE id = \$1`).
				WillReturnRows(tripRow(tripID, veiculoID, motoristaID, status))
			mock.ExpectRollback()

			_, err := NewTripService(db).Finish(tripID, nil)
			assert.ErrorIs(t, err, ErrInvalidState)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTripCurrentFor(t *testing.T) {
	tripID := uuid.New()
	veiculoID := uuid.New()
	motoristaID := uuid.New()

	t.Run("motorista vinculado com viagem em andamento", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`SELECT \* FROM "viagens" WHERE motorista_id = \$1 AND status = \$2`).
			WillReturnRows(tripRow(tripID, veiculoID, motoristaID, ViagemEmAndamento))

		operador := &User{Role: RoleOperator, MotoristaID: &motoristaID}
		trip, err := NewTripService(db).CurrentFor(operador)
		require.NoError(t, err)
		require.NotNil(t, trip)
		assert.Equal(t, tripID, trip.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repara viagem deixada inconsistente por cliente travado", func(t *testing.T) {
		db, mock := newMockDB(t)

		inicio := time.Now().Add(-10 * time.Minute)
		abandonada := sqlmock.NewRows([]string{
			"id", "veiculo_id", "motorista_id", "status", "data_hora_inicio",
		}).AddRow(tripID.String(), veiculoID.String(), motoristaID.String(), ViagemNaoIniciada, inicio)

		mock.ExpectQuery(`SELECT \* FROM "viagens" WHERE motorista_id = \$1 AND status = \$2`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`SELECT \* FROM "viagens" WHERE motorista_id = \$1 AND data_hora_inicio IS NOT NULL`).
			WillReturnRows(abandonada)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "viagens" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		operador := &User{Role: RoleOperator, MotoristaID: &motoristaID}
		trip, err := NewTripService(db).CurrentFor(operador)
		require.NoError(t, err)
		require.NotNil(t, trip)
		assert.Equal(t, ViagemEmAndamento, trip.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sem motorista vinculado retorna a viagem recém-iniciada", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`SELECT \* FROM "viagens" WHERE status = \$1 AND data_hora_inicio >= \$2`).
			WillReturnRows(tripRow(tripID, veiculoID, motoristaID, ViagemEmAndamento))

		gestor := &User{Role: RoleManager}
		trip, err := NewTripService(db).CurrentFor(gestor)
		require.NoError(t, err)
		require.NotNil(t, trip)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retorna nulo quando nada está em andamento", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`SELECT \* FROM "viagens" WHERE status = \$1 AND data_hora_inicio >= \$2`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		trip, err := NewTripService(db).CurrentFor(&User{Role: RoleAdmin})
		require.NoError(t, err)
		assert.Nil(t, trip)
	})
}
