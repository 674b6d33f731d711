package models

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// freshTripWindow bounds how long a just-started trip stays visible to
// viewers without a linked driver (managers/admins browsing).
const freshTripWindow = 5 * time.Minute

// DefaultTripDurationMin is the provisional trip duration assumed at
// start when the caller supplies none.
const DefaultTripDurationMin = 60

// TripService owns the trip lifecycle. Start and Finish each run in a
// single serializable transaction: the conflicting-trip check and the
// odometer update are check-then-act sequences that must not interleave
// across concurrent requests.
type TripService struct {
	db *gorm.DB
}

func NewTripService(db *gorm.DB) *TripService {
	return &TripService{db: db}
}

var serializableTx = &sql.TxOptions{Isolation: sql.LevelSerializable}

// Start transitions a trip from NAO_INICIADA to EM_ANDAMENTO.
//
// When the actor is an OPERATOR with a linked driver, the trip is
// reassigned to that driver first. Whoever starts it, the start fails
// with ErrTripConflict if the trip's driver already has a different
// trip em andamento. On success the trip snapshots the vehicle's current
// odometer as hodometro_saida and records a provisional end timestamp
// of now + duracaoMin, which lets the current-trip query expire stale
// sessions without a background sweeper. The provisional end is
// overwritten at the actual finish.
func (s *TripService) Start(tripID uuid.UUID, actor *User, duracaoMin int) (*Trip, error) {
	if duracaoMin <= 0 {
		duracaoMin = DefaultTripDurationMin
	}

	var trip Trip
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&trip, "id = ?", tripID).Error; err != nil {
			return err
		}
		if trip.Status != ViagemNaoIniciada {
			return ErrInvalidState
		}

		if actor != nil && actor.Role == RoleOperator && actor.MotoristaID != nil {
			trip.MotoristaID = *actor.MotoristaID
		}

		// one trip em andamento per driver, no matter who starts it
		var emAndamento int64
		if err := tx.Model(&Trip{}).
			Where("motorista_id = ? AND status = ? AND id <> ?",
				trip.MotoristaID, ViagemEmAndamento, trip.ID).
			Count(&emAndamento).Error; err != nil {
			return err
		}
		if emAndamento > 0 {
			return ErrTripConflict
		}

		var veiculo Vehicle
		if err := tx.First(&veiculo, "id = ?", trip.VeiculoID).Error; err != nil {
			return err
		}

		agora := time.Now()
		fimPrevisto := agora.Add(time.Duration(duracaoMin) * time.Minute)
		trip.HodometroSaida = veiculo.HodometroAtual
		trip.DataHoraInicio = &agora
		trip.DataHoraFim = &fimPrevisto
		trip.Status = ViagemEmAndamento

		return tx.Save(&trip).Error
	}, serializableTx)
	if err != nil {
		return nil, err
	}

	trip.ComputeDerivados()
	return &trip, nil
}

// Finish transitions a trip from EM_ANDAMENTO to FINALIZADA.
//
// hodometroFinal nil means "use the vehicle's current odometer". When
// the resolved value exceeds the vehicle's running total, the vehicle
// record is raised to match; a trip can never move it backward.
func (s *TripService) Finish(tripID uuid.UUID, hodometroFinal *int64) (*Trip, error) {
	var trip Trip
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&trip, "id = ?", tripID).Error; err != nil {
			return err
		}
		if trip.Status != ViagemEmAndamento {
			return ErrInvalidState
		}

		var veiculo Vehicle
		if err := tx.First(&veiculo, "id = ?", trip.VeiculoID).Error; err != nil {
			return err
		}

		chegada := veiculo.HodometroAtual
		if hodometroFinal != nil {
			chegada = *hodometroFinal
		}
		if chegada > veiculo.HodometroAtual {
			if err := tx.Model(&Vehicle{}).Where("id = ?", veiculo.ID).
				Update("hodometro_atual", chegada).Error; err != nil {
				return err
			}
		}

		agora := time.Now()
		trip.HodometroChegada = chegada
		trip.DataHoraFim = &agora
		trip.Status = ViagemFinalizada

		return tx.Save(&trip).Error
	}, serializableTx)
	if err != nil {
		return nil, err
	}

	trip.ComputeDerivados()
	return &trip, nil
}

// CurrentFor resolves the trip currently "em andamento" from the
// caller's point of view, or nil when there is none.
//
// A caller with a linked driver gets that driver's EM_ANDAMENTO trip.
// Failing that, a trip the driver started but whose status was left
// behind by a crashed client (started, not finished, end null or still
// in the future) is promoted back to EM_ANDAMENTO — the only mutation
// on this path. A caller without a linked driver sees the most recently
// started EM_ANDAMENTO trip system-wide, provided it started within the
// last five minutes and its provisional end has not passed.
func (s *TripService) CurrentFor(actor *User) (*Trip, error) {
	agora := time.Now()

	if actor != nil && actor.MotoristaID != nil {
		var trip Trip
		err := s.db.
			Where("motorista_id = ? AND status = ?", *actor.MotoristaID, ViagemEmAndamento).
			Order("data_hora_inicio DESC").
			First(&trip).Error
		if err == nil {
			return &trip, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		err = s.db.
			Where("motorista_id = ? AND data_hora_inicio IS NOT NULL AND (data_hora_fim IS NULL OR data_hora_fim > ?) AND status <> ?",
				*actor.MotoristaID, agora, ViagemFinalizada).
			Order("data_hora_inicio DESC").
			First(&trip).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		if trip.Status != ViagemEmAndamento {
			trip.Status = ViagemEmAndamento
			if err := s.db.Model(&Trip{}).Where("id = ?", trip.ID).
				Update("status", ViagemEmAndamento).Error; err != nil {
				return nil, err
			}
		}
		return &trip, nil
	}

	var trip Trip
	corte := agora.Add(-freshTripWindow)
	err := s.db.
		Where("status = ? AND data_hora_inicio >= ? AND (data_hora_fim IS NULL OR data_hora_fim > ?)",
			ViagemEmAndamento, corte, agora).
		Order("data_hora_inicio DESC").
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}
