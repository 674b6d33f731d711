package models

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FuelPurchase is an abastecimento. MediaKmL is derived exactly once,
// when the row is first inserted, from the vehicle's most recent prior
// purchase. Edits never recompute it.
type FuelPurchase struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VeiculoID uuid.UUID `gorm:"type:uuid;not null;index" json:"veiculo"`
	Veiculo   *Vehicle  `gorm:"foreignKey:VeiculoID;constraint:OnDelete:CASCADE" json:"-"`

	Data            DateOnly `gorm:"type:date;not null" json:"data"`
	Hodometro       int64    `gorm:"not null" json:"hodometro"`
	Litros          float64  `gorm:"type:numeric(10,2);not null" json:"litros"`
	CustoTotal      float64  `gorm:"type:numeric(12,2);not null" json:"custo_total"`
	TipoCombustivel string   `gorm:"size:20;not null" json:"tipo_combustivel"`
	Posto           string   `gorm:"size:200" json:"posto"`

	MediaKmL *float64 `gorm:"type:numeric(8,2)" json:"media_km_l"`

	CreatedAt time.Time `json:"criado_em"`
	UpdatedAt time.Time `json:"atualizado_em"`
}

func (f *FuelPurchase) TableName() string { return "abastecimentos" }

// BeforeCreate assigns the id and derives media_km_l from the latest
// prior purchase for the same vehicle, ordered by (data DESC,
// hodometro DESC) so same-day fill-ups tie-break on odometer. A first
// purchase, a non-increasing odometer or non-positive liters all leave
// the field null without raising an error.
func (f *FuelPurchase) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}

	var prior FuelPurchase
	err := tx.Where("veiculo_id = ?", f.VeiculoID).
		Order("data DESC, hodometro DESC").
		First(&prior).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	f.MediaKmL = ComputeMediaKmL(prior.Hodometro, f.Hodometro, f.Litros)
	return nil
}

// ComputeMediaKmL returns the fuel economy in km/L rounded to two
// decimals, or nil when the inputs cannot produce one (odometer did
// not advance, or liters is not strictly positive).
func ComputeMediaKmL(priorHodometro, hodometro int64, litros float64) *float64 {
	if hodometro <= priorHodometro || litros <= 0 {
		return nil
	}
	media := float64(hodometro-priorHodometro) / litros
	media = math.Round(media*100) / 100
	return &media
}
