package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sgfrotas.com.br/api/utils"
)

// Trip lifecycle: NAO_INICIADA → EM_ANDAMENTO → FINALIZADA. Nothing
// ever leaves FINALIZADA.
const (
	ViagemNaoIniciada = "NAO_INICIADA"
	ViagemEmAndamento = "EM_ANDAMENTO"
	ViagemFinalizada  = "FINALIZADA"
)

type Trip struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VeiculoID   uuid.UUID `gorm:"type:uuid;not null;index" json:"veiculo"`
	Veiculo     *Vehicle  `gorm:"foreignKey:VeiculoID;constraint:OnDelete:CASCADE" json:"-"`
	MotoristaID uuid.UUID `gorm:"type:uuid;not null;index" json:"motorista"`
	Motorista   *Driver   `gorm:"foreignKey:MotoristaID;constraint:OnDelete:CASCADE" json:"-"`

	DataHoraInicio   *time.Time `json:"data_hora_inicio"`
	DataHoraFim      *time.Time `json:"data_hora_fim"`
	HodometroSaida   int64      `gorm:"not null;default:0" json:"hodometro_saida"`
	HodometroChegada int64      `gorm:"not null;default:0" json:"hodometro_chegada"`

	Origem     string `gorm:"size:200;not null" json:"origem"`
	Destino    string `gorm:"size:200;not null" json:"destino"`
	Finalidade string `gorm:"size:300" json:"finalidade"`

	// Optional coordinates supplied by clients that geocode the
	// origin/destination; used only for the derived estimate below.
	OrigemLat  *float64 `json:"origem_lat,omitempty"`
	OrigemLng  *float64 `json:"origem_lng,omitempty"`
	DestinoLat *float64 `json:"destino_lat,omitempty"`
	DestinoLng *float64 `json:"destino_lng,omitempty"`

	Status    string    `gorm:"size:20;not null;default:NAO_INICIADA" json:"status"`
	CreatedAt time.Time `json:"criado_em"`
	UpdatedAt time.Time `json:"atualizado_em"`

	// Derived, populated on reads.
	KmPercorridos int64    `gorm:"-" json:"km_percorridos"`
	KmEstimados   *float64 `gorm:"-" json:"km_estimados,omitempty"`
}

func (t *Trip) TableName() string { return "viagens" }

func (t *Trip) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

// ComputeDerivados fills km_percorridos (odometer delta, floored at
// zero) and, when both endpoints carry coordinates, the great-circle
// km_estimados.
func (t *Trip) ComputeDerivados() {
	t.KmPercorridos = t.HodometroChegada - t.HodometroSaida
	if t.KmPercorridos < 0 {
		t.KmPercorridos = 0
	}
	if t.OrigemLat != nil && t.OrigemLng != nil && t.DestinoLat != nil && t.DestinoLng != nil {
		km := utils.DistanceKm(*t.OrigemLat, *t.OrigemLng, *t.DestinoLat, *t.DestinoLng)
		t.KmEstimados = &km
	}
}

func (t *Trip) AfterFind(tx *gorm.DB) (err error) {
	t.ComputeDerivados()
	return
}
