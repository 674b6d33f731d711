package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Maintenance types and statuses.
const (
	ManutencaoPreventiva = "PREVENTIVA"
	ManutencaoCorretiva  = "CORRETIVA"

	ManutencaoPendente  = "PENDENTE"
	ManutencaoConcluida = "CONCLUIDA"
	ManutencaoVencida   = "VENCIDA"
)

func ValidTipoManutencao(s string) bool {
	return s == ManutencaoPreventiva || s == ManutencaoCorretiva
}

func ValidStatusManutencao(s string) bool {
	switch s {
	case ManutencaoPendente, ManutencaoConcluida, ManutencaoVencida:
		return true
	}
	return false
}

// Maintenance is a service event on a vehicle. Anexos holds a JSON
// array of invoice/photo URLs returned by the upload endpoint.
type Maintenance struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VeiculoID uuid.UUID `gorm:"type:uuid;not null;index" json:"veiculo"`
	Veiculo   *Vehicle  `gorm:"foreignKey:VeiculoID;constraint:OnDelete:CASCADE" json:"-"`

	Data       DateOnly `gorm:"type:date;not null" json:"data"`
	Tipo       string   `gorm:"size:20;not null" json:"tipo"`
	Descricao  string   `gorm:"type:text;not null" json:"descricao"`
	Custo      float64  `gorm:"type:numeric(12,2);not null" json:"custo"`
	Fornecedor string   `gorm:"size:200" json:"fornecedor"`
	Hodometro  *int64   `json:"hodometro"`

	ProximaManutencaoKm   *int64         `json:"proxima_manutencao_km"`
	ProximaManutencaoData *DateOnly      `gorm:"type:date" json:"proxima_manutencao_data"`
	Status                string         `gorm:"size:20;not null;default:PENDENTE" json:"status"`
	Anexos                datatypes.JSON `gorm:"type:jsonb" json:"anexos,omitempty"`

	CreatedAt time.Time `json:"criado_em"`
	UpdatedAt time.Time `json:"atualizado_em"`
}

func (m *Maintenance) TableName() string { return "manutencoes" }

func (m *Maintenance) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
