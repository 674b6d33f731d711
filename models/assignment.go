package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assignment links a vehicle to a driver over a date range. DataFim
// null means the assignment is still open. Purely historical; there is
// no lifecycle here.
type Assignment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VeiculoID   uuid.UUID `gorm:"type:uuid;not null;index" json:"veiculo"`
	Veiculo     *Vehicle  `gorm:"foreignKey:VeiculoID;constraint:OnDelete:CASCADE" json:"veiculo_detalhes,omitempty"`
	MotoristaID uuid.UUID `gorm:"type:uuid;not null;index" json:"motorista"`
	Motorista   *Driver   `gorm:"foreignKey:MotoristaID;constraint:OnDelete:CASCADE" json:"motorista_detalhes,omitempty"`
	DataInicio  DateOnly  `gorm:"type:date;not null" json:"data_inicio"`
	DataFim     *DateOnly `gorm:"type:date" json:"data_fim"`
	CreatedAt   time.Time `json:"criado_em"`
	UpdatedAt   time.Time `json:"atualizado_em"`
}

func (a *Assignment) TableName() string { return "vinculos_veiculo_motorista" }

func (a *Assignment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
