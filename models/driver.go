package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Driver is a motorista record. CPF and CNH number are unique across
// the fleet. A driver may be linked 1:1 to an OPERATOR user account
// (User.MotoristaID).
type Driver struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	NomeCompleto string    `gorm:"size:200;not null" json:"nome_completo"`
	CPF          string    `gorm:"size:14;uniqueIndex;not null" json:"cpf"`
	CNHNumero    string    `gorm:"size:20;uniqueIndex;not null" json:"cnh_numero"`
	CNHCategoria string    `gorm:"size:5;not null" json:"cnh_categoria"`
	CNHValidade  DateOnly  `gorm:"type:date;not null" json:"cnh_validade"`
	Ativo        bool      `gorm:"default:true" json:"ativo"`
	CreatedAt    time.Time `json:"criado_em"`
	UpdatedAt    time.Time `json:"atualizado_em"`

	CNHVencida bool `gorm:"-" json:"cnh_vencida"`
}

func (d *Driver) TableName() string { return "motoristas" }

func (d *Driver) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}

func (d *Driver) AfterFind(tx *gorm.DB) (err error) {
	d.CNHVencida = d.CNHValidade.Before(time.Now())
	return
}
