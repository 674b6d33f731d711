package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Fuel types accepted for vehicles and fuel purchases.
const (
	CombustivelGasolina = "GASOLINA"
	CombustivelDiesel   = "DIESEL"
	CombustivelEtanol   = "ETANOL"
	CombustivelFlex     = "FLEX"
	CombustivelGNV      = "GNV"
	CombustivelEletrico = "ELETRICO"
)

// Vehicle statuses.
const (
	VeiculoAtivo      = "ATIVO"
	VeiculoManutencao = "MANUTENCAO"
	VeiculoInativo    = "INATIVO"
)

func ValidCombustivel(s string) bool {
	switch s {
	case CombustivelGasolina, CombustivelDiesel, CombustivelEtanol,
		CombustivelFlex, CombustivelGNV, CombustivelEletrico:
		return true
	}
	return false
}

func ValidStatusVeiculo(s string) bool {
	switch s {
	case VeiculoAtivo, VeiculoManutencao, VeiculoInativo:
		return true
	}
	return false
}

// Vehicle is a fleet vehicle. HodometroAtual is the single source of
// truth for the current odometer; it is only ever raised, never lowered,
// by trip finishing (see TripService.Finish).
type Vehicle struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Placa           string    `gorm:"size:10;uniqueIndex;not null" json:"placa"`
	Marca           string    `gorm:"size:100;not null" json:"marca"`
	Modelo          string    `gorm:"size:100;not null" json:"modelo"`
	Ano             int       `gorm:"not null" json:"ano"`
	Cor             string    `gorm:"size:50" json:"cor"`
	Chassi          string    `gorm:"size:50" json:"chassi"`
	TipoCombustivel string    `gorm:"size:20;not null" json:"tipo_combustivel"`
	Status          string    `gorm:"size:20;not null;default:ATIVO" json:"status"`
	HodometroAtual  int64     `gorm:"not null;default:0;check:hodometro_atual >= 0" json:"hodometro_atual"`

	IPVAValidade          *DateOnly      `gorm:"type:date" json:"ipva_validade"`
	LicenciamentoValidade *DateOnly      `gorm:"type:date" json:"licenciamento_validade"`
	LinkDocIPVA           string         `gorm:"size:300" json:"link_doc_ipva"`
	LinkDocLicenciamento  string         `gorm:"size:300" json:"link_doc_licenciamento"`
	Fotos                 pq.StringArray `gorm:"type:text[]" json:"fotos,omitempty"`

	CreatedAt time.Time `json:"criado_em"`
	UpdatedAt time.Time `json:"atualizado_em"`

	// Derived, populated on reads.
	IPVAVencido          bool `gorm:"-" json:"ipva_vencido"`
	LicenciamentoVencido bool `gorm:"-" json:"licenciamento_vencido"`
}

func (v *Vehicle) TableName() string { return "veiculos" }

func (v *Vehicle) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}

// ComputeVencimentos fills the derived document-expiry flags relative
// to ref (normally time.Now()). A null expiry date never counts as
// expired.
func (v *Vehicle) ComputeVencimentos(ref time.Time) {
	v.IPVAVencido = v.IPVAValidade != nil && v.IPVAValidade.Before(ref)
	v.LicenciamentoVencido = v.LicenciamentoValidade != nil && v.LicenciamentoValidade.Before(ref)
}

// AfterFind keeps the expiry flags consistent on every query path.
func (v *Vehicle) AfterFind(tx *gorm.DB) (err error) {
	v.ComputeVencimentos(time.Now())
	return
}
