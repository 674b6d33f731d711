package models

import (
	"time"

	"gorm.io/gorm"
)

// DashboardResumo holds the read-side counts shown on the dashboard.
type DashboardResumo struct {
	VeiculosAtivos       int64 `json:"veiculos_ativos"`
	VeiculosManutencao   int64 `json:"veiculos_manutencao"`
	VeiculosInativos     int64 `json:"veiculos_inativos"`
	ManutencoesPendentes int64 `json:"manutencoes_pendentes"`
	ManutencoesVencidas  int64 `json:"manutencoes_vencidas"`
	DocumentacaoVencida  int64 `json:"documentacao_vencida"`
}

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Resumo recomputes every count from the database on each call; there
// is no cache and no staleness window. A vehicle with both IPVA and
// licenciamento expired counts once in documentacao_vencida.
func (s *DashboardService) Resumo() (*DashboardResumo, error) {
	var resumo DashboardResumo

	porStatus := []struct {
		status string
		dest   *int64
	}{
		{VeiculoAtivo, &resumo.VeiculosAtivos},
		{VeiculoManutencao, &resumo.VeiculosManutencao},
		{VeiculoInativo, &resumo.VeiculosInativos},
	}
	for _, c := range porStatus {
		if err := s.db.Model(&Vehicle{}).
			Where("status = ?", c.status).
			Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.Model(&Maintenance{}).
		Where("status = ?", ManutencaoPendente).
		Count(&resumo.ManutencoesPendentes).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&Maintenance{}).
		Where("status = ?", ManutencaoVencida).
		Count(&resumo.ManutencoesVencidas).Error; err != nil {
		return nil, err
	}

	hoje := time.Now().Format("2006-01-02")
	if err := s.db.Model(&Vehicle{}).
		Where("ipva_validade < ? OR licenciamento_validade < ?", hoje, hoje).
		Count(&resumo.DocumentacaoVencida).Error; err != nil {
		return nil, err
	}

	return &resumo, nil
}
