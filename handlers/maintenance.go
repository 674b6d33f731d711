package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"sgfrotas.com.br/api/config"
	"sgfrotas.com.br/api/models"
)

// GetAllMaintenance lists maintenance events, newest first. Supports
// filtering by veiculo and status.
//
// @Summary      Lista manutenções
// @Tags         manutencoes
// @Param        veiculo query string false "id do veículo"
// @Param        status  query string false "PENDENTE | CONCLUIDA | VENCIDA"
// @Router       /api/manutencoes [get]
func GetAllMaintenance(w http.ResponseWriter, r *http.Request) {
	q := config.DB.Model(&models.Maintenance{}).Order("data DESC")

	if veiculo := r.URL.Query().Get("veiculo"); veiculo != "" {
		q = q.Where("veiculo_id = ?", veiculo)
	}
	if status := r.URL.Query().Get("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var manutencoes []models.Maintenance
	if err := q.Find(&manutencoes).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(manutencoes)
}

func validateMaintenance(m *models.Maintenance) string {
	if m.VeiculoID == uuid.Nil {
		return "veiculo é obrigatório"
	}
	if !models.ValidTipoManutencao(m.Tipo) {
		return "tipo inválido"
	}
	if m.Status != "" && !models.ValidStatusManutencao(m.Status) {
		return "status inválido"
	}
	if m.Custo < 0 {
		return "custo não pode ser negativo"
	}
	return ""
}

// CreateMaintenance registers a maintenance event for a vehicle.
//
// @Summary      Cadastra manutenção
// @Tags         manutencoes
// @Router       /api/manutencoes [post]
func CreateMaintenance(w http.ResponseWriter, r *http.Request) {
	var item models.Maintenance
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if item.Status == "" {
		item.Status = models.ManutencaoPendente
	}
	if msg := validateMaintenance(&item); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if err := config.DB.First(&models.Vehicle{}, "id = ?", item.VeiculoID).Error; err != nil {
		http.Error(w, "veículo não encontrado", http.StatusNotFound)
		return
	}

	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

// GetMaintenance returns one maintenance event by id.
//
// @Summary      Detalha manutenção
// @Tags         manutencoes
// @Router       /api/manutencoes/{id} [get]
func GetMaintenance(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Maintenance
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "manutenção não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// UpdateMaintenance overwrites a maintenance event (e.g. marking it
// CONCLUIDA or VENCIDA).
//
// @Summary      Atualiza manutenção
// @Tags         manutencoes
// @Router       /api/manutencoes/{id} [put]
func UpdateMaintenance(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Maintenance
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "manutenção não encontrada", http.StatusNotFound)
		return
	}
	mid := item.ID
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.ID = mid
	if msg := validateMaintenance(&item); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// DeleteMaintenance removes a maintenance event.
//
// @Summary      Remove manutenção
// @Tags         manutencoes
// @Router       /api/manutencoes/{id} [delete]
func DeleteMaintenance(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Maintenance
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "manutenção não encontrada", http.StatusNotFound)
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
