package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"sgfrotas.com.br/api/config"
	"sgfrotas.com.br/api/models"
)

// GetAllAssignments lists vehicle/driver assignments, newest first,
// with the linked vehicle and driver embedded.
//
// @Summary      Lista vínculos veículo/motorista
// @Tags         vinculos
// @Router       /api/vinculos [get]
func GetAllAssignments(w http.ResponseWriter, r *http.Request) {
	var vinculos []models.Assignment
	if err := config.DB.Preload("Veiculo").Preload("Motorista").
		Order("data_inicio DESC").Find(&vinculos).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vinculos)
}

// CreateAssignment links a vehicle to a driver from a start date.
//
// @Summary      Cria vínculo veículo/motorista
// @Tags         vinculos
// @Router       /api/vinculos [post]
func CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var item models.Assignment
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if item.VeiculoID == uuid.Nil || item.MotoristaID == uuid.Nil {
		http.Error(w, "veiculo e motorista são obrigatórios", http.StatusBadRequest)
		return
	}

	if err := config.DB.First(&models.Vehicle{}, "id = ?", item.VeiculoID).Error; err != nil {
		http.Error(w, "veículo não encontrado", http.StatusNotFound)
		return
	}
	if err := config.DB.First(&models.Driver{}, "id = ?", item.MotoristaID).Error; err != nil {
		http.Error(w, "motorista não encontrado", http.StatusNotFound)
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

// GetAssignment returns one assignment by id.
//
// @Summary      Detalha vínculo
// @Tags         vinculos
// @Router       /api/vinculos/{id} [get]
func GetAssignment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Assignment
	if err := config.DB.Preload("Veiculo").Preload("Motorista").
		First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "vínculo não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// UpdateAssignment updates an assignment (typically to close it by
// setting data_fim).
//
// @Summary      Atualiza vínculo
// @Tags         vinculos
// @Router       /api/vinculos/{id} [put]
func UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Assignment
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "vínculo não encontrado", http.StatusNotFound)
		return
	}
	aid := item.ID
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.ID = aid
	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// DeleteAssignment removes an assignment record.
//
// @Summary      Remove vínculo
// @Tags         vinculos
// @Router       /api/vinculos/{id} [delete]
func DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Assignment
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "vínculo não encontrado", http.StatusNotFound)
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
