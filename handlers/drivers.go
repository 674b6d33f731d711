package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"sgfrotas.com.br/api/config"
	"sgfrotas.com.br/api/models"
)

// GetAllDrivers lists drivers ordered by name.
//
// @Summary      Lista motoristas
// @Tags         motoristas
// @Router       /api/motoristas [get]
func GetAllDrivers(w http.ResponseWriter, r *http.Request) {
	var motoristas []models.Driver
	if err := config.DB.Order("nome_completo").Find(&motoristas).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(motoristas)
}

// CreateDriver registers a new driver. CPF and CNH number are unique.
//
// @Summary      Cadastra motorista
// @Tags         motoristas
// @Router       /api/motoristas [post]
func CreateDriver(w http.ResponseWriter, r *http.Request) {
	var item models.Driver
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if item.NomeCompleto == "" || item.CPF == "" || item.CNHNumero == "" {
		http.Error(w, "nome_completo, cpf e cnh_numero são obrigatórios", http.StatusBadRequest)
		return
	}

	if err := config.DB.Create(&item).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			http.Error(w, "cpf ou cnh já cadastrados", http.StatusConflict)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

// GetDriver returns one driver by id.
//
// @Summary      Detalha motorista
// @Tags         motoristas
// @Router       /api/motoristas/{id} [get]
func GetDriver(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Driver
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "motorista não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// UpdateDriver overwrites the mutable fields of a driver.
//
// @Summary      Atualiza motorista
// @Tags         motoristas
// @Router       /api/motoristas/{id} [put]
func UpdateDriver(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Driver
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "motorista não encontrado", http.StatusNotFound)
		return
	}
	did := item.ID
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.ID = did
	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// DeleteDriver removes a driver; vínculos and viagens cascade.
//
// @Summary      Remove motorista
// @Tags         motoristas
// @Router       /api/motoristas/{id} [delete]
func DeleteDriver(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Driver
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "motorista não encontrado", http.StatusNotFound)
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
