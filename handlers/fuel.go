package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"sgfrotas.com.br/api/config"
	"sgfrotas.com.br/api/models"
)

// GetAllFuelPurchases lists fuel purchases, newest first. Supports
// filtering by veiculo.
//
// @Summary      Lista abastecimentos
// @Tags         abastecimentos
// @Param        veiculo query string false "id do veículo"
// @Router       /api/abastecimentos [get]
func GetAllFuelPurchases(w http.ResponseWriter, r *http.Request) {
	q := config.DB.Model(&models.FuelPurchase{}).Order("data DESC, hodometro DESC")

	if veiculo := r.URL.Query().Get("veiculo"); veiculo != "" {
		q = q.Where("veiculo_id = ?", veiculo)
	}

	var abastecimentos []models.FuelPurchase
	if err := q.Find(&abastecimentos).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(abastecimentos)
}

// CreateFuelPurchase registers a fuel purchase. media_km_l is derived
// in the model's create hook from the vehicle's previous purchase and
// is never recomputed afterwards.
//
// @Summary      Cadastra abastecimento
// @Tags         abastecimentos
// @Router       /api/abastecimentos [post]
func CreateFuelPurchase(w http.ResponseWriter, r *http.Request) {
	var item models.FuelPurchase
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if item.VeiculoID == uuid.Nil {
		http.Error(w, "veiculo é obrigatório", http.StatusBadRequest)
		return
	}
	if item.Litros <= 0 {
		http.Error(w, "litros deve ser maior que zero", http.StatusBadRequest)
		return
	}
	if !models.ValidCombustivel(item.TipoCombustivel) {
		http.Error(w, "tipo_combustivel inválido", http.StatusBadRequest)
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

// GetFuelPurchase returns one fuel purchase by id.
//
// @Summary      Detalha abastecimento
// @Tags         abastecimentos
// @Router       /api/abastecimentos/{id} [get]
func GetFuelPurchase(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.FuelPurchase
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "abastecimento não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// UpdateFuelPurchase overwrites a fuel purchase. The stored media_km_l
// keeps its original value; economy is only computed at insertion.
//
// @Summary      Atualiza abastecimento
// @Tags         abastecimentos
// @Router       /api/abastecimentos/{id} [put]
func UpdateFuelPurchase(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.FuelPurchase
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "abastecimento não encontrado", http.StatusNotFound)
		return
	}

	fid := item.ID
	media := item.MediaKmL
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.ID = fid
	item.MediaKmL = media

	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// DeleteFuelPurchase removes a fuel purchase.
//
// @Summary      Remove abastecimento
// @Tags         abastecimentos
// @Router       /api/abastecimentos/{id} [delete]
func DeleteFuelPurchase(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.FuelPurchase
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "abastecimento não encontrado", http.StatusNotFound)
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
