package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"sgfrotas.com.br/api/config"
	"sgfrotas.com.br/api/models"
)

// GetAllVehicles lists vehicles, optionally filtered by plate
// substring (case-insensitive), exact status, and exact fuel type.
//
// @Summary      Lista veículos
// @Tags         veiculos
// @Param        placa            query string false "filtro por substring da placa"
// @Param        status           query string false "ATIVO | MANUTENCAO | INATIVO"
// @Param        tipo_combustivel query string false "tipo de combustível"
// @Router       /api/veiculos [get]
func GetAllVehicles(w http.ResponseWriter, r *http.Request) {
	q := config.DB.Model(&models.Vehicle{}).Order("placa")

	if placa := r.URL.Query().Get("placa"); placa != "" {
		q = q.Where("placa ILIKE ?", "%"+placa+"%")
	}
	if status := r.URL.Query().Get("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if combustivel := r.URL.Query().Get("tipo_combustivel"); combustivel != "" {
		q = q.Where("tipo_combustivel = ?", combustivel)
	}

	var veiculos []models.Vehicle
	if err := q.Find(&veiculos).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(veiculos)
}

func validateVehicle(v *models.Vehicle) string {
	if v.Placa == "" {
		return "placa é obrigatória"
	}
	if !models.ValidCombustivel(v.TipoCombustivel) {
		return "tipo_combustivel inválido"
	}
	if v.Status != "" && !models.ValidStatusVeiculo(v.Status) {
		return "status inválido"
	}
	if v.HodometroAtual < 0 {
		return "hodometro_atual não pode ser negativo"
	}
	return ""
}

// CreateVehicle registers a new vehicle.
//
// @Summary      Cadastra veículo
// @Tags         veiculos
// @Router       /api/veiculos [post]
func CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var item models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if item.Status == "" {
		item.Status = models.VeiculoAtivo
	}
	if msg := validateVehicle(&item); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	if err := config.DB.Create(&item).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			http.Error(w, "placa já cadastrada", http.StatusConflict)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	item.ComputeVencimentos(time.Now())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

// GetVehicle returns one vehicle by id.
//
// @Summary      Detalha veículo
// @Tags         veiculos
// @Router       /api/veiculos/{id} [get]
func GetVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Vehicle
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "veículo não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// UpdateVehicle overwrites the mutable fields of a vehicle.
//
// @Summary      Atualiza veículo
// @Tags         veiculos
// @Router       /api/veiculos/{id} [put]
func UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Vehicle
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "veículo não encontrado", http.StatusNotFound)
		return
	}

	// an "id" in the body must not retarget the update
	vid := item.ID
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.ID = vid
	if msg := validateVehicle(&item); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	item.ComputeVencimentos(time.Now())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// DeleteVehicle removes a vehicle; dependent rows (vínculos,
// manutenções, abastecimentos, viagens) cascade at the database.
//
// @Summary      Remove veículo
// @Tags         veiculos
// @Router       /api/veiculos/{id} [delete]
func DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Vehicle
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "veículo não encontrado", http.StatusNotFound)
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
