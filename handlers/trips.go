package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"sgfrotas.com.br/api/config"
	"sgfrotas.com.br/api/middleware"
	"sgfrotas.com.br/api/models"
)

// GetAllTrips lists trips, most recently started first. Supports
// filtering by veiculo, motorista and status.
//
// @Summary      Lista viagens
// @Tags         viagens
// @Router       /api/viagens [get]
func GetAllTrips(w http.ResponseWriter, r *http.Request) {
	q := config.DB.Model(&models.Trip{}).Order("data_hora_inicio DESC NULLS LAST, created_at DESC")

	if veiculo := r.URL.Query().Get("veiculo"); veiculo != "" {
		q = q.Where("veiculo_id = ?", veiculo)
	}
	if motorista := r.URL.Query().Get("motorista"); motorista != "" {
		q = q.Where("motorista_id = ?", motorista)
	}
	if status := r.URL.Query().Get("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var viagens []models.Trip
	if err := q.Find(&viagens).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(viagens)
}

// CreateTrip registers a planned trip (status NAO_INICIADA).
//
// @Summary      Cadastra viagem
// @Tags         viagens
// @Router       /api/viagens [post]
func CreateTrip(w http.ResponseWriter, r *http.Request) {
	var item models.Trip
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if item.VeiculoID == uuid.Nil || item.MotoristaID == uuid.Nil {
		http.Error(w, "veiculo e motorista são obrigatórios", http.StatusBadRequest)
		return
	}
	if item.Origem == "" || item.Destino == "" {
		http.Error(w, "origem e destino são obrigatórios", http.StatusBadRequest)
		return
	}
	if item.Status == "" {
		item.Status = models.ViagemNaoIniciada
	}
	if item.Status != models.ViagemNaoIniciada {
		http.Error(w, "viagem deve ser criada com status NAO_INICIADA", http.StatusBadRequest)
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

	item.ComputeDerivados()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

// GetTrip returns one trip by id.
//
// @Summary      Detalha viagem
// @Tags         viagens
// @Router       /api/viagens/{id} [get]
func GetTrip(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Trip
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "viagem não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// UpdateTrip overwrites the descriptive fields of a trip. Lifecycle
// fields only change through the iniciar/finalizar actions.
//
// @Summary      Atualiza viagem
// @Tags         viagens
// @Router       /api/viagens/{id} [put]
func UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Trip
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "viagem não encontrada", http.StatusNotFound)
		return
	}

	tid := item.ID
	status := item.Status
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	item.ID = tid
	item.Status = status

	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	item.ComputeDerivados()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// DeleteTrip removes a trip record.
//
// @Summary      Remove viagem
// @Tags         viagens
// @Router       /api/viagens/{id} [delete]
func DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Trip
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		http.Error(w, "viagem não encontrada", http.StatusNotFound)
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// startTripReq captures duracao_minutos loosely: clients send numbers
// or strings, and anything unparseable falls back to the default.
type startTripReq struct {
	DuracaoMinutos json.RawMessage `json:"duracao_minutos"`
}

func parseDuracao(raw json.RawMessage) int {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" {
		return models.DefaultTripDurationMin
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return models.DefaultTripDurationMin
	}
	return n
}

// StartTrip puts a NAO_INICIADA trip em andamento. An OPERATOR with a
// linked driver takes the trip over; the start is refused when that
// driver already has another trip em andamento.
//
// @Summary      Inicia viagem
// @Tags         viagens
// @Router       /api/viagens/{id}/iniciar [post]
func StartTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "viagem não encontrada", http.StatusNotFound)
		return
	}

	var req startTripReq
	// Body is optional; a missing or malformed duration just means
	// the default.
	_ = json.NewDecoder(r.Body).Decode(&req)
	duracao := parseDuracao(req.DuracaoMinutos)

	actor := middleware.GetUser(r)
	trip, err := models.NewTripService(config.DB).Start(id, &actor, duracao)
	if err != nil {
		writeTripError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(trip)
}

type finishTripReq struct {
	HodometroChegada json.RawMessage `json:"hodometro_chegada"`
}

// FinishTrip ends a trip em andamento. hodometro_chegada is optional;
// when present it must parse as an integer, and when it exceeds the
// vehicle's running odometer the vehicle is raised to match.
//
// @Summary      Finaliza viagem
// @Tags         viagens
// @Router       /api/viagens/{id}/finalizar [post]
func FinishTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "viagem não encontrada", http.StatusNotFound)
		return
	}

	var req finishTripReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	var hodometro *int64
	if s := strings.Trim(strings.TrimSpace(string(req.HodometroChegada)), `"`); s != "" && s != "null" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			http.Error(w, "hodometro_chegada inválido", http.StatusBadRequest)
			return
		}
		hodometro = &n
	}

	trip, err := models.NewTripService(config.DB).Finish(id, hodometro)
	if err != nil {
		writeTripError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(trip)
}

// CurrentTrip resolves the caller's trip em andamento, or null.
//
// @Summary      Viagem atual do usuário
// @Tags         viagens
// @Router       /api/viagens/atual [get]
func CurrentTrip(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetUser(r)
	trip, err := models.NewTripService(config.DB).CurrentFor(&actor)
	if err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if trip == nil {
		w.Write([]byte("null"))
		return
	}
	json.NewEncoder(w).Encode(trip)
}

func writeTripError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "viagem não encontrada", http.StatusNotFound)
	case errors.Is(err, models.ErrInvalidState), errors.Is(err, models.ErrTripConflict):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
	}
}
