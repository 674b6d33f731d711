package handlers

import (
	"encoding/json"
	"net/http"

	"sgfrotas.com.br/api/config"
	"sgfrotas.com.br/api/models"
)

// DashboardResumo returns the fleet counts, recomputed from the
// database on every call.
//
// @Summary      Resumo do dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} models.DashboardResumo
// @Router       /api/dashboard/resumo [get]
func DashboardResumo(w http.ResponseWriter, r *http.Request) {
	resumo, err := models.NewDashboardService(config.DB).Resumo()
	if err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumo)
}
