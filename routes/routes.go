package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	_ "sgfrotas.com.br/api/docs"
	"sgfrotas.com.br/api/handlers"
	"sgfrotas.com.br/api/middleware"
	"sgfrotas.com.br/api/models"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public routes (no authentication)
	// =====================================================
	r.HandleFunc("/api/auth/register", handlers.Register).Methods("POST")
	r.HandleFunc("/api/auth/token", handlers.Login).Methods("POST")
	r.HandleFunc("/api/auth/token/refresh", handlers.RefreshToken).Methods("POST")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	// =====================================================
	// Protected API routes (require JWT authentication)
	// =====================================================
	// JWT first so the request logger sees the authenticated user id
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.JWTMiddleware)
	api.Use(middleware.RequestLogger)

	api.HandleFunc("/auth/me", handlers.Me).Methods("GET")

	// Veículos
	api.HandleFunc("/veiculos", handlers.GetAllVehicles).Methods("GET")
	api.HandleFunc("/veiculos", handlers.CreateVehicle).Methods("POST")
	api.HandleFunc("/veiculos/{id}", handlers.GetVehicle).Methods("GET")
	api.HandleFunc("/veiculos/{id}", handlers.UpdateVehicle).Methods("PUT")
	api.HandleFunc("/veiculos/{id}", handlers.DeleteVehicle).Methods("DELETE")

	// Motoristas
	api.HandleFunc("/motoristas", handlers.GetAllDrivers).Methods("GET")
	api.HandleFunc("/motoristas", handlers.CreateDriver).Methods("POST")
	api.HandleFunc("/motoristas/{id}", handlers.GetDriver).Methods("GET")
	api.HandleFunc("/motoristas/{id}", handlers.UpdateDriver).Methods("PUT")
	api.HandleFunc("/motoristas/{id}", handlers.DeleteDriver).Methods("DELETE")

	// Vínculos veículo/motorista
	api.HandleFunc("/vinculos", handlers.GetAllAssignments).Methods("GET")
	api.HandleFunc("/vinculos", handlers.CreateAssignment).Methods("POST")
	api.HandleFunc("/vinculos/{id}", handlers.GetAssignment).Methods("GET")
	api.HandleFunc("/vinculos/{id}", handlers.UpdateAssignment).Methods("PUT")
	api.HandleFunc("/vinculos/{id}", handlers.DeleteAssignment).Methods("DELETE")

	// Manutenções
	api.HandleFunc("/manutencoes", handlers.GetAllMaintenance).Methods("GET")
	api.HandleFunc("/manutencoes", handlers.CreateMaintenance).Methods("POST")
	api.HandleFunc("/manutencoes/{id}", handlers.GetMaintenance).Methods("GET")
	api.HandleFunc("/manutencoes/{id}", handlers.UpdateMaintenance).Methods("PUT")
	api.HandleFunc("/manutencoes/{id}", handlers.DeleteMaintenance).Methods("DELETE")

	// Abastecimentos
	api.HandleFunc("/abastecimentos", handlers.GetAllFuelPurchases).Methods("GET")
	api.HandleFunc("/abastecimentos", handlers.CreateFuelPurchase).Methods("POST")
	api.HandleFunc("/abastecimentos/{id}", handlers.GetFuelPurchase).Methods("GET")
	api.HandleFunc("/abastecimentos/{id}", handlers.UpdateFuelPurchase).Methods("PUT")
	api.HandleFunc("/abastecimentos/{id}", handlers.DeleteFuelPurchase).Methods("DELETE")

	// Viagens — "atual" before "{id}" so it isn't shadowed
	api.HandleFunc("/viagens/atual", handlers.CurrentTrip).Methods("GET")
	api.HandleFunc("/viagens", handlers.GetAllTrips).Methods("GET")
	api.HandleFunc("/viagens", handlers.CreateTrip).Methods("POST")
	api.HandleFunc("/viagens/{id}", handlers.GetTrip).Methods("GET")
	api.HandleFunc("/viagens/{id}", handlers.UpdateTrip).Methods("PUT")
	api.HandleFunc("/viagens/{id}", handlers.DeleteTrip).Methods("DELETE")
	api.HandleFunc("/viagens/{id}/iniciar", handlers.StartTrip).Methods("POST")
	api.HandleFunc("/viagens/{id}/finalizar", handlers.FinishTrip).Methods("POST")

	// Dashboard
	api.HandleFunc("/dashboard/resumo", handlers.DashboardResumo).Methods("GET")

	// Relatórios
	api.HandleFunc("/relatorios/abastecimentos.xlsx", handlers.ExportFuelPurchasesExcel).Methods("GET")
	api.HandleFunc("/relatorios/abastecimentos.csv", handlers.ExportFuelPurchasesCSV).Methods("GET")
	api.HandleFunc("/relatorios/manutencoes.xlsx", handlers.ExportMaintenanceExcel).Methods("GET")
	api.HandleFunc("/relatorios/manutencoes.csv", handlers.ExportMaintenanceCSV).Methods("GET")

	// Upload de documentos — escrita restrita a gestores e admins
	api.Handle("/upload",
		middleware.RequireRole(
			[]string{models.RoleAdmin, models.RoleManager},
			http.HandlerFunc(handlers.UploadFileHandler),
		),
	).Methods("POST")

	return r
}
