package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"

	"sgfrotas.com.br/api/config"
	"sgfrotas.com.br/api/routes"
)

var (
	Version   = "dev"
	BuildTime = ""
)

// @title        API do Sistema de Gestão de Frotas
// @version      1.0
// @description  Backend de gestão de veículos, motoristas, manutenções, abastecimentos e viagens.
// @BasePath     /api
func main() {
	versionFlag := flag.Bool("version", false, "Print version info and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("Version:   %s\n", Version)
		fmt.Printf("BuildTime: %s\n", BuildTime)
		os.Exit(0)
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})

	config.Connect()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Seeding skips anything that already exists
	if err := config.RunAllSeeding(); err != nil {
		logrus.WithError(err).Warn("seeding encountered issues")
	}

	handler := routes.RegisterRoutes()
	handlerWithCORS := enableCORS(handler)
	logrus.WithField("port", port).Info("server starting")
	logrus.Fatal(http.ListenAndServe(":"+port, handlerWithCORS))
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
