package config

import (
	"errors"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sgfrotas.com.br/api/models"
)

// RunAllSeeding provisions the default admin account and, when the
// fleet tables are empty, a small demo fleet. Safe to run on every
// boot: existing data is never touched.
func RunAllSeeding() error {
	if err := seedAdminUser(); err != nil {
		return err
	}
	if err := seedDemoFleet(); err != nil {
		return err
	}
	return nil
}

func seedAdminUser() error {
	var existing models.User
	err := DB.Where("role = ?", models.RoleAdmin).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     "admin",
		Email:        "admin@sgfrotas.com.br",
		Role:         models.RoleAdmin,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}
	logrus.WithField("username", admin.Username).Info("seeded default admin user")
	return nil
}

func seedDemoFleet() error {
	var veiculos int64
	if err := DB.Model(&models.Vehicle{}).Count(&veiculos).Error; err != nil {
		return err
	}
	if veiculos > 0 {
		return nil
	}

	ipva := models.DateOnly(time.Now().AddDate(0, 6, 0))
	frota := []models.Vehicle{
		{Placa: "ABC1D23", Marca: "Volkswagen", Modelo: "Saveiro", Ano: 2021, TipoCombustivel: models.CombustivelFlex, Status: models.VeiculoAtivo, HodometroAtual: 45210, IPVAValidade: &ipva},
		{Placa: "DEF4G56", Marca: "Fiat", Modelo: "Fiorino", Ano: 2019, TipoCombustivel: models.CombustivelFlex, Status: models.VeiculoAtivo, HodometroAtual: 98340},
		{Placa: "GHI7J89", Marca: "Mercedes-Benz", Modelo: "Sprinter", Ano: 2018, TipoCombustivel: models.CombustivelDiesel, Status: models.VeiculoManutencao, HodometroAtual: 187560},
	}
	if err := DB.Create(&frota).Error; err != nil {
		return err
	}

	cnh := models.DateOnly(time.Now().AddDate(2, 0, 0))
	motoristas := []models.Driver{
		{NomeCompleto: "Carlos Eduardo Silva", CPF: "123.456.789-00", CNHNumero: "00123456789", CNHCategoria: "B", CNHValidade: cnh, Ativo: true},
		{NomeCompleto: "Mariana Souza Lima", CPF: "987.654.321-00", CNHNumero: "00987654321", CNHCategoria: "D", CNHValidade: cnh, Ativo: true},
	}
	if err := DB.Create(&motoristas).Error; err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"veiculos":   len(frota),
		"motoristas": len(motoristas),
	}).Info("seeded demo fleet")
	return nil
}
