package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"sgfrotas.com.br/api/config"
	"sgfrotas.com.br/api/models"
)

// ExportFuelPurchasesExcel streams the abastecimento history as an
// .xlsx workbook. Optional veiculo query param narrows to one vehicle.
//
// @Summary      Exporta abastecimentos (xlsx)
// @Tags         relatorios
// @Router       /api/relatorios/abastecimentos.xlsx [get]
func ExportFuelPurchasesExcel(w http.ResponseWriter, r *http.Request) {
	rows, err := fetchFuelRows(r)
	if err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	f, err := buildSheet("Abastecimentos", rows)
	if err != nil {
		http.Error(w, "failed to generate Excel file", http.StatusInternalServerError)
		return
	}
	writeExcel(w, f, "abastecimentos")
}

// ExportFuelPurchasesCSV streams the abastecimento history as CSV.
//
// @Summary      Exporta abastecimentos (csv)
// @Tags         relatorios
// @Router       /api/relatorios/abastecimentos.csv [get]
func ExportFuelPurchasesCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := fetchFuelRows(r)
	if err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeCSV(w, "abastecimentos", rows)
}

// ExportMaintenanceExcel streams maintenance history as an .xlsx
// workbook. Optional veiculo query param narrows to one vehicle.
//
// @Summary      Exporta manutenções (xlsx)
// @Tags         relatorios
// @Router       /api/relatorios/manutencoes.xlsx [get]
func ExportMaintenanceExcel(w http.ResponseWriter, r *http.Request) {
	rows, err := fetchMaintenanceRows(r)
	if err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	f, err := buildSheet("Manutencoes", rows)
	if err != nil {
		http.Error(w, "failed to generate Excel file", http.StatusInternalServerError)
		return
	}
	writeExcel(w, f, "manutencoes")
}

// ExportMaintenanceCSV streams maintenance history as CSV.
//
// @Summary      Exporta manutenções (csv)
// @Tags         relatorios
// @Router       /api/relatorios/manutencoes.csv [get]
func ExportMaintenanceCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := fetchMaintenanceRows(r)
	if err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeCSV(w, "manutencoes", rows)
}

func fetchFuelRows(r *http.Request) ([][]string, error) {
	q := config.DB.Preload("Veiculo").Order("data DESC, hodometro DESC")
	if veiculo := r.URL.Query().Get("veiculo"); veiculo != "" {
		q = q.Where("veiculo_id = ?", veiculo)
	}

	var abastecimentos []models.FuelPurchase
	if err := q.Find(&abastecimentos).Error; err != nil {
		return nil, err
	}

	rows := [][]string{{"Placa", "Data", "Hodômetro", "Litros", "Custo Total", "Combustível", "Posto", "Média km/L"}}
	for _, a := range abastecimentos {
		placa := ""
		if a.Veiculo != nil {
			placa = a.Veiculo.Placa
		}
		media := ""
		if a.MediaKmL != nil {
			media = strconv.FormatFloat(*a.MediaKmL, 'f', 2, 64)
		}
		rows = append(rows, []string{
			placa,
			time.Time(a.Data).Format("2006-01-02"),
			strconv.FormatInt(a.Hodometro, 10),
			strconv.FormatFloat(a.Litros, 'f', 2, 64),
			strconv.FormatFloat(a.CustoTotal, 'f', 2, 64),
			a.TipoCombustivel,
			a.Posto,
			media,
		})
	}
	return rows, nil
}

func fetchMaintenanceRows(r *http.Request) ([][]string, error) {
	q := config.DB.Preload("Veiculo").Order("data DESC")
	if veiculo := r.URL.Query().Get("veiculo"); veiculo != "" {
		q = q.Where("veiculo_id = ?", veiculo)
	}

	var manutencoes []models.Maintenance
	if err := q.Find(&manutencoes).Error; err != nil {
		return nil, err
	}

	rows := [][]string{{"Placa", "Data", "Tipo", "Descrição", "Custo", "Fornecedor", "Status"}}
	for _, m := range manutencoes {
		placa := ""
		if m.Veiculo != nil {
			placa = m.Veiculo.Placa
		}
		rows = append(rows, []string{
			placa,
			time.Time(m.Data).Format("2006-01-02"),
			m.Tipo,
			m.Descricao,
			strconv.FormatFloat(m.Custo, 'f', 2, 64),
			m.Fornecedor,
			m.Status,
		})
	}
	return rows, nil
}

// buildSheet renders rows into a single-sheet workbook with a bold
// header row.
func buildSheet(sheetName string, rows [][]string) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, val); err != nil {
				return nil, err
			}
			if i == 0 {
				f.SetCellStyle(sheetName, cell, cell, headerStyle)
			}
		}
	}
	return f, nil
}

func writeExcel(w http.ResponseWriter, f *excelize.File, name string) {
	buffer, err := f.WriteToBuffer()
	if err != nil {
		http.Error(w, "failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buffer.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

func writeCSV(w http.ResponseWriter, name string, rows [][]string) {
	filename := fmt.Sprintf("%s_%s.csv", name, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	cw := csv.NewWriter(w)
	defer cw.Flush()
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return
		}
	}
}
