package models

import (
	"testing"
	"time"
)

func date(t *testing.T, s string) *DateOnly {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	d := DateOnly(parsed)
	return &d
}

func TestComputeVencimentos(t *testing.T) {
	hoje := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		ipva          *DateOnly
		licenciamento *DateOnly
		wantIPVA      bool
		wantLic       bool
	}{
		{"datas nulas nunca vencem", nil, nil, false, false},
		{"ipva no passado", date(t, "2026-08-31"), nil, true, false},
		{"ipva hoje ainda não venceu", date(t, "2026-09-01"), nil, false, false},
		{"ipva no futuro", date(t, "2027-01-10"), nil, false, false},
		{"licenciamento vencido", nil, date(t, "2025-12-31"), false, true},
		{"ambos vencidos", date(t, "2026-01-01"), date(t, "2026-02-01"), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Vehicle{IPVAValidade: tt.ipva, LicenciamentoValidade: tt.licenciamento}
			v.ComputeVencimentos(hoje)
			if v.IPVAVencido != tt.wantIPVA {
				t.Errorf("IPVAVencido = %v, expected %v", v.IPVAVencido, tt.wantIPVA)
			}
			if v.LicenciamentoVencido != tt.wantLic {
				t.Errorf("LicenciamentoVencido = %v, expected %v", v.LicenciamentoVencido, tt.wantLic)
			}
		})
	}
}
