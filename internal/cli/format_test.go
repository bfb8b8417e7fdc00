package cli

import (
	"testing"

	"github.com/tecnigestion/tg/internal/quote"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"zero", 0, "0.00 €"},
		{"whole", 130, "130.00 €"},
		{"cents", 157.3, "157.30 €"},
		{"rounds", 27.305, "27.31 €"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := money(tt.amount)
			if result != tt.expected {
				t.Errorf("money(%v) = %q, want %q", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"long", "hello world!", 8, "hello..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncate(tt.input, tt.max)
			if result != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, result, tt.expected)
			}
		})
	}
}

func TestOrDash(t *testing.T) {
	if orDash("") != "-" {
		t.Error("expected dash for empty string")
	}
	if orDash("x") != "x" {
		t.Error("expected value passed through")
	}
}

func TestQuoteStatusCell(t *testing.T) {
	days := int64(12)

	tests := []struct {
		name     string
		quote    quote.Quote
		expected string
	}{
		{"sent", quote.Quote{Status: quote.StatusSent}, "Enviado"},
		{"rejected with countdown", quote.Quote{Status: quote.StatusRejected, DaysUntilDeletion: &days}, "Rechazado (deletes in 12d)"},
		{"rejected without countdown", quote.Quote{Status: quote.StatusRejected}, "Rechazado"},
		{"accepted ignores countdown", quote.Quote{Status: quote.StatusAccepted, DaysUntilDeletion: &days}, "Aceptado"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := quoteStatusCell(&tt.quote)
			if result != tt.expected {
				t.Errorf("quoteStatusCell() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestParseLineFlag(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    quote.Line
		wantErr bool
	}{
		{
			name: "three parts",
			raw:  "Mano de obra|8|35",
			want: quote.Line{Concept: "Mano de obra", Quantity: 8, UnitPrice: 35},
		},
		{
			name: "with description",
			raw:  "Material|1|120,50|Azulejos y junta",
			want: quote.Line{Concept: "Material", Quantity: 1, UnitPrice: 120.50, Description: "Azulejos y junta"},
		},
		{
			name: "garbage numbers become zero",
			raw:  "Desplazamiento|abc|xyz",
			want: quote.Line{Concept: "Desplazamiento"},
		},
		{
			name:    "too few parts",
			raw:     "Mano de obra|8",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLineFlag(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLineFlag(%q) err = %v, wantErr = %v", tt.raw, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got != tt.want {
				t.Errorf("parseLineFlag(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}
