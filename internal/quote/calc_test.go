package quote

import "testing"

func TestCalculateWithTax(t *testing.T) {
	lines := []Line{
		{Concept: "Mano de obra", Quantity: 2, UnitPrice: 50},
		{Concept: "Material", Quantity: 1, UnitPrice: 30},
	}

	totals := Calculate(lines, true, 21)

	if got := totals.Subtotal.StringFixed(2); got != "130.00" {
		t.Errorf("subtotal = %s, want 130.00", got)
	}
	if got := totals.Tax.StringFixed(2); got != "27.30" {
		t.Errorf("tax = %s, want 27.30", got)
	}
	if got := totals.Total.StringFixed(2); got != "157.30" {
		t.Errorf("total = %s, want 157.30", got)
	}
}

func TestCalculateWithoutTax(t *testing.T) {
	lines := []Line{
		{Concept: "Mano de obra", Quantity: 2, UnitPrice: 50},
		{Concept: "Material", Quantity: 1, UnitPrice: 30},
	}

	totals := Calculate(lines, false, 21)

	if got := totals.Subtotal.StringFixed(2); got != "130.00" {
		t.Errorf("subtotal = %s, want 130.00", got)
	}
	if !totals.Tax.IsZero() {
		t.Errorf("tax = %s, want 0", totals.Tax)
	}
	if !totals.Total.Equal(totals.Subtotal) {
		t.Errorf("total = %s, want subtotal %s", totals.Total, totals.Subtotal)
	}
}

func TestCalculateTotalIsSubtotalPlusTax(t *testing.T) {
	cases := [][]Line{
		{},
		{{Quantity: 0, UnitPrice: 0}},
		{{Quantity: -1, UnitPrice: 10}},
		{{Quantity: 0.5, UnitPrice: 19.99}, {Quantity: 3, UnitPrice: 0.01}},
	}

	for _, lines := range cases {
		totals := Calculate(lines, true, 21)
		if !totals.Total.Equal(totals.Subtotal.Add(totals.Tax)) {
			t.Errorf("total %s != subtotal %s + tax %s",
				totals.Total, totals.Subtotal, totals.Tax)
		}
	}
}

func TestCalculateEmptyLines(t *testing.T) {
	totals := Calculate(nil, true, 21)
	if !totals.Total.IsZero() {
		t.Errorf("total = %s, want 0", totals.Total)
	}
}

func TestLineTotal(t *testing.T) {
	l := Line{Quantity: 2.5, UnitPrice: 19.90}
	if got := LineTotal(l).StringFixed(2); got != "49.75" {
		t.Errorf("line total = %s, want 49.75", got)
	}
}

func TestMoney(t *testing.T) {
	totals := Calculate([]Line{{Quantity: 1, UnitPrice: 130}}, true, 21)
	if got := Money(totals.Tax); got != "27.30 €" {
		t.Errorf("Money = %q, want \"27.30 €\"", got)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"integer", "2", 2},
		{"decimal", "19.90", 19.9},
		{"comma separator", "19,90", 19.9},
		{"padded", "  3.5 ", 3.5},
		{"garbage coerces to zero", "abc", 0},
		{"empty coerces to zero", "", 0},
		{"negative allowed", "-2", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAmount(tt.input); got != tt.expected {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
