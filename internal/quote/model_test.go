package quote

import "testing"

func TestStatusIsValid(t *testing.T) {
	for _, s := range ValidStatuses {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if Status("facturado").IsValid() {
		t.Error("unknown status should not be valid")
	}
}

func TestStatusBadgeTotal(t *testing.T) {
	for _, s := range ValidStatuses {
		b := s.Badge()
		if b.Label == "" || b.Color == "" || b.Background == "" {
			t.Errorf("status %q has incomplete badge: %+v", s, b)
		}
	}
}

func TestStatusBadgeLabels(t *testing.T) {
	tests := []struct {
		status Status
		label  string
	}{
		{StatusDraft, "Borrador"},
		{StatusSent, "Enviado"},
		{StatusAccepted, "Aceptado"},
		{StatusRejected, "Rechazado"},
	}

	for _, tt := range tests {
		if got := tt.status.Badge().Label; got != tt.label {
			t.Errorf("Badge(%q).Label = %q, want %q", tt.status, got, tt.label)
		}
	}
}

func TestNewDraftSeedsOneLine(t *testing.T) {
	d := NewDraft()
	if len(d.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(d.Lines))
	}
	if d.Lines[0].Concept != "Mano de obra" {
		t.Errorf("seeded concept = %q", d.Lines[0].Concept)
	}
	if !d.ApplyTax || d.TaxRate != DefaultTaxRate {
		t.Errorf("tax defaults = (%v, %v), want (true, %d)", d.ApplyTax, d.TaxRate, DefaultTaxRate)
	}
}

func TestRemoveLastLineIsNoOp(t *testing.T) {
	d := NewDraft()
	if d.RemoveLine(0) {
		t.Error("removing the only line should be refused")
	}
	if len(d.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(d.Lines))
	}

	d.AddLine(Line{Concept: "Material", Quantity: 1, UnitPrice: 30})
	if !d.RemoveLine(1) {
		t.Error("removing from a two-line draft should succeed")
	}
	if d.RemoveLine(0) {
		t.Error("list must never drop below one line")
	}
}

func TestRemoveLineOutOfRange(t *testing.T) {
	d := NewDraft()
	d.AddLine(Line{Concept: "Material"})
	if d.RemoveLine(5) || d.RemoveLine(-1) {
		t.Error("out-of-range removal should be a no-op")
	}
	if len(d.Lines) != 2 {
		t.Errorf("got %d lines, want 2", len(d.Lines))
	}
}

func TestDraftTotals(t *testing.T) {
	d := NewDraft()
	d.Lines = []Line{
		{Concept: "Mano de obra", Quantity: 2, UnitPrice: 50},
		{Concept: "Material", Quantity: 1, UnitPrice: 30},
	}

	totals := d.Totals()
	if got := totals.Total.StringFixed(2); got != "157.30" {
		t.Errorf("total = %s, want 157.30", got)
	}

	d.ApplyTax = false
	totals = d.Totals()
	if got := totals.Total.StringFixed(2); got != "130.00" {
		t.Errorf("total without tax = %s, want 130.00", got)
	}
}

func TestDraftValidate(t *testing.T) {
	d := NewDraft()
	errs := d.Validate()
	if _, ok := errs["titulo"]; !ok {
		t.Error("expected error on titulo")
	}
	if _, ok := errs["cliente_id"]; !ok {
		t.Error("expected error on cliente_id")
	}

	d.Title = "Reforma baño"
	d.CustomerID = 7
	if errs := d.Validate(); !errs.Empty() {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestDraftValidateLineConcepts(t *testing.T) {
	d := NewDraft()
	d.Title = "Reforma baño"
	d.CustomerID = 7
	d.AddLine(Line{Quantity: 1, UnitPrice: 10})
	errs := d.Validate()
	if _, ok := errs["lineas"]; !ok {
		t.Error("expected error for line without concept")
	}
}
