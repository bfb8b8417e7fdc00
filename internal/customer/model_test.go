package customer

import "testing"

func TestValidateRequiredFields(t *testing.T) {
	c := Customer{}
	errs := c.Validate()
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want exactly 2: %v", len(errs), errs)
	}
	if _, ok := errs["nombre"]; !ok {
		t.Error("expected error on nombre")
	}
	if _, ok := errs["telefono"]; !ok {
		t.Error("expected error on telefono")
	}
}

func TestValidateComplete(t *testing.T) {
	c := Customer{Name: "María", Phone: "600123456", Kind: KindIndividual}
	if errs := c.Validate(); !errs.Empty() {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestValidateUnknownKind(t *testing.T) {
	c := Customer{Name: "María", Phone: "600123456", Kind: "autonomo"}
	errs := c.Validate()
	if _, ok := errs["tipo"]; !ok {
		t.Error("expected error on tipo for unknown kind")
	}
}

func TestKindIsValid(t *testing.T) {
	tests := []struct {
		kind  Kind
		valid bool
	}{
		{KindIndividual, true},
		{KindCompany, true},
		{"", false},
		{"autonomo", false},
	}

	for _, tt := range tests {
		if got := tt.kind.IsValid(); got != tt.valid {
			t.Errorf("Kind(%q).IsValid() = %v, want %v", tt.kind, got, tt.valid)
		}
	}
}

func TestKindLabel(t *testing.T) {
	if KindCompany.Label() != "Empresa" {
		t.Errorf("label = %q", KindCompany.Label())
	}
	if Kind("otro").Label() != "otro" {
		t.Errorf("unknown kind should fall back to raw value")
	}
}

func TestFullName(t *testing.T) {
	tests := []struct {
		name     string
		customer Customer
		expected string
	}{
		{"both", Customer{Name: "Ana", Surname: "García"}, "Ana García"},
		{"name only", Customer{Name: "Ana"}, "Ana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.customer.FullName(); got != tt.expected {
				t.Errorf("FullName() = %q, want %q", got, tt.expected)
			}
		})
	}
}
