package form

import "testing"

func TestRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"present", "Juan", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Errors{}
			Required("nombre", tt.value, e)
			if got := !e.Empty(); got != tt.wantErr {
				t.Errorf("Required(%q) recorded error = %v, want %v", tt.value, got, tt.wantErr)
			}
		})
	}
}

func TestErrorsFieldsSorted(t *testing.T) {
	e := Errors{"telefono": "is required", "nombre": "is required"}
	fields := e.Fields()
	if len(fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(fields))
	}
	if fields[0] != "nombre" || fields[1] != "telefono" {
		t.Errorf("fields = %v, want [nombre telefono]", fields)
	}
}

func TestErrorsMessage(t *testing.T) {
	e := Errors{"titulo": "is required"}
	if e.Error() != "titulo: is required" {
		t.Errorf("Error() = %q", e.Error())
	}
}
