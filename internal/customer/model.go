// Package customer provides the customer domain model and validation.
package customer

import (
	"strings"

	"github.com/tecnigestion/tg/internal/form"
)

// Kind distinguishes individual customers from companies.
type Kind string

const (
	KindIndividual Kind = "particular"
	KindCompany    Kind = "empresa"
)

// ValidKinds is the set of allowed customer kinds.
var ValidKinds = []Kind{KindIndividual, KindCompany}

// IsValid checks if a customer kind is recognized.
func (k Kind) IsValid() bool {
	for _, v := range ValidKinds {
		if k == v {
			return true
		}
	}
	return false
}

// Label returns a human-readable label for the kind.
func (k Kind) Label() string {
	switch k {
	case KindIndividual:
		return "Particular"
	case KindCompany:
		return "Empresa"
	default:
		return string(k)
	}
}

// Customer represents a customer record as exchanged with the API.
// JSON tags match the wire format.
type Customer struct {
	ID             int64  `json:"id,omitempty"`
	Kind           Kind   `json:"tipo,omitempty"`
	Name           string `json:"nombre"`
	Surname        string `json:"apellidos,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"telefono"`
	SecondaryPhone string `json:"telefono_secundario,omitempty"`
	Address        string `json:"direccion,omitempty"`
	City           string `json:"ciudad,omitempty"`
	PostalCode     string `json:"codigo_postal,omitempty"`
	Province       string `json:"provincia,omitempty"`
	TaxID          string `json:"nif_cif,omitempty"`
	Notes          string `json:"notas,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// FullName joins name and surname, skipping an empty surname.
func (c *Customer) FullName() string {
	if c.Surname == "" {
		return c.Name
	}
	return strings.TrimSpace(c.Name + " " + c.Surname)
}

// Validate checks required fields and the kind vocabulary.
// It performs no I/O; callers must not submit a record that fails here.
func (c *Customer) Validate() form.Errors {
	errs := form.Errors{}
	form.Required("nombre", c.Name, errs)
	form.Required("telefono", c.Phone, errs)
	if c.Kind != "" && !c.Kind.IsValid() {
		errs["tipo"] = "must be particular or empresa"
	}
	return errs
}
