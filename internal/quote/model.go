// Package quote provides the quote (estimate) domain model, its status
// vocabulary, and the line-item totals calculator.
package quote

import (
	"github.com/tecnigestion/tg/internal/badge"
	"github.com/tecnigestion/tg/internal/form"
)

// DefaultTaxRate is the tax percentage applied unless overridden.
const DefaultTaxRate = 21

// Status is the quote workflow state. As with visits, any status may be
// set from any other; the vocabulary is closed.
type Status string

const (
	StatusDraft    Status = "borrador"
	StatusSent     Status = "enviado"
	StatusAccepted Status = "aceptado"
	StatusRejected Status = "rechazado"
)

// ValidStatuses is the set of allowed quote statuses.
var ValidStatuses = []Status{StatusDraft, StatusSent, StatusAccepted, StatusRejected}

// IsValid checks if a status is recognized.
func (s Status) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// statusBadges maps every status to its fixed display style.
var statusBadges = map[Status]badge.Badge{
	StatusDraft:    {Label: "Borrador", Color: "#95A5A6", Background: "#F0F0F0"},
	StatusSent:     {Label: "Enviado", Color: "#3498DB", Background: "#E8F4FD"},
	StatusAccepted: {Label: "Aceptado", Color: "#27AE60", Background: "#E8F8EF"},
	StatusRejected: {Label: "Rechazado", Color: "#E74C3C", Background: "#FDE8E8"},
}

// Badge returns the display style for the status.
func (s Status) Badge() badge.Badge {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	return badge.Fallback(string(s))
}

// Line is one billable row of a quote.
type Line struct {
	ID          int64   `json:"id,omitempty"`
	Concept     string  `json:"concepto"`
	Description string  `json:"descripcion,omitempty"`
	Quantity    float64 `json:"cantidad"`
	UnitPrice   float64 `json:"precio_unitario"`
	Total       float64 `json:"total,omitempty"` // server-computed on reads
	Order       int     `json:"orden,omitempty"`
}

// Quote represents an estimate as returned by the API. Monetary totals
// and the rejection countdown are server-computed; the client only
// derives totals for drafts it is still editing.
type Quote struct {
	ID                int64   `json:"id,omitempty"`
	CustomerID        int64   `json:"cliente_id"`
	CustomerName      string  `json:"cliente_nombre,omitempty"`
	Number            string  `json:"numero,omitempty"`
	Title             string  `json:"titulo"`
	Description       string  `json:"descripcion,omitempty"`
	Subtotal          float64 `json:"subtotal,omitempty"`
	TaxRate           float64 `json:"iva_porcentaje,omitempty"`
	ApplyTax          bool    `json:"aplicar_iva"`
	TaxAmount         float64 `json:"iva_amount,omitempty"`
	Total             float64 `json:"total,omitempty"`
	Status            Status  `json:"estado,omitempty"`
	IssuedOn          string  `json:"fecha_emision,omitempty"`
	ValidUntil        string  `json:"fecha_validez,omitempty"`
	RejectedAt        string  `json:"fecha_rechazo,omitempty"`
	DaysUntilDeletion *int64  `json:"dias_para_eliminar,omitempty"`
	Notes             string  `json:"notas,omitempty"`
	Lines             []Line  `json:"lineas"`
	CreatedAt         string  `json:"created_at,omitempty"`
}

// Draft is a quote under construction, before first submission.
// It always holds at least one line.
type Draft struct {
	CustomerID  int64   `json:"cliente_id"`
	Title       string  `json:"titulo"`
	Description string  `json:"descripcion,omitempty"`
	ApplyTax    bool    `json:"aplicar_iva"`
	TaxRate     float64 `json:"iva_porcentaje"`
	ValidUntil  string  `json:"fecha_validez,omitempty"`
	Notes       string  `json:"notas,omitempty"`
	Lines       []Line  `json:"lineas"`
}

// NewDraft creates a draft with tax applied at the default rate and one
// seeded labor line, matching how a new quote form starts.
func NewDraft() *Draft {
	return &Draft{
		ApplyTax: true,
		TaxRate:  DefaultTaxRate,
		Lines:    []Line{{Concept: "Mano de obra", Quantity: 1}},
	}
}

// AddLine appends a line to the draft.
func (d *Draft) AddLine(l Line) {
	d.Lines = append(d.Lines, l)
}

// RemoveLine deletes the line at index i. Removing the last remaining
// line is a no-op; the list never drops below one. Returns whether a
// line was removed.
func (d *Draft) RemoveLine(i int) bool {
	if len(d.Lines) <= 1 || i < 0 || i >= len(d.Lines) {
		return false
	}
	d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
	return true
}

// Totals derives subtotal, tax, and total from the draft's current lines.
func (d *Draft) Totals() Totals {
	return Calculate(d.Lines, d.ApplyTax, d.TaxRate)
}

// Validate checks required fields before submission.
func (d *Draft) Validate() form.Errors {
	errs := form.Errors{}
	form.Required("titulo", d.Title, errs)
	if d.CustomerID <= 0 {
		errs["cliente_id"] = "is required"
	}
	if len(d.Lines) == 0 {
		errs["lineas"] = "at least one line item is required"
	}
	for _, l := range d.Lines {
		if l.Concept == "" {
			errs["lineas"] = "every line needs a concept"
			break
		}
	}
	return errs
}
