// Package visit provides the scheduled visit domain model: categories,
// priorities, the status vocabulary and its badge styles.
package visit

import (
	"time"

	"github.com/tecnigestion/tg/internal/badge"
	"github.com/tecnigestion/tg/internal/form"
)

// Status is the visit workflow state. Any status may be set from any
// other by explicit user action; only the vocabulary is closed.
type Status string

const (
	StatusPending    Status = "pendiente"
	StatusConfirmed  Status = "confirmada"
	StatusInProgress Status = "en_curso"
	StatusCompleted  Status = "completada"
	StatusCancelled  Status = "cancelada"
)

// ValidStatuses is the set of allowed visit statuses.
var ValidStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

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
	StatusPending:    {Label: "Pendiente", Color: "#F39C12", Background: "#FEF3E2"},
	StatusConfirmed:  {Label: "Confirmada", Color: "#3498DB", Background: "#E8F4FD"},
	StatusInProgress: {Label: "En Curso", Color: "#9B59B6", Background: "#F3E8FD"},
	StatusCompleted:  {Label: "Completada", Color: "#27AE60", Background: "#E8F8EF"},
	StatusCancelled:  {Label: "Cancelada", Color: "#E74C3C", Background: "#FDE8E8"},
}

// Badge returns the display style for the status. Unknown values get a
// neutral fallback so rendering never fails.
func (s Status) Badge() badge.Badge {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	return badge.Fallback(string(s))
}

// Category is the kind of work a visit is for.
type Category string

const (
	CategoryValuation    Category = "valoracion"
	CategoryRepair       Category = "reparacion"
	CategoryInstallation Category = "instalacion"
	CategoryMaintenance  Category = "mantenimiento"
	CategoryUrgent       Category = "urgencia"
)

// ValidCategories is the set of allowed visit categories.
var ValidCategories = []Category{
	CategoryValuation,
	CategoryRepair,
	CategoryInstallation,
	CategoryMaintenance,
	CategoryUrgent,
}

// IsValid checks if a category is recognized.
func (c Category) IsValid() bool {
	for _, v := range ValidCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Label returns a human-readable label for the category.
func (c Category) Label() string {
	switch c {
	case CategoryValuation:
		return "Valoración"
	case CategoryRepair:
		return "Reparación"
	case CategoryInstallation:
		return "Instalación"
	case CategoryMaintenance:
		return "Mantenimiento"
	case CategoryUrgent:
		return "Urgencia"
	default:
		return string(c)
	}
}

// Priority orders visits by urgency.
type Priority string

const (
	PriorityLow    Priority = "baja"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "alta"
)

// ValidPriorities is the set of allowed priorities.
var ValidPriorities = []Priority{PriorityLow, PriorityNormal, PriorityHigh}

// IsValid checks if a priority is recognized.
func (p Priority) IsValid() bool {
	for _, v := range ValidPriorities {
		if p == v {
			return true
		}
	}
	return false
}

// Visit represents a scheduled field-service appointment.
// JSON tags match the wire format; the cliente_* fields are denormalized
// by the server on reads and never sent on writes.
type Visit struct {
	ID                int64    `json:"id,omitempty"`
	CustomerID        int64    `json:"cliente_id"`
	CustomerName      string   `json:"cliente_nombre,omitempty"`
	CustomerPhone     string   `json:"cliente_telefono,omitempty"`
	CustomerAddress   string   `json:"cliente_direccion,omitempty"`
	Title             string   `json:"titulo"`
	Description       string   `json:"descripcion,omitempty"`
	Date              string   `json:"fecha"` // YYYY-MM-DD
	Time              string   `json:"hora,omitempty"`
	Category          Category `json:"tipo,omitempty"`
	Status            Status   `json:"estado,omitempty"`
	Priority          Priority `json:"prioridad,omitempty"`
	InternalNotes     string   `json:"notas_internas,omitempty"`
	CustomerSignature string   `json:"firma_cliente,omitempty"`
	SignerName        string   `json:"nombre_firmante,omitempty"`
	CreatedAt         string   `json:"created_at,omitempty"`
	CompletedAt       string   `json:"completed_at,omitempty"`
}

// Validate checks required fields and vocabularies before submission.
func (v *Visit) Validate() form.Errors {
	errs := form.Errors{}
	form.Required("titulo", v.Title, errs)
	form.Required("fecha", v.Date, errs)
	if v.Date != "" {
		if _, err := time.Parse("2006-01-02", v.Date); err != nil {
			errs["fecha"] = "must be YYYY-MM-DD"
		}
	}
	if v.CustomerID <= 0 {
		errs["cliente_id"] = "is required"
	}
	if v.Category != "" && !v.Category.IsValid() {
		errs["tipo"] = "unknown visit category"
	}
	if v.Priority != "" && !v.Priority.IsValid() {
		errs["prioridad"] = "unknown priority"
	}
	return errs
}

// Pending reports whether the visit still needs attention.
func (v *Visit) Pending() bool {
	return v.Status == StatusPending || v.Status == StatusConfirmed
}

// ScheduledOn reports whether the visit falls on the given day.
func (v *Visit) ScheduledOn(day time.Time) bool {
	return v.Date == day.Format("2006-01-02")
}
