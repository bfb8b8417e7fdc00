// Package badge defines the display style attached to a status value.
package badge

// Badge is the fixed label and color pair used to render a status.
type Badge struct {
	Label      string `json:"label"`
	Color      string `json:"color"`
	Background string `json:"background"`
}

// Fallback returns a neutral badge for a status value with no defined
// style, using the raw value as its label.
func Fallback(status string) Badge {
	return Badge{Label: status, Color: "#7F8C8D", Background: "#F0F0F0"}
}
