package gateway

import (
	"fmt"
	"net/url"

	"github.com/tecnigestion/tg/internal/visit"
)

// VisitListOptions controls server-side filtering for ListVisits.
type VisitListOptions struct {
	Date   string // YYYY-MM-DD (empty = all)
	Status visit.Status
}

// ListVisits returns visits, optionally filtered by date and status.
func (c *Client) ListVisits(opts VisitListOptions) ([]*visit.Visit, error) {
	params := url.Values{}
	if opts.Date != "" {
		params.Set("fecha", opts.Date)
	}
	if opts.Status != "" {
		params.Set("estado", string(opts.Status))
	}

	path := "/visitas"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var visits []*visit.Visit
	if err := c.get(path, &visits); err != nil {
		return nil, err
	}
	return visits, nil
}

// TodayVisits returns the visits scheduled for today.
func (c *Client) TodayVisits() ([]*visit.Visit, error) {
	var visits []*visit.Visit
	if err := c.get("/visitas/hoy", &visits); err != nil {
		return nil, err
	}
	return visits, nil
}

// GetVisit returns a single visit.
func (c *Client) GetVisit(id int64) (*visit.Visit, error) {
	var v visit.Visit
	if err := c.get(fmt.Sprintf("/visitas/%d", id), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateVisit schedules a visit and returns the stored record.
func (c *Client) CreateVisit(v *visit.Visit) (*visit.Visit, error) {
	var created visit.Visit
	if err := c.post("/visitas", v, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateVisit replaces a visit's fields.
func (c *Client) UpdateVisit(id int64, v *visit.Visit) (*visit.Visit, error) {
	var updated visit.Visit
	if err := c.put(fmt.Sprintf("/visitas/%d", id), v, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetVisitStatus changes a visit's status. The new status travels in the
// query string, as the API expects.
func (c *Client) SetVisitStatus(id int64, status visit.Status) error {
	path := fmt.Sprintf("/visitas/%d/estado?estado=%s", id, url.QueryEscape(string(status)))
	return c.patch(path, nil, nil)
}

// Completion carries the sign-off recorded when a visit is completed.
type Completion struct {
	Signature     string `json:"firma_cliente,omitempty"`
	SignerName    string `json:"nombre_firmante,omitempty"`
	InternalNotes string `json:"notas_internas,omitempty"`
}

// CompleteVisit marks a visit completed with the customer's sign-off.
func (c *Client) CompleteVisit(id int64, comp Completion) error {
	return c.patch(fmt.Sprintf("/visitas/%d/completar", id), comp, nil)
}

// DeleteVisit removes a visit.
func (c *Client) DeleteVisit(id int64) error {
	return c.del(fmt.Sprintf("/visitas/%d", id))
}
