package gateway

import (
	"fmt"
	"net/url"

	"github.com/tecnigestion/tg/internal/quote"
)

// ListQuotes returns quotes, optionally filtered by status server-side.
func (c *Client) ListQuotes(status quote.Status) ([]*quote.Quote, error) {
	path := "/presupuestos"
	if status != "" {
		path += "?estado=" + url.QueryEscape(string(status))
	}

	var quotes []*quote.Quote
	if err := c.get(path, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// CustomerQuotes returns all quotes belonging to one customer.
func (c *Client) CustomerQuotes(customerID int64) ([]*quote.Quote, error) {
	var quotes []*quote.Quote
	if err := c.get(fmt.Sprintf("/presupuestos/cliente/%d", customerID), &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// GetQuote returns a single quote with its lines and the server-computed
// totals and deletion countdown.
func (c *Client) GetQuote(id int64) (*quote.Quote, error) {
	var q quote.Quote
	if err := c.get(fmt.Sprintf("/presupuestos/%d", id), &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// CreateQuote submits a draft. The server assigns the number and stores
// the authoritative totals.
func (c *Client) CreateQuote(d *quote.Draft) (*quote.Quote, error) {
	var created quote.Quote
	if err := c.post("/presupuestos", d, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// SetQuoteStatus changes a quote's status via the query string.
func (c *Client) SetQuoteStatus(id int64, status quote.Status) error {
	path := fmt.Sprintf("/presupuestos/%d/estado?estado=%s", id, url.QueryEscape(string(status)))
	return c.patch(path, nil, nil)
}

// DeleteQuote removes a quote.
func (c *Client) DeleteQuote(id int64) error {
	return c.del(fmt.Sprintf("/presupuestos/%d", id))
}

// QuoteStats are the aggregate quote counters computed by the server.
type QuoteStats struct {
	Total          int64   `json:"total"`
	Accepted       int64   `json:"aceptados"`
	Pending        int64   `json:"pendientes"`
	Rejected       int64   `json:"rechazados"`
	ConversionRate float64 `json:"tasa_conversion"`
}

// GetQuoteStats fetches the quote statistics summary.
func (c *Client) GetQuoteStats() (*QuoteStats, error) {
	var stats QuoteStats
	if err := c.get("/estadisticas/presupuestos", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
