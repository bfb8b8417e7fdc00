package gateway

// Summary is the set of dashboard counters. They are computed entirely
// server-side and displayed as-is.
type Summary struct {
	VisitsToday    int64   `json:"visitas_hoy"`
	VisitsPending  int64   `json:"visitas_pendientes"`
	TotalCustomers int64   `json:"total_clientes"`
	QuotesPending  int64   `json:"presupuestos_pendientes"`
	MonthlyRevenue float64 `json:"facturacion_mes"`
}

// Dashboard fetches the aggregate counters for the home screen.
func (c *Client) Dashboard() (*Summary, error) {
	var s Summary
	if err := c.get("/dashboard", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Health checks that the server is reachable.
func (c *Client) Health() error {
	var resp struct {
		Status string `json:"status"`
	}
	return c.get("/health", &resp)
}
