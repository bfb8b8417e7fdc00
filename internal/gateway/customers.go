package gateway

import (
	"fmt"

	"github.com/tecnigestion/tg/internal/customer"
)

// ListCustomers returns all customers in server order.
func (c *Client) ListCustomers() ([]*customer.Customer, error) {
	var customers []*customer.Customer
	if err := c.get("/clientes", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// GetCustomer returns a single customer.
func (c *Client) GetCustomer(id int64) (*customer.Customer, error) {
	var cust customer.Customer
	if err := c.get(fmt.Sprintf("/clientes/%d", id), &cust); err != nil {
		return nil, err
	}
	return &cust, nil
}

// CreateCustomer creates a customer and returns the stored record.
func (c *Client) CreateCustomer(cust *customer.Customer) (*customer.Customer, error) {
	var created customer.Customer
	if err := c.post("/clientes", cust, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCustomer replaces a customer's fields.
func (c *Client) UpdateCustomer(id int64, cust *customer.Customer) (*customer.Customer, error) {
	var updated customer.Customer
	if err := c.put(fmt.Sprintf("/clientes/%d", id), cust, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCustomer removes a customer. The server cascades the deletion
// to the customer's visits and quotes.
func (c *Client) DeleteCustomer(id int64) error {
	return c.del(fmt.Sprintf("/clientes/%d", id))
}
