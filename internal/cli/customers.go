package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tecnigestion/tg/internal/customer"
)

func newCustomersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer", "clientes"},
		Short:   "Manage customer records",
	}

	cmd.AddCommand(
		newCustomersListCmd(),
		newCustomersShowCmd(),
		newCustomersAddCmd(),
		newCustomersEditCmd(),
		newCustomersRemoveCmd(),
	)

	return cmd
}

func newCustomersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCustomersList()
		},
	}
}

func runCustomersList() error {
	c, err := newGateway()
	if err != nil {
		return err
	}

	customers, err := c.ListCustomers()
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(customers)
	}

	if len(customers) == 0 {
		fmt.Println("No customers yet. Add one with 'tg customers add'.")
		return nil
	}

	return printCustomerTable(customers)
}

func newCustomersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a customer and their quotes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "customer")
			if err != nil {
				return err
			}
			return runCustomersShow(id)
		},
	}
}

func runCustomersShow(id int64) error {
	c, err := newGateway()
	if err != nil {
		return err
	}

	cust, err := c.GetCustomer(id)
	if err != nil {
		return err
	}

	quotes, err := c.CustomerQuotes(id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{
			"cliente":      cust,
			"presupuestos": quotes,
		})
	}

	printCustomerSummary(cust)

	if len(quotes) > 0 {
		fmt.Printf("\nQuotes (%d):\n", len(quotes))
		if err := printQuoteTable(quotes); err != nil {
			return err
		}
	}

	return nil
}

// customerFlags registers the shared field flags for add and edit.
func customerFlags(cmd *cobra.Command, cust *customer.Customer) {
	f := cmd.Flags()
	f.StringVar((*string)(&cust.Kind), "type", "", "customer type (particular|empresa)")
	f.StringVar(&cust.Name, "name", "", "first name or company name")
	f.StringVar(&cust.Surname, "surname", "", "surname")
	f.StringVar(&cust.Email, "email", "", "email address")
	f.StringVar(&cust.Phone, "phone", "", "phone number")
	f.StringVar(&cust.SecondaryPhone, "phone2", "", "secondary phone number")
	f.StringVar(&cust.Address, "address", "", "street address")
	f.StringVar(&cust.City, "city", "", "city")
	f.StringVar(&cust.PostalCode, "postal-code", "", "postal code")
	f.StringVar(&cust.Province, "province", "", "province")
	f.StringVar(&cust.TaxID, "tax-id", "", "NIF/CIF")
	f.StringVar(&cust.Notes, "notes", "", "free-form notes")
}

func newCustomersAddCmd() *cobra.Command {
	var cust customer.Customer

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a customer",
		Long:  "Creates a customer record. Name and phone are required; everything else is optional.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCustomersAdd(&cust)
		},
	}

	customerFlags(cmd, &cust)
	return cmd
}

func runCustomersAdd(cust *customer.Customer) error {
	if errs := cust.Validate(); !errs.Empty() {
		return errs
	}

	c, err := newGateway()
	if err != nil {
		return err
	}

	created, err := c.CreateCustomer(cust)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(created)
	}

	fmt.Printf("✓ Customer #%d created.\n\n", created.ID)
	printCustomerSummary(created)
	return nil
}

func newCustomersEditCmd() *cobra.Command {
	var updates customer.Customer

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a customer's fields",
		Long:  "Fetches the customer, applies the given flags on top of the stored values, and saves the result. Unset flags leave fields unchanged.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "customer")
			if err != nil {
				return err
			}
			return runCustomersEdit(cmd, id, &updates)
		},
	}

	customerFlags(cmd, &updates)
	return cmd
}

func runCustomersEdit(cmd *cobra.Command, id int64, updates *customer.Customer) error {
	c, err := newGateway()
	if err != nil {
		return err
	}

	cust, err := c.GetCustomer(id)
	if err != nil {
		return err
	}

	applyCustomerUpdates(cmd, cust, updates)

	if errs := cust.Validate(); !errs.Empty() {
		return errs
	}

	updated, err := c.UpdateCustomer(id, cust)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(updated)
	}

	fmt.Printf("✓ Customer #%d updated.\n\n", updated.ID)
	printCustomerSummary(updated)
	return nil
}

// applyCustomerUpdates copies each explicitly set flag value onto the
// stored record, so edit can clear a field by passing an empty string.
func applyCustomerUpdates(cmd *cobra.Command, cust, updates *customer.Customer) {
	set := map[string]*string{
		"type":        (*string)(&cust.Kind),
		"name":        &cust.Name,
		"surname":     &cust.Surname,
		"email":       &cust.Email,
		"phone":       &cust.Phone,
		"phone2":      &cust.SecondaryPhone,
		"address":     &cust.Address,
		"city":        &cust.City,
		"postal-code": &cust.PostalCode,
		"province":    &cust.Province,
		"tax-id":      &cust.TaxID,
		"notes":       &cust.Notes,
	}
	from := map[string]*string{
		"type":        (*string)(&updates.Kind),
		"name":        &updates.Name,
		"surname":     &updates.Surname,
		"email":       &updates.Email,
		"phone":       &updates.Phone,
		"phone2":      &updates.SecondaryPhone,
		"address":     &updates.Address,
		"city":        &updates.City,
		"postal-code": &updates.PostalCode,
		"province":    &updates.Province,
		"tax-id":      &updates.TaxID,
		"notes":       &updates.Notes,
	}
	for name, dst := range set {
		if cmd.Flags().Changed(name) {
			*dst = *from[name]
		}
	}
}

func newCustomersRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete a customer",
		Long:    "Deletes a customer. The server also deletes the customer's visits and quotes.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "customer")
			if err != nil {
				return err
			}
			return runCustomersRemove(id)
		},
	}
}

func runCustomersRemove(id int64) error {
	c, err := newGateway()
	if err != nil {
		return err
	}

	if err := c.DeleteCustomer(id); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{"id": id, "removed": true})
	}

	fmt.Printf("Customer #%d removed, along with their visits and quotes.\n", id)
	return nil
}

// parseID parses a positional numeric ID argument.
func parseID(arg, noun string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID: %s", noun, arg)
	}
	return id, nil
}
