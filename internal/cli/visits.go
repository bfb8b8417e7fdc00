package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tecnigestion/tg/internal/customer"
	"github.com/tecnigestion/tg/internal/gateway"
	"github.com/tecnigestion/tg/internal/visit"
)

func newVisitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "visits",
		Aliases: []string{"visit", "visitas"},
		Short:   "Manage scheduled visits",
	}

	cmd.AddCommand(
		newVisitsListCmd(),
		newVisitsTodayCmd(),
		newVisitsShowCmd(),
		newVisitsAddCmd(),
		newVisitsEditCmd(),
		newVisitsStatusCmd(),
		newVisitsCompleteCmd(),
		newVisitsRemoveCmd(),
	)

	return cmd
}

func newVisitsListCmd() *cobra.Command {
	var (
		filter string
		date   string
		status string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List visits",
		Long:  "Lists visits. --date and --status filter on the server; --filter (todas|hoy|pendientes) narrows the result locally.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVisitsList(filter, date, status)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "todas", "quick filter (todas|hoy|pendientes)")
	cmd.Flags().StringVar(&date, "date", "", "only visits on this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "only visits with this status")
	return cmd
}

func runVisitsList(filter, date, status string) error {
	if status != "" && !visit.Status(status).IsValid() {
		return fmt.Errorf("unknown visit status %q (valid: %s)", status, joinStatuses(visit.ValidStatuses))
	}
	switch filter {
	case "todas", "hoy", "pendientes":
	default:
		return fmt.Errorf("unknown filter %q (valid: todas, hoy, pendientes)", filter)
	}

	c, err := newGateway()
	if err != nil {
		return err
	}

	visits, err := c.ListVisits(gateway.VisitListOptions{
		Date:   date,
		Status: visit.Status(status),
	})
	if err != nil {
		return err
	}

	switch filter {
	case "hoy":
		today := time.Now()
		visits = filterVisits(visits, func(v *visit.Visit) bool { return v.ScheduledOn(today) })
	case "pendientes":
		visits = filterVisits(visits, (*visit.Visit).Pending)
	}

	if isJSON() {
		return printJSON(visits)
	}

	if len(visits) == 0 {
		fmt.Println("No visits match.")
		return nil
	}

	return printVisitTable(visits)
}

func filterVisits(visits []*visit.Visit, keep func(*visit.Visit) bool) []*visit.Visit {
	out := visits[:0]
	for _, v := range visits {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func newVisitsTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "List today's visits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVisitsToday()
		},
	}
}

func runVisitsToday() error {
	c, err := newGateway()
	if err != nil {
		return err
	}

	visits, err := c.TodayVisits()
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(visits)
	}

	if len(visits) == 0 {
		fmt.Println("No visits scheduled for today.")
		return nil
	}

	return printVisitTable(visits)
}

func newVisitsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a visit's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "visit")
			if err != nil {
				return err
			}
			return runVisitsShow(id)
		},
	}
}

func runVisitsShow(id int64) error {
	c, err := newGateway()
	if err != nil {
		return err
	}

	v, err := c.GetVisit(id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(v)
	}

	printVisitSummary(v)
	return nil
}

// visitFlags registers the shared field flags for add and edit.
func visitFlags(cmd *cobra.Command, v *visit.Visit) {
	f := cmd.Flags()
	f.Int64Var(&v.CustomerID, "customer", 0, "customer ID")
	f.StringVar(&v.Title, "title", "", "visit title")
	f.StringVar(&v.Description, "description", "", "work description")
	f.StringVar(&v.Date, "date", "", "visit date (YYYY-MM-DD)")
	f.StringVar(&v.Time, "time", "", "visit time (HH:MM)")
	f.StringVar((*string)(&v.Category), "type", "", "visit type (valoracion|reparacion|instalacion|mantenimiento|urgencia)")
	f.StringVar((*string)(&v.Priority), "priority", "", "priority (baja|normal|alta)")
	f.StringVar(&v.InternalNotes, "notes", "", "internal notes (never shown to the customer)")
}

func newVisitsAddCmd() *cobra.Command {
	var (
		v                visit.Visit
		newCustomerName  string
		newCustomerPhone string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a visit",
		Long:  "Schedules a visit for an existing customer (--customer), or creates a new customer inline with --new-customer-name and --new-customer-phone.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVisitsAdd(&v, newCustomerName, newCustomerPhone)
		},
	}

	visitFlags(cmd, &v)
	cmd.Flags().StringVar(&newCustomerName, "new-customer-name", "", "create a customer with this name instead of --customer")
	cmd.Flags().StringVar(&newCustomerPhone, "new-customer-phone", "", "phone for the inline-created customer")
	return cmd
}

func runVisitsAdd(v *visit.Visit, newCustomerName, newCustomerPhone string) error {
	// Inline customer creation mirrors the quick-add flow used when a
	// call comes in from someone not yet on file.
	inline := newCustomerName != "" || newCustomerPhone != ""

	var cust *customer.Customer
	if inline {
		if v.CustomerID != 0 {
			return fmt.Errorf("--customer and --new-customer-name are mutually exclusive")
		}
		cust = &customer.Customer{Name: newCustomerName, Phone: newCustomerPhone}
	}

	// Validate everything, visit and inline customer alike, before the
	// first request: a validation failure must not leave a half-created
	// customer behind.
	errs := v.Validate()
	if inline {
		delete(errs, "cliente_id")
		for field, msg := range cust.Validate() {
			errs[field] = msg
		}
	}
	if !errs.Empty() {
		return errs
	}

	c, err := newGateway()
	if err != nil {
		return err
	}

	if inline {
		created, err := c.CreateCustomer(cust)
		if err != nil {
			return err
		}
		v.CustomerID = created.ID
		if !isJSON() {
			fmt.Printf("✓ Customer #%d created.\n", created.ID)
		}
	}

	created, err := c.CreateVisit(v)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(created)
	}

	fmt.Printf("✓ Visit #%d scheduled.\n\n", created.ID)
	printVisitSummary(created)
	return nil
}

func newVisitsEditCmd() *cobra.Command {
	var updates visit.Visit

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a visit's fields",
		Long:  "Fetches the visit, applies the given flags on top of the stored values, and saves the result.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "visit")
			if err != nil {
				return err
			}
			return runVisitsEdit(cmd, id, &updates)
		},
	}

	visitFlags(cmd, &updates)
	return cmd
}

func runVisitsEdit(cmd *cobra.Command, id int64, updates *visit.Visit) error {
	c, err := newGateway()
	if err != nil {
		return err
	}

	v, err := c.GetVisit(id)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("customer") {
		v.CustomerID = updates.CustomerID
	}
	strs := map[string][2]*string{
		"title":       {&v.Title, &updates.Title},
		"description": {&v.Description, &updates.Description},
		"date":        {&v.Date, &updates.Date},
		"time":        {&v.Time, &updates.Time},
		"type":        {(*string)(&v.Category), (*string)(&updates.Category)},
		"priority":    {(*string)(&v.Priority), (*string)(&updates.Priority)},
		"notes":       {&v.InternalNotes, &updates.InternalNotes},
	}
	for name, pair := range strs {
		if cmd.Flags().Changed(name) {
			*pair[0] = *pair[1]
		}
	}

	if errs := v.Validate(); !errs.Empty() {
		return errs
	}

	updated, err := c.UpdateVisit(id, v)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(updated)
	}

	fmt.Printf("✓ Visit #%d updated.\n\n", updated.ID)
	printVisitSummary(updated)
	return nil
}

func newVisitsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <estado>",
		Short: "Change a visit's status",
		Long:  "Sets a visit to any of: pendiente, confirmada, en_curso, completada, cancelada. No ordering is enforced; a cancelled visit can be reopened.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "visit")
			if err != nil {
				return err
			}
			return runVisitsStatus(id, visit.Status(args[1]))
		},
	}
}

func runVisitsStatus(id int64, status visit.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("unknown visit status %q (valid: %s)", status, joinStatuses(visit.ValidStatuses))
	}

	c, err := newGateway()
	if err != nil {
		return err
	}

	if err := c.SetVisitStatus(id, status); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{"id": id, "estado": status})
	}

	fmt.Printf("✓ Visit #%d is now %s.\n", id, status.Badge().Label)
	return nil
}

func newVisitsCompleteCmd() *cobra.Command {
	var comp gateway.Completion

	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a visit completed with the customer's sign-off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "visit")
			if err != nil {
				return err
			}
			return runVisitsComplete(id, comp)
		},
	}

	cmd.Flags().StringVar(&comp.SignerName, "signer", "", "name of the person signing off")
	cmd.Flags().StringVar(&comp.Signature, "signature", "", "captured signature data")
	cmd.Flags().StringVar(&comp.InternalNotes, "notes", "", "closing notes")
	return cmd
}

func runVisitsComplete(id int64, comp gateway.Completion) error {
	c, err := newGateway()
	if err != nil {
		return err
	}

	if err := c.CompleteVisit(id, comp); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{"id": id, "estado": visit.StatusCompleted})
	}

	fmt.Printf("✓ Visit #%d completed.\n", id)
	return nil
}

func newVisitsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete a visit",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "visit")
			if err != nil {
				return err
			}
			return runVisitsRemove(id)
		},
	}
}

func runVisitsRemove(id int64) error {
	c, err := newGateway()
	if err != nil {
		return err
	}

	if err := c.DeleteVisit(id); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{"id": id, "removed": true})
	}

	fmt.Printf("Visit #%d removed.\n", id)
	return nil
}

func joinStatuses[S ~string](statuses []S) string {
	out := ""
	for i, s := range statuses {
		if i > 0 {
			out += ", "
		}
		out += string(s)
	}
	return out
}
