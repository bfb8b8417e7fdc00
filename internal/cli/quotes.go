package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tecnigestion/tg/internal/quote"
)

func newQuotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quotes",
		Aliases: []string{"quote", "presupuestos"},
		Short:   "Manage quotes",
	}

	cmd.AddCommand(
		newQuotesListCmd(),
		newQuotesShowCmd(),
		newQuotesAddCmd(),
		newQuotesStatusCmd(),
		newQuotesStatsCmd(),
		newQuotesRemoveCmd(),
	)

	return cmd
}

func newQuotesListCmd() *cobra.Command {
	var (
		status     string
		customerID int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quotes",
		Long:  "Lists quotes, optionally narrowed to one status or one customer.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuotesList(status, customerID)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "only quotes with this status (borrador|enviado|aceptado|rechazado)")
	cmd.Flags().Int64Var(&customerID, "customer", 0, "only quotes for this customer")
	return cmd
}

func runQuotesList(status string, customerID int64) error {
	if status != "" && !quote.Status(status).IsValid() {
		return fmt.Errorf("unknown quote status %q (valid: %s)", status, joinStatuses(quote.ValidStatuses))
	}

	c, err := newGateway()
	if err != nil {
		return err
	}

	var (
		quotes []*quote.Quote
	)
	if customerID > 0 {
		quotes, err = c.CustomerQuotes(customerID)
		if err != nil {
			return err
		}
		if status != "" {
			kept := quotes[:0]
			for _, q := range quotes {
				if q.Status == quote.Status(status) {
					kept = append(kept, q)
				}
			}
			quotes = kept
		}
	} else {
		quotes, err = c.ListQuotes(quote.Status(status))
		if err != nil {
			return err
		}
	}

	if isJSON() {
		return printJSON(quotes)
	}

	if len(quotes) == 0 {
		fmt.Println("No quotes match.")
		return nil
	}

	return printQuoteTable(quotes)
}

func newQuotesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a quote with its line items and totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "quote")
			if err != nil {
				return err
			}
			return runQuotesShow(id)
		},
	}
}

func runQuotesShow(id int64) error {
	c, err := newGateway()
	if err != nil {
		return err
	}

	q, err := c.GetQuote(id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(q)
	}

	return printQuoteSummary(q)
}

func newQuotesAddCmd() *cobra.Command {
	var (
		customerID int64
		title      string
		desc       string
		lines      []string
		noTax      bool
		taxRate    float64
		validUntil string
		notes      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a quote",
		Long: `Creates a quote from repeatable --line flags, each "concepto|cantidad|precio"
with an optional fourth "|descripcion" part. Amounts accept a comma or a
dot as the decimal separator; unparseable numbers count as zero. Without
any --line flag the quote starts with a single "Mano de obra" line.
Tax is applied at ` + "21%" + ` unless --no-tax or --tax-rate says otherwise.`,
		Example: `  tg quotes add --customer 3 --title "Reforma baño" \
      --line "Mano de obra|8|35" --line "Material|1|120,50|Azulejos y junta"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := quote.NewDraft()
			d.CustomerID = customerID
			d.Title = title
			d.Description = desc
			d.ValidUntil = validUntil
			d.Notes = notes
			if noTax {
				d.ApplyTax = false
			}
			if cmd.Flags().Changed("tax-rate") {
				d.TaxRate = taxRate
			}
			if len(lines) > 0 {
				d.Lines = nil
				for _, raw := range lines {
					l, err := parseLineFlag(raw)
					if err != nil {
						return err
					}
					d.AddLine(l)
				}
			}
			return runQuotesAdd(d)
		},
	}

	cmd.Flags().Int64Var(&customerID, "customer", 0, "customer ID")
	cmd.Flags().StringVar(&title, "title", "", "quote title")
	cmd.Flags().StringVar(&desc, "description", "", "quote description")
	cmd.Flags().StringArrayVar(&lines, "line", nil, `line item as "concepto|cantidad|precio[|descripcion]" (repeatable)`)
	cmd.Flags().BoolVar(&noTax, "no-tax", false, "do not apply tax")
	cmd.Flags().Float64Var(&taxRate, "tax-rate", quote.DefaultTaxRate, "tax percentage")
	cmd.Flags().StringVar(&validUntil, "valid-until", "", "validity date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	return cmd
}

// parseLineFlag parses one --line value. Quantity and price go through
// the same permissive number parsing the edit form uses.
func parseLineFlag(raw string) (quote.Line, error) {
	parts := strings.SplitN(raw, "|", 4)
	if len(parts) < 3 {
		return quote.Line{}, fmt.Errorf(`invalid --line %q: want "concepto|cantidad|precio[|descripcion]"`, raw)
	}
	l := quote.Line{
		Concept:   strings.TrimSpace(parts[0]),
		Quantity:  quote.ParseAmount(parts[1]),
		UnitPrice: quote.ParseAmount(parts[2]),
	}
	if len(parts) == 4 {
		l.Description = strings.TrimSpace(parts[3])
	}
	return l, nil
}

func runQuotesAdd(d *quote.Draft) error {
	if errs := d.Validate(); !errs.Empty() {
		return errs
	}

	c, err := newGateway()
	if err != nil {
		return err
	}

	created, err := c.CreateQuote(d)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(created)
	}

	fmt.Printf("✓ Quote %s created.\n\n", created.Number)
	return printQuoteSummary(created)
}

func newQuotesStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <estado>",
		Short: "Change a quote's status",
		Long:  "Sets a quote to any of: borrador, enviado, aceptado, rechazado. A rejected quote starts a 30-day deletion countdown; moving it to any other status cancels the countdown.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "quote")
			if err != nil {
				return err
			}
			return runQuotesStatus(id, quote.Status(args[1]))
		},
	}
}

func runQuotesStatus(id int64, status quote.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("unknown quote status %q (valid: %s)", status, joinStatuses(quote.ValidStatuses))
	}

	c, err := newGateway()
	if err != nil {
		return err
	}

	if err := c.SetQuoteStatus(id, status); err != nil {
		return err
	}

	// Refetch so rejection dates and the deletion countdown come from
	// the server rather than being guessed locally.
	q, err := c.GetQuote(id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(q)
	}

	fmt.Printf("✓ Quote %s is now %s.\n", q.Number, q.Status.Badge().Label)
	if q.Status == quote.StatusRejected && q.DaysUntilDeletion != nil {
		fmt.Printf("  It will be deleted in %d days unless its status changes.\n", *q.DaysUntilDeletion)
	}
	return nil
}

func newQuotesStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show quote conversion statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuotesStats()
		},
	}
}

func runQuotesStats() error {
	c, err := newGateway()
	if err != nil {
		return err
	}

	stats, err := c.GetQuoteStats()
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(stats)
	}

	printQuoteStats(stats)
	return nil
}

func newQuotesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete a quote",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "quote")
			if err != nil {
				return err
			}
			return runQuotesRemove(id)
		},
	}
}

func runQuotesRemove(id int64) error {
	c, err := newGateway()
	if err != nil {
		return err
	}

	if err := c.DeleteQuote(id); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{"id": id, "removed": true})
	}

	fmt.Printf("Quote #%d removed.\n", id)
	return nil
}
