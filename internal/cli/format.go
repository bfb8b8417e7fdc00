package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/tecnigestion/tg/internal/customer"
	"github.com/tecnigestion/tg/internal/gateway"
	"github.com/tecnigestion/tg/internal/quote"
	"github.com/tecnigestion/tg/internal/visit"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// money formats a wire amount with two decimals and the euro sign.
func money(v float64) string {
	return quote.Money(decimal.NewFromFloat(v))
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// orDash substitutes "-" for empty table cells.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// printCustomerTable prints customers as a formatted table.
func printCustomerTable(customers []*customer.Customer) error {
	if len(customers) == 0 {
		fmt.Println("No customers found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tKIND\tPHONE\tCITY"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}

	for _, c := range customers {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			c.ID, truncate(c.FullName(), 30), c.Kind.Label(), c.Phone, orDash(c.City)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d customers\n", len(customers))
	return nil
}

// printCustomerSummary prints a single customer in text format.
func printCustomerSummary(c *customer.Customer) {
	fmt.Printf("Customer #%d\n", c.ID)
	fmt.Printf("  Name:     %s\n", c.FullName())
	fmt.Printf("  Kind:     %s\n", c.Kind.Label())
	fmt.Printf("  Phone:    %s\n", c.Phone)
	if c.SecondaryPhone != "" {
		fmt.Printf("  Phone 2:  %s\n", c.SecondaryPhone)
	}
	if c.Email != "" {
		fmt.Printf("  Email:    %s\n", c.Email)
	}
	if c.Address != "" {
		addr := c.Address
		if c.City != "" {
			addr += ", " + c.City
		}
		fmt.Printf("  Address:  %s\n", addr)
	}
	if c.PostalCode != "" {
		fmt.Printf("  Postal:   %s\n", c.PostalCode)
	}
	if c.Province != "" {
		fmt.Printf("  Province: %s\n", c.Province)
	}
	if c.TaxID != "" {
		fmt.Printf("  Tax ID:   %s\n", c.TaxID)
	}
	if c.Notes != "" {
		fmt.Printf("  Notes:    %s\n", c.Notes)
	}
}

// printVisitTable prints visits as a formatted table.
func printVisitTable(visits []*visit.Visit) error {
	if len(visits) == 0 {
		fmt.Println("No visits found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tDATE\tTIME\tTITLE\tCUSTOMER\tCATEGORY\tSTATUS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}

	for _, v := range visits {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			v.ID, v.Date, orDash(v.Time), truncate(v.Title, 30),
			truncate(orDash(v.CustomerName), 25), v.Category.Label(), v.Status.Badge().Label); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d visits\n", len(visits))
	return nil
}

// printVisitSummary prints a single visit in text format.
func printVisitSummary(v *visit.Visit) {
	fmt.Printf("Visit #%d  [%s]\n", v.ID, v.Status.Badge().Label)
	fmt.Printf("  Title:    %s\n", v.Title)
	fmt.Printf("  Date:     %s", v.Date)
	if v.Time != "" {
		fmt.Printf(" %s", v.Time)
	}
	fmt.Println()
	fmt.Printf("  Category: %s\n", v.Category.Label())
	fmt.Printf("  Priority: %s\n", v.Priority)
	if v.CustomerName != "" {
		fmt.Printf("  Customer: %s (#%d)\n", v.CustomerName, v.CustomerID)
	} else {
		fmt.Printf("  Customer: #%d\n", v.CustomerID)
	}
	if v.CustomerPhone != "" {
		fmt.Printf("  Phone:    %s\n", v.CustomerPhone)
	}
	if v.CustomerAddress != "" {
		fmt.Printf("  Address:  %s\n", v.CustomerAddress)
	}
	if v.Description != "" {
		fmt.Printf("  Details:  %s\n", v.Description)
	}
	if v.InternalNotes != "" {
		fmt.Printf("  Notes:    %s\n", v.InternalNotes)
	}
	if v.SignerName != "" {
		fmt.Printf("  Signed:   %s\n", v.SignerName)
	}
	if v.CompletedAt != "" {
		fmt.Printf("  Done at:  %s\n", v.CompletedAt)
	}
}

// quoteStatusCell renders a quote's status for table output, appending
// the deletion countdown for rejected quotes.
func quoteStatusCell(q *quote.Quote) string {
	label := q.Status.Badge().Label
	if q.Status == quote.StatusRejected && q.DaysUntilDeletion != nil {
		label = fmt.Sprintf("%s (deletes in %dd)", label, *q.DaysUntilDeletion)
	}
	return label
}

// printQuoteTable prints quotes as a formatted table.
func printQuoteTable(quotes []*quote.Quote) error {
	if len(quotes) == 0 {
		fmt.Println("No quotes found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNUMBER\tTITLE\tCUSTOMER\tTOTAL\tSTATUS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}

	for _, q := range quotes {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			q.ID, orDash(q.Number), truncate(q.Title, 30),
			truncate(orDash(q.CustomerName), 25), money(q.Total), quoteStatusCell(q)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d quotes\n", len(quotes))
	return nil
}

// printQuoteSummary prints a full quote with lines and totals.
func printQuoteSummary(q *quote.Quote) error {
	fmt.Printf("Quote #%d  %s  [%s]\n", q.ID, q.Number, q.Status.Badge().Label)
	fmt.Printf("  Title:    %s\n", q.Title)
	if q.CustomerName != "" {
		fmt.Printf("  Customer: %s (#%d)\n", q.CustomerName, q.CustomerID)
	} else {
		fmt.Printf("  Customer: #%d\n", q.CustomerID)
	}
	if q.Description != "" {
		fmt.Printf("  Details:  %s\n", q.Description)
	}
	if q.IssuedOn != "" {
		fmt.Printf("  Issued:   %s\n", q.IssuedOn)
	}
	if q.ValidUntil != "" {
		fmt.Printf("  Valid to: %s\n", q.ValidUntil)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "  CONCEPT\tQTY\tPRICE\tTOTAL"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	for _, l := range q.Lines {
		if _, err := fmt.Fprintf(w, "  %s\t%g\t%s\t%s\n",
			truncate(l.Concept, 35), l.Quantity, money(l.UnitPrice), quote.Money(quote.LineTotal(l))); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Subtotal: %s\n", money(q.Subtotal))
	if q.ApplyTax {
		fmt.Printf("  IVA %g%%:  %s\n", q.TaxRate, money(q.TaxAmount))
	}
	fmt.Printf("  Total:    %s\n", money(q.Total))

	if q.Status == quote.StatusRejected && q.DaysUntilDeletion != nil {
		fmt.Printf("\n  Deleted automatically in %d days.\n", *q.DaysUntilDeletion)
	}
	if q.Notes != "" {
		fmt.Printf("\n  Notes: %s\n", q.Notes)
	}
	return nil
}

// printSummary prints the dashboard counters.
func printSummary(s *gateway.Summary) {
	fmt.Printf("Visits today:    %d\n", s.VisitsToday)
	fmt.Printf("Pending visits:  %d\n", s.VisitsPending)
	fmt.Printf("Customers:       %d\n", s.TotalCustomers)
	fmt.Printf("Pending quotes:  %d\n", s.QuotesPending)
	fmt.Printf("Billed this month: %s\n", money(s.MonthlyRevenue))
}

// printQuoteStats prints the quote statistics summary.
func printQuoteStats(s *gateway.QuoteStats) {
	fmt.Printf("Quotes:     %d\n", s.Total)
	fmt.Printf("Accepted:   %d\n", s.Accepted)
	fmt.Printf("Pending:    %d\n", s.Pending)
	fmt.Printf("Rejected:   %d\n", s.Rejected)
	fmt.Printf("Conversion: %.1f%%\n", s.ConversionRate)
}
