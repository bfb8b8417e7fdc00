package cli

import (
	"github.com/spf13/cobra"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show today's activity summary",
		Long:    "Shows the server-computed counters: visits today, pending visits, customer count, pending quotes, and accepted revenue for the current month.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard()
		},
	}
}

func runDashboard() error {
	c, err := newGateway()
	if err != nil {
		return err
	}

	s, err := c.Dashboard()
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(s)
	}

	printSummary(s)
	return nil
}
