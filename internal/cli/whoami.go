package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user's profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami()
		},
	}
}

func runWhoami() error {
	c, err := newGateway()
	if err != nil {
		return err
	}

	u, err := c.Profile()
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(u)
	}

	fmt.Printf("Name:    %s %s\n", u.Name, u.Surname)
	fmt.Printf("Email:   %s\n", u.Email)
	if u.Phone != "" {
		fmt.Printf("Phone:   %s\n", u.Phone)
	}
	if u.Company != "" {
		fmt.Printf("Company: %s\n", u.Company)
	}
	return nil
}
