package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		Long:  "Removes the stored access token and cached user profile.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout()
		},
	}
}

func runLogout() error {
	st, err := sessionStore()
	if err != nil {
		return err
	}

	s, err := st.Load()
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	if !s.Authenticated() {
		fmt.Println("Not logged in.")
		return nil
	}

	if err := st.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	fmt.Println("✓ Logged out. Session removed.")
	return nil
}
