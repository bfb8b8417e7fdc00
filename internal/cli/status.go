package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tecnigestion/tg/internal/gateway"
	"github.com/tecnigestion/tg/internal/session"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check connection and session status",
		Long:  "Tests the connection to the server and checks whether the stored session is still accepted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	st, err := sessionStore()
	if err != nil {
		return err
	}

	s, err := st.Load()
	if err != nil {
		return err
	}

	fmt.Printf("Server:  %s\n", getServerURL())

	if !s.Authenticated() {
		fmt.Println("Session: not logged in")
		fmt.Println("\nRun 'tg login <email>' to authenticate.")
		return nil
	}

	if s.User != nil {
		fmt.Printf("User:    %s\n", s.User.Email)
	}
	if exp, ok := session.TokenExpiry(s.Token); ok {
		if time.Now().After(exp) {
			fmt.Printf("Token:   expired %s\n", exp.Format("2006-01-02"))
		} else {
			fmt.Printf("Token:   valid until %s\n", exp.Format("2006-01-02"))
		}
	}

	c := gateway.New(getServerURL(), s.Token, st)
	if err := c.Health(); err != nil {
		fmt.Printf("Status:  ✗ cannot reach server (%v)\n", err)
		return nil
	}

	if _, err := c.Profile(); err != nil {
		if errors.Is(err, gateway.ErrSessionExpired) {
			fmt.Println("Status:  ✗ session rejected by server")
			fmt.Println("\nRun 'tg login <email>' to re-authenticate.")
			return nil
		}
		fmt.Printf("Status:  ✗ unexpected response (%v)\n", err)
		return nil
	}

	fmt.Println("Status:  ✓ connected and authenticated")
	return nil
}
