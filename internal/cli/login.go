package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tecnigestion/tg/internal/gateway"
)

func newLoginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Log in and store the session",
		Long:  "Authenticates against the API and stores the access token and user profile locally.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(args[0], password)
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")

	return cmd
}

func runLogin(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}

	if password == "" {
		var err error
		password, err = promptPassword()
		if err != nil {
			return err
		}
	}

	// Unauthenticated client: no stored token, no session to evict.
	c := gateway.New(getServerURL(), "", nil)
	resp, err := c.Login(email, password)
	if err != nil {
		return err
	}

	st, err := sessionStore()
	if err != nil {
		return err
	}

	s, err := st.Load()
	if err != nil {
		return err
	}

	s.Token = resp.AccessToken
	user := resp.User
	s.User = &user
	if flagServer != "" {
		s.ServerURL = flagServer
	}

	if err := st.Save(s); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	fmt.Printf("✓ Logged in as %s.\n", resp.User.Email)
	return nil
}

// promptPassword reads the password from stdin.
func promptPassword() (string, error) {
	fmt.Print("Password: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	password := strings.TrimSpace(line)
	if password == "" {
		return "", fmt.Errorf("no password provided")
	}
	return password, nil
}
