package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tecnigestion/tg/internal/form"
	"github.com/tecnigestion/tg/internal/gateway"
)

func newRegisterCmd() *cobra.Command {
	var reg gateway.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Long:  "Registers a new account and logs in immediately with the returned token.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(reg)
		},
	}

	cmd.Flags().StringVar(&reg.Name, "name", "", "first name (required)")
	cmd.Flags().StringVar(&reg.Surname, "surname", "", "surname")
	cmd.Flags().StringVar(&reg.Email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&reg.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&reg.Company, "company", "", "company name")
	cmd.Flags().StringVarP(&reg.Password, "password", "p", "", "password (prompted when omitted)")

	return cmd
}

func runRegister(reg gateway.Registration) error {
	errs := form.Errors{}
	form.Required("nombre", reg.Name, errs)
	form.Required("email", reg.Email, errs)
	if !errs.Empty() {
		return errs
	}

	if reg.Password == "" {
		var err error
		reg.Password, err = promptPassword()
		if err != nil {
			return err
		}
	}

	c := gateway.New(getServerURL(), "", nil)
	resp, err := c.Register(reg)
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

	fmt.Printf("✓ Account created. Logged in as %s.\n", resp.User.Email)
	return nil
}
