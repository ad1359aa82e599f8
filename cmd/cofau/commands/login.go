package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cofau/internal/domain"
)

func loginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:         "login",
		Short:       "Sign in and persist the session",
		Annotations: authAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if email == "" {
				return fmt.Errorf("--email required")
			}

			fmt.Print("Password: ")
			reader := bufio.NewReader(os.Stdin)
			password, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			password = strings.TrimRight(password, "\r\n")

			err = appCtx.Sessions.Login(cmd.Context(), domain.Credentials{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			cur := appCtx.Sessions.Current()
			fmt.Printf("Logged in as %s (%s account)\n", cur.User.Username, cur.AccountType)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
