package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoami asks the backend for the account behind the current token.
func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "whoami",
		Short:       "Show the current account",
		Annotations: appAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := appCtx.API.Me(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s>\n", user.Username, user.Email)
			if user.DisplayName != "" {
				fmt.Println(user.DisplayName)
			}
			return nil
		},
	}
}
