package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "logout",
		Short:       "Clear the session",
		Annotations: appAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Sessions.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}
