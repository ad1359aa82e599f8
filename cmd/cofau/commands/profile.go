package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// profile [username]: defaults to your own profile.
func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "profile [username]",
		Short:       "Show a user's profile",
		Args:        cobra.MaximumNArgs(1),
		Annotations: appAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := ""
			if len(args) == 1 {
				username = args[0]
			} else {
				cur := appCtx.Sessions.Current()
				if cur.User != nil {
					username = cur.User.Username
				}
			}
			if username == "" {
				return fmt.Errorf("username required")
			}

			p, err := appCtx.API.Profile(cmd.Context(), username)
			if err != nil {
				return err
			}

			fmt.Printf("@%s", p.User.Username)
			if p.User.DisplayName != "" {
				fmt.Printf(" (%s)", p.User.DisplayName)
			}
			fmt.Println()
			if p.Bio != "" {
				fmt.Println(p.Bio)
			}
			fmt.Printf("%d posts, %d followers, %d following\n", p.PostCount, p.Followers, p.Following)
			for _, post := range p.Posts {
				fmt.Printf("  %s", post.Caption)
				if post.Restaurant != "" {
					fmt.Printf(" @ %s", post.Restaurant)
				}
				fmt.Println()
			}
			return nil
		},
	}
}
