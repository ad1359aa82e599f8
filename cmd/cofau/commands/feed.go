package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func feedCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "feed",
		Short:       "Latest posts from people you follow",
		Annotations: appAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			posts, err := appCtx.API.Feed(cmd.Context())
			if err != nil {
				// List screens render empty on failure.
				appCtx.Log.Warnf("feed fetch failed: %v", err)
				fmt.Println("(nothing to show)")
				return nil
			}
			if len(posts) == 0 {
				fmt.Println("(nothing to show)")
				return nil
			}
			for _, p := range posts {
				when := time.Unix(p.CreatedUTC, 0).Format("Jan 2 15:04")
				fmt.Printf("@%-16s %s", p.Author.Username, when)
				if p.Restaurant != "" {
					fmt.Printf("  %s", p.Restaurant)
				}
				if p.Rating > 0 {
					fmt.Printf("  %.1f★", p.Rating)
				}
				fmt.Println()
				if p.Caption != "" {
					fmt.Printf("  %s\n", p.Caption)
				}
				fmt.Printf("  %d likes, %d comments\n", p.Likes, p.Comments)
			}
			return nil
		},
	}
}
