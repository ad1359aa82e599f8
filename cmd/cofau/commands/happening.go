package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func happeningCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "happening",
		Short:       "Stories happening right now",
		Annotations: appAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			stories, err := appCtx.API.Happening(cmd.Context())
			if err != nil {
				appCtx.Log.Warnf("happening fetch failed: %v", err)
				fmt.Println("(nothing happening)")
				return nil
			}
			if len(stories) == 0 {
				fmt.Println("(nothing happening)")
				return nil
			}
			for _, s := range stories {
				left := time.Until(time.Unix(s.ExpiresUTC, 0)).Round(time.Minute)
				fmt.Printf("@%-16s %s", s.Author.Username, s.MediaURL)
				if s.Caption != "" {
					fmt.Printf("  %q", s.Caption)
				}
				if left > 0 {
					fmt.Printf("  (%s left)", left)
				}
				fmt.Println()
			}
			return nil
		},
	}
}
