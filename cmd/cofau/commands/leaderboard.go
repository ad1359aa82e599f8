package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cofau/internal/domain"
)

func leaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "leaderboard [users|restaurants]",
		Short:       "Top contributors",
		Args:        cobra.MaximumNArgs(1),
		Annotations: appAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := domain.LeaderboardUsers
			if len(args) == 1 {
				kind = domain.LeaderboardKind(args[0])
				if kind != domain.LeaderboardUsers && kind != domain.LeaderboardRestaurants {
					return fmt.Errorf("unknown leaderboard %q (want users or restaurants)", args[0])
				}
			}
			rows, err := appCtx.API.Leaderboard(cmd.Context(), kind)
			if err != nil {
				appCtx.Log.Warnf("leaderboard fetch failed: %v", err)
				fmt.Println("(no contributors)")
				return nil
			}
			if len(rows) == 0 {
				fmt.Println("(no contributors)")
				return nil
			}
			for _, r := range rows {
				name := r.Username
				if r.DisplayName != "" {
					name = fmt.Sprintf("%s (%s)", r.DisplayName, r.Username)
				}
				fmt.Printf("%3d. %-32s %d pts\n", r.Rank, name, r.Points)
			}
			return nil
		},
	}
}
