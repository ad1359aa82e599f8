package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cofau/internal/services/search"
)

// searchDebounce matches the app's search-as-you-type quiet period.
const searchDebounce = 300 * time.Millisecond

func searchCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:         "search <users|posts|locations> [query]",
		Short:       "Search users, posts, or locations",
		Args:        cobra.RangeArgs(1, 2),
		Annotations: appAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := args[0]
			switch scope {
			case "users", "posts", "locations":
			default:
				return fmt.Errorf("unknown search scope %q", scope)
			}

			if interactive {
				return runInteractiveSearch(cmd.Context(), scope)
			}
			if len(args) < 2 {
				return fmt.Errorf("query required (or use -i)")
			}
			runSearch(cmd.Context(), scope, args[1])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "read queries from stdin, debounced")
	return cmd
}

// runInteractiveSearch reads queries line by line; only the last line typed
// within the debounce window hits the backend.
func runInteractiveSearch(ctx context.Context, scope string) error {
	deb := search.NewDebouncer(searchDebounce, func(query string) {
		runSearch(ctx, scope, query)
		fmt.Print("> ")
	})
	defer deb.Stop()

	fmt.Println("Type to search, empty line to quit.")
	fmt.Print("> ")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			return nil
		}
		deb.Trigger(line)
	}
	return scanner.Err()
}

func runSearch(ctx context.Context, scope, query string) {
	switch scope {
	case "users":
		users, err := appCtx.API.SearchUsers(ctx, query)
		if err != nil {
			appCtx.Log.Warnf("user search failed: %v", err)
			fmt.Println("(no results)")
			return
		}
		if len(users) == 0 {
			fmt.Println("(no results)")
			return
		}
		for _, u := range users {
			fmt.Printf("@%s\n", u.Username)
		}
	case "posts":
		posts, err := appCtx.API.SearchPosts(ctx, query)
		if err != nil {
			appCtx.Log.Warnf("post search failed: %v", err)
			fmt.Println("(no results)")
			return
		}
		if len(posts) == 0 {
			fmt.Println("(no results)")
			return
		}
		for _, p := range posts {
			fmt.Printf("@%s: %s\n", p.Author.Username, p.Caption)
		}
	case "locations":
		locs, err := appCtx.API.SearchLocations(ctx, query)
		if err != nil {
			appCtx.Log.Warnf("location search failed: %v", err)
			fmt.Println("(no results)")
			return
		}
		if len(locs) == 0 {
			fmt.Println("(no results)")
			return
		}
		for _, l := range locs {
			fmt.Printf("%s", l.Name)
			if l.City != "" {
				fmt.Printf(", %s", l.City)
			}
			fmt.Println()
		}
	}
}
