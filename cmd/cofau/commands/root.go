package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cofau/internal/app"
	"cofau/internal/services/guard"
	"cofau/internal/store"
)

const defaultBaseURL = "https://api.cofau.app"

// routeGroupAnnotation marks which navigation bucket a subcommand belongs to.
const routeGroupAnnotation = "route_group"

var (
	home       string
	baseURL    string
	passphrase string
	logLevel   string

	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "cofau",
		Short: "Cofau restaurant-review client",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".cofau")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			fs := store.NewSessionFileStore(home)
			wire, err := app.NewWire(app.Config{
				Home:       home,
				BaseURL:    baseURL,
				Passphrase: passphrase,
				LogLevel:   logLevel,
			}, fs)
			if err != nil {
				return err
			}
			appCtx = wire

			// Built-in helpers are not screens; never gate them.
			switch cmd.Name() {
			case "help", "completion", "__complete":
				return nil
			}

			state := appCtx.Sessions.Restore()
			group := guard.RouteGroup(cmd.Annotations[routeGroupAnnotation])
			if group == "" {
				group = guard.GroupApp
			}
			switch guard.Evaluate(state, group) {
			case guard.RedirectLogin:
				return fmt.Errorf("not logged in (run `cofau login`)")
			case guard.RedirectHome:
				cur := appCtx.Sessions.Current()
				who := ""
				if cur.User != nil {
					who = " as " + cur.User.Username
				}
				return fmt.Errorf("already logged in%s (run `cofau logout` first)", who)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.cofau)")
	root.PersistentFlags().StringVar(&baseURL, "base", defaultBaseURL, "backend base URL")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the stored session")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")

	root.AddCommand(
		loginCmd(), logoutCmd(), whoamiCmd(),
		feedCmd(), happeningCmd(), leaderboardCmd(),
		searchCmd(), chatCmd(), storyCmd(), profileCmd(),
	)
	return root.Execute()
}

// appAnnotations tags a screen command as part of the authenticated group.
func appAnnotations() map[string]string {
	return map[string]string{routeGroupAnnotation: string(guard.GroupApp)}
}

// authAnnotations tags a command as part of the login flow.
func authAnnotations() map[string]string {
	return map[string]string{routeGroupAnnotation: string(guard.GroupAuth)}
}
