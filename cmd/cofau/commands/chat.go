package commands

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"cofau/internal/domain"
)

func chatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "chat",
		Short:       "Chat list and live stream",
		Annotations: appAnnotations(),
	}
	cmd.AddCommand(chatListCmd(), chatWatchCmd())
	return cmd
}

func chatListCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "list",
		Short:       "Show your conversations",
		Annotations: appAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			chats, err := appCtx.API.ChatList(cmd.Context())
			if err != nil {
				appCtx.Log.Warnf("chat list fetch failed: %v", err)
				fmt.Println("(no conversations)")
				return nil
			}
			if len(chats) == 0 {
				fmt.Println("(no conversations)")
				return nil
			}
			for _, c := range chats {
				marker := " "
				if c.Unread > 0 {
					marker = fmt.Sprintf("%d", c.Unread)
				}
				when := time.Unix(c.LastMessageUTC, 0).Format("Jan 2 15:04")
				fmt.Printf("%2s @%-16s %s  %s\n", marker, c.PeerUsername, when, c.LastMessage)
			}
			return nil
		},
	}
}

func chatWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "watch",
		Short:       "Stream incoming messages until interrupted",
		Annotations: appAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			fmt.Println("Watching chats (ctrl-c to stop)")
			err := appCtx.Chat.Watch(ctx, func(m domain.ChatMessage) {
				at := time.Unix(m.SentUTC, 0).Format("15:04:05")
				fmt.Printf("[%s] @%s: %s\n", at, m.From, m.Text)
			})
			if ctx.Err() != nil {
				return nil
			}
			return err
		},
	}
}
