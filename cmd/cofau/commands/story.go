package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cofau/internal/domain"
)

func storyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "story",
		Short:       "Create stories",
		Annotations: appAnnotations(),
	}
	cmd.AddCommand(storyUploadCmd())
	return cmd
}

// story upload <file>: post a media file as a story.
func storyUploadCmd() *cobra.Command {
	var caption string

	cmd := &cobra.Command{
		Use:         "upload <file>",
		Short:       "Upload a photo or video as a story",
		Args:        cobra.ExactArgs(1),
		Annotations: appAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			story, err := appCtx.API.UploadStory(cmd.Context(), f, domain.StoryUpload{
				Caption:  caption,
				Filename: args[0],
			})
			if err != nil {
				// Mutating actions surface their errors.
				return err
			}
			fmt.Printf("Story posted: %s\n", story.MediaURL)
			return nil
		},
	}
	cmd.Flags().StringVar(&caption, "caption", "", "optional caption")
	return cmd
}
