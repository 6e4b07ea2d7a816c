package cli

import (
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <rock|paper|scissors>",
		Short: "Play a round against the computer opponent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveSessionID(nil)
			if err != nil {
				return err
			}

			body := map[string]string{"move": args[0]}

			var result PlayResult
			if err := client.Post("/api/v1/sessions/"+id+"/play", body, &result); err != nil {
				return err
			}

			return printOutput(result, func() {
				printPlayResult(result)
			})
		},
	}
}
