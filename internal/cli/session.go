package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Manage play sessions",
	}

	sessionCmd.AddCommand(newSessionCreateCmd())
	sessionCmd.AddCommand(newSessionGetCmd())
	sessionCmd.AddCommand(newSessionResetCmd())
	sessionCmd.AddCommand(newSessionDeleteCmd())

	return sessionCmd
}

func newSessionCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new session and remember it",
		RunE: func(cmd *cobra.Command, args []string) error {
			var sess Session
			if err := client.Post("/api/v1/sessions", nil, &sess); err != nil {
				return err
			}

			if err := cfg.SaveSession(sess.ID); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			return printOutput(sess, func() {
				fmt.Printf("Created session %s\n", sess.ID)
			})
		},
	}
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [session-id]",
		Short: "Show a session's state and score",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveSessionID(args)
			if err != nil {
				return err
			}

			var sess Session
			if err := client.Get("/api/v1/sessions/"+id, &sess); err != nil {
				return err
			}

			return printOutput(sess, func() {
				printSession(sess)
			})
		},
	}
}

func newSessionResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset [session-id]",
		Short: "Reset a session's history and score",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveSessionID(args)
			if err != nil {
				return err
			}

			var sess Session
			if err := client.Post("/api/v1/sessions/"+id+"/reset", nil, &sess); err != nil {
				return err
			}

			return printOutput(sess, func() {
				fmt.Printf("Reset session %s\n", sess.ID)
			})
		},
	}
}

func newSessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [session-id]",
		Short: "Delete a session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveSessionID(args)
			if err != nil {
				return err
			}

			if err := client.Delete("/api/v1/sessions/" + id); err != nil {
				return err
			}

			// Forget the saved session if it was the one deleted
			if id == cfg.SessionID {
				if err := cfg.ClearSession(); err != nil {
					return err
				}
			}

			fmt.Printf("Deleted session %s\n", id)
			return nil
		},
	}
}

// resolveSessionID returns the session ID from args or the remembered session
func resolveSessionID(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.SessionID != "" {
		return cfg.SessionID, nil
	}
	return "", fmt.Errorf("no session ID given and none remembered; run 'rpsgame session create' first")
}
