package cli

import (
	"github.com/spf13/cobra"
)

// UsernameResult mirrors the API's username response
type UsernameResult struct {
	Username string `json:"username"`
}

func newUsernameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "username",
		Short: "Current username commands",
	}

	cmd.AddCommand(newUsernameGetCmd())
	cmd.AddCommand(newUsernameSetCmd())

	return cmd
}

func newUsernameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the current username",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result UsernameResult
			if err := client.Get("/api/v1/username", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newUsernameSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <username>",
		Short: "Set the current username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"username": args[0]}

			var result UsernameResult
			if err := client.Put("/api/v1/username", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
