package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

// PlayerResult mirrors the API's player response for output purposes
type PlayerResult struct {
	ID           string          `json:"id"`
	Nickname     string          `json:"nickname"`
	Avatar       string          `json:"avatar"`
	Comments     []CommentResult `json:"comments"`
	CommentCount int             `json:"comment_count"`
}

// CommentResult mirrors the API's comment response
type CommentResult struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

// RosterResult mirrors the API's roster response
type RosterResult struct {
	Players []PlayerResult `json:"players"`
}

func newRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Roster management commands",
	}

	cmd.AddCommand(newRosterListCmd())
	cmd.AddCommand(newRosterAddCmd())
	cmd.AddCommand(newRosterCommentCmd())
	cmd.AddCommand(newRosterUncommentCmd())

	return cmd
}

func newRosterListCmd() *cobra.Command {
	var query, field, sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players, optionally filtered and sorted",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := url.Values{}
			if query != "" {
				params.Set("query", query)
			}
			if field != "" {
				params.Set("field", field)
			}
			if sortBy != "" {
				params.Set("sort", sortBy)
			}

			path := "/api/v1/roster"
			if encoded := params.Encode(); encoded != "" {
				path += "?" + encoded
			}

			var result RosterResult
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Substring to match")
	cmd.Flags().StringVar(&field, "field", "", "Search field: id, nickname")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort order: insertion, comments")

	return cmd
}

func newRosterAddCmd() *cobra.Command {
	var id, nickname, avatar, comment string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a player to the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"id":       id,
				"nickname": nickname,
			}
			if avatar != "" {
				req["avatar"] = avatar
			}
			if comment != "" {
				req["comment"] = comment
			}

			var result PlayerResult
			if err := client.Post("/api/v1/roster/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Player id (required)")
	cmd.Flags().StringVar(&nickname, "nickname", "", "Player nickname (required)")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar URL")
	cmd.Flags().StringVar(&comment, "comment", "", "Initial comment")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("nickname")

	return cmd
}

func newRosterCommentCmd() *cobra.Command {
	var text, author string

	cmd := &cobra.Command{
		Use:   "comment <player-id>",
		Short: "Add a comment to a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"text":   text,
				"author": author,
			}

			var result CommentResult
			path := fmt.Sprintf("/api/v1/roster/players/%s/comments", args[0])
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Comment text (required)")
	cmd.Flags().StringVar(&author, "author", "", "Comment author (required)")
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("author")

	return cmd
}

func newRosterUncommentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uncomment <player-id> <comment-id>",
		Short: "Delete a comment from a player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/roster/players/%s/comments/%s", args[0], args[1])
			if err := client.Delete(path); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("comment deleted")
			return nil
		},
	}

	return cmd
}
