package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abapcodestudio/codestudio/internal/client"
	"github.com/abapcodestudio/codestudio/internal/studio"
)

var (
	sessSystem    string
	sessModel     string
	reviewAction  string
	reviewComment string
)

var sessionsCmd = &cobra.Command{
	Use:     "sessions",
	Aliases: []string{"session"},
	Short:   "Create, inspect and review AI sessions",
}

var sessionsCreateCmd = &cobra.Command{
	Use:   "create <prompt>",
	Short: "Start an AI session for a prompt",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}
		req := client.SessionRequest{
			Prompt:          strings.Join(args, " "),
			TargetSystem:    sessSystem,
			ModelPreference: studio.Model(sessModel),
		}
		resp, err := c.CreateSession(cmd.Context(), req)
		if err != nil {
			return err
		}
		return newPrinter(cmd.OutOrStdout(), jsonOutput).sessionResponse(resp)
	},
}

var sessionsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a stored session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}
		s, err := c.GetSession(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return newPrinter(cmd.OutOrStdout(), jsonOutput).session(s)
	},
}

var sessionsReviewCmd = &cobra.Command{
	Use:   "review <id>",
	Short: "Approve, reject or comment on a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}
		return runReviewWith(cmd.Context(), c, newPrinter(cmd.OutOrStdout(), jsonOutput), args[0], reviewAction, reviewComment)
	},
}

func init() {
	sessionsCreateCmd.Flags().StringVarP(&sessSystem, "system", "s", "", "Target system")
	sessionsCreateCmd.Flags().StringVarP(&sessModel, "model", "m", string(studio.ModelAuto), "Model preference")
	sessionsReviewCmd.Flags().StringVarP(&reviewAction, "action", "a", string(studio.ActionApprove), "approve, reject or comment")
	sessionsReviewCmd.Flags().StringVarP(&reviewComment, "comment", "c", "", "Review comment")

	sessionsCmd.AddCommand(sessionsCreateCmd, sessionsGetCmd, sessionsReviewCmd)
	rootCmd.AddCommand(sessionsCmd)
}

// runReviewWith validates the action locally so a typo never reaches the backend.
func runReviewWith(ctx context.Context, c *client.Client, p printer, id, action, comment string) error {
	a, err := studio.ParseReviewAction(strings.ToLower(action))
	if err != nil {
		return err
	}
	resp, err := c.ReviewSession(ctx, id, client.ReviewRequest{Action: a, Comment: comment})
	if err != nil {
		return err
	}
	return p.review(resp)
}
