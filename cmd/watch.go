package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/abapcodestudio/codestudio/internal/channel"
	"github.com/abapcodestudio/codestudio/internal/client"
)

var watchCount int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream real-time channel frames",
	Long: `Opens the real-time channel and prints every inbound frame until interrupted.
The channel reconnects on its own after a drop. With --json the raw frame
documents are printed one per line.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}
		return runWatchWith(cmd.Context(), c, cmd.OutOrStdout(), jsonOutput, watchCount)
	},
}

func init() {
	watchCmd.Flags().IntVarP(&watchCount, "count", "n", 0, "Exit after this many frames (0 streams until interrupted)")
	rootCmd.AddCommand(watchCmd)
}

// runWatchWith prints frames until ctx is done or count frames arrived. The
// handler is the only writer to out until the channel is closed.
func runWatchWith(ctx context.Context, c *client.Client, out io.Writer, asJSON bool, count int) error {
	done := make(chan struct{})
	seen := 0
	c.OpenChannel(func(f channel.Frame) {
		if count > 0 && seen >= count {
			return
		}
		if asJSON {
			fmt.Fprintln(out, string(f.Raw))
		} else {
			fmt.Fprintln(out, formatFrame(time.Now(), f))
		}
		seen++
		if count > 0 && seen == count {
			close(done)
		}
	})
	defer c.CloseChannel()

	select {
	case <-ctx.Done():
	case <-done:
	}
	return nil
}

func formatFrame(at time.Time, f channel.Frame) string {
	session := f.SessionID
	if session == "" {
		session = "-"
	}
	return fmt.Sprintf("%s  %-13s %-12s %s", at.Format("15:04:05"), f.Type, session, f.Raw)
}
