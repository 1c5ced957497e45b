package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abapcodestudio/codestudio/internal/client"
	"github.com/abapcodestudio/codestudio/internal/studio"
)

var (
	objectsSystem string
	objectsType   string
	auditLimit    int
	genSystem     string
	genModel      string
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend liveness",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}
		return runHealthWith(cmd.Context(), c, newPrinter(cmd.OutOrStdout(), jsonOutput))
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backend health and registered systems",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}
		return runStatusWith(cmd.Context(), c, newPrinter(cmd.OutOrStdout(), jsonOutput))
	},
}

var objectsCmd = &cobra.Command{
	Use:   "objects",
	Short: "List catalog objects",
	Long: `Lists ABAP object metadata from the catalog. Filter by system name and by
TADIR object type (PROG, CLAS, INTF, FUGR, FUNC, DDLS, ...).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}
		return runObjectsWith(cmd.Context(), c, newPrinter(cmd.OutOrStdout(), jsonOutput), objectsSystem, objectsType)
	},
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the audit log, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}
		return runAuditWith(cmd.Context(), c, newPrinter(cmd.OutOrStdout(), jsonOutput), auditLimit)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Ask the backend which model would handle a prompt",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}
		req := client.SessionRequest{
			Prompt:          strings.Join(args, " "),
			TargetSystem:    genSystem,
			ModelPreference: studio.Model(genModel),
		}
		return runGenerateWith(cmd.Context(), c, newPrinter(cmd.OutOrStdout(), jsonOutput), req)
	},
}

func init() {
	objectsCmd.Flags().StringVarP(&objectsSystem, "system", "s", "", "Only objects of this system")
	objectsCmd.Flags().StringVarP(&objectsType, "type", "t", "", "Only objects of this type")
	auditCmd.Flags().IntVarP(&auditLimit, "limit", "n", client.DefaultAuditLimit, "Maximum entries (1-500)")
	generateCmd.Flags().StringVarP(&genSystem, "system", "s", "", "Target system")
	generateCmd.Flags().StringVarP(&genModel, "model", "m", string(studio.ModelAuto), "Model preference")

	rootCmd.AddCommand(healthCmd, statusCmd, objectsCmd, auditCmd, generateCmd)
}

func runHealthWith(ctx context.Context, c *client.Client, p printer) error {
	h, err := c.Health(ctx)
	if err != nil {
		return err
	}
	return p.health(h)
}

// statusReport is the combined output of the status command.
type statusReport struct {
	Health  *client.Health  `json:"health"`
	Systems []studio.System `json:"systems"`
}

// runStatusWith fetches health and the system list concurrently. Either
// failure fails the command.
func runStatusWith(ctx context.Context, c *client.Client, p printer) error {
	var report statusReport
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h, err := c.Health(gctx)
		if err != nil {
			return fmt.Errorf("health: %w", err)
		}
		report.Health = h
		return nil
	})
	g.Go(func() error {
		systems, err := c.ListSystems(gctx)
		if err != nil {
			return fmt.Errorf("systems: %w", err)
		}
		report.Systems = systems
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if p.json {
		return p.printJSON(report)
	}
	if err := p.health(report.Health); err != nil {
		return err
	}
	return p.systems(report.Systems)
}

func runObjectsWith(ctx context.Context, c *client.Client, p printer, system, objectType string) error {
	t := studio.ObjectType(strings.ToUpper(objectType))
	if t != "" && !t.Valid() {
		return fmt.Errorf("unknown object type %q", objectType)
	}
	objects, err := c.ListObjects(ctx, system, t)
	if err != nil {
		return err
	}
	return p.objects(objects)
}

func runAuditWith(ctx context.Context, c *client.Client, p printer, limit int) error {
	entries, err := c.AuditLog(ctx, limit)
	if err != nil {
		return err
	}
	return p.audit(entries)
}

func runGenerateWith(ctx context.Context, c *client.Client, p printer, req client.SessionRequest) error {
	resp, err := c.Generate(ctx, req)
	if err != nil {
		return err
	}
	if err := p.generated(resp); err != nil || p.json {
		return err
	}
	localRouteHint(p.w, req)
	return nil
}

// localRouteHint prints the model the local heuristic would pick, for
// comparison with the backend's answer.
func localRouteHint(w io.Writer, req client.SessionRequest) {
	fmt.Fprintf(w, "Local routing hint: %s\n", studio.RouteModel(req.Prompt, req.ModelPreference))
}
