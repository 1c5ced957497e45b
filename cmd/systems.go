package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abapcodestudio/codestudio/internal/client"
	"github.com/abapcodestudio/codestudio/internal/studio"
)

var (
	regType         string
	regHostLabel    string
	regClientNr     string
	regBasisVersion string
)

var systemsCmd = &cobra.Command{
	Use:   "systems",
	Short: "Manage registered SAP systems",
}

var systemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered systems and their agent state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}
		systems, err := c.ListSystems(cmd.Context())
		if err != nil {
			return err
		}
		return newPrinter(cmd.OutOrStdout(), jsonOutput).systems(systems)
	},
}

var systemsRegisterCmd = &cobra.Command{
	Use:   "register <name>",
	Short: "Register a system and print its agent token",
	Long: `Registers system metadata with the backend. Credentials and real hostnames
stay with the on-premise agent; only a display label is sent.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}
		req := client.RegisterSystemRequest{
			Name:         args[0],
			Type:         studio.SystemType(regType),
			HostLabel:    regHostLabel,
			ClientNr:     regClientNr,
			BasisVersion: regBasisVersion,
		}
		return runRegisterWith(cmd.Context(), c, newPrinter(cmd.OutOrStdout(), jsonOutput), req)
	},
}

func init() {
	f := systemsRegisterCmd.Flags()
	f.StringVarP(&regType, "type", "t", string(studio.SystemECC), "System type (ecc or btp_abap_cloud)")
	f.StringVar(&regHostLabel, "host-label", "", "Display label for the host")
	f.StringVar(&regClientNr, "client", "100", "SAP client number")
	f.StringVar(&regBasisVersion, "basis-version", "", "SAP_BASIS release")

	systemsCmd.AddCommand(systemsListCmd, systemsRegisterCmd)
	rootCmd.AddCommand(systemsCmd)
}

func runRegisterWith(ctx context.Context, c *client.Client, p printer, req client.RegisterSystemRequest) error {
	resp, err := c.RegisterSystem(ctx, req)
	if err != nil {
		return err
	}
	return p.registered(resp)
}
