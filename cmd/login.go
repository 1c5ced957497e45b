package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abapcodestudio/codestudio/internal/credential"
)

var loginCmd = &cobra.Command{
	Use:   "login [token]",
	Short: "Store the API token used for the backend",
	Long: `Stores an API token in ~/.codestudio/credentials.json (mode 0600).

The token is read from the argument or, when omitted, from the first line of
standard input. A running codestudio UI picks up the new token without a restart.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	if _, err := setup(cmd); err != nil {
		return err
	}
	store, err := credentialStore()
	if err != nil {
		return err
	}
	return runLoginWith(store, args, os.Stdin, cmd.OutOrStdout())
}

// runLoginWith allows injecting the store and input for testing
func runLoginWith(store *credential.Store, args []string, input io.Reader, out io.Writer) error {
	var token string
	if len(args) > 0 {
		token = args[0]
	} else {
		fmt.Fprint(out, "API token: ")
		line, err := bufio.NewReader(input).ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("error reading token: %w", err)
		}
		token = line
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("no token given")
	}

	if err := store.Save(token); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "Token saved to %s\n", store.Path())
	return err
}
