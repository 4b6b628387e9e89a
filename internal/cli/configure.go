package cli

import (
	"github.com/deploysweep-dev/deploysweep/internal/config"
	"github.com/deploysweep-dev/deploysweep/pkg/printer"
	"github.com/spf13/cobra"
)

var configureToken string

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Store the API token locally",
	Long:  `Writes the API token to the credentials file so it does not have to be passed on every run.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configureToken == "" {
			return &config.ConfigError{Msg: "a token is required: dsctl configure --access-token <token>"}
		}
		path, err := config.WriteCredentials(configureToken)
		if err != nil {
			return err
		}
		printer.Successf(cmd.OutOrStdout(), "Wrote credentials to %s", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)
	configureCmd.Flags().StringVar(&configureToken, "access-token", "", "API token to store")
}
