package cli

import (
	"os"
	"strings"

	"github.com/deploysweep-dev/deploysweep/internal/client"
	"github.com/deploysweep-dev/deploysweep/internal/config"
	"github.com/spf13/cobra"
)

var (
	apiURL        string
	tokenOverride string
	noProgress    bool
)

var rootCmd = &cobra.Command{
	Use:   "dsctl",
	Short: "Deployment sweeper",
	Long: `dsctl bulk-deletes cloud deployments belonging to a team's project.

It lists the project's deployments, selects deletion candidates with local
filters, and deletes them one by one after an explicit confirmation. Runs are
dry-run by default.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (overrides DSCTL_API_URL)")
	rootCmd.PersistentFlags().StringVar(&tokenOverride, "token", "", "API bearer token (overrides DSCTL_TOKEN and the credentials file)")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "Disable the fetch spinner")
}

// Root returns the root command, for tests.
func Root() *cobra.Command {
	return rootCmd
}

// newAPIClient resolves configuration and builds an authenticated client.
func newAPIClient() (*client.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	token, err := cfg.ResolveToken(tokenOverride)
	if err != nil {
		return nil, nil, err
	}
	base := strings.TrimSpace(apiURL)
	if base == "" {
		base = cfg.APIBaseURL
	}
	return client.NewClient(base, token), cfg, nil
}

// resolveTarget fills team/project from flags with env fallback.
func resolveTarget(cfg *config.Config, team, project string) (string, string, error) {
	if team == "" {
		team = cfg.Team
	}
	if project == "" {
		project = cfg.Project
	}
	if team == "" || project == "" {
		return "", "", &config.ConfigError{Msg: "team and project are required: pass --team/--project or set DSCTL_TEAM/DSCTL_PROJECT"}
	}
	return team, project, nil
}
