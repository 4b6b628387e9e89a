package cli

import (
	"github.com/deploysweep-dev/deploysweep/internal/sweep"
	"github.com/spf13/cobra"
)

var (
	purgeTeam        string
	purgeProject     string
	purgeTypes       []string
	purgeNames       []string
	purgeExclude     []string
	purgeMatch       string
	purgeIncludeDev  bool
	purgeIncludeProd bool
	purgeApply       bool
	purgeYes         bool
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Bulk-delete a project's deployments",
	Long: `Purge deletes the deployments of a project that match the given filters.

Without --apply the command is a dry-run: it reports what would be deleted and
exits. Preview deployments are targeted by default; deleting dev or prod
deployments additionally requires --include-dev or --include-prod.`,
	Example: `  # See which preview deployments would be deleted
  dsctl purge --team acme --project web

  # Delete preview deployments matching a naming scheme, keeping two by name
  dsctl purge --team acme --project web --match '^pr-' --exclude pr-1 --exclude pr-2 --apply

  # Delete a single dev deployment without the interactive prompt
  dsctl purge --team acme --project web --type dev --include-dev --name web-dev --apply --yes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria, err := sweep.NewCriteria(purgeTypes, purgeNames, purgeExclude, purgeMatch, purgeIncludeDev, purgeIncludeProd)
		if err != nil {
			return err
		}

		apiClient, cfg, err := newAPIClient()
		if err != nil {
			return err
		}
		team, project, err := resolveTarget(cfg, purgeTeam, purgeProject)
		if err != nil {
			return err
		}

		runner := &sweep.Runner{
			API:    apiClient,
			Out:    cmd.OutOrStdout(),
			ErrOut: cmd.ErrOrStderr(),
			In:     cmd.InOrStdin(),
		}
		_, err = runner.Run(cmd.Context(), sweep.Options{
			Team:     team,
			Project:  project,
			Criteria: criteria,
			Apply:    purgeApply,
			Yes:      purgeYes,
			Progress: !noProgress,
		})
		return err
	},
}

func init() {
	rootCmd.AddCommand(purgeCmd)
	purgeCmd.Flags().StringVar(&purgeTeam, "team", "", "Team slug (defaults to DSCTL_TEAM)")
	purgeCmd.Flags().StringVar(&purgeProject, "project", "", "Project slug (defaults to DSCTL_PROJECT)")
	purgeCmd.Flags().StringArrayVarP(&purgeTypes, "type", "t", nil, "Deployment type to target: preview, dev, prod (repeatable; default preview)")
	purgeCmd.Flags().StringArrayVarP(&purgeNames, "name", "n", nil, "Restrict to this exact deployment name (repeatable)")
	purgeCmd.Flags().StringArrayVarP(&purgeExclude, "exclude", "e", nil, "Always keep this deployment name (repeatable)")
	purgeCmd.Flags().StringVarP(&purgeMatch, "match", "m", "", "Only select deployment names matching this regular expression")
	purgeCmd.Flags().BoolVar(&purgeIncludeDev, "include-dev", false, "Allow deletion of dev deployments")
	purgeCmd.Flags().BoolVar(&purgeIncludeProd, "include-prod", false, "Allow deletion of prod deployments")
	purgeCmd.Flags().BoolVar(&purgeApply, "apply", false, "Actually delete; without this the run is a dry-run")
	purgeCmd.Flags().BoolVarP(&purgeYes, "yes", "y", false, "Skip the interactive confirmation prompt")
}
