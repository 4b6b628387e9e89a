package cli

import (
	"fmt"

	"github.com/deploysweep-dev/deploysweep/internal/client"
	"github.com/deploysweep-dev/deploysweep/internal/models"
	"github.com/deploysweep-dev/deploysweep/pkg/printer"
	"github.com/spf13/cobra"
)

var (
	listTeam    string
	listProject string
	listOutput  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a project's deployments",
	Long:  `Lists all deployments of a project without selecting anything for deletion.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient, cfg, err := newAPIClient()
		if err != nil {
			return err
		}
		team, project, err := resolveTarget(cfg, listTeam, listProject)
		if err != nil {
			return err
		}

		showProgress := !noProgress && listOutput == string(printer.OutputTypeTable)
		records, err := apiClient.ListDeployments(cmd.Context(), team, project, client.FetchOptions{ShowProgress: showProgress})
		if err != nil {
			return fmt.Errorf("failed to list deployments: %w", err)
		}
		deployments := models.ParseRecords(records)

		switch printer.OutputType(listOutput) {
		case printer.OutputTypeJSON:
			return printer.PrintJSON(cmd.OutOrStdout(), deployments)
		case printer.OutputTypeYAML:
			return printer.PrintYAML(cmd.OutOrStdout(), deployments)
		case printer.OutputTypeTable:
		default:
			return fmt.Errorf("invalid output format %q (valid: table, json, yaml)", listOutput)
		}

		if len(deployments) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No deployments found")
			return nil
		}

		table := printer.NewTablePrinter(cmd.OutOrStdout())
		table.SetHeaders("name", "type", "region", "default")
		for _, d := range deployments {
			table.AddRow(d.Name, string(d.Type), printer.EmptyValueOrDefault(d.Region, "-"), printer.FormatDefault(d.IsDefault))
		}
		return table.Render()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listTeam, "team", "", "Team slug (defaults to DSCTL_TEAM)")
	listCmd.Flags().StringVar(&listProject, "project", "", "Project slug (defaults to DSCTL_PROJECT)")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "Output format (table, json, yaml)")
}
