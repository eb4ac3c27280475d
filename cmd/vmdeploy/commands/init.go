package commands

import (
	"github.com/spf13/cobra"

	"github.com/azsamples/vmdeploy/cmd/vmdeploy/handlers"
)

// Init returns the command for creating a configuration file.
//
// Without flags it runs an interactive wizard. With --defaults it writes
// a vmdeploy.yaml populated with the documented defaults.
func Init() *cobra.Command {
	var (
		outputPath  string
		useDefaults bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a vmdeploy.yaml configuration file",
		Long: `Init creates a configuration file for later deploys.

By default it walks you through the deployment settings interactively.
Pass --defaults to skip the questions and write the stock sample
configuration.

Examples:
  # Interactive configuration
  vmdeploy init

  # Write defaults without prompting
  vmdeploy init --defaults

  # Write to a different file
  vmdeploy init -o staging.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath, useDefaults)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (default: vmdeploy.yaml)")
	cmd.Flags().BoolVar(&useDefaults, "defaults", false, "Write default configuration without prompting")

	return cmd
}
