package commands

import (
	"github.com/spf13/cobra"

	"github.com/azsamples/vmdeploy/cmd/vmdeploy/handlers"
)

// Deploy returns the command for provisioning the sample VM.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect vmdeploy.yaml)
//	--teardown:   Destroy the resource group again after a successful deploy
//
// Environment variables:
//
//	AZURE_SUBSCRIPTION_ID: subscription to deploy into (optional, has a placeholder default)
//	AZURE_TENANT_ID, AZURE_CLIENT_ID, AZURE_CLIENT_SECRET: service principal credentials (required)
func Deploy() *cobra.Command {
	var (
		configPath string
		teardown   bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Create the resource group and deploy the sample VM",
		Long: `Deploy provisions the sample infrastructure on Azure.

It creates (or updates) the resource group, submits the built-in ARM
template with your SSH public key, waits for the deployment to finish,
and prints the ssh command for connecting to the VM.

If no config file is specified, it looks for vmdeploy.yaml in the current
directory and falls back to environment defaults. Use 'vmdeploy init' to
create a configuration file.

The deployed resources keep billing until you remove them. Run
'vmdeploy destroy' when you are done, or pass --teardown to remove them
immediately after a successful deploy.

Examples:
  # Deploy with environment defaults
  vmdeploy deploy

  # Deploy using a specific config file
  vmdeploy deploy -c production.yaml

  # Deploy, verify, and clean up in one run
  vmdeploy deploy --teardown`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Deploy(cmd.Context(), configPath, teardown)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: vmdeploy.yaml)")
	cmd.Flags().BoolVar(&teardown, "teardown", false, "Destroy the resource group after a successful deploy")

	return cmd
}
