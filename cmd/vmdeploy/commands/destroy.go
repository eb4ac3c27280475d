package commands

import (
	"github.com/spf13/cobra"

	"github.com/azsamples/vmdeploy/cmd/vmdeploy/handlers"
)

// Destroy returns the destroy command.
//
// The destroy command deletes the deployment's resource group, which
// removes every resource the template created: the VM, its disk, the
// NIC, the public IP, the virtual network and the storage account.
func Destroy() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Delete the resource group and everything deployed into it",
		Long: `Destroy removes the sample deployment from Azure.

The whole resource group is deleted, including:
  - The virtual machine and its OS disk
  - The network interface and public IP address
  - The virtual network
  - The boot diagnostics storage account

Example:
  vmdeploy destroy -c vmdeploy.yaml

WARNING: This operation is irreversible. Anything else placed in the
resource group is deleted with it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: vmdeploy.yaml)")

	return cmd
}
