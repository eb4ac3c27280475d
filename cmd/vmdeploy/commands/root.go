// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated
// to handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the vmdeploy CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vmdeploy",
		Short: "Deploy a sample SSH-enabled VM on Azure via an ARM template",
	}

	// Core commands
	cmd.AddCommand(Init())
	cmd.AddCommand(Deploy())
	cmd.AddCommand(Destroy())

	// Utility commands
	cmd.AddCommand(Keygen())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
