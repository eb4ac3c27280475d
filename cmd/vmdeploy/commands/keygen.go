package commands

import (
	"github.com/spf13/cobra"

	"github.com/azsamples/vmdeploy/cmd/vmdeploy/handlers"
)

// Keygen returns the command for generating an SSH key pair.
//
// The deploy command needs an authorized_keys style public key; keygen
// produces one for operators who do not already have ~/.ssh/id_rsa.pub.
func Keygen() *cobra.Command {
	var (
		dir  string
		bits int
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA SSH key pair for VM access",
		Long: `Keygen generates an RSA key pair and writes it as id_rsa and
id_rsa.pub. Existing keys are never overwritten.

Example:
  vmdeploy keygen --dir ~/.ssh`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Keygen(dir, bits)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "~/.ssh", "Directory to write the key pair into")
	cmd.Flags().IntVar(&bits, "bits", 4096, "RSA key size in bits")

	return cmd
}
