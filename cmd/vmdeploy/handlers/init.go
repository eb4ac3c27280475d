package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/azsamples/vmdeploy/internal/config"
	"github.com/azsamples/vmdeploy/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// runWizard runs the interactive configuration wizard.
	runWizard = wizard.Run

	// defaultConfig builds the stock configuration.
	defaultConfig = config.FromEnv

	// saveConfig writes a configuration file.
	saveConfig = config.Save
)

// Init handles the init command.
//
// It produces a vmdeploy.yaml, either interactively or from the
// documented defaults, and refuses to overwrite an existing file.
func Init(ctx context.Context, outputPath string, useDefaults bool) error {
	if outputPath == "" {
		outputPath = config.DefaultConfigFilename
	}

	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", outputPath)
	}

	var (
		cfg *config.Config
		err error
	)
	if useDefaults {
		cfg, err = defaultConfig()
	} else {
		cfg, err = runWizard(ctx)
	}
	if err != nil {
		return err
	}

	if err := saveConfig(cfg, outputPath); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n\nNext steps:\n", outputPath)
	fmt.Printf("  export AZURE_TENANT_ID=...     # service principal tenant\n")
	fmt.Printf("  export AZURE_CLIENT_ID=...     # service principal app id\n")
	fmt.Printf("  export AZURE_CLIENT_SECRET=... # service principal secret\n")
	fmt.Printf("  vmdeploy deploy\n")
	return nil
}
