package handlers

import (
	"context"
	"fmt"
	"log"
)

// Destroy handles the destroy command.
//
// It deletes the deployment's resource group, which removes every
// resource the template created. Deleting the group rather than the
// individual resources matches how the deployment is scoped: the group
// exists only to hold this sample.
func Destroy(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	log.Printf("Destroying resource group: %s", cfg.ResourceGroup)

	client, err := newResourceManager(cfg.SubscriptionID)
	if err != nil {
		return err
	}

	if err := client.DeleteResourceGroup(ctx, cfg.ResourceGroup); err != nil {
		return fmt.Errorf("destroy failed: %w", err)
	}

	log.Printf("Resource group %s destroyed successfully", cfg.ResourceGroup)
	return nil
}
