// Package config resolves deployment configuration from the environment
// and an optional vmdeploy.yaml file.
//
// Resolution happens once at startup. Defaults are documented constants;
// a config file overrides defaults, and the AZURE_SUBSCRIPTION_ID
// environment variable overrides both. Values are used exactly as given,
// without normalization.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Default configuration values. These match the published deployment
// sample so that a run with no configuration at all still works against
// a real subscription once AZURE_SUBSCRIPTION_ID is set.
const (
	DefaultSubscriptionID = "11111111-1111-1111-1111-111111111111"
	DefaultResourceGroup  = "azure-python-deployment-sample"
	DefaultLocation       = "westus"
	DefaultVMName         = "azure-deployment-sample-vm"
	DefaultDeploymentName = "azure-sample"
	DefaultAdminUsername  = "azureSample"
)

// EnvSubscriptionID is the environment variable consumed directly.
// AZURE_TENANT_ID, AZURE_CLIENT_ID and AZURE_CLIENT_SECRET are read by
// the credential provider, not by this package.
const EnvSubscriptionID = "AZURE_SUBSCRIPTION_ID"

// Config holds the resolved deployment configuration. It is built once
// at startup and not mutated afterwards.
type Config struct {
	SubscriptionID string `yaml:"subscription_id"`
	ResourceGroup  string `yaml:"resource_group"`
	Location       string `yaml:"location"`
	PublicKeyPath  string `yaml:"public_key_path"`
	VMName         string `yaml:"vm_name"`
	AdminUsername  string `yaml:"admin_username"`
	DeploymentName string `yaml:"deployment_name"`

	// DNSLabelPrefix pins the DNS label instead of generating one.
	// Empty means generate.
	DNSLabelPrefix string `yaml:"dns_label_prefix,omitempty"`
}

// Default returns a Config populated with the documented defaults.
// The public key path is the current user's ~/.ssh/id_rsa.pub.
func Default() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return &Config{
		SubscriptionID: DefaultSubscriptionID,
		ResourceGroup:  DefaultResourceGroup,
		Location:       DefaultLocation,
		PublicKeyPath:  filepath.Join(home, ".ssh", "id_rsa.pub"),
		VMName:         DefaultVMName,
		AdminUsername:  DefaultAdminUsername,
		DeploymentName: DefaultDeploymentName,
	}, nil
}

// FromEnv resolves configuration from defaults plus the environment.
func FromEnv() (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays environment values. The subscription id is taken
// verbatim; an empty variable is treated as unset.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvSubscriptionID); v != "" {
		c.SubscriptionID = v
	}
}

// Validate checks that required fields are present. A subscription id
// that is not a well-formed UUID is logged as a warning rather than
// rejected, since the API is the authority on what it accepts.
func (c *Config) Validate() error {
	if c.SubscriptionID == "" {
		return fmt.Errorf("subscription id must not be empty")
	}
	if c.ResourceGroup == "" {
		return fmt.Errorf("resource group must not be empty")
	}
	if c.Location == "" {
		return fmt.Errorf("location must not be empty")
	}
	if c.VMName == "" {
		return fmt.Errorf("vm name must not be empty")
	}
	if c.DeploymentName == "" {
		return fmt.Errorf("deployment name must not be empty")
	}
	if c.PublicKeyPath == "" {
		return fmt.Errorf("public key path must not be empty")
	}
	if _, err := uuid.Parse(c.SubscriptionID); err != nil {
		log.Printf("Warning: subscription id %q is not a well-formed UUID", c.SubscriptionID)
	}
	return nil
}
