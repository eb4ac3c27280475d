// Package wizard implements the interactive configuration flow behind
// "vmdeploy init". It asks a handful of questions and writes a
// vmdeploy.yaml the deploy command can pick up.
package wizard

import (
	"context"
	"fmt"
	"regexp"

	"github.com/charmbracelet/huh"

	"github.com/azsamples/vmdeploy/internal/config"
)

// resourceGroupRegex validates resource group names: 1-90 word
// characters, periods, hyphens or parentheses, not ending in a period.
var resourceGroupRegex = regexp.MustCompile(`^[-\w._()]{0,89}[-\w_()]$`)

// dnsLabelRegex validates an optional pinned DNS label.
var dnsLabelRegex = regexp.MustCompile(`^[a-z][a-z0-9-]{1,61}[a-z0-9]$`)

// locations offered by the wizard. The sample template works in any
// region; this list just covers the common ones.
var locations = []string{
	"westus", "westus2", "eastus", "eastus2",
	"centralus", "northeurope", "westeurope", "southeastasia",
}

// Run executes the interactive wizard and returns the resulting
// configuration. The zero answers are the same defaults a non-interactive
// run would use.
func Run(ctx context.Context) (*config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subscription ID").
				Description("Azure subscription to deploy into (AZURE_SUBSCRIPTION_ID overrides this)").
				Placeholder(config.DefaultSubscriptionID).
				Value(&cfg.SubscriptionID),
			huh.NewInput().
				Title("Resource Group").
				Description("Created if it does not exist").
				Placeholder(config.DefaultResourceGroup).
				Value(&cfg.ResourceGroup).
				Validate(validateResourceGroup),
			huh.NewSelect[string]().
				Title("Location").
				Description("Azure region for the resource group and VM").
				Options(locationOptions()...).
				Value(&cfg.Location),
		).Title("Deployment Target"),
		huh.NewGroup(
			huh.NewInput().
				Title("VM Name").
				Placeholder(config.DefaultVMName).
				Value(&cfg.VMName),
			huh.NewInput().
				Title("SSH Public Key Path").
				Description("authorized_keys format; run 'vmdeploy keygen' if you have none").
				Placeholder("~/.ssh/id_rsa.pub").
				Value(&cfg.PublicKeyPath),
			huh.NewInput().
				Title("DNS Label Prefix (Optional)").
				Description("Leave empty to auto-generate a haiku label per run").
				Value(&cfg.DNSLabelPrefix).
				Validate(validateDNSLabel),
		).Title("Virtual Machine"),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard aborted: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func locationOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(locations))
	for _, loc := range locations {
		opts = append(opts, huh.NewOption(loc, loc))
	}
	return opts
}

func validateResourceGroup(s string) error {
	if s == "" {
		return nil // default applies
	}
	if !resourceGroupRegex.MatchString(s) {
		return fmt.Errorf("invalid resource group name")
	}
	return nil
}

func validateDNSLabel(s string) error {
	if s == "" {
		return nil // auto-generated
	}
	if !dnsLabelRegex.MatchString(s) {
		return fmt.Errorf("must be 3-63 lowercase alphanumeric characters or hyphens, starting with a letter")
	}
	return nil
}
