// Package deployer orchestrates the sample VM deployment: it ensures the
// resource group exists, submits the embedded ARM template with the
// operator's SSH public key, and reports how to connect.
package deployer

import (
	"context"
	"fmt"

	"github.com/azsamples/vmdeploy/internal/azure"
	"github.com/azsamples/vmdeploy/internal/config"
	"github.com/azsamples/vmdeploy/internal/naming"
	"github.com/azsamples/vmdeploy/internal/sshkey"
	"github.com/azsamples/vmdeploy/internal/util/retry"
)

// Deployer deploys the sample template into a resource group.
//
// Construction reads the SSH public key, so a missing or malformed key
// fails before any cloud call is made. The DNS label prefix is fixed at
// construction and does not change across Deploy calls.
type Deployer struct {
	cfg    *config.Config
	client azure.ResourceManager

	// DNSLabelPrefix is the label used for the VM's public hostname.
	DNSLabelPrefix string

	publicKey string
}

// Result describes a completed deployment.
type Result struct {
	DNSLabelPrefix string
	FQDN           string
	AdminUsername  string
	Outputs        map[string]any
}

// SSHCommand returns the command line for connecting to the deployed VM.
func (r *Result) SSHCommand() string {
	return fmt.Sprintf("ssh %s@%s", r.AdminUsername, r.FQDN)
}

// New creates a Deployer for the given configuration and client.
func New(cfg *config.Config, client azure.ResourceManager) (*Deployer, error) {
	publicKey, err := sshkey.Load(cfg.PublicKeyPath)
	if err != nil {
		return nil, err
	}

	label := cfg.DNSLabelPrefix
	if label == "" {
		label = naming.DNSLabel()
	}

	return &Deployer{
		cfg:            cfg,
		client:         client,
		DNSLabelPrefix: label,
		publicKey:      publicKey,
	}, nil
}

// Deploy ensures the resource group exists and submits the template
// deployment, blocking until it completes.
//
// Resource group creation is retried on throttling and server-side
// failures. The deployment submission itself is not retried; a failed
// deployment surfaces to the caller untouched.
func (d *Deployer) Deploy(ctx context.Context) (*Result, error) {
	err := retry.WithExponentialBackoff(ctx, func() error {
		return d.client.EnsureResourceGroup(ctx, d.cfg.ResourceGroup, d.cfg.Location)
	}, retry.WithMaxRetries(3), retry.WithRetryable(azure.IsTransient))
	if err != nil {
		return nil, fmt.Errorf("failed to ensure resource group %s: %w", d.cfg.ResourceGroup, err)
	}

	template, err := loadTemplate()
	if err != nil {
		return nil, err
	}
	parameters := buildParameters(d.publicKey, d.cfg.VMName, d.DNSLabelPrefix)

	outputs, err := d.client.DeployTemplate(ctx, d.cfg.ResourceGroup, d.cfg.DeploymentName, template, parameters)
	if err != nil {
		return nil, fmt.Errorf("deployment %s failed: %w", d.cfg.DeploymentName, err)
	}

	return &Result{
		DNSLabelPrefix: d.DNSLabelPrefix,
		FQDN:           naming.FQDN(d.DNSLabelPrefix, d.cfg.Location),
		AdminUsername:  d.cfg.AdminUsername,
		Outputs:        outputs,
	}, nil
}

// Destroy deletes the resource group which contains the deployment,
// blocking until the deletion completes.
func (d *Deployer) Destroy(ctx context.Context) error {
	if err := d.client.DeleteResourceGroup(ctx, d.cfg.ResourceGroup); err != nil {
		return fmt.Errorf("failed to destroy resource group %s: %w", d.cfg.ResourceGroup, err)
	}
	return nil
}
