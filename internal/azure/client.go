// Package azure provides a wrapper around the Azure Resource Manager API.
package azure

import (
	"context"
)

// ResourceGroupManager defines the interface for managing resource groups.
// It abstracts the underlying cloud provider API.
type ResourceGroupManager interface {
	// EnsureResourceGroup creates the resource group in the given
	// location, or updates it if it already exists. It is idempotent.
	EnsureResourceGroup(ctx context.Context, name, location string) error

	// DeleteResourceGroup deletes the resource group and everything in
	// it. It blocks until the deletion completes and handles the case
	// where the group does not exist.
	DeleteResourceGroup(ctx context.Context, name string) error
}

// TemplateDeployer defines the interface for submitting ARM template
// deployments.
type TemplateDeployer interface {
	// DeployTemplate submits the template to the resource group as an
	// incremental deployment and blocks until the deployment finishes.
	// It returns the deployment outputs, which may be nil.
	DeployTemplate(ctx context.Context, resourceGroup, name string, template, parameters map[string]any) (map[string]any, error)
}

// ResourceManager combines everything the deployer needs from the
// Resource Manager API.
type ResourceManager interface {
	ResourceGroupManager
	TemplateDeployer
}
