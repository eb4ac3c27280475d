package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// Client implements ResourceManager using the Azure Resource Manager API.
type Client struct {
	groups      *armresources.ResourceGroupsClient
	deployments *armresources.DeploymentsClient
}

// NewClient creates a new Client for the given subscription using the
// supplied credential.
func NewClient(subscriptionID string, credential azcore.TokenCredential) (*Client, error) {
	groups, err := armresources.NewResourceGroupsClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource groups client: %w", err)
	}
	deployments, err := armresources.NewDeploymentsClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create deployments client: %w", err)
	}
	return &Client{
		groups:      groups,
		deployments: deployments,
	}, nil
}

// NewClientFromEnvironment creates a Client authenticated with service
// principal credentials read from AZURE_TENANT_ID, AZURE_CLIENT_ID and
// AZURE_CLIENT_SECRET.
func NewClientFromEnvironment(subscriptionID string) (*Client, error) {
	credential, err := azidentity.NewEnvironmentCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential from environment: %w", err)
	}
	return NewClient(subscriptionID, credential)
}

// --- ResourceGroupManager ---

// EnsureResourceGroup creates or updates the resource group.
func (c *Client) EnsureResourceGroup(ctx context.Context, name, location string) error {
	_, err := c.groups.CreateOrUpdate(ctx, name, armresources.ResourceGroup{
		Location: to.Ptr(location),
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to create resource group: %w", err)
	}
	return nil
}

// DeleteResourceGroup deletes the resource group and waits for the
// deletion to complete.
func (c *Client) DeleteResourceGroup(ctx context.Context, name string) error {
	poller, err := c.groups.BeginDelete(ctx, name, nil)
	if err != nil {
		if IsNotFound(err) {
			return nil // Group already deleted.
		}
		return fmt.Errorf("failed to delete resource group: %w", err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return fmt.Errorf("failed to wait for resource group deletion: %w", err)
	}
	return nil
}

// --- TemplateDeployer ---

// DeployTemplate submits an incremental template deployment and waits
// for it to finish.
func (c *Client) DeployTemplate(ctx context.Context, resourceGroup, name string, template, parameters map[string]any) (map[string]any, error) {
	poller, err := c.deployments.BeginCreateOrUpdate(ctx, resourceGroup, name, armresources.Deployment{
		Properties: &armresources.DeploymentProperties{
			Mode:       to.Ptr(armresources.DeploymentModeIncremental),
			Template:   template,
			Parameters: parameters,
		},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create deployment: %w", err)
	}

	result, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for deployment: %w", err)
	}

	if result.Properties == nil {
		return nil, nil
	}
	outputs, _ := result.Properties.Outputs.(map[string]any)
	return outputs, nil
}
