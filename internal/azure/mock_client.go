package azure

import (
	"context"
)

// MockClient is a mock implementation of ResourceManager.
type MockClient struct {
	EnsureResourceGroupFunc func(ctx context.Context, name, location string) error
	DeleteResourceGroupFunc func(ctx context.Context, name string) error
	DeployTemplateFunc      func(ctx context.Context, resourceGroup, name string, template, parameters map[string]any) (map[string]any, error)
}

func (m *MockClient) EnsureResourceGroup(ctx context.Context, name, location string) error {
	if m.EnsureResourceGroupFunc == nil {
		return nil
	}
	return m.EnsureResourceGroupFunc(ctx, name, location)
}

func (m *MockClient) DeleteResourceGroup(ctx context.Context, name string) error {
	if m.DeleteResourceGroupFunc == nil {
		return nil
	}
	return m.DeleteResourceGroupFunc(ctx, name)
}

func (m *MockClient) DeployTemplate(ctx context.Context, resourceGroup, name string, template, parameters map[string]any) (map[string]any, error) {
	if m.DeployTemplateFunc == nil {
		return nil, nil
	}
	return m.DeployTemplateFunc(ctx, resourceGroup, name, template, parameters)
}
