// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/azsamples/vmdeploy/internal/azure"
	"github.com/azsamples/vmdeploy/internal/config"
	"github.com/azsamples/vmdeploy/internal/deployer"
)

// VMDeployer interface for testing - matches deployer.Deployer.
type VMDeployer interface {
	Deploy(ctx context.Context) (*deployer.Result, error)
	Destroy(ctx context.Context) error
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newResourceManager creates a new ARM client from environment credentials.
	newResourceManager = func(subscriptionID string) (azure.ResourceManager, error) {
		return azure.NewClientFromEnvironment(subscriptionID)
	}

	// newDeployer creates a new template deployer.
	newDeployer = func(cfg *config.Config, client azure.ResourceManager) (VMDeployer, error) {
		return deployer.New(cfg, client)
	}

	// findConfigFile finds the default config file (for testing injection).
	findConfigFile = config.FindConfigFile

	// loadConfigFile loads config from file (for testing injection).
	loadConfigFile = config.Load

	// configFromEnv resolves config from the environment (for testing injection).
	configFromEnv = config.FromEnv
)

// Deploy provisions the sample VM on Azure.
//
// The flow mirrors the published sample exactly:
//  1. Resolve configuration (env defaults, optionally a vmdeploy.yaml)
//  2. Print the resolved subscription, resource group and key path
//  3. Construct the deployer (reads and validates the public key)
//  4. Announce and run the blocking deployment
//  5. Print the ssh connection hint
//
// There is no local recovery: any error from the deployment propagates
// to the caller and terminates the process. When teardown is false (the
// default) the resource group is left allocated, and billed, after the
// run; the completion message tells the operator how to remove it.
func Deploy(ctx context.Context, configPath string, teardown bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	fmt.Printf("\nInitializing the deployer with subscription id: %s, resource group: %s\n"+
		"and public key located at: %s...\n\n",
		cfg.SubscriptionID, cfg.ResourceGroup, cfg.PublicKeyPath)

	client, err := newResourceManager(cfg.SubscriptionID)
	if err != nil {
		return err
	}

	dep, err := newDeployer(cfg, client)
	if err != nil {
		return err
	}

	fmt.Printf("Beginning the deployment... \n\n")

	result, err := dep.Deploy(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Done deploying!!\n\nYou can connect via: `%s`\n", result.SSHCommand())

	if !teardown {
		fmt.Printf("\nThe resource group %s keeps billing until removed. Clean up with:\n  vmdeploy destroy\n", cfg.ResourceGroup)
		return nil
	}

	log.Printf("Tearing down resource group %s...", cfg.ResourceGroup)
	if err := dep.Destroy(ctx); err != nil {
		return err
	}
	log.Printf("Resource group %s destroyed", cfg.ResourceGroup)
	return nil
}

// loadConfig resolves configuration for a command run.
//
// An explicit path is loaded as-is. Otherwise a vmdeploy.yaml found in
// the working tree is used, and failing that the environment defaults
// apply, so a bare "vmdeploy deploy" works with no config file at all.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return loadConfigFile(configPath)
	}

	if path, err := findConfigFile(); err == nil {
		log.Printf("Using config: %s", path)
		return loadConfigFile(path)
	}

	cfg, err := configFromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
