package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azsamples/vmdeploy/internal/azure"
	"github.com/azsamples/vmdeploy/internal/config"
	"github.com/azsamples/vmdeploy/internal/deployer"
)

func fooResult() *deployer.Result {
	return &deployer.Result{
		DNSLabelPrefix: "foo",
		FQDN:           "foo.westus.cloudapp.azure.com",
		AdminUsername:  "azureSample",
	}
}

func TestDeploy_PrintsConnectionHint(t *testing.T) {
	saveAndRestoreFactories(t)

	dep := &stubDeployer{deployResult: fooResult()}
	stubFactories(t, dep)

	out, err := captureStdout(t, func() error {
		return Deploy(context.Background(), "config.yaml", false)
	})

	require.NoError(t, err)
	assert.Contains(t, out, "ssh azureSample@foo.westus.cloudapp.azure.com")
	assert.Contains(t, out, "Beginning the deployment")
	assert.Contains(t, out, "subscription id: "+config.DefaultSubscriptionID)
	assert.Contains(t, out, "resource group: "+config.DefaultResourceGroup)
	assert.Equal(t, 1, dep.deployCalls)
}

func TestDeploy_LeavesResourcesByDefault(t *testing.T) {
	saveAndRestoreFactories(t)

	dep := &stubDeployer{deployResult: fooResult()}
	stubFactories(t, dep)

	out, err := captureStdout(t, func() error {
		return Deploy(context.Background(), "config.yaml", false)
	})

	require.NoError(t, err)
	assert.Equal(t, 0, dep.destroyCalls, "resources must stay allocated without --teardown")
	assert.Contains(t, out, "vmdeploy destroy")
}

func TestDeploy_TeardownDestroys(t *testing.T) {
	saveAndRestoreFactories(t)

	dep := &stubDeployer{deployResult: fooResult()}
	stubFactories(t, dep)

	_, err := captureStdout(t, func() error {
		return Deploy(context.Background(), "config.yaml", true)
	})

	require.NoError(t, err)
	assert.Equal(t, 1, dep.destroyCalls)
}

func TestDeploy_ErrorPropagatesUnmodified(t *testing.T) {
	saveAndRestoreFactories(t)

	sentinel := errors.New("deployment exploded")
	dep := &stubDeployer{deployErr: sentinel}
	stubFactories(t, dep)

	_, err := captureStdout(t, func() error {
		return Deploy(context.Background(), "config.yaml", false)
	})

	require.Error(t, err)
	assert.Equal(t, sentinel, err, "handler must not translate the deployment error")
	assert.Equal(t, 0, dep.destroyCalls)
}

func TestDeploy_DeployerConstructionFailure(t *testing.T) {
	saveAndRestoreFactories(t)

	stubFactories(t, nil)
	sentinel := errors.New("failed to read public key")
	newDeployer = func(_ *config.Config, _ azure.ResourceManager) (VMDeployer, error) {
		return nil, sentinel
	}

	_, err := captureStdout(t, func() error {
		return Deploy(context.Background(), "config.yaml", false)
	})

	require.Error(t, err)
	assert.Equal(t, sentinel, err)
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	saveAndRestoreFactories(t)

	var requested string
	loadConfigFile = func(path string) (*config.Config, error) {
		requested = path
		return testConfig(), nil
	}

	cfg, err := loadConfig("staging.yaml")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "staging.yaml", requested)
}

func TestLoadConfig_FallsBackToEnvironment(t *testing.T) {
	saveAndRestoreFactories(t)

	findConfigFile = func() (string, error) {
		return "", errors.New("config file vmdeploy.yaml not found")
	}
	configFromEnv = func() (*config.Config, error) {
		return testConfig(), nil
	}

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultResourceGroup, cfg.ResourceGroup)
}

func TestLoadConfig_DiscoveredFile(t *testing.T) {
	saveAndRestoreFactories(t)

	findConfigFile = func() (string, error) {
		return "/work/vmdeploy.yaml", nil
	}
	var requested string
	loadConfigFile = func(path string) (*config.Config, error) {
		requested = path
		return testConfig(), nil
	}

	_, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "/work/vmdeploy.yaml", requested)
}
