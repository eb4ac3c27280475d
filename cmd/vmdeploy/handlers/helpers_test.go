package handlers

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/azsamples/vmdeploy/internal/azure"
	"github.com/azsamples/vmdeploy/internal/config"
	"github.com/azsamples/vmdeploy/internal/deployer"
)

// saveAndRestoreFactories saves factory function variables and restores
// them after the test. Must be called by any test that mocks factories.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()
	origNewResourceManager := newResourceManager
	origNewDeployer := newDeployer
	origFindConfigFile := findConfigFile
	origLoadConfigFile := loadConfigFile
	origConfigFromEnv := configFromEnv
	origRunWizard := runWizard
	origDefaultConfig := defaultConfig
	origSaveConfig := saveConfig
	origGenerateKeyPair := generateKeyPair

	t.Cleanup(func() {
		newResourceManager = origNewResourceManager
		newDeployer = origNewDeployer
		findConfigFile = origFindConfigFile
		loadConfigFile = origLoadConfigFile
		configFromEnv = origConfigFromEnv
		runWizard = origRunWizard
		defaultConfig = origDefaultConfig
		saveConfig = origSaveConfig
		generateKeyPair = origGenerateKeyPair
	})
}

// stubDeployer implements VMDeployer for handler tests.
type stubDeployer struct {
	deployResult *deployer.Result
	deployErr    error
	destroyErr   error

	deployCalls  int
	destroyCalls int
}

func (s *stubDeployer) Deploy(_ context.Context) (*deployer.Result, error) {
	s.deployCalls++
	return s.deployResult, s.deployErr
}

func (s *stubDeployer) Destroy(_ context.Context) error {
	s.destroyCalls++
	return s.destroyErr
}

// testConfig returns a fully populated config without touching the
// filesystem or environment.
func testConfig() *config.Config {
	return &config.Config{
		SubscriptionID: config.DefaultSubscriptionID,
		ResourceGroup:  config.DefaultResourceGroup,
		Location:       config.DefaultLocation,
		PublicKeyPath:  "/home/op/.ssh/id_rsa.pub",
		VMName:         config.DefaultVMName,
		AdminUsername:  config.DefaultAdminUsername,
		DeploymentName: config.DefaultDeploymentName,
	}
}

// stubFactories wires the common happy-path factories: explicit config,
// a no-op client and the given deployer.
func stubFactories(t *testing.T, dep *stubDeployer) {
	t.Helper()
	loadConfigFile = func(_ string) (*config.Config, error) {
		return testConfig(), nil
	}
	newResourceManager = func(_ string) (azure.ResourceManager, error) {
		return &azure.MockClient{}, nil
	}
	newDeployer = func(_ *config.Config, _ azure.ResourceManager) (VMDeployer, error) {
		return dep, nil
	}
}

// captureStdout runs f while capturing everything written to stdout.
func captureStdout(t *testing.T, f func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := f()

	os.Stdout = orig
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(out), runErr
}
