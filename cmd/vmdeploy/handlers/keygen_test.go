package handlers

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azsamples/vmdeploy/internal/sshkey"
)

func TestKeygen_WritesKeyPair(t *testing.T) {
	saveAndRestoreFactories(t)

	dir := t.TempDir()
	_, err := captureStdout(t, func() error {
		return Keygen(dir, 2048)
	})
	require.NoError(t, err)

	for _, name := range []string{"id_rsa", "id_rsa.pub"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected %s to exist", name)
	}

	// The generated public key is loadable by the deploy path.
	_, err = sshkey.Load(filepath.Join(dir, "id_rsa.pub"))
	assert.NoError(t, err)
}

func TestKeygen_GenerationFailure(t *testing.T) {
	saveAndRestoreFactories(t)

	sentinel := errors.New("entropy exhausted")
	generateKeyPair = func(_ int) (*sshkey.KeyPair, error) {
		return nil, sentinel
	}

	err := Keygen(t.TempDir(), 2048)
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
}
