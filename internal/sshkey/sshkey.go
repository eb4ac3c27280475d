// Package sshkey loads and generates SSH keys for VM access.
package sshkey

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/ssh"
)

// KeyPair holds the private and public keys.
type KeyPair struct {
	PrivateKey []byte
	PublicKey  []byte
}

// Load reads an SSH public key from path and validates that it is a
// well-formed authorized_keys entry. A leading ~ is expanded to the
// current user's home directory. The returned string is the raw key
// material, trimmed of trailing whitespace.
func Load(path string) (string, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", err
	}

	// #nosec G304
	data, err := os.ReadFile(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to read public key: %w", err)
	}

	key := strings.TrimSpace(string(data))
	if _, _, _, _, err := ssh.ParseAuthorizedKey([]byte(key)); err != nil {
		return "", fmt.Errorf("invalid public key %s: %w", expanded, err)
	}

	return key, nil
}

// ExpandPath expands a leading ~/ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
}

// GenerateRSAKeyPair generates a new RSA key pair.
func GenerateRSAKeyPair(bits int) (*KeyPair, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, err
	}

	if err := privateKey.Validate(); err != nil {
		return nil, err
	}

	privBlock := pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	}
	privateKeyPEM := pem.EncodeToMemory(&privBlock)

	publicRsaKey, err := ssh.NewPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		PrivateKey: privateKeyPEM,
		PublicKey:  ssh.MarshalAuthorizedKey(publicRsaKey),
	}, nil
}

// WriteKeyPair writes the key pair as id_rsa and id_rsa.pub under dir,
// creating dir if needed. It refuses to overwrite an existing key.
func (kp *KeyPair) WriteKeyPair(dir string) (privatePath, publicPath string, err error) {
	expanded, err := ExpandPath(dir)
	if err != nil {
		return "", "", err
	}
	if err := os.MkdirAll(expanded, 0700); err != nil {
		return "", "", fmt.Errorf("failed to create key directory: %w", err)
	}

	privatePath = filepath.Join(expanded, "id_rsa")
	publicPath = filepath.Join(expanded, "id_rsa.pub")

	for _, p := range []string{privatePath, publicPath} {
		if _, err := os.Stat(p); err == nil {
			return "", "", fmt.Errorf("refusing to overwrite existing key %s", p)
		}
	}

	if err := os.WriteFile(privatePath, kp.PrivateKey, 0600); err != nil {
		return "", "", fmt.Errorf("failed to write private key: %w", err)
	}
	if err := os.WriteFile(publicPath, kp.PublicKey, 0644); err != nil {
		return "", "", fmt.Errorf("failed to write public key: %w", err)
	}

	return privatePath, publicPath, nil
}
