package handlers

import (
	"fmt"
	"log"

	"github.com/azsamples/vmdeploy/internal/sshkey"
)

// Factory function variables for keygen - can be replaced in tests.
var (
	// generateKeyPair generates an RSA key pair.
	generateKeyPair = sshkey.GenerateRSAKeyPair
)

// Keygen handles the keygen command.
//
// It generates an RSA key pair and writes it into dir as id_rsa and
// id_rsa.pub, leaving any existing keys untouched.
func Keygen(dir string, bits int) error {
	log.Printf("Generating %d-bit RSA key pair...", bits)

	kp, err := generateKeyPair(bits)
	if err != nil {
		return fmt.Errorf("failed to generate key pair: %w", err)
	}

	privatePath, publicPath, err := kp.WriteKeyPair(dir)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote private key: %s\n", privatePath)
	fmt.Printf("Wrote public key:  %s\n", publicPath)
	return nil
}
