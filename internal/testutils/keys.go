package testutils

import (
	"crypto/rand"
	"crypto/rsa"

	"github.com/wyrdbound/wyrdbound-rng/internal/testutils/ssh_helpers"

	"golang.org/x/crypto/ssh"
)

// TestPublicKeyString is in OpenSSH authorized_keys format
const TestPublicKeyString = `ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIB7uFZwkCSObDfZY/v6qkHTHkaGTtpLyuYKjpgMXhH0J test@wyrdbound`

func GetRandomPublicKey() (ssh.PublicKey, error) {
	// Generate a 2048-bit RSA key
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}

	signer, err := ssh.NewSignerFromKey(privateKey)
	if err != nil {
		return nil, err
	}

	return signer.PublicKey(), nil
}

// GetTestPublicKey returns a parsed SSH public key for testing
func GetTestPublicKey() (ssh.PublicKey, error) {
	return ssh_helpers.PublicKeyOfString(TestPublicKeyString)
}
