package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/ssh"
)

// loadPublicKey reads an authorized_keys style public key, or derives the
// public half of an unencrypted private key
func loadPublicKey(path string) (ssh.PublicKey, error) {
	keyBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	if pubKey, _, _, _, err := ssh.ParseAuthorizedKey(keyBytes); err == nil {
		return pubKey, nil
	}

	signer, err := ssh.ParsePrivateKey(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("not a public or unencrypted private key: %w", err)
	}
	return signer.PublicKey(), nil
}

// expandPath expands ~ to the home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
