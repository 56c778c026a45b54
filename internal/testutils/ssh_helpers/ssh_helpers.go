package ssh_helpers

import (
	"crypto/rand"
	"crypto/rsa"

	"golang.org/x/crypto/ssh"
)

// convert a string to a strongly typed key
func PublicKeyOfString(keyString string) (ssh.PublicKey, error) {
	pubKey, _, _, _, err := ssh.ParseAuthorizedKey([]byte(keyString))
	if err != nil {
		return nil, err
	}
	return pubKey, nil
}

// GenerateKeys creates an RSA key pair of the given size
func GenerateKeys(keyLength int) (ssh.Signer, ssh.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, keyLength)
	if err != nil {
		return nil, nil, err
	}

	signer, err := ssh.NewSignerFromKey(privateKey)
	if err != nil {
		return nil, nil, err
	}

	return signer, signer.PublicKey(), nil
}
