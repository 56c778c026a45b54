package derived

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/crypto/ssh"

	"github.com/wyrdbound/wyrdbound-rng/internal/namegen"
)

// Identity derives stable values from an SSH public key
type Identity struct {
	pubKey ssh.PublicKey
	hash   [32]byte // cached sha256 of pubKey
}

// FromPublicKey creates an Identity from an SSH public key
func FromPublicKey(pubKey ssh.PublicKey) *Identity {
	return &Identity{
		pubKey: pubKey,
		hash:   sha256.Sum256(pubKey.Marshal()),
	}
}

// FromAuthorizedKey parses a key in authorized_keys format
func FromAuthorizedKey(line string) (*Identity, error) {
	pubKey, _, _, _, err := ssh.ParseAuthorizedKey([]byte(line))
	if err != nil {
		return nil, fmt.Errorf("parse authorized key: %w", err)
	}
	return FromPublicKey(pubKey), nil
}

// Seed returns a non-zero generation seed taken from the key hash
func (id *Identity) Seed() int64 {
	seed := int64(binary.BigEndian.Uint64(id.hash[:8]))
	if seed == 0 {
		seed = int64(binary.BigEndian.Uint64(id.hash[8:16])) | 1
	}
	return seed
}

// Fingerprint returns the SHA256 fingerprint of the key
func (id *Identity) Fingerprint() string {
	return ssh.FingerprintSHA256(id.pubKey)
}

// Handle returns a short lowercase identifier for the key
func (id *Identity) Handle() string {
	return "u" + encodeHandle(id.hash[:], 8)
}

// handleAlphabet omits confusable characters, capitals, j and u.
// It starts with o and the digits to resemble hex.
const handleAlphabet = "o123456789abcdefghikmnpqrstvwxyz"

// encodeHandle writes the leading 5*n bits of input in handleAlphabet
func encodeHandle(input []byte, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(handleAlphabet[bitsAt(input, 5*i, 5)])
	}
	return sb.String()
}

// bitsAt reads n bits starting at bit offset start, most significant first
func bitsAt(input []byte, start, n int) uint {
	var v uint
	for bit := start; bit < start+n; bit++ {
		v = v<<1 | uint(input[bit/8]>>(7-bit%8)&1)
	}
	return v
}

// DisplayName generates the name belonging to this key. The same key, corpus
// and options always produce the same name.
func (id *Identity) DisplayName(g *namegen.Generator, opts namegen.GenerateOptions) (namegen.GeneratedName, error) {
	opts.Seed = id.Seed()
	return g.GenerateName(opts)
}
