package main

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/ssh"

	"github.com/wyrdbound/wyrdbound-rng/internal/derived"
	"github.com/wyrdbound/wyrdbound-rng/internal/namegen"
)

const rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// displayBanner shows the startup banner
func displayBanner() {
	fmt.Println()
	fmt.Println("╔═══════════════════════════════════════════════════════════════╗")
	fmt.Println("║           Wyrdbound Identity                                  ║")
	fmt.Println("╚═══════════════════════════════════════════════════════════════╝")
	fmt.Println()
}

// displayKeyInfo shows which key the identity was derived from
func displayKeyInfo(keyPath string, pubKey ssh.PublicKey) {
	fmt.Printf("🔐 SSH Key: %s (%s)\n", keyPath, pubKey.Type())
	fmt.Printf("🔑 Fingerprint: %s\n", ssh.FingerprintSHA256(pubKey))
	fmt.Println()
}

// displayIdentity shows the derived name
func displayIdentity(id *derived.Identity, name namegen.GeneratedName) {
	fmt.Println(rule)
	fmt.Println("👤 YOUR DERIVED IDENTITY:")
	fmt.Println(rule)
	fmt.Println()
	fmt.Printf("Name:       %s\n", name.Name)
	fmt.Printf("Syllables:  %s\n", strings.Join(name.Syllables, " · "))
	fmt.Printf("Handle:     %s\n", id.Handle())
	if len(name.SourceNames) > 0 {
		fmt.Printf("Echoes:     %s\n", strings.Join(name.SourceNames, ", "))
	}
	fmt.Println()
}

// displayLookup shows the DN that resolves this key in the name directory
func displayLookup(pubKey ssh.PublicKey, baseDN string) {
	normalizedKey := strings.TrimSpace(string(ssh.MarshalAuthorizedKey(pubKey)))

	fmt.Println(rule)
	fmt.Println("📋 DIRECTORY LOOKUP:")
	fmt.Println(rule)
	fmt.Println()
	fmt.Printf("cn=%s,ou=identities,%s\n", normalizedKey, baseDN)
}
