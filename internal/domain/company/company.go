package company

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_registry.go -package=mocks . Registry

import (
	"context"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

// MetaDomain is the registry domain member nodes are published under.
const MetaDomain = "meta.komgo"

// ZeroNode is the sentinel for an absent party on the ledger.
const ZeroNode = "0x0000000000000000000000000000000000000000000000000000000000000000"

// Company is a member of the network.
type Company struct {
	StaticID    string `json:"staticId"`
	Node        string `json:"node"`
	DisplayName string `json:"x500Name"`
}

// Registry resolves ledger party identities to companies.
type Registry interface {
	// ResolveStaticID returns the static id registered for node, or "".
	ResolveStaticID(ctx context.Context, node string) (string, error)
	GetDisplayName(ctx context.Context, companyID string) (string, error)
}

// NodeHash returns the registry node of a company static id.
func NodeHash(staticID string) string {
	return Namehash(strings.ToLower(staticID) + "." + MetaDomain)
}

// Namehash computes the ENS namehash of a dotted name.
func Namehash(name string) string {
	node := make([]byte, 32)
	if name != "" {
		labels := strings.Split(name, ".")
		for i := len(labels) - 1; i >= 0; i-- {
			label := keccak([]byte(labels[i]))
			node = keccak(append(node, label...))
		}
	}
	return "0x" + hex.EncodeToString(node)
}

// IsZeroNode reports whether node marks an absent party.
func IsZeroNode(node string) bool {
	trimmed := strings.TrimPrefix(strings.ToLower(node), "0x")
	return strings.Trim(trimmed, "0") == ""
}

// NormalizeNode lower-cases and 0x-prefixes a node hash.
func NormalizeNode(node string) string {
	n := strings.ToLower(node)
	if !strings.HasPrefix(n, "0x") {
		n = "0x" + n
	}
	return n
}

func keccak(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}
