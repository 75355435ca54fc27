package ledger

import (
	"embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/hyperledger/firefly-signer/pkg/abi"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
	"golang.org/x/crypto/sha3"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// ContractTopic is the first topic shared by every anonymous event of the
// presentation contract.
var ContractTopic = ethtypes.HexBytes0xPrefix(Keccak256([]byte("LCPresentation")))

// Version is one deployed revision of the contract's event schema list.
type Version struct {
	Number int
	Events abi.ABI
}

// envelope is decoded first for contract topic logs to read the embedded
// event name.
var envelope = &abi.Entry{
	Type:      abi.Event,
	Name:      "Envelope",
	Anonymous: true,
	Inputs: abi.ParameterArray{
		{Name: "topic", Type: "bytes32", Indexed: true},
		{Name: "eventName", Type: "string"},
	},
}

// LoadVersions reads the embedded schema table, ordered by version number.
func LoadVersions() ([]*Version, error) {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("failed to read schema table: %w", err)
	}
	var versions []*Version
	for _, e := range entries {
		name := e.Name()
		idx := strings.LastIndex(name, "_v")
		if idx < 0 || !strings.HasSuffix(name, ".json") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(name[idx+2:], ".json"))
		if err != nil {
			return nil, fmt.Errorf("invalid schema file name %s: %w", name, err)
		}
		data, err := schemaFS.ReadFile(path.Join("schemas", name))
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", name, err)
		}
		v, err := ParseVersion(n, data)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i].Number < versions[j].Number })
	return versions, nil
}

// ParseVersion parses a JSON ABI and keeps its event entries.
func ParseVersion(number int, abiJSON []byte) (*Version, error) {
	var entries abi.ABI
	if err := json.Unmarshal(abiJSON, &entries); err != nil {
		return nil, fmt.Errorf("invalid ABI for version %d: %w", number, err)
	}
	v := &Version{Number: number}
	for _, e := range entries {
		if e.Type == abi.Event {
			v.Events = append(v.Events, e)
		}
	}
	return v, nil
}

// Event returns the named event of the version, or nil.
func (v *Version) Event(name string) *abi.Entry {
	for _, e := range v.Events {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Keccak256 hashes b with legacy Keccak-256.
func Keccak256(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}

// HexKey normalizes a topic or digest to lower-case 0x hex.
func HexKey(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
