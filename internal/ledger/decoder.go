// Package ledger decodes presentation contract logs into typed events.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/hyperledger/firefly-signer/pkg/abi"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
)

// Log is a raw contract log as delivered by the ledger event source.
type Log struct {
	Address         string                      `json:"address"`
	TransactionHash string                      `json:"transactionHash"`
	BlockNumber     uint64                      `json:"blockNumber"`
	LogIndex        uint64                      `json:"logIndex"`
	Topics          []ethtypes.HexBytes0xPrefix `json:"topics"`
	Data            ethtypes.HexBytes0xPrefix   `json:"data"`
	// Version is the schema version of the emitting contract, when known.
	Version *int `json:"version,omitempty"`
}

// Decoded is the result of decoding a log. An empty Name means no schema
// matched.
type Decoded struct {
	Name      string
	Fields    map[string]interface{}
	Anonymous bool
	Version   int
	Log       *Log
}

// OK reports whether a schema matched.
func (d Decoded) OK() bool {
	return d.Name != ""
}

// Decoder decodes logs against a topic index.
type Decoder struct {
	index       TopicIndex
	contractKey string
}

// NewDecoder builds a decoder over the given versions.
func NewDecoder(versions []*Version, contractTopic ethtypes.HexBytes0xPrefix) (*Decoder, error) {
	idx, err := BuildTopicIndex(versions, contractTopic)
	if err != nil {
		return nil, err
	}
	return &Decoder{index: idx, contractKey: HexKey(contractTopic)}, nil
}

// Index exposes the decoder's dispatch map.
func (d *Decoder) Index() TopicIndex {
	return d.index
}

// Decode resolves the schema for log and decodes its fields.
func (d *Decoder) Decode(ctx context.Context, log *Log) Decoded {
	if log == nil || len(log.Topics) == 0 {
		return Decoded{}
	}
	entry, ok := d.index.Lookup(log.Topics[0])
	if !ok {
		return Decoded{}
	}
	if HexKey(log.Topics[0]) == d.contractKey {
		return d.decodeAnonymous(ctx, entry, log)
	}
	for _, s := range entry.Schemas {
		fields, err := decodeFields(ctx, s.Entry, log)
		if err != nil {
			continue
		}
		return Decoded{Name: s.Entry.Name, Fields: fields, Version: s.Version.Number, Log: log}
	}
	return Decoded{}
}

func (d *Decoder) decodeAnonymous(ctx context.Context, entry *TopicEntry, log *Log) Decoded {
	env, err := decodeFields(ctx, envelope, log)
	if err != nil {
		return Decoded{}
	}
	name, _ := env["eventName"].(string)
	if name == "" {
		return Decoded{}
	}
	for _, s := range entry.Schemas {
		if s.Entry.Name != name {
			continue
		}
		fields, err := decodeFields(ctx, s.Entry, log)
		if err != nil {
			continue
		}
		return Decoded{Name: name, Fields: fields, Anonymous: true, Version: s.Version.Number, Log: log}
	}
	return Decoded{}
}

func decodeFields(ctx context.Context, e *abi.Entry, log *Log) (map[string]interface{}, error) {
	if want := topicCount(e); len(log.Topics) != want {
		return nil, fmt.Errorf("event %s expects %d topics, log has %d", e.Name, want, len(log.Topics))
	}
	cv, err := e.DecodeEventDataCtx(ctx, log.Topics, log.Data)
	if err != nil {
		return nil, err
	}
	b, err := fieldSerializer().SerializeJSONCtx(ctx, cv)
	if err != nil {
		return nil, err
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// topicCount is the number of topics a log of e carries: one per indexed
// input, plus the signature topic unless e is anonymous.
func topicCount(e *abi.Entry) int {
	n := 0
	if !e.Anonymous {
		n++
	}
	for _, in := range e.Inputs {
		if in.Indexed {
			n++
		}
	}
	return n
}

func fieldSerializer() *abi.Serializer {
	return abi.NewSerializer().
		SetFormattingMode(abi.FormatAsObjects).
		SetIntSerializer(abi.Base10StringIntSerializer).
		SetByteSerializer(abi.HexByteSerializer0xPrefix)
}

// Registry holds the cross-version index of the presentation contract and
// one decoder per version. It is built once and safe for concurrent use.
type Registry struct {
	versions  []*Version
	merged    *Decoder
	byVersion map[int]*Decoder
}

// NewRegistry builds the registry for versions.
func NewRegistry(versions []*Version, contractTopic ethtypes.HexBytes0xPrefix) (*Registry, error) {
	merged, err := NewDecoder(versions, contractTopic)
	if err != nil {
		return nil, err
	}
	r := &Registry{versions: versions, merged: merged, byVersion: map[int]*Decoder{}}
	for _, v := range versions {
		if _, dup := r.byVersion[v.Number]; dup {
			return nil, fmt.Errorf("duplicate schema version %d", v.Number)
		}
		d, err := NewDecoder([]*Version{v}, contractTopic)
		if err != nil {
			return nil, err
		}
		r.byVersion[v.Number] = d
	}
	return r, nil
}

// NewDefaultRegistry builds the registry from the embedded schema table.
func NewDefaultRegistry() (*Registry, error) {
	versions, err := LoadVersions()
	if err != nil {
		return nil, err
	}
	return NewRegistry(versions, ContractTopic)
}

// Decoder returns the decoder of a single version.
func (r *Registry) Decoder(version int) (*Decoder, bool) {
	d, ok := r.byVersion[version]
	return d, ok
}

// Decode uses the log's own version when present, the merged index otherwise.
func (r *Registry) Decode(ctx context.Context, log *Log) Decoded {
	if log != nil && log.Version != nil {
		d, ok := r.byVersion[*log.Version]
		if !ok {
			return Decoded{}
		}
		return d.Decode(ctx, log)
	}
	return r.merged.Decode(ctx, log)
}

// Index returns the merged cross-version index.
func (r *Registry) Index() TopicIndex {
	return r.merged.Index()
}

// Versions returns the registered version numbers in ascending order.
func (r *Registry) Versions() []int {
	out := make([]int, 0, len(r.byVersion))
	for n := range r.byVersion {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

func (r *Registry) version(n int) *Version {
	for _, v := range r.versions {
		if v.Number == n {
			return v
		}
	}
	return nil
}
