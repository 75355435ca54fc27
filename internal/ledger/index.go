package ledger

import (
	"fmt"

	"github.com/hyperledger/firefly-signer/pkg/abi"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
)

// Schema is an event entry together with the version that declared it.
type Schema struct {
	Entry   *abi.Entry
	Version *Version
}

// TopicEntry is everything registered under one dispatch key. Signature keys
// hold one schema per version declaring the event; the contract topic key
// holds every anonymous event, tried in order.
type TopicEntry struct {
	Schemas []Schema
}

// TopicIndex maps a dispatch key (lower-case 0x hex) to its schemas.
type TopicIndex map[string]*TopicEntry

// BuildTopicIndex builds the dispatch map for versions. Version 0 predates
// the anonymous convention so its anonymous entries are not indexed.
func BuildTopicIndex(versions []*Version, contractTopic ethtypes.HexBytes0xPrefix) (TopicIndex, error) {
	idx := TopicIndex{}
	contractKey := HexKey(contractTopic)
	for _, v := range versions {
		for _, e := range v.Events {
			var key string
			if e.Anonymous {
				if v.Number == 0 {
					continue
				}
				key = contractKey
			} else {
				sig, err := e.SignatureHash()
				if err != nil {
					return nil, fmt.Errorf("invalid event %s in version %d: %w", e.Name, v.Number, err)
				}
				key = HexKey(sig)
				if key == contractKey {
					return nil, fmt.Errorf("event %s signature collides with the contract topic", e.Name)
				}
			}
			entry, ok := idx[key]
			if !ok {
				entry = &TopicEntry{}
				idx[key] = entry
			}
			entry.Schemas = append(entry.Schemas, Schema{Entry: e, Version: v})
		}
	}
	return idx, nil
}

// Lookup returns the entry for a topic.
func (idx TopicIndex) Lookup(topic []byte) (*TopicEntry, bool) {
	e, ok := idx[HexKey(topic)]
	return e, ok
}

// Find returns the first schema with the given event name.
func (e *TopicEntry) Find(name string) (Schema, bool) {
	for _, s := range e.Schemas {
		if s.Entry.Name == name {
			return s, true
		}
	}
	return Schema{}, false
}
