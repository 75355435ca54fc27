package ledger

import (
	"context"
	"fmt"

	"github.com/hyperledger/firefly-signer/pkg/abi"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
)

// Encode builds a synthetic log of the named event as declared by version.
// Anonymous events get the contract topic and their name filled in when the
// caller leaves them out.
func (r *Registry) Encode(ctx context.Context, version int, name string, fields map[string]interface{}) (*Log, error) {
	v := r.version(version)
	if v == nil {
		return nil, fmt.Errorf("unknown schema version %d", version)
	}
	e := v.Event(name)
	if e == nil {
		return nil, fmt.Errorf("event %s not declared in version %d", name, version)
	}
	values := make(map[string]interface{}, len(fields)+2)
	for k, val := range fields {
		values[k] = val
	}
	if e.Anonymous {
		if _, ok := values["topic"]; !ok {
			values["topic"] = ContractTopic.String()
		}
		if _, ok := values["eventName"]; !ok {
			values["eventName"] = name
		}
	}
	return encodeEvent(ctx, e, values)
}

func encodeEvent(ctx context.Context, e *abi.Entry, values map[string]interface{}) (*Log, error) {
	var topics []ethtypes.HexBytes0xPrefix
	if !e.Anonymous {
		sig, err := e.SignatureHash()
		if err != nil {
			return nil, err
		}
		topics = append(topics, sig)
	}
	var data abi.ParameterArray
	dataValues := map[string]interface{}{}
	for _, p := range e.Inputs {
		val, ok := values[p.Name]
		if !ok {
			return nil, fmt.Errorf("missing value for %s.%s", e.Name, p.Name)
		}
		if p.Indexed {
			topic, err := abi.ParameterArray{p}.EncodeABIDataValuesCtx(ctx, []interface{}{val})
			if err != nil {
				return nil, fmt.Errorf("failed to encode topic %s: %w", p.Name, err)
			}
			topics = append(topics, topic)
			continue
		}
		data = append(data, p)
		dataValues[p.Name] = val
	}
	encoded, err := data.EncodeABIDataValuesCtx(ctx, dataValues)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s data: %w", e.Name, err)
	}
	return &Log{Topics: topics, Data: encoded}, nil
}
