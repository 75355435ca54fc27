package ledger

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Event names emitted by the presentation contract.
const (
	EventPresentationCreated = "LCPresentationCreated"
	EventStateTransition     = "StateTransition"
	EventDataUpdated         = "DataUpdated"
)

var (
	ErrUnsupportedEvent = errors.New("unsupported ledger event")
	ErrMalformedEvent   = errors.New("malformed ledger event")
)

// Event is a typed presentation contract event.
type Event interface {
	EventName() string
	RawLog() *Log
}

// PresentationData is the custom JSON payload embedded at deployment.
type PresentationData struct {
	StaticID    string `json:"staticId"`
	Reference   string `json:"lcPresentationReference"`
	LCReference string `json:"lcReference"`
}

// TradeDocument groups document hashes of one document type.
type TradeDocument struct {
	DocumentHashes []string
	DocumentTypeID string
}

// PresentationCreated is emitted when a presentation contract is deployed.
type PresentationCreated struct {
	Log                   *Log
	LCAddress             string
	CurrentStateID        string
	BeneficiaryNode       string
	ApplicantNode         string
	IssuingBankNode       string
	NominatedBankNode     string
	Data                  PresentationData
	TradeDocuments        []TradeDocument
	BeneficiaryComments   string
	NominatedBankComments string
	IssuingBankComments   string
}

func (e *PresentationCreated) EventName() string { return EventPresentationCreated }
func (e *PresentationCreated) RawLog() *Log      { return e.Log }

// StateTransition is an anonymous status change on an existing contract.
type StateTransition struct {
	Log      *Log
	StateID  string
	Comments string
}

func (e *StateTransition) EventName() string { return EventStateTransition }
func (e *StateTransition) RawLog() *Log      { return e.Log }

// DataUpdated is an anonymous single field patch.
type DataUpdated struct {
	Log       *Log
	FieldName string
	Data      []byte
}

func (e *DataUpdated) EventName() string { return EventDataUpdated }
func (e *DataUpdated) RawLog() *Log      { return e.Log }

// ToEvent builds the typed event for a decoded log.
func ToEvent(d Decoded) (Event, error) {
	if !d.OK() {
		return nil, ErrMalformedEvent
	}
	f := fieldReader{fields: d.Fields}
	var ev Event
	switch d.Name {
	case EventPresentationCreated:
		ev = toCreated(d.Log, &f)
	case EventStateTransition:
		if !d.Anonymous {
			return nil, fmt.Errorf("%w: %s must be anonymous", ErrMalformedEvent, d.Name)
		}
		ev = &StateTransition{
			Log:      d.Log,
			StateID:  f.hex("stateId"),
			Comments: f.str("comments"),
		}
	case EventDataUpdated:
		if !d.Anonymous {
			return nil, fmt.Errorf("%w: %s must be anonymous", ErrMalformedEvent, d.Name)
		}
		ev = &DataUpdated{
			Log:       d.Log,
			FieldName: f.str("fieldName"),
			Data:      f.bytes("data"),
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEvent, d.Name)
	}
	if f.err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedEvent, d.Name, f.err)
	}
	return ev, nil
}

func toCreated(log *Log, f *fieldReader) *PresentationCreated {
	ev := &PresentationCreated{
		Log:                   log,
		LCAddress:             normalizeHex(f.str("lcAddress")),
		CurrentStateID:        f.hex("currentStateId"),
		BeneficiaryNode:       f.hex("beneficiaryGuid"),
		ApplicantNode:         f.hex("applicantGuid"),
		IssuingBankNode:       f.hex("issuingBankGuid"),
		NominatedBankNode:     f.hex("nominatedBankGuid"),
		BeneficiaryComments:   f.str("beneficiaryComments"),
		NominatedBankComments: f.str("nominatedBankComments"),
		IssuingBankComments:   f.str("issuingBankComments"),
	}
	if raw := f.str("lcPresentationData"); raw != "" && f.err == nil {
		if err := json.Unmarshal([]byte(raw), &ev.Data); err != nil {
			f.err = fmt.Errorf("lcPresentationData: %w", err)
		}
	}
	docs, _ := f.fields["tradeDocuments"].([]interface{})
	for _, d := range docs {
		m, ok := d.(map[string]interface{})
		if !ok {
			f.fail("tradeDocuments: unexpected element %T", d)
			break
		}
		inner := fieldReader{fields: m}
		td := TradeDocument{DocumentTypeID: bytes32ToString(inner.bytes("documentType"))}
		if raw := inner.str("documentHashes"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &td.DocumentHashes); err != nil {
				f.fail("tradeDocuments.documentHashes: %v", err)
			}
		}
		if inner.err != nil {
			f.err = inner.err
		}
		ev.TradeDocuments = append(ev.TradeDocuments, td)
	}
	return ev
}

type fieldReader struct {
	fields map[string]interface{}
	err    error
}

func (r *fieldReader) fail(format string, args ...interface{}) {
	if r.err == nil {
		r.err = fmt.Errorf(format, args...)
	}
}

func (r *fieldReader) str(name string) string {
	v, ok := r.fields[name]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail("%s: expected string, got %T", name, v)
	}
	return s
}

func (r *fieldReader) hex(name string) string {
	return normalizeHex(r.str(name))
}

func (r *fieldReader) bytes(name string) []byte {
	s := strings.TrimPrefix(r.str(name), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		r.fail("%s: %v", name, err)
	}
	return b
}

func normalizeHex(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	if !strings.HasPrefix(s, "0x") {
		s = "0x" + s
	}
	return s
}

// bytes32ToString reads a right-padded ASCII bytes32.
func bytes32ToString(b []byte) string {
	return strings.TrimSpace(strings.TrimRight(string(b), "\x00"))
}

// StringToBytes32 right-pads s into a bytes32 hex string.
func StringToBytes32(s string) string {
	b := make([]byte, 32)
	copy(b, s)
	return HexKey(b)
}
