package presentation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status represents the presentation workflow status.
type Status string

const (
	StatusDraft                               Status = "DRAFT"
	StatusDocumentsPresented                  Status = "DOCUMENTS_PRESENTED"
	StatusDocumentsCompliantByNominatedBank   Status = "DOCUMENTS_COMPLIANT_BY_NOMINATED_BANK"
	StatusDocumentsCompliantByIssuingBank     Status = "DOCUMENTS_COMPLIANT_BY_ISSUING_BANK"
	StatusDocumentsDiscrepantByNominatedBank  Status = "DOCUMENTS_DISCREPANT_BY_NOMINATED_BANK"
	StatusDocumentsDiscrepantByIssuingBank    Status = "DOCUMENTS_DISCREPANT_BY_ISSUING_BANK"
	StatusDocumentsReleasedToApplicant        Status = "DOCUMENTS_RELEASED_TO_APPLICANT"
	StatusDiscrepanciesAdvisedByNominatedBank Status = "DISCREPANCIES_ADVISED_BY_NOMINATED_BANK"
	StatusDiscrepanciesAdvisedByIssuingBank   Status = "DISCREPANCIES_ADVISED_BY_ISSUING_BANK"
	StatusDiscrepanciesAcceptedByIssuingBank  Status = "DISCREPANCIES_ACCEPTED_BY_ISSUING_BANK"
	StatusDiscrepanciesRejectedByIssuingBank  Status = "DISCREPANCIES_REJECTED_BY_ISSUING_BANK"
	StatusDocumentsAcceptedByApplicant        Status = "DOCUMENTS_ACCEPTED_BY_APPLICANT"
	StatusDiscrepanciesRejectedByApplicant    Status = "DISCREPANCIES_REJECTED_BY_APPLICANT"
)

// Statuses lists every status in workflow order.
var Statuses = []Status{
	StatusDraft,
	StatusDocumentsPresented,
	StatusDocumentsCompliantByNominatedBank,
	StatusDocumentsCompliantByIssuingBank,
	StatusDocumentsDiscrepantByNominatedBank,
	StatusDocumentsDiscrepantByIssuingBank,
	StatusDocumentsReleasedToApplicant,
	StatusDiscrepanciesAdvisedByNominatedBank,
	StatusDiscrepanciesAdvisedByIssuingBank,
	StatusDiscrepanciesAcceptedByIssuingBank,
	StatusDiscrepanciesRejectedByIssuingBank,
	StatusDocumentsAcceptedByApplicant,
	StatusDiscrepanciesRejectedByApplicant,
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// ByNominatedBank reports whether the status was reached through a nominated bank action.
func (s Status) ByNominatedBank() bool {
	return strings.HasSuffix(string(s), "_BY_NOMINATED_BANK")
}

func (s Status) Ptr() *Status {
	return &s
}

var (
	ErrInvalidStatus     = errors.New("invalid presentation status")
	ErrDuplicateContract = errors.New("contract address already recorded")
	ErrMissingParty      = errors.New("presentation party is missing")
	ErrMissingReference  = errors.New("presentation reference is required")
)

// ReviewStatus is the review outcome of a single document.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "PENDING"
	ReviewStatusAccepted ReviewStatus = "ACCEPTED"
	ReviewStatusRejected ReviewStatus = "REJECTED"
)

// Document is a reference to a registered trade document.
type Document struct {
	DocumentID     string        `json:"documentId,omitempty"`
	DocumentHash   string        `json:"documentHash"`
	DocumentTypeID string        `json:"documentTypeId"`
	Status         *ReviewStatus `json:"status,omitempty"`
	DateProvided   time.Time     `json:"dateProvided"`
}

// StateHistory is one recorded status change.
type StateHistory struct {
	FromState *Status   `json:"fromState"`
	ToState   Status    `json:"toState"`
	Performer string    `json:"performer"`
	Date      time.Time `json:"date"`
}

// Contract is a ledger contract deployed for the presentation.
type Contract struct {
	ContractAddress string `json:"contractAddress"`
	TransactionHash string `json:"transactionHash"`
	Key             string `json:"key"`
}

// Presentation is the document presentation workflow aggregate.
type Presentation struct {
	ID                    int64          `json:"id"`
	StaticID              string         `json:"staticId"`
	Reference             string         `json:"reference"`
	LCReference           string         `json:"LCReference"`
	BeneficiaryID         string         `json:"beneficiaryId"`
	ApplicantID           string         `json:"applicantId"`
	IssuingBankID         string         `json:"issuingBankId"`
	NominatedBankID       *string        `json:"nominatedBankId"`
	Documents             []Document     `json:"documents"`
	BeneficiaryComments   string         `json:"beneficiaryComments,omitempty"`
	NominatedBankComments string         `json:"nominatedBankComments,omitempty"`
	IssuingBankComments   string         `json:"issuingBankComments,omitempty"`
	Status                Status         `json:"status"`
	StateHistory          []StateHistory `json:"stateHistory"`
	Contracts             []Contract     `json:"contracts"`
	DestinationState      *Status        `json:"destinationState"`
	SubmittedAt           *time.Time     `json:"submittedAt,omitempty"`
	CreatedAt             time.Time      `json:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt"`
}

// New creates a draft presentation for the given parties.
func New(parties Parties, reference, lcReference string) *Presentation {
	now := time.Now().UTC()
	p := &Presentation{
		StaticID:    uuid.New().String(),
		Reference:   reference,
		LCReference: lcReference,
		Documents:   []Document{},
		Contracts:   []Contract{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	p.SetParties(parties)
	p.ApplyStatus(StatusDraft, parties.Beneficiary, now)
	return p
}

// ApplyStatus moves the presentation to status. A history entry is appended
// only when status differs from the last recorded one. Returns true if
// history grew.
func (p *Presentation) ApplyStatus(status Status, performer string, at time.Time) bool {
	var last *Status
	if n := len(p.StateHistory); n > 0 {
		to := p.StateHistory[n-1].ToState
		last = &to
	}
	p.Status = status
	if last != nil && *last == status {
		return false
	}
	p.StateHistory = append(p.StateHistory, StateHistory{
		FromState: last,
		ToState:   status,
		Performer: performer,
		Date:      at,
	})
	return true
}

// SetDestination marks an in-flight ledger action.
func (p *Presentation) SetDestination(status Status) {
	p.DestinationState = &status
}

func (p *Presentation) ClearDestination() {
	p.DestinationState = nil
}

// HasContract reports whether the address is already recorded.
func (p *Presentation) HasContract(address string) bool {
	for _, c := range p.Contracts {
		if strings.EqualFold(c.ContractAddress, address) {
			return true
		}
	}
	return false
}

// AddContract records a newly deployed contract.
func (p *Presentation) AddContract(c Contract) error {
	if p.HasContract(c.ContractAddress) {
		return ErrDuplicateContract
	}
	p.Contracts = append(p.Contracts, c)
	return nil
}

// LatestContract returns the most recently deployed contract, if any.
func (p *Presentation) LatestContract() *Contract {
	if len(p.Contracts) == 0 {
		return nil
	}
	c := p.Contracts[len(p.Contracts)-1]
	return &c
}

// Validate checks the aggregate invariants.
func (p *Presentation) Validate() error {
	if !p.Status.Valid() {
		return ErrInvalidStatus
	}
	if p.DestinationState != nil && !p.DestinationState.Valid() {
		return ErrInvalidStatus
	}
	if p.Reference == "" {
		return ErrMissingReference
	}
	if p.BeneficiaryID == "" || p.ApplicantID == "" || p.IssuingBankID == "" {
		return ErrMissingParty
	}
	if p.NominatedBankID != nil && *p.NominatedBankID == "" {
		return ErrMissingParty
	}
	seen := make(map[string]struct{}, len(p.Contracts))
	for _, c := range p.Contracts {
		key := strings.ToLower(c.ContractAddress)
		if _, ok := seen[key]; ok {
			return ErrDuplicateContract
		}
		seen[key] = struct{}{}
	}
	return nil
}

// HasNominatedBank reports whether a nominated bank takes part.
func (p *Presentation) HasNominatedBank() bool {
	return p.NominatedBankID != nil && *p.NominatedBankID != ""
}

// DocumentIDs returns the registry ids of attached documents.
func (p *Presentation) DocumentIDs() []string {
	ids := make([]string, 0, len(p.Documents))
	for _, d := range p.Documents {
		if d.DocumentID != "" {
			ids = append(ids, d.DocumentID)
		}
	}
	return ids
}

// FieldUpdate is an audit record of a ledger field patch.
type FieldUpdate struct {
	PresentationStaticID string    `json:"presentationStaticId"`
	ContractAddress      string    `json:"contractAddress"`
	TransactionHash      string    `json:"transactionHash"`
	Field                string    `json:"field"`
	Value                string    `json:"value"`
	AppliedAt            time.Time `json:"appliedAt"`
}
