package lc

import "time"

// Status of the letter of credit.
type Status string

const (
	StatusRequested    Status = "REQUESTED"
	StatusIssued       Status = "ISSUED"
	StatusAdvised      Status = "ADVISED"
	StatusAcknowledged Status = "ACKNOWLEDGED"
	StatusRejected     Status = "REJECTED"
)

// AvailableWith names the bank with which the credit is available.
type AvailableWith string

const (
	AvailableWithIssuingBank     AvailableWith = "ISSUING_BANK"
	AvailableWithAdvisingBank    AvailableWith = "ADVISING_BANK"
	AvailableWithBeneficiaryBank AvailableWith = "BENEFICIARY_BANK"
)

// BankRole is the role a beneficiary bank plays on the credit.
type BankRole string

const (
	BankRoleAdvising BankRole = "AdvisingBank"
)

// LC is the letter of credit a presentation is made under. It is read-only
// from the presentation workflow.
type LC struct {
	ID                  int64         `json:"id"`
	Reference           string        `json:"reference"`
	ContractAddress     string        `json:"contractAddress"`
	Status              Status        `json:"status"`
	BeneficiaryID       string        `json:"beneficiaryId"`
	ApplicantID         string        `json:"applicantId"`
	IssuingBankID       string        `json:"issuingBankId"`
	AdvisingBankID      *string       `json:"advisingBankId,omitempty"`
	BeneficiaryBankID   *string       `json:"beneficiaryBankId,omitempty"`
	BeneficiaryBankRole BankRole      `json:"beneficiaryBankRole,omitempty"`
	AvailableWith       AvailableWith `json:"availableWith"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

// NominatedBankID returns the nominated bank for presentations, or "" when
// the credit is available with the issuing bank only.
func (l *LC) NominatedBankID() string {
	switch l.AvailableWith {
	case AvailableWithAdvisingBank:
		if l.AdvisingBankID != nil {
			return *l.AdvisingBankID
		}
	case AvailableWithBeneficiaryBank:
		if l.BeneficiaryBankRole == BankRoleAdvising && l.BeneficiaryBankID != nil {
			return *l.BeneficiaryBankID
		}
	}
	return ""
}
