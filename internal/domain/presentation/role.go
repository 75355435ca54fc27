package presentation

import "github.com/execution-hub/presentation-hub/internal/domain/lc"

// Role is a counterparty role on a presentation.
type Role string

const (
	RoleNone          Role = ""
	RoleBeneficiary   Role = "Beneficiary"
	RoleApplicant     Role = "Applicant"
	RoleIssuingBank   Role = "IssuingBank"
	RoleNominatedBank Role = "NominatedBank"
)

// Roles lists the four counterparty roles.
var Roles = []Role{RoleBeneficiary, RoleApplicant, RoleIssuingBank, RoleNominatedBank}

// Parties is the tuple of company static ids taking part in a presentation.
type Parties struct {
	Beneficiary   string  `json:"beneficiaryId"`
	Applicant     string  `json:"applicantId"`
	IssuingBank   string  `json:"issuingBankId"`
	NominatedBank *string `json:"nominatedBankId"`
}

// Equal compares two tuples field by field, treating nil and "" nominated banks alike.
func (p Parties) Equal(o Parties) bool {
	return p.Beneficiary == o.Beneficiary &&
		p.Applicant == o.Applicant &&
		p.IssuingBank == o.IssuingBank &&
		deref(p.NominatedBank) == deref(o.NominatedBank)
}

// PartiesFromLC computes presentation parties from the LC, applying the
// nominated bank selection rule.
func PartiesFromLC(l *lc.LC) Parties {
	parties := Parties{
		Beneficiary: l.BeneficiaryID,
		Applicant:   l.ApplicantID,
		IssuingBank: l.IssuingBankID,
	}
	if id := l.NominatedBankID(); id != "" {
		parties.NominatedBank = &id
	}
	return parties
}

// Parties returns the presentation's party tuple.
func (p *Presentation) Parties() Parties {
	return Parties{
		Beneficiary:   p.BeneficiaryID,
		Applicant:     p.ApplicantID,
		IssuingBank:   p.IssuingBankID,
		NominatedBank: p.NominatedBankID,
	}
}

func (p *Presentation) SetParties(parties Parties) {
	p.BeneficiaryID = parties.Beneficiary
	p.ApplicantID = parties.Applicant
	p.IssuingBankID = parties.IssuingBank
	p.NominatedBankID = nil
	if id := deref(parties.NominatedBank); id != "" {
		p.NominatedBankID = &id
	}
}

// CompanyForRole returns the company id holding role, or "".
func (p *Presentation) CompanyForRole(role Role) string {
	switch role {
	case RoleBeneficiary:
		return p.BeneficiaryID
	case RoleApplicant:
		return p.ApplicantID
	case RoleIssuingBank:
		return p.IssuingBankID
	case RoleNominatedBank:
		return deref(p.NominatedBankID)
	}
	return ""
}

// CurrentRole returns the role held by companyID, or RoleNone.
func CurrentRole(p *Presentation, companyID string) Role {
	if companyID == "" {
		return RoleNone
	}
	for _, role := range Roles {
		if p.CompanyForRole(role) == companyID {
			return role
		}
	}
	return RoleNone
}

// Performer is the party a status change is attributed to.
type Performer struct {
	Role      Role
	CompanyID string
}

func (p Performer) Resolved() bool {
	return p.Role != RoleNone && p.CompanyID != ""
}

var performerRoles = map[Status]Role{
	StatusDocumentsPresented:                  RoleBeneficiary,
	StatusDocumentsCompliantByNominatedBank:   RoleNominatedBank,
	StatusDocumentsDiscrepantByNominatedBank:  RoleNominatedBank,
	StatusDiscrepanciesAdvisedByNominatedBank: RoleNominatedBank,
	StatusDocumentsCompliantByIssuingBank:     RoleIssuingBank,
	StatusDocumentsDiscrepantByIssuingBank:    RoleIssuingBank,
	StatusDocumentsReleasedToApplicant:        RoleIssuingBank,
	StatusDiscrepanciesAdvisedByIssuingBank:   RoleIssuingBank,
	StatusDiscrepanciesAcceptedByIssuingBank:  RoleIssuingBank,
	StatusDiscrepanciesRejectedByIssuingBank:  RoleIssuingBank,
	StatusDocumentsAcceptedByApplicant:        RoleApplicant,
	StatusDiscrepanciesRejectedByApplicant:    RoleApplicant,
}

// PerformerForStatus returns who caused status on p. The zero Performer is
// returned when the status has no performer or the role's party is absent.
func PerformerForStatus(p *Presentation, status Status) Performer {
	role, ok := performerRoles[status]
	if !ok {
		return Performer{}
	}
	id := p.CompanyForRole(role)
	if id == "" {
		return Performer{}
	}
	return Performer{Role: role, CompanyID: id}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
