package ledger

import (
	"strings"

	"github.com/execution-hub/presentation-hub/internal/domain/presentation"
)

// Contract status phrases as hashed on chain. Draft never reaches the ledger.
var statusPhrases = map[presentation.Status]string{
	presentation.StatusDocumentsPresented:                  "docs presented",
	presentation.StatusDocumentsCompliantByNominatedBank:   "docs compliant by nominatedbank",
	presentation.StatusDocumentsCompliantByIssuingBank:     "docs compliant by issuingbank",
	presentation.StatusDocumentsDiscrepantByNominatedBank:  "docs discrepant by nominatedbank",
	presentation.StatusDocumentsDiscrepantByIssuingBank:    "docs discrepant by issuingbank",
	presentation.StatusDocumentsReleasedToApplicant:        "docs released to applicant",
	presentation.StatusDiscrepanciesAdvisedByNominatedBank: "discrepancies advised by nominatedbank",
	presentation.StatusDiscrepanciesAdvisedByIssuingBank:   "discrepancies advised by issuingbank",
	presentation.StatusDiscrepanciesAcceptedByIssuingBank:  "discrepancies accepted by issuingbank",
	presentation.StatusDiscrepanciesRejectedByIssuingBank:  "discrepancies rejected by issuingbank",
	presentation.StatusDocumentsAcceptedByApplicant:        "docs accepted by applicant",
	presentation.StatusDiscrepanciesRejectedByApplicant:    "discrepancies rejected by applicant",
}

var (
	statusByDigest = map[string]presentation.Status{}
	statusByPhrase = map[string]presentation.Status{}
	digestByStatus = map[presentation.Status]string{}
)

func init() {
	for status, phrase := range statusPhrases {
		digest := HexKey(Keccak256([]byte(phrase)))
		statusByDigest[digest] = status
		statusByPhrase[phrase] = status
		digestByStatus[status] = digest
	}
}

// StatusFromDigest maps an on-chain status digest to the domain status.
func StatusFromDigest(digest string) (presentation.Status, bool) {
	s, ok := statusByDigest[normalizeHex(digest)]
	return s, ok
}

// DigestFor returns the on-chain digest of a domain status.
func DigestFor(status presentation.Status) (string, bool) {
	d, ok := digestByStatus[status]
	return d, ok
}

// PhraseFor returns the contract status phrase of a domain status.
func PhraseFor(status presentation.Status) (string, bool) {
	p, ok := statusPhrases[status]
	return p, ok
}

// StatusFromPhrase maps a contract status phrase to the domain status.
func StatusFromPhrase(phrase string) (presentation.Status, bool) {
	s, ok := statusByPhrase[strings.ToLower(strings.TrimSpace(phrase))]
	return s, ok
}

// StatusToken is one row of the translation table.
type StatusToken struct {
	Status presentation.Status
	Phrase string
	Digest string
}

// StatusTokens lists the table in workflow order.
func StatusTokens() []StatusToken {
	var out []StatusToken
	for _, s := range presentation.Statuses {
		phrase, ok := statusPhrases[s]
		if !ok {
			continue
		}
		out = append(out, StatusToken{Status: s, Phrase: phrase, Digest: digestByStatus[s]})
	}
	return out
}
