package workflow

import (
	"context"

	"github.com/execution-hub/presentation-hub/internal/apperr"
	"github.com/execution-hub/presentation-hub/internal/domain/company"
	"github.com/execution-hub/presentation-hub/internal/domain/lc"
	"github.com/execution-hub/presentation-hub/internal/domain/presentation"
	"github.com/execution-hub/presentation-hub/internal/ledger"
)

// ReconcileParties resolves the party nodes asserted by a created event and
// checks them against the parties computed from the local LC.
func ReconcileParties(ctx context.Context, registry company.Registry, ev *ledger.PresentationCreated, l *lc.LC) (presentation.Parties, error) {
	resolve := func(node string) (string, error) {
		if company.IsZeroNode(node) {
			return "", nil
		}
		id, err := registry.ResolveStaticID(ctx, company.NormalizeNode(node))
		if err != nil {
			return "", apperr.Connection("company registry lookup failed", err)
		}
		if id == "" {
			return "", apperr.InvalidMessage("unknown party node %s", node)
		}
		return id, nil
	}

	var asserted presentation.Parties
	var err error
	if asserted.Beneficiary, err = resolve(ev.BeneficiaryNode); err != nil {
		return presentation.Parties{}, err
	}
	if asserted.Applicant, err = resolve(ev.ApplicantNode); err != nil {
		return presentation.Parties{}, err
	}
	if asserted.IssuingBank, err = resolve(ev.IssuingBankNode); err != nil {
		return presentation.Parties{}, err
	}
	nominated, err := resolve(ev.NominatedBankNode)
	if err != nil {
		return presentation.Parties{}, err
	}
	if nominated != "" {
		asserted.NominatedBank = &nominated
	}

	expected := presentation.PartiesFromLC(l)
	if !asserted.Equal(expected) {
		return presentation.Parties{}, apperr.InvalidMessage("parties received from contract do not match LC %s parties", l.Reference)
	}
	return expected, nil
}
