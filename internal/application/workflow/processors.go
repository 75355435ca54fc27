package workflow

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/execution-hub/presentation-hub/internal/domain/lc"
	"github.com/execution-hub/presentation-hub/internal/domain/presentation"
	"github.com/execution-hub/presentation-hub/internal/domain/task"
)

// Trigger is the kind of ledger event a processor reacts to.
type Trigger string

const (
	TriggerCreated    Trigger = "created"
	TriggerTransition Trigger = "transition"
)

// Routes maps a trigger and status to the actions of each role.
type Routes map[Trigger]map[presentation.Status]map[presentation.Role][]Action

// ProcessorTable dispatches role-specific side effects. It is read-only
// once built.
type ProcessorTable struct {
	routes  Routes
	effects *Effects
	logger  zerolog.Logger
}

// NewProcessorTable builds the default presentation routes.
func NewProcessorTable(effects *Effects, logger zerolog.Logger) (*ProcessorTable, error) {
	return NewProcessorTableWithRoutes(DefaultRoutes(), effects, logger)
}

// NewProcessorTableWithRoutes compiles every guard of routes up front.
func NewProcessorTableWithRoutes(routes Routes, effects *Effects, logger zerolog.Logger) (*ProcessorTable, error) {
	compiled := make(Routes, len(routes))
	for trigger, byStatus := range routes {
		compiled[trigger] = make(map[presentation.Status]map[presentation.Role][]Action, len(byStatus))
		for status, byRole := range byStatus {
			compiled[trigger][status] = make(map[presentation.Role][]Action, len(byRole))
			for role, actions := range byRole {
				out := make([]Action, len(actions))
				for i, a := range actions {
					expr, err := compileCondition(a.When)
					if err != nil {
						return nil, fmt.Errorf("invalid guard %q on %s/%s/%s: %w", a.When, trigger, status, role, err)
					}
					a.expr = expr
					out[i] = a
				}
				compiled[trigger][status][role] = out
			}
		}
	}
	return &ProcessorTable{
		routes:  compiled,
		effects: effects,
		logger:  logger.With().Str("service", "processors").Logger(),
	}, nil
}

// Has reports whether a processor is registered for the status.
func (t *ProcessorTable) Has(trigger Trigger, status presentation.Status) bool {
	_, ok := t.routes[trigger][status]
	return ok
}

// Actions returns the actions registered for a role.
func (t *ProcessorTable) Actions(trigger Trigger, status presentation.Status, role presentation.Role) []Action {
	return t.routes[trigger][status][role]
}

// Process runs the actions of inv.Role in order. Advisory failures are
// logged; the first primary failure is returned.
func (t *ProcessorTable) Process(ctx context.Context, trigger Trigger, inv *Invocation) error {
	actions := t.Actions(trigger, inv.Status, inv.Role)
	if len(actions) == 0 {
		t.logger.Info().
			Str("trigger", string(trigger)).
			Str("status", string(inv.Status)).
			Str("role", string(inv.Role)).
			Str("presentation_id", inv.Presentation.StaticID).
			Msg("no handler for role")
		return nil
	}

	params := invocationParams(inv)
	for _, a := range actions {
		ok, err := evaluateCondition(a.When, a.expr, params)
		if err != nil {
			return fmt.Errorf("evaluate guard of %s: %w", a.Name, err)
		}
		if !ok {
			logAction(t.logger, a, inv).Msg("action skipped by guard")
			continue
		}
		logAction(t.logger, a, inv).Msg("running action")
		if err := a.Run(ctx, t.effects, inv); err != nil {
			if a.Advisory() {
				t.logger.Warn().Err(err).
					Str("action", a.Name).
					Str("presentation_id", inv.Presentation.StaticID).
					Msg("advisory action failed")
				continue
			}
			return fmt.Errorf("%s: %w", a.Name, err)
		}
	}
	return nil
}

// DefaultRoutes returns the presentation workflow routes.
func DefaultRoutes() Routes {
	const (
		beneficiary = presentation.RoleBeneficiary
		applicant   = presentation.RoleApplicant
		issuing     = presentation.RoleIssuingBank
		nominated   = presentation.RoleNominatedBank
	)

	created := map[presentation.Status]map[presentation.Role][]Action{
		presentation.StatusDocumentsPresented: {
			beneficiary: {shareDocuments(reviewingBank)},
			nominated:   {createTask(task.TypeReviewPresentation)},
			issuing:     {createTask(task.TypeReviewPresentation).guarded("!hasNominatedBank")},
			applicant:   nil,
		},
		presentation.StatusDocumentsCompliantByNominatedBank: {
			issuing:     {createTask(task.TypeReviewPresentation)},
			beneficiary: {notify()},
		},
		presentation.StatusDocumentsReleasedToApplicant: {
			applicant:   {notify()},
			beneficiary: {notify()},
		},
		presentation.StatusDiscrepanciesAdvisedByNominatedBank: {
			issuing: {createTask(task.TypeReviewDiscrepancies)},
		},
		presentation.StatusDiscrepanciesAdvisedByIssuingBank: {
			applicant: {createTask(task.TypeReviewDiscrepancies)},
		},
	}

	notifyParties := func(roles ...presentation.Role) map[presentation.Role][]Action {
		m := make(map[presentation.Role][]Action, len(roles))
		for _, r := range roles {
			m[r] = []Action{notify()}
		}
		return m
	}
	with := func(m map[presentation.Role][]Action, role presentation.Role, actions ...Action) map[presentation.Role][]Action {
		m[role] = actions
		return m
	}

	transition := map[presentation.Status]map[presentation.Role][]Action{
		presentation.StatusDocumentsCompliantByNominatedBank: {
			nominated: {
				resolveTask(task.TypeReviewPresentation, true),
				submit("compliant as nominated bank", func(s presentation.TransactionSubmitter) func(context.Context, *presentation.Presentation, *lc.LC) (string, error) {
					return s.DeployCompliantAsNominatedBank
				}),
			},
			beneficiary: {shareDocuments(withRoles(applicant, issuing))},
		},
		presentation.StatusDocumentsCompliantByIssuingBank: with(notifyParties(beneficiary, nominated), issuing,
			resolveTask(task.TypeReviewPresentation, true),
			shareDocuments(withRoles(applicant)),
			submit("compliant as issuing bank", func(s presentation.TransactionSubmitter) func(context.Context, *presentation.Presentation, *lc.LC) (string, error) {
				return s.DeployCompliantAsIssuingBank
			}),
		),
		presentation.StatusDocumentsDiscrepantByNominatedBank: with(notifyParties(beneficiary), nominated,
			resolveTask(task.TypeReviewPresentation, false),
		),
		presentation.StatusDocumentsDiscrepantByIssuingBank: with(notifyParties(beneficiary, nominated), issuing,
			resolveTask(task.TypeReviewPresentation, false),
		),
		presentation.StatusDiscrepanciesAdvisedByNominatedBank: with(notifyParties(beneficiary), nominated,
			submit("advise discrepancies as nominated bank", func(s presentation.TransactionSubmitter) func(context.Context, *presentation.Presentation, *lc.LC) (string, error) {
				return s.DeployAdviseDiscrepanciesAsNominatedBank
			}),
		),
		presentation.StatusDiscrepanciesAdvisedByIssuingBank: with(notifyParties(beneficiary, nominated), issuing,
			submit("advise discrepancies as issuing bank", func(s presentation.TransactionSubmitter) func(context.Context, *presentation.Presentation, *lc.LC) (string, error) {
				return s.DeployAdviseDiscrepanciesAsIssuingBank
			}),
		),
		presentation.StatusDiscrepanciesAcceptedByIssuingBank: with(
			with(notifyParties(beneficiary, nominated), issuing, resolveTask(task.TypeReviewDiscrepancies, true)),
			applicant, createTask(task.TypeReviewDiscrepancies),
		),
		presentation.StatusDiscrepanciesRejectedByIssuingBank: with(notifyParties(beneficiary, nominated), issuing,
			resolveTask(task.TypeReviewDiscrepancies, false),
		),
		presentation.StatusDocumentsAcceptedByApplicant: with(notifyParties(beneficiary, nominated, issuing), applicant,
			resolveTask(task.TypeReviewDiscrepancies, true),
		),
		presentation.StatusDiscrepanciesRejectedByApplicant: with(notifyParties(beneficiary, nominated, issuing), applicant,
			resolveTask(task.TypeReviewDiscrepancies, false),
		),
	}

	return Routes{
		TriggerCreated:    created,
		TriggerTransition: transition,
	}
}
