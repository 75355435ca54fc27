package workflow

import (
	"context"
	"fmt"

	"github.com/Knetic/govaluate"
	"github.com/rs/zerolog"

	"github.com/execution-hub/presentation-hub/internal/domain/company"
	"github.com/execution-hub/presentation-hub/internal/domain/document"
	"github.com/execution-hub/presentation-hub/internal/domain/lc"
	"github.com/execution-hub/presentation-hub/internal/domain/notification"
	"github.com/execution-hub/presentation-hub/internal/domain/presentation"
	"github.com/execution-hub/presentation-hub/internal/domain/task"
	"github.com/execution-hub/presentation-hub/internal/ledger"
)

// ActionKind is the single side effect an action performs.
type ActionKind string

const (
	ActionCreateTask     ActionKind = "create_task"
	ActionResolveTask    ActionKind = "resolve_task"
	ActionNotify         ActionKind = "notify"
	ActionShareDocuments ActionKind = "share_documents"
	ActionSubmit         ActionKind = "submit"
)

// Effects holds the collaborators actions run against.
type Effects struct {
	Tasks     task.Manager
	Notifier  notification.Sender
	Documents document.Client
	Submitter presentation.TransactionSubmitter
	Companies company.Registry
}

// Invocation is the input of one processor run.
type Invocation struct {
	Presentation *presentation.Presentation
	LC           *lc.LC
	Status       presentation.Status
	Role         presentation.Role
	Performer    presentation.Performer
	Event        ledger.Event
}

// Action is one side effect of a processor.
type Action struct {
	Name string
	Kind ActionKind
	// When is an optional govaluate guard over the invocation parameters.
	When string
	Run  func(ctx context.Context, fx *Effects, inv *Invocation) error

	expr *govaluate.EvaluableExpression
}

// Advisory reports whether failures of the action are swallowed.
func (a Action) Advisory() bool {
	return a.Kind == ActionNotify
}

func (a Action) guarded(when string) Action {
	a.When = when
	return a
}

func createTask(taskType task.Type) Action {
	return Action{
		Name: "create " + string(taskType),
		Kind: ActionCreateTask,
		Run: func(ctx context.Context, fx *Effects, inv *Invocation) error {
			p := inv.Presentation
			counterparty := inv.Performer.CompanyID
			name := displayName(ctx, fx.Companies, counterparty)
			summary := taskSummary(taskType, p.Reference, p.LCReference)
			t := task.NewTask(taskType, summary, counterparty, task.NewContext(p.LCReference, p.StaticID))
			return fx.Tasks.CreateTask(ctx, t, fmt.Sprintf("%s, sent by %s", summary, name))
		},
	}
}

func resolveTask(taskType task.Type, outcome bool) Action {
	return Action{
		Name: "resolve " + string(taskType),
		Kind: ActionResolveTask,
		Run: func(ctx context.Context, fx *Effects, inv *Invocation) error {
			p := inv.Presentation
			return fx.Tasks.UpdateTaskStatus(ctx, task.StatusUpdate{
				Type:    taskType,
				Context: task.NewContext(p.LCReference, p.StaticID),
				Status:  task.StatusDone,
				Outcome: &outcome,
			})
		},
	}
}

func notify() Action {
	return Action{
		Name: "notify",
		Kind: ActionNotify,
		Run: func(ctx context.Context, fx *Effects, inv *Invocation) error {
			p := inv.Presentation
			performer := displayName(ctx, fx.Companies, inv.Performer.CompanyID)
			level := notification.LevelInfo
			switch inv.Status {
			case presentation.StatusDocumentsCompliantByIssuingBank,
				presentation.StatusDocumentsCompliantByNominatedBank,
				presentation.StatusDocumentsAcceptedByApplicant,
				presentation.StatusDiscrepanciesAcceptedByIssuingBank:
				level = notification.LevelSuccess
			case presentation.StatusDocumentsDiscrepantByIssuingBank,
				presentation.StatusDocumentsDiscrepantByNominatedBank,
				presentation.StatusDiscrepanciesRejectedByIssuingBank,
				presentation.StatusDiscrepanciesRejectedByApplicant:
				level = notification.LevelWarning
			}
			n := notification.NewNotification(
				"LCPresentation."+string(inv.Status),
				level,
				p.CompanyForRole(inv.Role),
				fmt.Sprintf("Presentation %s for LC %s: %s by %s", p.Reference, p.LCReference, statusText(inv.Status), performer),
				task.NewContext(p.LCReference, p.StaticID).JSON(),
			)
			return fx.Notifier.CreateNotification(ctx, n)
		},
	}
}

// shareDocuments shares the locally registered presentation documents with
// the parties holding the given roles. Absent parties are skipped.
func shareDocuments(recipients func(p *presentation.Presentation) []string) Action {
	return Action{
		Name: "share documents",
		Kind: ActionShareDocuments,
		Run: func(ctx context.Context, fx *Effects, inv *Invocation) error {
			p := inv.Presentation
			to := recipients(p)
			if len(to) == 0 {
				return nil
			}
			docCtx := document.PresentationContext(p.StaticID)
			docs, err := fx.Documents.GetDocumentsByContext(ctx, docCtx)
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(docs))
			for _, d := range docs {
				ids = append(ids, d.ID)
			}
			if len(ids) == 0 {
				ids = p.DocumentIDs()
			}
			if len(ids) == 0 {
				return nil
			}
			return fx.Documents.ShareDocuments(ctx, ids, to, docCtx)
		},
	}
}

func withRoles(roles ...presentation.Role) func(p *presentation.Presentation) []string {
	return func(p *presentation.Presentation) []string {
		var out []string
		for _, r := range roles {
			if id := p.CompanyForRole(r); id != "" {
				out = append(out, id)
			}
		}
		return out
	}
}

// reviewingBank is the nominated bank when present, the issuing bank otherwise.
func reviewingBank(p *presentation.Presentation) []string {
	if p.HasNominatedBank() {
		return []string{*p.NominatedBankID}
	}
	return []string{p.IssuingBankID}
}

type deployFunc func(s presentation.TransactionSubmitter) func(ctx context.Context, p *presentation.Presentation, l *lc.LC) (string, error)

func submit(name string, deploy deployFunc) Action {
	return Action{
		Name: "submit " + name,
		Kind: ActionSubmit,
		Run: func(ctx context.Context, fx *Effects, inv *Invocation) error {
			_, err := deploy(fx.Submitter)(ctx, inv.Presentation, inv.LC)
			return err
		},
	}
}

func displayName(ctx context.Context, registry company.Registry, companyID string) string {
	if registry == nil || companyID == "" {
		return companyID
	}
	name, err := registry.GetDisplayName(ctx, companyID)
	if err != nil || name == "" {
		return companyID
	}
	return name
}

func taskSummary(taskType task.Type, reference, lcReference string) string {
	switch taskType {
	case task.TypeReviewDiscrepancies:
		return fmt.Sprintf("Review discrepancies of presentation %s (LC %s)", reference, lcReference)
	default:
		return fmt.Sprintf("Review presentation %s (LC %s)", reference, lcReference)
	}
}

var statusTexts = map[presentation.Status]string{
	presentation.StatusDocumentsPresented:                  "documents presented",
	presentation.StatusDocumentsCompliantByNominatedBank:   "documents compliant by nominated bank",
	presentation.StatusDocumentsCompliantByIssuingBank:     "documents compliant by issuing bank",
	presentation.StatusDocumentsDiscrepantByNominatedBank:  "documents discrepant by nominated bank",
	presentation.StatusDocumentsDiscrepantByIssuingBank:    "documents discrepant by issuing bank",
	presentation.StatusDocumentsReleasedToApplicant:        "documents released to applicant",
	presentation.StatusDiscrepanciesAdvisedByNominatedBank: "discrepancies advised by nominated bank",
	presentation.StatusDiscrepanciesAdvisedByIssuingBank:   "discrepancies advised by issuing bank",
	presentation.StatusDiscrepanciesAcceptedByIssuingBank:  "discrepancies accepted by issuing bank",
	presentation.StatusDiscrepanciesRejectedByIssuingBank:  "discrepancies rejected by issuing bank",
	presentation.StatusDocumentsAcceptedByApplicant:        "documents accepted by applicant",
	presentation.StatusDiscrepanciesRejectedByApplicant:    "discrepancies rejected by applicant",
}

func statusText(s presentation.Status) string {
	if t, ok := statusTexts[s]; ok {
		return t
	}
	return string(s)
}

func logAction(logger zerolog.Logger, a Action, inv *Invocation) *zerolog.Event {
	return logger.Debug().
		Str("action", a.Name).
		Str("presentation_id", inv.Presentation.StaticID).
		Str("status", string(inv.Status)).
		Str("role", string(inv.Role))
}
