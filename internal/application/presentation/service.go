package presentation

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/execution-hub/presentation-hub/internal/apperr"
	"github.com/execution-hub/presentation-hub/internal/domain/document"
	"github.com/execution-hub/presentation-hub/internal/domain/lc"
	"github.com/execution-hub/presentation-hub/internal/domain/presentation"
	"github.com/execution-hub/presentation-hub/internal/domain/task"
)

// Service handles presentation operations on behalf of the local company.
type Service struct {
	presentations presentation.Repository
	lcs           lc.Repository
	tasks         task.Manager
	documents     document.Client
	submitter     presentation.TransactionSubmitter
	companyID     string
	now           func() time.Time
	logger        zerolog.Logger
}

// NewService creates a presentation service.
func NewService(
	presentations presentation.Repository,
	lcs lc.Repository,
	tasks task.Manager,
	documents document.Client,
	submitter presentation.TransactionSubmitter,
	companyID string,
	logger zerolog.Logger,
) *Service {
	return &Service{
		presentations: presentations,
		lcs:           lcs,
		tasks:         tasks,
		documents:     documents,
		submitter:     submitter,
		companyID:     companyID,
		now:           func() time.Time { return time.Now().UTC() },
		logger:        logger.With().Str("service", "presentation").Logger(),
	}
}

// Create starts a draft presentation under an LC. Only the beneficiary may
// present.
func (s *Service) Create(ctx context.Context, lcReference string) (*presentation.Presentation, error) {
	l, err := s.loadLC(ctx, lcReference)
	if err != nil {
		return nil, err
	}
	if l.BeneficiaryID != s.companyID {
		return nil, apperr.InvalidOperation("Only the beneficiary can create a presentation")
	}

	reference := fmt.Sprintf("%s-%d", l.Reference, s.now().UnixMilli())
	p := presentation.New(presentation.PartiesFromLC(l), reference, l.Reference)
	if err := s.presentations.Save(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("presentation_id", p.StaticID).
		Str("lc_reference", l.Reference).
		Msg("presentation created")
	return p, nil
}

// Get returns a presentation by static id.
func (s *Service) Get(ctx context.Context, staticID string) (*presentation.Presentation, error) {
	p, err := s.presentations.GetByStaticID(ctx, staticID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("presentation %s not found", staticID)
	}
	return p, nil
}

// ListByLC returns presentations made under an LC.
func (s *Service) ListByLC(ctx context.Context, lcReference string) ([]*presentation.Presentation, error) {
	return s.presentations.ListByLCReference(ctx, lcReference)
}

// Submit presents a draft on the ledger.
func (s *Service) Submit(ctx context.Context, staticID, comments string) (*presentation.Presentation, error) {
	p, err := s.Get(ctx, staticID)
	if err != nil {
		return nil, err
	}
	l, err := s.loadLC(ctx, p.LCReference)
	if err != nil {
		return nil, err
	}
	if l.Status != lc.StatusAcknowledged {
		return nil, apperr.InvalidOperation("LC should be in ACKNOWLEDGED state")
	}
	if p.Status != presentation.StatusDraft {
		return nil, apperr.InvalidOperation("Presentation should be in Draft state")
	}
	if presentation.CurrentRole(p, s.companyID) != presentation.RoleBeneficiary {
		return nil, apperr.InvalidOperation("Only the beneficiary can submit a presentation")
	}

	docs, err := s.documents.GetDocumentsByContext(ctx, document.PresentationContext(p.StaticID))
	if err != nil {
		return nil, apperr.Connection("failed to load presentation documents", err)
	}
	now := s.now()
	p.Documents = p.Documents[:0]
	for _, d := range docs {
		p.Documents = append(p.Documents, presentation.Document{
			DocumentID:     d.ID,
			DocumentHash:   d.Hash,
			DocumentTypeID: d.TypeID,
			DateProvided:   now,
		})
	}
	p.BeneficiaryComments = comments

	err = s.executePresentationAction(ctx, p, presentation.StatusDocumentsPresented, "", func(ctx context.Context) (string, error) {
		return s.submitter.DeployDocPresented(ctx, p, l)
	})
	if err != nil {
		return nil, err
	}
	p.SubmittedAt = &now
	if err := s.presentations.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a draft and its documents.
func (s *Service) Delete(ctx context.Context, staticID string) error {
	p, err := s.Get(ctx, staticID)
	if err != nil {
		return err
	}
	if p.Status != presentation.StatusDraft {
		return apperr.InvalidOperation("Delete LC presentation failed. Not in 'Draft' status.")
	}
	docs, err := s.documents.GetDocumentsByContext(ctx, document.PresentationContext(p.StaticID))
	if err != nil {
		return apperr.Connection("failed to load presentation documents", err)
	}
	for _, d := range docs {
		if err := s.documents.DeleteDocument(ctx, d.ID); err != nil {
			return apperr.Connection("failed to delete presentation document", err)
		}
	}
	return s.presentations.Delete(ctx, p.StaticID)
}

// DeleteDocument removes one document from a draft.
func (s *Service) DeleteDocument(ctx context.Context, staticID, documentID string) error {
	p, err := s.Get(ctx, staticID)
	if err != nil {
		return err
	}
	if p.Status != presentation.StatusDraft {
		return apperr.InvalidOperation("Failed to delete LC presentation document. Not in 'Draft' status.")
	}

	kept := p.Documents[:0]
	for _, d := range p.Documents {
		if d.DocumentID != documentID {
			kept = append(kept, d)
		}
	}
	p.Documents = kept

	if err := s.documents.DeleteDocument(ctx, documentID); err != nil {
		return apperr.Connection("failed to delete presentation document", err)
	}
	p.UpdatedAt = s.now()
	return s.presentations.Save(ctx, p)
}

// Documents returns the registered documents of a presentation.
func (s *Service) Documents(ctx context.Context, staticID string) ([]*document.Document, error) {
	p, err := s.Get(ctx, staticID)
	if err != nil {
		return nil, err
	}
	docs, err := s.documents.GetDocumentsByContext(ctx, document.PresentationContext(p.StaticID))
	if err != nil {
		return nil, apperr.Connection("failed to load presentation documents", err)
	}
	return docs, nil
}

// DocumentsFeedback is the reviewing bank's verdict on the beneficiary's documents.
type DocumentsFeedback struct {
	CompanyID        string               `json:"companyId"`
	Documents        []*document.Document `json:"documents"`
	FeedbackReceived bool                 `json:"feedbackReceived"`
}

// DocumentsFeedback returns review feedback. Beneficiary only.
func (s *Service) DocumentsFeedback(ctx context.Context, staticID string) (*DocumentsFeedback, error) {
	p, err := s.Get(ctx, staticID)
	if err != nil {
		return nil, err
	}
	if p.BeneficiaryID != s.companyID {
		return nil, apperr.InvalidOperation("Documents feedback is available just for beneficiary")
	}
	if p.Status == presentation.StatusDraft || p.Status == presentation.StatusDocumentsPresented {
		return nil, apperr.InvalidOperation(`Document feedback not available for presentation in "DocumentPresented" or "Draft" status`)
	}
	docs, err := s.documents.GetDocumentsByContext(ctx, document.PresentationContext(p.StaticID))
	if err != nil {
		return nil, apperr.Connection("failed to load presentation documents", err)
	}
	received := true
	for _, d := range docs {
		if !d.Reviewed() {
			received = false
			break
		}
	}
	return &DocumentsFeedback{
		CompanyID:        feedbackCompany(p),
		Documents:        docs,
		FeedbackReceived: received,
	}, nil
}

func feedbackCompany(p *presentation.Presentation) string {
	if p.Status.ByNominatedBank() && p.HasNominatedBank() {
		return *p.NominatedBankID
	}
	return p.IssuingBankID
}

func (s *Service) loadLC(ctx context.Context, reference string) (*lc.LC, error) {
	l, err := s.lcs.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, apperr.NotFound("LC %s not found", reference)
	}
	return l, nil
}
