package presentation

import (
	"context"

	"github.com/execution-hub/presentation-hub/internal/apperr"
	"github.com/execution-hub/presentation-hub/internal/domain/document"
	"github.com/execution-hub/presentation-hub/internal/domain/presentation"
	"github.com/execution-hub/presentation-hub/internal/domain/task"
)

// MarkCompliant records the local bank's compliant verdict on the ledger.
func (s *Service) MarkCompliant(ctx context.Context, staticID string) error {
	return s.review(ctx, opCompliant, staticID, "", func(docs []*document.Document) error {
		for _, d := range docs {
			if d.ReviewStatus == document.ReviewStatusRejected {
				return apperr.InvalidOperation("Presentation cannot be Compliant, presentation contains rejected documents")
			}
		}
		return nil
	})
}

// MarkDiscrepant records the local bank's discrepant verdict on the ledger.
func (s *Service) MarkDiscrepant(ctx context.Context, staticID, comments string) error {
	return s.review(ctx, opDiscrepant, staticID, comments, func(docs []*document.Document) error {
		for _, d := range docs {
			if !d.Reviewed() {
				return apperr.InvalidOperation("Presentation cannot be mark as Discrepant, all documents must be reviewed")
			}
		}
		return nil
	})
}

func (s *Service) AdviseDiscrepancies(ctx context.Context, staticID, comments string) error {
	return s.review(ctx, opAdvise, staticID, comments, nil)
}

func (s *Service) AcceptDiscrepancies(ctx context.Context, staticID, comments string) error {
	return s.review(ctx, opAccept, staticID, comments, nil)
}

func (s *Service) RejectDiscrepancies(ctx context.Context, staticID, comments string) error {
	return s.review(ctx, opReject, staticID, comments, nil)
}

func (s *Service) review(ctx context.Context, op reviewOperation, staticID, comments string, checkDocuments func([]*document.Document) error) error {
	p, err := s.Get(ctx, staticID)
	if err != nil {
		return err
	}
	step, err := resolveReview(op, p, s.companyID)
	if err != nil {
		return err
	}
	if checkDocuments != nil {
		docs, err := s.documents.GetDocumentsByContext(ctx, document.PresentationContext(p.StaticID))
		if err != nil {
			return apperr.Connection("failed to load received documents", err)
		}
		if err := checkDocuments(docs); err != nil {
			return err
		}
	}

	contract := p.LatestContract()
	if contract == nil {
		return apperr.InvalidOperation("Presentation %s has no ledger contract", p.Reference)
	}
	return s.executePresentationAction(ctx, p, step.next, step.taskType, func(ctx context.Context) (string, error) {
		return step.submit(ctx, s.submitter, contract.ContractAddress, comments)
	})
}

// executePresentationAction marks the presentation pending on destination,
// submits, and rolls the marker and task back when submission fails. The
// marker is cleared for good by the confirming ledger event.
func (s *Service) executePresentationAction(
	ctx context.Context,
	p *presentation.Presentation,
	destination presentation.Status,
	taskType task.Type,
	submit func(ctx context.Context) (string, error),
) error {
	logger := s.logger.With().
		Str("presentation_id", p.StaticID).
		Str("destination", string(destination)).
		Logger()

	p.SetDestination(destination)
	p.UpdatedAt = s.now()
	if err := s.presentations.Save(ctx, p); err != nil {
		return err
	}
	s.setTaskStatus(ctx, p, taskType, task.StatusPending)

	txHash, err := submit(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("ledger submission failed, reverting pending state")
		p.ClearDestination()
		p.UpdatedAt = s.now()
		if saveErr := s.presentations.Save(ctx, p); saveErr != nil {
			logger.Error().Err(saveErr).Msg("failed to clear destination state")
		}
		s.setTaskStatus(ctx, p, taskType, task.StatusToDo)
		if apperr.KindOf(err) != "" {
			return err
		}
		return apperr.Connection("ledger submission failed", err)
	}

	logger.Info().Str("tx_hash", txHash).Msg("ledger transaction submitted")
	return nil
}

// setTaskStatus is best-effort.
func (s *Service) setTaskStatus(ctx context.Context, p *presentation.Presentation, taskType task.Type, status task.Status) {
	if taskType == "" || s.tasks == nil {
		return
	}
	err := s.tasks.UpdateTaskStatus(ctx, task.StatusUpdate{
		Type:    taskType,
		Context: task.NewContext(p.LCReference, p.StaticID),
		Status:  status,
	})
	if err != nil {
		s.logger.Warn().Err(err).
			Str("presentation_id", p.StaticID).
			Str("task_status", string(status)).
			Msg("failed to set task status")
	}
}
