package presentation

import (
	"context"

	"github.com/execution-hub/presentation-hub/internal/apperr"
	"github.com/execution-hub/presentation-hub/internal/domain/presentation"
	"github.com/execution-hub/presentation-hub/internal/domain/task"
)

// Review rule violations.
const (
	msgNotPresentedForNominated = `Presentation should be in the "DocumentPresented" state for nominated bank`
	msgNotPresentedForIssuing   = `Presentation should be in the "DocumentPresented" state for issuing bank`
	msgNotCompliantByNominated  = `Presentation should be in the "DocumentsCompliantByNominatedBank" state`
	msgMustBeBank               = "Must be issuing or nominated bank"
	msgMustBeApplicant          = "Must be applicant"
	msgMustBeIssuingBank        = "Must be issuing bank"
	msgInvalidStatusOrParty     = "Invalid presentation status or party"
)

type reviewOperation string

const (
	opCompliant  reviewOperation = "compliant"
	opDiscrepant reviewOperation = "discrepant"
	opAdvise     reviewOperation = "advise-discrepancies"
	opAccept     reviewOperation = "accept-discrepancies"
	opReject     reviewOperation = "reject-discrepancies"
)

type submitFunc func(ctx context.Context, s presentation.TransactionSubmitter, contractAddress, comments string) (string, error)

// reviewStep is the resolved outcome of a review operation.
type reviewStep struct {
	next     presentation.Status
	taskType task.Type
	submit   submitFunc
}

func compliantSubmit(bank presentation.Role) submitFunc {
	return func(ctx context.Context, s presentation.TransactionSubmitter, address, _ string) (string, error) {
		if bank == presentation.RoleNominatedBank {
			return s.NominatedBankSetDocumentsCompliant(ctx, address)
		}
		return s.IssuingBankSetDocumentsCompliant(ctx, address)
	}
}

func discrepantSubmit(bank presentation.Role) submitFunc {
	return func(ctx context.Context, s presentation.TransactionSubmitter, address, comments string) (string, error) {
		if bank == presentation.RoleNominatedBank {
			return s.NominatedBankSetDocumentsDiscrepant(ctx, address, comments)
		}
		return s.IssuingBankSetDocumentsDiscrepant(ctx, address, comments)
	}
}

// resolveReview applies the next-status rules for the local company.
func resolveReview(op reviewOperation, p *presentation.Presentation, companyID string) (reviewStep, error) {
	role := presentation.CurrentRole(p, companyID)
	status := p.Status

	switch op {
	case opCompliant, opDiscrepant:
		var next presentation.Status
		switch role {
		case presentation.RoleNominatedBank:
			if status != presentation.StatusDocumentsPresented {
				return reviewStep{}, apperr.InvalidOperation(msgNotPresentedForNominated)
			}
			next = presentation.StatusDocumentsCompliantByNominatedBank
			if op == opDiscrepant {
				next = presentation.StatusDocumentsDiscrepantByNominatedBank
			}
		case presentation.RoleIssuingBank:
			if p.HasNominatedBank() && status != presentation.StatusDocumentsCompliantByNominatedBank {
				return reviewStep{}, apperr.InvalidOperation(msgNotCompliantByNominated)
			}
			if !p.HasNominatedBank() && status != presentation.StatusDocumentsPresented {
				return reviewStep{}, apperr.InvalidOperation(msgNotPresentedForIssuing)
			}
			next = presentation.StatusDocumentsCompliantByIssuingBank
			if op == opDiscrepant {
				next = presentation.StatusDocumentsDiscrepantByIssuingBank
			}
		default:
			return reviewStep{}, apperr.InvalidOperation(msgMustBeBank)
		}
		submit := compliantSubmit(role)
		if op == opDiscrepant {
			submit = discrepantSubmit(role)
		}
		return reviewStep{next: next, taskType: task.TypeReviewPresentation, submit: submit}, nil

	case opAdvise:
		switch role {
		case presentation.RoleNominatedBank:
			if status == presentation.StatusDocumentsPresented || status == presentation.StatusDocumentsDiscrepantByNominatedBank {
				return reviewStep{
					next:     presentation.StatusDiscrepanciesAdvisedByNominatedBank,
					taskType: task.TypeReviewPresentation,
					submit: func(ctx context.Context, s presentation.TransactionSubmitter, address, comments string) (string, error) {
						return s.NominatedBankAdviseDiscrepancies(ctx, address, comments)
					},
				}, nil
			}
		case presentation.RoleIssuingBank:
			if (status == presentation.StatusDocumentsPresented && !p.HasNominatedBank()) ||
				status == presentation.StatusDocumentsCompliantByNominatedBank ||
				status == presentation.StatusDocumentsDiscrepantByIssuingBank {
				return reviewStep{
					next:     presentation.StatusDiscrepanciesAdvisedByIssuingBank,
					taskType: task.TypeReviewPresentation,
					submit: func(ctx context.Context, s presentation.TransactionSubmitter, address, comments string) (string, error) {
						return s.IssuingBankAdviseDiscrepancies(ctx, address, comments)
					},
				}, nil
			}
		default:
			return reviewStep{}, apperr.InvalidOperation(msgMustBeBank)
		}
		return reviewStep{}, apperr.InvalidOperation(msgInvalidStatusOrParty)

	case opAccept, opReject:
		switch status {
		case presentation.StatusDiscrepanciesAdvisedByNominatedBank:
			if role != presentation.RoleIssuingBank {
				return reviewStep{}, apperr.InvalidOperation(msgMustBeIssuingBank)
			}
			if op == opAccept {
				return reviewStep{
					next:     presentation.StatusDiscrepanciesAcceptedByIssuingBank,
					taskType: task.TypeReviewDiscrepancies,
					submit: func(ctx context.Context, s presentation.TransactionSubmitter, address, comments string) (string, error) {
						return s.IssuingBankSetDiscrepanciesAccepted(ctx, address, comments)
					},
				}, nil
			}
			return reviewStep{
				next:     presentation.StatusDiscrepanciesRejectedByIssuingBank,
				taskType: task.TypeReviewDiscrepancies,
				submit: func(ctx context.Context, s presentation.TransactionSubmitter, address, comments string) (string, error) {
					return s.IssuingBankSetDiscrepanciesRejected(ctx, address, comments)
				},
			}, nil
		case presentation.StatusDiscrepanciesAdvisedByIssuingBank, presentation.StatusDiscrepanciesAcceptedByIssuingBank:
			if role != presentation.RoleApplicant {
				return reviewStep{}, apperr.InvalidOperation(msgMustBeApplicant)
			}
			if op == opAccept {
				return reviewStep{
					next:     presentation.StatusDocumentsAcceptedByApplicant,
					taskType: task.TypeReviewDiscrepancies,
					submit: func(ctx context.Context, s presentation.TransactionSubmitter, address, comments string) (string, error) {
						return s.ApplicantSetDiscrepanciesAccepted(ctx, address, comments)
					},
				}, nil
			}
			return reviewStep{
				next:     presentation.StatusDiscrepanciesRejectedByApplicant,
				taskType: task.TypeReviewDiscrepancies,
				submit: func(ctx context.Context, s presentation.TransactionSubmitter, address, comments string) (string, error) {
					return s.ApplicantSetDiscrepanciesRejected(ctx, address, comments)
				},
			}, nil
		}
		return reviewStep{}, apperr.InvalidOperation(msgInvalidStatusOrParty)
	}
	return reviewStep{}, apperr.InvalidOperation(msgInvalidStatusOrParty)
}
