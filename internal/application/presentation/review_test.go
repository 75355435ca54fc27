package presentation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/execution-hub/presentation-hub/internal/apperr"
	"github.com/execution-hub/presentation-hub/internal/domain/document"
	documentMocks "github.com/execution-hub/presentation-hub/internal/domain/document/mocks"
	"github.com/execution-hub/presentation-hub/internal/domain/lc"
	lcMocks "github.com/execution-hub/presentation-hub/internal/domain/lc/mocks"
	"github.com/execution-hub/presentation-hub/internal/domain/presentation"
	presentationMocks "github.com/execution-hub/presentation-hub/internal/domain/presentation/mocks"
	"github.com/execution-hub/presentation-hub/internal/domain/task"
	taskMocks "github.com/execution-hub/presentation-hub/internal/domain/task/mocks"
)

const (
	beneficiaryID = "ben-co"
	applicantID   = "app-co"
	issuingID     = "issuing-co"
	nominatedID   = "nominated-co"
	contractAddr  = "0x2222222222222222222222222222222222222222"
)

type mocks struct {
	presentations *presentationMocks.MockRepository
	submitter     *presentationMocks.MockTransactionSubmitter
	lcs           *lcMocks.MockRepository
	tasks         *taskMocks.MockManager
	documents     *documentMocks.MockClient
}

func newService(t *testing.T, companyID string) (*Service, *mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &mocks{
		presentations: presentationMocks.NewMockRepository(ctrl),
		submitter:     presentationMocks.NewMockTransactionSubmitter(ctrl),
		lcs:           lcMocks.NewMockRepository(ctrl),
		tasks:         taskMocks.NewMockManager(ctrl),
		documents:     documentMocks.NewMockClient(ctrl),
	}
	svc := NewService(m.presentations, m.lcs, m.tasks, m.documents, m.submitter, companyID, zerolog.Nop())
	return svc, m
}

func makePresentation(status presentation.Status, withNominated bool) *presentation.Presentation {
	p := &presentation.Presentation{
		StaticID:      "pres-1",
		Reference:     "PR-1",
		LCReference:   "LC-1",
		BeneficiaryID: beneficiaryID,
		ApplicantID:   applicantID,
		IssuingBankID: issuingID,
		Contracts:     []presentation.Contract{{ContractAddress: contractAddr}},
	}
	if withNominated {
		n := nominatedID
		p.NominatedBankID = &n
	}
	p.ApplyStatus(status, beneficiaryID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return p
}

func TestResolveReview(t *testing.T) {
	tests := []struct {
		name      string
		op        reviewOperation
		status    presentation.Status
		nominated bool
		company   string
		want      presentation.Status
		wantMsg   string
	}{
		{"compliant nominated", opCompliant, presentation.StatusDocumentsPresented, true, nominatedID, presentation.StatusDocumentsCompliantByNominatedBank, ""},
		{"compliant nominated wrong state", opCompliant, presentation.StatusDocumentsCompliantByNominatedBank, true, nominatedID, "", msgNotPresentedForNominated},
		{"compliant issuing after nominated", opCompliant, presentation.StatusDocumentsCompliantByNominatedBank, true, issuingID, presentation.StatusDocumentsCompliantByIssuingBank, ""},
		{"compliant issuing before nominated", opCompliant, presentation.StatusDocumentsPresented, true, issuingID, "", msgNotCompliantByNominated},
		{"compliant issuing alone", opCompliant, presentation.StatusDocumentsPresented, false, issuingID, presentation.StatusDocumentsCompliantByIssuingBank, ""},
		{"compliant issuing alone wrong state", opCompliant, presentation.StatusDocumentsDiscrepantByIssuingBank, false, issuingID, "", msgNotPresentedForIssuing},
		{"compliant applicant", opCompliant, presentation.StatusDocumentsPresented, true, applicantID, "", msgMustBeBank},
		{"discrepant nominated", opDiscrepant, presentation.StatusDocumentsPresented, true, nominatedID, presentation.StatusDocumentsDiscrepantByNominatedBank, ""},
		{"discrepant issuing alone", opDiscrepant, presentation.StatusDocumentsPresented, false, issuingID, presentation.StatusDocumentsDiscrepantByIssuingBank, ""},
		{"advise nominated after discrepant", opAdvise, presentation.StatusDocumentsDiscrepantByNominatedBank, true, nominatedID, presentation.StatusDiscrepanciesAdvisedByNominatedBank, ""},
		{"advise nominated wrong state", opAdvise, presentation.StatusDocumentsCompliantByNominatedBank, true, nominatedID, "", msgInvalidStatusOrParty},
		{"advise issuing alone", opAdvise, presentation.StatusDocumentsPresented, false, issuingID, presentation.StatusDiscrepanciesAdvisedByIssuingBank, ""},
		{"advise issuing presented with nominated", opAdvise, presentation.StatusDocumentsPresented, true, issuingID, "", msgInvalidStatusOrParty},
		{"advise issuing after nominated compliant", opAdvise, presentation.StatusDocumentsCompliantByNominatedBank, true, issuingID, presentation.StatusDiscrepanciesAdvisedByIssuingBank, ""},
		{"advise beneficiary", opAdvise, presentation.StatusDocumentsPresented, true, beneficiaryID, "", msgMustBeBank},
		{"accept issuing", opAccept, presentation.StatusDiscrepanciesAdvisedByNominatedBank, true, issuingID, presentation.StatusDiscrepanciesAcceptedByIssuingBank, ""},
		{"accept by applicant on nominated advice", opAccept, presentation.StatusDiscrepanciesAdvisedByNominatedBank, true, applicantID, "", msgMustBeIssuingBank},
		{"accept applicant", opAccept, presentation.StatusDiscrepanciesAdvisedByIssuingBank, true, applicantID, presentation.StatusDocumentsAcceptedByApplicant, ""},
		{"accept applicant after issuing accepted", opAccept, presentation.StatusDiscrepanciesAcceptedByIssuingBank, true, applicantID, presentation.StatusDocumentsAcceptedByApplicant, ""},
		{"accept issuing on issuing advice", opAccept, presentation.StatusDiscrepanciesAdvisedByIssuingBank, true, issuingID, "", msgMustBeApplicant},
		{"accept wrong state", opAccept, presentation.StatusDocumentsPresented, true, applicantID, "", msgInvalidStatusOrParty},
		{"reject issuing", opReject, presentation.StatusDiscrepanciesAdvisedByNominatedBank, true, issuingID, presentation.StatusDiscrepanciesRejectedByIssuingBank, ""},
		{"reject applicant", opReject, presentation.StatusDiscrepanciesAdvisedByIssuingBank, false, applicantID, presentation.StatusDiscrepanciesRejectedByApplicant, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := makePresentation(tt.status, tt.nominated)
			step, err := resolveReview(tt.op, p, tt.company)
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.True(t, apperr.Is(err, apperr.KindInvalidOperation))
				assert.Equal(t, tt.wantMsg, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, step.next)
			assert.NotNil(t, step.submit)
		})
	}
}

func TestService_MarkDiscrepant_Rollback(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t, nominatedID)
	p := makePresentation(presentation.StatusDocumentsPresented, true)
	taskCtx := task.NewContext("LC-1", "pres-1")

	var savedDestinations []*presentation.Status
	m.presentations.EXPECT().GetByStaticID(ctx, "pres-1").Return(p, nil)
	m.documents.EXPECT().GetDocumentsByContext(ctx, document.PresentationContext("pres-1")).
		Return([]*document.Document{{ID: "d-1", ReviewStatus: document.ReviewStatusRejected}}, nil)
	m.presentations.EXPECT().Save(ctx, p).
		DoAndReturn(func(_ context.Context, p *presentation.Presentation) error {
			var d *presentation.Status
			if p.DestinationState != nil {
				v := *p.DestinationState
				d = &v
			}
			savedDestinations = append(savedDestinations, d)
			return nil
		}).Times(2)
	gomock.InOrder(
		m.tasks.EXPECT().UpdateTaskStatus(ctx, task.StatusUpdate{
			Type: task.TypeReviewPresentation, Context: taskCtx, Status: task.StatusPending,
		}).Return(nil),
		m.submitter.EXPECT().NominatedBankSetDocumentsDiscrepant(ctx, contractAddr, "missing bill").
			Return("", errors.New("signer unavailable")),
		m.tasks.EXPECT().UpdateTaskStatus(ctx, task.StatusUpdate{
			Type: task.TypeReviewPresentation, Context: taskCtx, Status: task.StatusToDo,
		}).Return(nil),
	)

	err := svc.MarkDiscrepant(ctx, "pres-1", "missing bill")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConnection))
	assert.Nil(t, p.DestinationState)
	assert.Equal(t, presentation.StatusDocumentsPresented, p.Status)

	require.Len(t, savedDestinations, 2)
	require.NotNil(t, savedDestinations[0])
	assert.Equal(t, presentation.StatusDocumentsDiscrepantByNominatedBank, *savedDestinations[0])
	assert.Nil(t, savedDestinations[1])
}

func TestService_MarkCompliant(t *testing.T) {
	ctx := context.Background()

	t.Run("pending until confirmed", func(t *testing.T) {
		svc, m := newService(t, nominatedID)
		p := makePresentation(presentation.StatusDocumentsPresented, true)

		m.presentations.EXPECT().GetByStaticID(ctx, "pres-1").Return(p, nil)
		m.documents.EXPECT().GetDocumentsByContext(ctx, gomock.Any()).
			Return([]*document.Document{{ID: "d-1", ReviewStatus: document.ReviewStatusAccepted}}, nil)
		m.presentations.EXPECT().Save(ctx, p).Return(nil)
		m.tasks.EXPECT().UpdateTaskStatus(ctx, gomock.Any()).Return(errors.New("task service down"))
		m.submitter.EXPECT().NominatedBankSetDocumentsCompliant(ctx, contractAddr).Return("0xtx", nil)

		require.NoError(t, svc.MarkCompliant(ctx, "pres-1"))
		require.NotNil(t, p.DestinationState)
		assert.Equal(t, presentation.StatusDocumentsCompliantByNominatedBank, *p.DestinationState)
		assert.Equal(t, presentation.StatusDocumentsPresented, p.Status)
	})

	t.Run("rejected documents refused", func(t *testing.T) {
		svc, m := newService(t, nominatedID)
		p := makePresentation(presentation.StatusDocumentsPresented, true)

		m.presentations.EXPECT().GetByStaticID(ctx, "pres-1").Return(p, nil)
		m.documents.EXPECT().GetDocumentsByContext(ctx, gomock.Any()).
			Return([]*document.Document{{ID: "d-1", ReviewStatus: document.ReviewStatusRejected}}, nil)

		err := svc.MarkCompliant(ctx, "pres-1")
		assert.True(t, apperr.Is(err, apperr.KindInvalidOperation))
		assert.Nil(t, p.DestinationState)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newService(t, nominatedID)
		m.presentations.EXPECT().GetByStaticID(ctx, "missing").Return(nil, nil)

		err := svc.MarkCompliant(ctx, "missing")
		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})
}

func TestService_AcceptDiscrepancies_SubmitRefused(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t, applicantID)
	p := makePresentation(presentation.StatusDiscrepanciesAdvisedByIssuingBank, false)

	m.presentations.EXPECT().GetByStaticID(ctx, "pres-1").Return(p, nil)
	m.presentations.EXPECT().Save(ctx, p).Return(nil).Times(2)
	m.tasks.EXPECT().UpdateTaskStatus(ctx, gomock.Any()).Return(nil).Times(2)
	m.submitter.EXPECT().ApplicantSetDiscrepanciesAccepted(ctx, contractAddr, "fine").
		Return("", apperr.InvalidOperation("contract is not awaiting the applicant"))

	err := svc.AcceptDiscrepancies(ctx, "pres-1", "fine")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindInvalidOperation))
	assert.Nil(t, p.DestinationState)
}

func TestService_MarkDiscrepant_UnreviewedDocuments(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t, nominatedID)
	p := makePresentation(presentation.StatusDocumentsPresented, true)

	m.presentations.EXPECT().GetByStaticID(ctx, "pres-1").Return(p, nil)
	m.documents.EXPECT().GetDocumentsByContext(ctx, gomock.Any()).
		Return([]*document.Document{{ID: "d-1"}}, nil)

	err := svc.MarkDiscrepant(ctx, "pres-1", "")
	assert.True(t, apperr.Is(err, apperr.KindInvalidOperation))
}

func TestService_AcceptDiscrepancies(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t, applicantID)
	p := makePresentation(presentation.StatusDiscrepanciesAdvisedByIssuingBank, false)

	m.presentations.EXPECT().GetByStaticID(ctx, "pres-1").Return(p, nil)
	m.presentations.EXPECT().Save(ctx, p).Return(nil)
	m.tasks.EXPECT().UpdateTaskStatus(ctx, task.StatusUpdate{
		Type:    task.TypeReviewDiscrepancies,
		Context: task.NewContext("LC-1", "pres-1"),
		Status:  task.StatusPending,
	}).Return(nil)
	m.submitter.EXPECT().ApplicantSetDiscrepanciesAccepted(ctx, contractAddr, "fine").Return("0xtx", nil)

	require.NoError(t, svc.AcceptDiscrepancies(ctx, "pres-1", "fine"))
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()
	acknowledged := &lc.LC{Reference: "LC-1", Status: lc.StatusAcknowledged, BeneficiaryID: beneficiaryID}

	t.Run("deploys draft", func(t *testing.T) {
		svc, m := newService(t, beneficiaryID)
		p := makePresentation(presentation.StatusDraft, true)
		p.Contracts = nil

		m.presentations.EXPECT().GetByStaticID(ctx, "pres-1").Return(p, nil)
		m.lcs.EXPECT().GetByReference(ctx, "LC-1").Return(acknowledged, nil)
		m.documents.EXPECT().GetDocumentsByContext(ctx, document.PresentationContext("pres-1")).
			Return([]*document.Document{{ID: "d-1", Hash: "0xaa", TypeID: "invoice"}}, nil)
		m.presentations.EXPECT().Save(ctx, p).Return(nil).Times(2)
		m.submitter.EXPECT().DeployDocPresented(ctx, p, acknowledged).
			DoAndReturn(func(_ context.Context, p *presentation.Presentation, _ *lc.LC) (string, error) {
				require.Len(t, p.Documents, 1)
				assert.Equal(t, "0xaa", p.Documents[0].DocumentHash)
				return "0xtx", nil
			})

		got, err := svc.Submit(ctx, "pres-1", "see attached")
		require.NoError(t, err)
		assert.NotNil(t, got.SubmittedAt)
		require.NotNil(t, got.DestinationState)
		assert.Equal(t, presentation.StatusDocumentsPresented, *got.DestinationState)
		assert.Equal(t, "see attached", got.BeneficiaryComments)
	})

	t.Run("LC not acknowledged", func(t *testing.T) {
		svc, m := newService(t, beneficiaryID)
		p := makePresentation(presentation.StatusDraft, true)
		issued := &lc.LC{Reference: "LC-1", Status: lc.StatusIssued}

		m.presentations.EXPECT().GetByStaticID(ctx, "pres-1").Return(p, nil)
		m.lcs.EXPECT().GetByReference(ctx, "LC-1").Return(issued, nil)

		_, err := svc.Submit(ctx, "pres-1", "")
		require.Error(t, err)
		assert.Equal(t, "LC should be in ACKNOWLEDGED state", err.Error())
	})

	t.Run("not a draft", func(t *testing.T) {
		svc, m := newService(t, beneficiaryID)
		p := makePresentation(presentation.StatusDocumentsPresented, true)

		m.presentations.EXPECT().GetByStaticID(ctx, "pres-1").Return(p, nil)
		m.lcs.EXPECT().GetByReference(ctx, "LC-1").Return(acknowledged, nil)

		_, err := svc.Submit(ctx, "pres-1", "")
		assert.True(t, apperr.Is(err, apperr.KindInvalidOperation))
	})
}
