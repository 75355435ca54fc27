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
	"github.com/execution-hub/presentation-hub/internal/domain/lc"
	"github.com/execution-hub/presentation-hub/internal/domain/presentation"
	presentationMocks "github.com/execution-hub/presentation-hub/internal/domain/presentation/mocks"
	"github.com/execution-hub/presentation-hub/internal/domain/task"
	taskMocks "github.com/execution-hub/presentation-hub/internal/domain/task/mocks"
)

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	advising := nominatedID
	l := &lc.LC{
		Reference:      "LC-1",
		BeneficiaryID:  beneficiaryID,
		ApplicantID:    applicantID,
		IssuingBankID:  issuingID,
		AdvisingBankID: &advising,
		AvailableWith:  lc.AvailableWithAdvisingBank,
	}

	t.Run("beneficiary creates draft", func(t *testing.T) {
		svc, m := newService(t, beneficiaryID)
		m.lcs.EXPECT().GetByReference(ctx, "LC-1").Return(l, nil)
		m.presentations.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		p, err := svc.Create(ctx, "LC-1")
		require.NoError(t, err)
		assert.Equal(t, presentation.StatusDraft, p.Status)
		assert.Equal(t, "LC-1", p.LCReference)
		require.NotNil(t, p.NominatedBankID)
		assert.Equal(t, nominatedID, *p.NominatedBankID)
		require.Len(t, p.StateHistory, 1)
		assert.Equal(t, beneficiaryID, p.StateHistory[0].Performer)
	})

	t.Run("other parties refused", func(t *testing.T) {
		svc, m := newService(t, issuingID)
		m.lcs.EXPECT().GetByReference(ctx, "LC-1").Return(l, nil)

		_, err := svc.Create(ctx, "LC-1")
		assert.True(t, apperr.Is(err, apperr.KindInvalidOperation))
	})

	t.Run("unknown LC", func(t *testing.T) {
		svc, m := newService(t, beneficiaryID)
		m.lcs.EXPECT().GetByReference(ctx, "LC-9").Return(nil, nil)

		_, err := svc.Create(ctx, "LC-9")
		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("draft with documents", func(t *testing.T) {
		svc, m := newService(t, beneficiaryID)
		p := makePresentation(presentation.StatusDraft, false)

		m.presentations.EXPECT().GetByStaticID(ctx, "pres-1").Return(p, nil)
		m.documents.EXPECT().GetDocumentsByContext(ctx, document.PresentationContext("pres-1")).
			Return([]*document.Document{{ID: "d-1"}, {ID: "d-2"}}, nil)
		m.documents.EXPECT().DeleteDocument(ctx, "d-1").Return(nil)
		m.documents.EXPECT().DeleteDocument(ctx, "d-2").Return(nil)
		m.presentations.EXPECT().Delete(ctx, "pres-1").Return(nil)

		require.NoError(t, svc.Delete(ctx, "pres-1"))
	})

	t.Run("presented refused", func(t *testing.T) {
		svc, m := newService(t, beneficiaryID)
		m.presentations.EXPECT().GetByStaticID(ctx, "pres-1").
			Return(makePresentation(presentation.StatusDocumentsPresented, false), nil)

		err := svc.Delete(ctx, "pres-1")
		assert.True(t, apperr.Is(err, apperr.KindInvalidOperation))
	})

	t.Run("document service failure", func(t *testing.T) {
		svc, m := newService(t, beneficiaryID)
		m.presentations.EXPECT().GetByStaticID(ctx, "pres-1").Return(makePresentation(presentation.StatusDraft, false), nil)
		m.documents.EXPECT().GetDocumentsByContext(ctx, gomock.Any()).Return(nil, errors.New("timeout"))

		err := svc.Delete(ctx, "pres-1")
		assert.True(t, apperr.Is(err, apperr.KindConnection))
	})
}

func TestService_DeleteDocument(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t, beneficiaryID)
	p := makePresentation(presentation.StatusDraft, false)
	p.Documents = []presentation.Document{{DocumentID: "d-1"}, {DocumentID: "d-2"}}

	m.presentations.EXPECT().GetByStaticID(ctx, "pres-1").Return(p, nil)
	m.documents.EXPECT().DeleteDocument(ctx, "d-1").Return(nil)
	m.presentations.EXPECT().Save(ctx, p).Return(nil)

	require.NoError(t, svc.DeleteDocument(ctx, "pres-1", "d-1"))
	require.Len(t, p.Documents, 1)
	assert.Equal(t, "d-2", p.Documents[0].DocumentID)
}

func TestService_DocumentsFeedback(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		status      presentation.Status
		nominated   bool
		wantCompany string
	}{
		{"nominated bank verdict", presentation.StatusDocumentsDiscrepantByNominatedBank, true, nominatedID},
		{"issuing bank verdict", presentation.StatusDocumentsCompliantByIssuingBank, true, issuingID},
		{"nominated status without nominated bank", presentation.StatusDocumentsCompliantByNominatedBank, false, issuingID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t, beneficiaryID)
			m.presentations.EXPECT().GetByStaticID(ctx, "pres-1").Return(makePresentation(tt.status, tt.nominated), nil)
			m.documents.EXPECT().GetDocumentsByContext(ctx, gomock.Any()).Return([]*document.Document{
				{ID: "d-1", ReviewStatus: document.ReviewStatusAccepted},
				{ID: "d-2"},
			}, nil)

			fb, err := svc.DocumentsFeedback(ctx, "pres-1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantCompany, fb.CompanyID)
			assert.Len(t, fb.Documents, 2)
			assert.False(t, fb.FeedbackReceived)
		})
	}

	t.Run("not for banks", func(t *testing.T) {
		svc, m := newService(t, issuingID)
		m.presentations.EXPECT().GetByStaticID(ctx, "pres-1").
			Return(makePresentation(presentation.StatusDocumentsCompliantByIssuingBank, false), nil)

		_, err := svc.DocumentsFeedback(ctx, "pres-1")
		assert.True(t, apperr.Is(err, apperr.KindInvalidOperation))
	})

	t.Run("not while presented", func(t *testing.T) {
		svc, m := newService(t, beneficiaryID)
		m.presentations.EXPECT().GetByStaticID(ctx, "pres-1").
			Return(makePresentation(presentation.StatusDocumentsPresented, false), nil)

		_, err := svc.DocumentsFeedback(ctx, "pres-1")
		assert.True(t, apperr.Is(err, apperr.KindInvalidOperation))
	})
}

func TestSweeper_Sweep(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := presentationMocks.NewMockRepository(ctrl)
	tasks := taskMocks.NewMockManager(ctrl)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	sweeper := NewSweeper(repo, tasks, 30*time.Minute, zerolog.Nop())
	sweeper.now = func() time.Time { return now }

	stale := makePresentation(presentation.StatusDocumentsPresented, true)
	stale.SetDestination(presentation.StatusDocumentsCompliantByNominatedBank)
	taskCtx := task.NewContext("LC-1", "pres-1")
	pending := task.StatusPending

	repo.EXPECT().ListStaleDestination(ctx, now.Add(-30*time.Minute), sweepBatchSize).
		Return([]*presentation.Presentation{stale}, nil)
	repo.EXPECT().Save(ctx, stale).Return(nil)
	tasks.EXPECT().ListTasks(ctx, task.Filter{Status: &pending, Context: &taskCtx}).
		Return([]*task.Task{{Type: task.TypeReviewPresentation, Status: task.StatusPending}}, nil)
	tasks.EXPECT().UpdateTaskStatus(ctx, task.StatusUpdate{
		Type:    task.TypeReviewPresentation,
		Context: taskCtx,
		Status:  task.StatusToDo,
	}).Return(nil)

	released, err := sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, released)
	assert.Nil(t, stale.DestinationState)
	assert.Equal(t, presentation.StatusDocumentsPresented, stale.Status)
}
