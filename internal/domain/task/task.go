package task

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status represents task status.
type Status string

const (
	StatusToDo       Status = "TO_DO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusPending    Status = "PENDING"
	StatusDone       Status = "DONE"
)

// Type identifies what a task asks its assignee to do.
type Type string

const (
	TypeReviewPresentation  Type = "LCPresentation.ReviewPresentation"
	TypeReviewDiscrepancies Type = "LCPresentation.ReviewDiscrepancies"
)

const (
	PermissionReviewPresentation = "tradeFinance:reviewPresentation"
	ContextTypePresentation      = "LCPresentation"
)

var (
	ErrInvalidTransition = errors.New("invalid task status transition")
	ErrNotFound          = errors.New("task not found")
)

// Context ties a task to the presentation it concerns.
type Context struct {
	Type           string `json:"type"`
	LCID           string `json:"lcid,omitempty"`
	PresentationID string `json:"presentationId"`
}

// NewContext builds the context of a presentation task.
func NewContext(lcReference, presentationID string) Context {
	return Context{Type: ContextTypePresentation, LCID: lcReference, PresentationID: presentationID}
}

// Task represents a task assigned to the local company.
type Task struct {
	ID                   int64     `json:"id"`
	TaskID               uuid.UUID `json:"taskId"`
	Type                 Type      `json:"taskType"`
	Status               Status    `json:"status"`
	Summary              string    `json:"summary"`
	CounterpartyStaticID string    `json:"counterpartyStaticId,omitempty"`
	RequiredPermission   string    `json:"requiredPermission,omitempty"`
	Context              Context   `json:"context"`
	Outcome              *bool     `json:"outcome,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// NewTask creates a to-do task.
func NewTask(taskType Type, summary, counterparty string, ctx Context) *Task {
	now := time.Now().UTC()
	return &Task{
		TaskID:               uuid.New(),
		Type:                 taskType,
		Status:               StatusToDo,
		Summary:              summary,
		CounterpartyStaticID: counterparty,
		RequiredPermission:   PermissionReviewPresentation,
		Context:              ctx,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// CanTransitionTo validates task status transition.
func (t *Task) CanTransitionTo(target Status) bool {
	transitions := map[Status][]Status{
		StatusToDo:       {StatusInProgress, StatusPending, StatusDone},
		StatusInProgress: {StatusToDo, StatusPending, StatusDone},
		StatusPending:    {StatusToDo, StatusDone},
		StatusDone:       {},
	}
	allowed := transitions[t.Status]
	for _, s := range allowed {
		if s == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the task to target, recording outcome when done.
func (t *Task) TransitionTo(target Status, outcome *bool) error {
	if t.Status == target {
		return nil
	}
	if !t.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	t.Status = target
	if target == StatusDone {
		t.Outcome = outcome
	}
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// ContextJSON encodes the task context for storage and containment queries.
func (c Context) JSON() json.RawMessage {
	b, _ := json.Marshal(c)
	return b
}

// Filter selects tasks.
type Filter struct {
	Type    *Type
	Status  *Status
	Context *Context
}

// StatusUpdate moves every task matching Type and Context to Status.
type StatusUpdate struct {
	Type    Type
	Context Context
	Status  Status
	Outcome *bool
}
