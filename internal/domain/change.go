package domain

import (
	"time"

	"github.com/google/uuid"
)

// ListChange is a proposed mutation of a list awaiting moderation.
// Payload is the persisted document; ParseChangePayload turns it into a typed value.
type ListChange struct {
	ID             uuid.UUID
	ListID         uuid.UUID
	ActorAccountID uuid.UUID
	Type           ChangeType
	Payload        map[string]any
	Status         ChangeStatus
	CreatedAt      time.Time
	ReviewedBy     *uuid.UUID
	ReviewedAt     *time.Time
}

// NewListChange builds a pending change from a typed payload.
func NewListChange(listID, actorAccountID uuid.UUID, payload ChangePayload, now time.Time) *ListChange {
	return &ListChange{
		ID:             uuid.New(),
		ListID:         listID,
		ActorAccountID: actorAccountID,
		Type:           payload.ChangeType(),
		Payload:        payload.Document(),
		Status:         ChangeStatusPending,
		CreatedAt:      now,
	}
}

// IsPending returns true until the change has been reviewed.
func (c *ListChange) IsPending() bool {
	return c.Status == ChangeStatusPending
}

// ProposedBy reports whether accountID authored the change.
func (c *ListChange) ProposedBy(accountID uuid.UUID) bool {
	return c.ActorAccountID == accountID
}
