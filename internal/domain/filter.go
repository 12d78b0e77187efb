package domain

import "github.com/google/uuid"

// ItemFilter narrows an item listing. Nil fields are not applied.
type ItemFilter struct {
	// TagID keeps items carrying the tag.
	TagID *uuid.UUID

	// Owned keeps items the account has (true) or has not (false) recorded an entry for.
	// Requires AccountID.
	Owned     *bool
	AccountID uuid.UUID

	// Search is a case-insensitive substring match on name or description.
	Search *string
}
