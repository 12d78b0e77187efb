package domain

import (
	"time"

	"github.com/google/uuid"
)

// Game is a catalog entry lists are created for.
type Game struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// GameList is a per-game checklist owned by one account.
type GameList struct {
	ID             uuid.UUID
	OwnerAccountID uuid.UUID
	Game           Game
	Name           string
	Description    *string
	IsPublished    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsOwnedBy reports whether accountID owns the list.
func (l *GameList) IsOwnedBy(accountID uuid.UUID) bool {
	return l.OwnerAccountID == accountID
}

// Tag labels items inside a single list.
type Tag struct {
	ID        uuid.UUID
	ListID    uuid.UUID
	Name      string
	Color     *string
	CreatedAt time.Time
}

// ItemDefinition is a collectible item of a list. Tags are loaded alongside.
type ItemDefinition struct {
	ID          uuid.UUID
	ListID      uuid.UUID
	Name        string
	Description *string
	ImageURL    *string
	StorageType StorageType
	Tags        []Tag
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TagIDs returns the ids of the item's tags in their loaded order.
func (i *ItemDefinition) TagIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(i.Tags))
	for _, t := range i.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}

// EntryValue is the personal value an account records for an item.
// Exactly one of the typed fields is meaningful, selected by Kind.
type EntryValue struct {
	Kind  StorageType
	Bool  bool
	Count int64
	Text  string
}

// Any returns the value in its natural Go type.
func (v EntryValue) Any() any {
	switch v.Kind {
	case StorageTypeBoolean:
		return v.Bool
	case StorageTypeCount:
		return v.Count
	default:
		return v.Text
	}
}

// ItemEntry is an account's personal progress on one item. Not moderated.
type ItemEntry struct {
	ListID    uuid.UUID
	ItemID    uuid.UUID
	AccountID uuid.UUID
	Value     EntryValue
	UpdatedAt time.Time
}

// ListShareToken grants anonymous read access to a published list.
type ListShareToken struct {
	ID        uuid.UUID
	ListID    uuid.UUID
	Token     string
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsActive returns true while the token has not been revoked.
func (t *ListShareToken) IsActive() bool {
	return t.RevokedAt == nil
}

// ListDetail is the combined list, tags and items view.
type ListDetail struct {
	List  GameList
	Tags  []Tag
	Items []ItemDefinition
}
