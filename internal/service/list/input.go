package list

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// CreateListInput holds the parameters for creating a list.
type CreateListInput struct {
	GameID      uuid.UUID
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i *CreateListInput) Validate() error {
	var errs []domain.FieldError

	if i.GameID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "gameId", Message: "required"})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 200)"})
	}

	if i.Description != nil && utf8.RuneCountInString(*i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 2000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ProposeInput carries a raw change document for a list.
// ItemID is only used by item edits.
type ProposeInput struct {
	ListID  uuid.UUID
	ItemID  uuid.UUID
	Payload map[string]any
}

// ListItemsInput holds the filters of an item listing.
type ListItemsInput struct {
	ListID uuid.UUID
	TagID  *uuid.UUID
	Owned  *bool
	Search *string
}

// SetEntryInput holds a personal entry value as decoded from JSON.
type SetEntryInput struct {
	ListID uuid.UUID
	ItemID uuid.UUID
	Value  any
}
