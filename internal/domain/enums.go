package domain

import "strings"

// ChangeType identifies the kind of mutation a ListChange proposes.
type ChangeType string

const (
	ChangeTypeAddItem       ChangeType = "add_item"
	ChangeTypeEditItem      ChangeType = "edit_item"
	ChangeTypeRemoveItem    ChangeType = "remove_item"
	ChangeTypeAddTag        ChangeType = "add_tag"
	ChangeTypeEditTag       ChangeType = "edit_tag"
	ChangeTypeRemoveTag     ChangeType = "remove_tag"
	ChangeTypeListMetadata  ChangeType = "list_metadata"
	ChangeTypePublishToggle ChangeType = "publish_toggle"
)

func (t ChangeType) String() string { return string(t) }

// IsAppliable reports whether the moderation engine knows how to apply this type.
func (t ChangeType) IsAppliable() bool {
	switch t {
	case ChangeTypeAddItem, ChangeTypeEditItem, ChangeTypeAddTag, ChangeTypeListMetadata:
		return true
	}
	return false
}

// ChangeStatus is the review state of a ListChange.
type ChangeStatus string

const (
	ChangeStatusPending  ChangeStatus = "pending"
	ChangeStatusApproved ChangeStatus = "approved"
	ChangeStatusRejected ChangeStatus = "rejected"
)

func (s ChangeStatus) String() string { return string(s) }

func (s ChangeStatus) IsValid() bool {
	switch s {
	case ChangeStatusPending, ChangeStatusApproved, ChangeStatusRejected:
		return true
	}
	return false
}

// ChangeStatusFilterAll disables status filtering when listing changes.
const ChangeStatusFilterAll = "all"

// ParseChangeStatusFilter resolves a raw status filter.
// nil or "" selects pending changes, "all" returns a nil status (no filter).
func ParseChangeStatusFilter(raw *string) (*ChangeStatus, error) {
	if raw == nil || *raw == "" {
		s := ChangeStatusPending
		return &s, nil
	}
	if *raw == ChangeStatusFilterAll {
		return nil, nil
	}
	s := ChangeStatus(*raw)
	if !s.IsValid() {
		return nil, ErrInvalidFilter
	}
	return &s, nil
}

// StorageType describes how personal entry values for an item are stored.
type StorageType string

const (
	StorageTypeBoolean StorageType = "boolean"
	StorageTypeCount   StorageType = "count"
	StorageTypeText    StorageType = "text"
)

func (s StorageType) String() string { return string(s) }

func (s StorageType) IsValid() bool {
	switch s {
	case StorageTypeBoolean, StorageTypeCount, StorageTypeText:
		return true
	}
	return false
}

// ParseStorageType trims and lowercases raw before validating it.
func ParseStorageType(raw string) (StorageType, error) {
	s := StorageType(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", ErrInvalidStorageType
	}
	return s, nil
}

// UserRole represents the authorization level of an account.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }
