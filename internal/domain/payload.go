package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ChangePayload is the typed form of a ListChange payload, one variant per change type.
type ChangePayload interface {
	ChangeType() ChangeType
	Document() map[string]any
}

// Nullable is a string field that can be absent, explicitly null, or set.
type Nullable struct {
	Set   bool
	Value *string
}

// NullableOf returns a set Nullable holding v.
func NullableOf(v *string) Nullable {
	return Nullable{Set: true, Value: v}
}

// AddTagPayload proposes a new tag.
type AddTagPayload struct {
	Name  string
	Color *string
}

// AddItemPayload proposes a new item definition.
type AddItemPayload struct {
	Name        string
	StorageType StorageType
	Description *string
	ImageURL    *string
	TagIDs      []uuid.UUID
}

// ItemPatch is a partial update of an item definition. Nil or unset fields are left alone.
type ItemPatch struct {
	Name        *string
	StorageType *StorageType
	Description Nullable
	ImageURL    Nullable
	TagIDs      *[]uuid.UUID
}

// IsEmpty returns true if the patch changes nothing.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.StorageType == nil && !p.Description.Set && !p.ImageURL.Set && p.TagIDs == nil
}

// EditItemPayload proposes a partial update of an existing item.
type EditItemPayload struct {
	ItemID uuid.UUID
	Patch  ItemPatch
}

// ListMetadataPatch is a partial update of a list's name and description.
type ListMetadataPatch struct {
	Name        *string
	Description Nullable
}

// IsEmpty returns true if the patch changes nothing.
func (p ListMetadataPatch) IsEmpty() bool {
	return p.Name == nil && !p.Description.Set
}

// ListMetadataPayload proposes new list metadata.
type ListMetadataPayload struct {
	Patch ListMetadataPatch
}

func (AddTagPayload) ChangeType() ChangeType       { return ChangeTypeAddTag }
func (AddItemPayload) ChangeType() ChangeType      { return ChangeTypeAddItem }
func (EditItemPayload) ChangeType() ChangeType     { return ChangeTypeEditItem }
func (ListMetadataPayload) ChangeType() ChangeType { return ChangeTypeListMetadata }

func (p AddTagPayload) Document() map[string]any {
	return map[string]any{
		"name":  p.Name,
		"color": nullableValue(p.Color),
	}
}

func (p AddItemPayload) Document() map[string]any {
	return map[string]any{
		"name":        p.Name,
		"storageType": p.StorageType.String(),
		"description": nullableValue(p.Description),
		"imageUrl":    nullableValue(p.ImageURL),
		"tagIds":      idStrings(p.TagIDs),
	}
}

func (p EditItemPayload) Document() map[string]any {
	doc := map[string]any{"itemId": p.ItemID.String()}
	if p.Patch.Name != nil {
		doc["name"] = *p.Patch.Name
	}
	if p.Patch.StorageType != nil {
		doc["storageType"] = p.Patch.StorageType.String()
	}
	if p.Patch.Description.Set {
		doc["description"] = nullableValue(p.Patch.Description.Value)
	}
	if p.Patch.ImageURL.Set {
		doc["imageUrl"] = nullableValue(p.Patch.ImageURL.Value)
	}
	if p.Patch.TagIDs != nil {
		doc["tagIds"] = idStrings(*p.Patch.TagIDs)
	}
	return doc
}

func (p ListMetadataPayload) Document() map[string]any {
	doc := map[string]any{}
	if p.Patch.Name != nil {
		doc["name"] = *p.Patch.Name
	}
	if p.Patch.Description.Set {
		doc["description"] = nullableValue(p.Patch.Description.Value)
	}
	return doc
}

// ParseChangePayload validates and normalizes a raw payload document for the given type.
// It is applied when a change is proposed and again when it is approved, since stored
// documents may predate the current rules.
func ParseChangePayload(t ChangeType, raw map[string]any) (ChangePayload, error) {
	r := &payloadReader{raw: raw}

	switch t {
	case ChangeTypeAddTag:
		p := AddTagPayload{
			Name:  r.requiredString("name"),
			Color: r.color("color").Value,
		}
		return p, r.err()

	case ChangeTypeAddItem:
		p := AddItemPayload{
			Name:        r.requiredString("name"),
			Description: r.nullableString("description").Value,
			ImageURL:    r.url("imageUrl").Value,
		}
		if st := r.storageType("storageType", true); st != nil {
			p.StorageType = *st
		}
		p.TagIDs = []uuid.UUID{}
		if ids := r.tagIDs("tagIds"); ids != nil {
			p.TagIDs = *ids
		}
		return p, r.err()

	case ChangeTypeEditItem:
		p := EditItemPayload{
			ItemID: r.requiredID("itemId"),
			Patch: ItemPatch{
				Name:        r.optionalString("name"),
				StorageType: r.storageType("storageType", false),
				Description: r.nullableString("description"),
				ImageURL:    r.url("imageUrl"),
				TagIDs:      r.tagIDs("tagIds"),
			},
		}
		return p, r.err()

	case ChangeTypeListMetadata:
		p := ListMetadataPayload{
			Patch: ListMetadataPatch{
				Name:        r.optionalString("name"),
				Description: r.nullableString("description"),
			},
		}
		if err := r.err(); err != nil {
			return nil, err
		}
		if p.Patch.IsEmpty() {
			return nil, ErrEmptyMetadataPayload
		}
		return p, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedChangeType, t)
	}
}

// payloadReader extracts typed fields from a loosely typed document,
// collecting field errors as it goes.
type payloadReader struct {
	raw            map[string]any
	errs           []FieldError
	storageTypeErr error
}

func (r *payloadReader) fail(field, message string) {
	r.errs = append(r.errs, FieldError{Field: field, Message: message})
}

func (r *payloadReader) err() error {
	if len(r.errs) > 0 {
		return NewValidationErrors(r.errs)
	}
	return r.storageTypeErr
}

// requiredString returns the trimmed value, failing when it is absent or blank.
func (r *payloadReader) requiredString(key string) string {
	v, ok := r.raw[key]
	if !ok || v == nil {
		r.fail(key, "required")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(key, "must be a string")
		return ""
	}
	s = strings.TrimSpace(s)
	if s == "" {
		r.fail(key, "required")
	}
	return s
}

// optionalString is like requiredString but absence is allowed.
func (r *payloadReader) optionalString(key string) *string {
	if _, ok := r.raw[key]; !ok {
		return nil
	}
	s := r.requiredString(key)
	if s == "" {
		return nil
	}
	return &s
}

// nullableString accepts absence, null or a string. Blank strings become null.
func (r *payloadReader) nullableString(key string) Nullable {
	v, ok := r.raw[key]
	if !ok {
		return Nullable{}
	}
	if v == nil {
		return NullableOf(nil)
	}
	s, ok := v.(string)
	if !ok {
		r.fail(key, "must be a string or null")
		return Nullable{}
	}
	return NullableOf(TrimToNil(s))
}

func (r *payloadReader) color(key string) Nullable {
	n := r.nullableString(key)
	if n.Value == nil {
		return n
	}
	c, ok := NormalizeHexColor(*n.Value)
	if !ok {
		r.fail(key, "must be a #RRGGBB hex color")
		return Nullable{}
	}
	return NullableOf(&c)
}

func (r *payloadReader) url(key string) Nullable {
	n := r.nullableString(key)
	if n.Value != nil && !IsHTTPURL(*n.Value) {
		r.fail(key, "must be an absolute http(s) URL")
		return Nullable{}
	}
	return n
}

func (r *payloadReader) requiredID(key string) uuid.UUID {
	s := r.requiredString(key)
	if s == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		r.fail(key, "must be a valid id")
		return uuid.Nil
	}
	return id
}

// storageType lowercases the value. An unknown value is reported as
// ErrInvalidStorageType rather than a field error.
func (r *payloadReader) storageType(key string, required bool) *StorageType {
	if _, ok := r.raw[key]; !ok && !required {
		return nil
	}
	s := r.requiredString(key)
	if s == "" {
		return nil
	}
	st, err := ParseStorageType(s)
	if err != nil {
		r.storageTypeErr = fmt.Errorf("%w %q: expected one of boolean, count, text", err, s)
		return nil
	}
	return &st
}

// tagIDs returns nil when the key is absent. A null value yields an empty list.
// Duplicates are dropped, keeping first occurrences.
func (r *payloadReader) tagIDs(key string) *[]uuid.UUID {
	v, ok := r.raw[key]
	if !ok {
		return nil
	}

	var items []any
	switch vv := v.(type) {
	case nil:
		ids := []uuid.UUID{}
		return &ids
	case []any:
		items = vv
	case []string:
		items = make([]any, len(vv))
		for i, s := range vv {
			items[i] = s
		}
	default:
		r.fail(key, "must be an array of tag ids")
		return nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok || strings.TrimSpace(s) == "" {
			r.fail(key, "must contain non-empty strings")
			return nil
		}
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			r.fail(key, fmt.Sprintf("invalid tag id %q", s))
			return nil
		}
		ids = append(ids, id)
	}
	ids = DedupeIDs(ids)
	return &ids
}

func nullableValue(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
