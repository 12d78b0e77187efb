package listdetail

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

type cachedTag struct {
	ID        uuid.UUID `json:"id"`
	ListID    uuid.UUID `json:"listId"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

type cachedItem struct {
	ID          uuid.UUID   `json:"id"`
	ListID      uuid.UUID   `json:"listId"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	ImageURL    *string     `json:"imageUrl"`
	StorageType string      `json:"storageType"`
	Tags        []cachedTag `json:"tags"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// cachedEntry is the serialized form of the cached tags and items.
type cachedEntry struct {
	Tags  []cachedTag  `json:"tags"`
	Items []cachedItem `json:"items"`
}

func encodeEntry(tags []domain.Tag, items []domain.ItemDefinition) ([]byte, error) {
	e := cachedEntry{
		Tags:  toCachedTags(tags),
		Items: make([]cachedItem, 0, len(items)),
	}
	for _, it := range items {
		e.Items = append(e.Items, cachedItem{
			ID:          it.ID,
			ListID:      it.ListID,
			Name:        it.Name,
			Description: it.Description,
			ImageURL:    it.ImageURL,
			StorageType: it.StorageType.String(),
			Tags:        toCachedTags(it.Tags),
			CreatedAt:   it.CreatedAt,
			UpdatedAt:   it.UpdatedAt,
		})
	}
	return json.Marshal(e)
}

func decodeEntry(data []byte) ([]domain.Tag, []domain.ItemDefinition, error) {
	var e cachedEntry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, nil, err
	}

	items := make([]domain.ItemDefinition, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, domain.ItemDefinition{
			ID:          it.ID,
			ListID:      it.ListID,
			Name:        it.Name,
			Description: it.Description,
			ImageURL:    it.ImageURL,
			StorageType: domain.StorageType(it.StorageType),
			Tags:        fromCachedTags(it.Tags),
			CreatedAt:   it.CreatedAt,
			UpdatedAt:   it.UpdatedAt,
		})
	}

	return fromCachedTags(e.Tags), items, nil
}

func toCachedTags(tags []domain.Tag) []cachedTag {
	out := make([]cachedTag, 0, len(tags))
	for _, t := range tags {
		out = append(out, cachedTag(t))
	}
	return out
}

func fromCachedTags(tags []cachedTag) []domain.Tag {
	out := make([]domain.Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, domain.Tag(t))
	}
	return out
}
