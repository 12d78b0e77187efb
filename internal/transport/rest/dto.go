package rest

import (
	"time"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

type gameResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type listResponse struct {
	ID             string       `json:"id"`
	OwnerAccountID string       `json:"ownerAccountId"`
	Game           gameResponse `json:"game"`
	Name           string       `json:"name"`
	Description    *string      `json:"description"`
	IsPublished    bool         `json:"isPublished"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

type tagResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

type itemResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	ImageURL    *string       `json:"imageUrl"`
	StorageType string        `json:"storageType"`
	Tags        []tagResponse `json:"tags"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type entryResponse struct {
	ItemID    string    `json:"itemId"`
	Value     any       `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type listDetailResponse struct {
	List  listResponse   `json:"list"`
	Tags  []tagResponse  `json:"tags"`
	Items []itemResponse `json:"items"`
}

type changeResponse struct {
	ID             string         `json:"id"`
	ListID         string         `json:"listId"`
	ActorAccountID string         `json:"actorAccountId"`
	Type           string         `json:"type"`
	Payload        map[string]any `json:"payload"`
	Status         string         `json:"status"`
	ReviewedBy     *string        `json:"reviewedBy"`
	ReviewedAt     *time.Time     `json:"reviewedAt"`
	CreatedAt      time.Time      `json:"createdAt"`
}

type shareResponse struct {
	Active    bool       `json:"active"`
	Token     string     `json:"token,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

func toGameResponse(g domain.Game) gameResponse {
	return gameResponse{ID: g.ID.String(), Name: g.Name}
}

func toListResponse(l *domain.GameList) listResponse {
	return listResponse{
		ID:             l.ID.String(),
		OwnerAccountID: l.OwnerAccountID.String(),
		Game:           toGameResponse(l.Game),
		Name:           l.Name,
		Description:    l.Description,
		IsPublished:    l.IsPublished,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func toTagResponses(tags []domain.Tag) []tagResponse {
	out := make([]tagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, tagResponse{
			ID:        t.ID.String(),
			Name:      t.Name,
			Color:     t.Color,
			CreatedAt: t.CreatedAt,
		})
	}
	return out
}

func toItemResponses(items []domain.ItemDefinition) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, itemResponse{
			ID:          it.ID.String(),
			Name:        it.Name,
			Description: it.Description,
			ImageURL:    it.ImageURL,
			StorageType: it.StorageType.String(),
			Tags:        toTagResponses(it.Tags),
			CreatedAt:   it.CreatedAt,
			UpdatedAt:   it.UpdatedAt,
		})
	}
	return out
}

func toEntryResponse(e domain.ItemEntry) entryResponse {
	return entryResponse{
		ItemID:    e.ItemID.String(),
		Value:     e.Value.Any(),
		UpdatedAt: e.UpdatedAt,
	}
}

func toListDetailResponse(d *domain.ListDetail) listDetailResponse {
	return listDetailResponse{
		List:  toListResponse(&d.List),
		Tags:  toTagResponses(d.Tags),
		Items: toItemResponses(d.Items),
	}
}

func toChangeResponse(c *domain.ListChange) changeResponse {
	resp := changeResponse{
		ID:             c.ID.String(),
		ListID:         c.ListID.String(),
		ActorAccountID: c.ActorAccountID.String(),
		Type:           c.Type.String(),
		Payload:        c.Payload,
		Status:         c.Status.String(),
		ReviewedAt:     c.ReviewedAt,
		CreatedAt:      c.CreatedAt,
	}
	if c.ReviewedBy != nil {
		s := c.ReviewedBy.String()
		resp.ReviewedBy = &s
	}
	return resp
}

func toShareResponse(t *domain.ListShareToken) shareResponse {
	if t == nil || !t.IsActive() {
		return shareResponse{Active: false}
	}
	return shareResponse{
		Active:    true,
		Token:     t.Token,
		CreatedAt: &t.CreatedAt,
	}
}
