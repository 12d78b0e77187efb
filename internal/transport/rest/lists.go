package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
	"github.com/heartmarshall/gameitems-backend/internal/service/list"
)

// listService defines the list operations needed by ListHandler.
type listService interface {
	ListGames(ctx context.Context) ([]domain.Game, error)
	ListLists(ctx context.Context) ([]domain.GameList, error)
	CreateList(ctx context.Context, input list.CreateListInput) (*domain.GameList, error)
	Publish(ctx context.Context, listID uuid.UUID) (*domain.GameList, error)
	ListTags(ctx context.Context, listID uuid.UUID) ([]domain.Tag, error)
	ListItems(ctx context.Context, input list.ListItemsInput) ([]domain.ItemDefinition, error)
	ListEntries(ctx context.Context, listID uuid.UUID) ([]domain.ItemEntry, error)
	SetEntry(ctx context.Context, input list.SetEntryInput) (*domain.ItemEntry, error)
	ProposeMetadata(ctx context.Context, input list.ProposeInput) (*domain.ListChange, error)
	ProposeTag(ctx context.Context, input list.ProposeInput) (*domain.ListChange, error)
	ProposeItem(ctx context.Context, input list.ProposeInput) (*domain.ListChange, error)
	ProposeItemEdit(ctx context.Context, input list.ProposeInput) (*domain.ListChange, error)
}

// detailReader serves the cached list detail.
type detailReader interface {
	Get(ctx context.Context, accountID, listID uuid.UUID) (*domain.ListDetail, error)
}

// ListHandler serves the /v1/games and /v1/lists endpoints.
type ListHandler struct {
	lists   listService
	details detailReader
	log     *slog.Logger
}

// NewListHandler creates a ListHandler.
func NewListHandler(lists listService, details detailReader, logger *slog.Logger) *ListHandler {
	return &ListHandler{
		lists:   lists,
		details: details,
		log:     logger.With("handler", "lists"),
	}
}

type createListRequest struct {
	GameID      uuid.UUID `json:"gameId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
}

type setEntryRequest struct {
	Value any `json:"value"`
}

// Games handles GET /v1/games.
func (h *ListHandler) Games(w http.ResponseWriter, r *http.Request) {
	games, err := h.lists.ListGames(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]gameResponse, 0, len(games))
	for _, g := range games {
		out = append(out, toGameResponse(g))
	}
	writeJSON(w, http.StatusOK, out)
}

// Lists handles GET /v1/lists.
func (h *ListHandler) Lists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.lists.ListLists(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]listResponse, 0, len(lists))
	for i := range lists {
		out = append(out, toListResponse(&lists[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /v1/lists.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.lists.CreateList(r.Context(), list.CreateListInput{
		GameID:      req.GameID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toListResponse(created))
}

// Detail handles GET /v1/lists/{listId}.
func (h *ListHandler) Detail(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccount(w, r)
	if !ok {
		return
	}
	listID, ok := pathUUID(w, r, "listId")
	if !ok {
		return
	}

	detail, err := h.details.Get(r.Context(), accountID, listID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toListDetailResponse(detail))
}

// ProposeMetadata handles PATCH /v1/lists/{listId}.
func (h *ListHandler) ProposeMetadata(w http.ResponseWriter, r *http.Request) {
	h.propose(w, r, false, h.lists.ProposeMetadata)
}

// Publish handles POST /v1/lists/{listId}/publish.
func (h *ListHandler) Publish(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "listId")
	if !ok {
		return
	}

	published, err := h.lists.Publish(r.Context(), listID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(published))
}

// Tags handles GET /v1/lists/{listId}/tags.
func (h *ListHandler) Tags(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "listId")
	if !ok {
		return
	}

	tags, err := h.lists.ListTags(r.Context(), listID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTagResponses(tags))
}

// ProposeTag handles POST /v1/lists/{listId}/tags.
func (h *ListHandler) ProposeTag(w http.ResponseWriter, r *http.Request) {
	h.propose(w, r, false, h.lists.ProposeTag)
}

// Items handles GET /v1/lists/{listId}/items?tag=&owned=&search=.
func (h *ListHandler) Items(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "listId")
	if !ok {
		return
	}

	input := list.ListItemsInput{ListID: listID}
	q := r.URL.Query()

	if v := q.Get("tag"); v != "" {
		tagID, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid tag")
			return
		}
		input.TagID = &tagID
	}
	if v := q.Get("owned"); v != "" {
		owned, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid owned")
			return
		}
		input.Owned = &owned
	}
	if v := q.Get("search"); v != "" {
		input.Search = &v
	}

	items, err := h.lists.ListItems(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponses(items))
}

// ProposeItem handles POST /v1/lists/{listId}/items.
func (h *ListHandler) ProposeItem(w http.ResponseWriter, r *http.Request) {
	h.propose(w, r, false, h.lists.ProposeItem)
}

// ProposeItemEdit handles PATCH /v1/lists/{listId}/items/{itemId}.
func (h *ListHandler) ProposeItemEdit(w http.ResponseWriter, r *http.Request) {
	h.propose(w, r, true, h.lists.ProposeItemEdit)
}

// Entries handles GET /v1/lists/{listId}/entries.
func (h *ListHandler) Entries(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "listId")
	if !ok {
		return
	}

	entries, err := h.lists.ListEntries(r.Context(), listID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// SetEntry handles POST /v1/lists/{listId}/entries/{itemId}.
func (h *ListHandler) SetEntry(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "listId")
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "itemId")
	if !ok {
		return
	}

	var req setEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.lists.SetEntry(r.Context(), list.SetEntryInput{
		ListID: listID,
		ItemID: itemID,
		Value:  req.Value,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(*entry))
}

type proposeFunc func(ctx context.Context, input list.ProposeInput) (*domain.ListChange, error)

// propose decodes a change document and answers 202 with the pending change.
func (h *ListHandler) propose(w http.ResponseWriter, r *http.Request, withItem bool, fn proposeFunc) {
	listID, ok := pathUUID(w, r, "listId")
	if !ok {
		return
	}
	input := list.ProposeInput{ListID: listID}
	if withItem {
		if input.ItemID, ok = pathUUID(w, r, "itemId"); !ok {
			return
		}
	}

	doc, err := decodeDocument(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	input.Payload = doc

	change, err := fn(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusAccepted, toChangeResponse(change))
}
