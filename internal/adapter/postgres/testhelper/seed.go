package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedAccount creates a regular account with a throwaway password hash.
func SeedAccount(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()
	return seedAccount(t, pool, false)
}

// SeedAdmin creates an account with the admin flag set.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()
	return seedAccount(t, pool, true)
}

func seedAccount(t *testing.T, pool *pgxpool.Pool, isAdmin bool) domain.Account {
	t.Helper()

	acc := domain.Account{
		ID:           uuid.New(),
		Email:        "account-" + uniqueSuffix() + "@example.com",
		PasswordHash: "$2a$04$testhashtesthashtesthashtesthashtesthashtesthash",
		IsAdmin:      isAdmin,
		CreatedAt:    now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO accounts (id, email, password_hash, is_admin, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		acc.ID, acc.Email, acc.PasswordHash, acc.IsAdmin, acc.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount insert: %v", err)
	}

	return acc
}

// SeedGame creates a game with a unique name.
func SeedGame(t *testing.T, pool *pgxpool.Pool) domain.Game {
	t.Helper()

	g := domain.Game{ID: uuid.New(), Name: "Game " + uniqueSuffix(), CreatedAt: now()}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO games (id, name, created_at) VALUES ($1, $2, $3)`,
		g.ID, g.Name, g.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGame insert: %v", err)
	}

	return g
}

// SeedList creates an unpublished list for ownerID under a fresh game.
func SeedList(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.GameList {
	t.Helper()

	game := SeedGame(t, pool)
	ts := now()
	l := domain.GameList{
		ID:             uuid.New(),
		OwnerAccountID: ownerID,
		Game:           game,
		Name:           "List " + uniqueSuffix(),
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO lists (id, owner_account_id, game_id, name, description, is_published, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, NULL, false, $5, $6)`,
		l.ID, l.OwnerAccountID, game.ID, l.Name, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedList insert: %v", err)
	}

	return l
}

// SeedTag creates a tag on listID.
func SeedTag(t *testing.T, pool *pgxpool.Pool, listID uuid.UUID, name string) domain.Tag {
	t.Helper()

	tag := domain.Tag{ID: uuid.New(), ListID: listID, Name: name, CreatedAt: now()}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO list_tags (id, list_id, name, color, created_at) VALUES ($1, $2, $3, NULL, $4)`,
		tag.ID, tag.ListID, tag.Name, tag.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTag insert: %v", err)
	}

	return tag
}

// SeedItem creates an item definition on listID and links the given tags.
func SeedItem(t *testing.T, pool *pgxpool.Pool, listID uuid.UUID, name string, st domain.StorageType, tags ...domain.Tag) domain.ItemDefinition {
	t.Helper()
	ctx := context.Background()

	ts := now()
	item := domain.ItemDefinition{
		ID:          uuid.New(),
		ListID:      listID,
		Name:        name,
		StorageType: st,
		Tags:        tags,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if item.Tags == nil {
		item.Tags = []domain.Tag{}
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO item_definitions (id, list_id, name, description, image_url, storage_type, created_at, updated_at)
		 VALUES ($1, $2, $3, NULL, NULL, $4, $5, $6)`,
		item.ID, item.ListID, item.Name, string(item.StorageType), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert: %v", err)
	}

	for _, tag := range tags {
		_, err := pool.Exec(ctx,
			`INSERT INTO item_definition_tags (item_id, tag_id) VALUES ($1, $2)`,
			item.ID, tag.ID,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedItem link tag: %v", err)
		}
	}

	return item
}

// SeedChange creates a pending list change authored by actorID.
func SeedChange(t *testing.T, pool *pgxpool.Pool, listID, actorID uuid.UUID, payload domain.ChangePayload) domain.ListChange {
	t.Helper()

	c := domain.NewListChange(listID, actorID, payload, now())

	doc, err := json.Marshal(c.Payload)
	if err != nil {
		t.Fatalf("testhelper: SeedChange marshal: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO list_changes (id, list_id, actor_account_id, type, payload, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.ListID, c.ActorAccountID, string(c.Type), doc, string(c.Status), c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedChange insert: %v", err)
	}

	return *c
}

// SeedRawChange inserts a pending change with an arbitrary type and payload,
// bypassing payload validation. Used to simulate rows written by older code.
func SeedRawChange(t *testing.T, pool *pgxpool.Pool, listID, actorID uuid.UUID, ct domain.ChangeType, payload map[string]any) domain.ListChange {
	t.Helper()

	c := domain.ListChange{
		ID:             uuid.New(),
		ListID:         listID,
		ActorAccountID: actorID,
		Type:           ct,
		Payload:        payload,
		Status:         domain.ChangeStatusPending,
		CreatedAt:      now(),
	}

	doc, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("testhelper: SeedRawChange marshal: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO list_changes (id, list_id, actor_account_id, type, payload, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, 'pending', $6)`,
		c.ID, c.ListID, c.ActorAccountID, string(c.Type), doc, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRawChange insert: %v", err)
	}

	return c
}
