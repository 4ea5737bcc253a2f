package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wedloft/site-service/internal/entities"
	"github.com/wedloft/site-service/internal/repo"
)

func strPtr(s string) *string { return &s }

func TestMemoryStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults and lookup", func(t *testing.T) {
		store := repo.NewMemoryStore()

		created, err := store.Create(ctx, entities.OrderDraft{
			EtsyOrderID: "ETSY-1",
			AccessCode:  "CODE1234",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, created.ID)
		assert.Equal(t, entities.StatusPending, created.Status)
		assert.False(t, created.CreatedAt.IsZero())

		byID, err := store.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, byID)

		byCode, err := store.GetByAccessCode(ctx, "CODE1234")
		require.NoError(t, err)
		assert.Equal(t, created, byCode)
	})

	t.Run("duplicate access code", func(t *testing.T) {
		store := repo.NewMemoryStore()

		_, err := store.Create(ctx, entities.OrderDraft{EtsyOrderID: "ETSY-1", AccessCode: "CODE1234"})
		require.NoError(t, err)

		_, err = store.Create(ctx, entities.OrderDraft{EtsyOrderID: "ETSY-2", AccessCode: "CODE1234"})
		assert.ErrorIs(t, err, entities.ErrOrderExists)
	})

	t.Run("duplicate etsy order id", func(t *testing.T) {
		store := repo.NewMemoryStore()

		_, err := store.Create(ctx, entities.OrderDraft{EtsyOrderID: "ETSY-1", AccessCode: "CODE1234"})
		require.NoError(t, err)

		_, err = store.Create(ctx, entities.OrderDraft{EtsyOrderID: "ETSY-1", AccessCode: "OTHER567"})
		assert.ErrorIs(t, err, entities.ErrOrderExists)
	})
}

func TestMemoryStore_Get(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryStore()

	_, err := store.GetByID(ctx, 99)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)

	_, err = store.GetByAccessCode(ctx, "MISSING")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestMemoryStore_Update(t *testing.T) {
	ctx := context.Background()

	newOrder := func(t *testing.T, store *repo.MemoryStore) entities.Order {
		t.Helper()
		order, err := store.Create(ctx, entities.OrderDraft{EtsyOrderID: "ETSY-1", AccessCode: "CODE1234"})
		require.NoError(t, err)
		return order
	}

	t.Run("not found", func(t *testing.T) {
		store := repo.NewMemoryStore()
		_, err := store.Update(ctx, 99, entities.OrderPatch{})
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("details merge across steps", func(t *testing.T) {
		store := repo.NewMemoryStore()
		order := newOrder(t, store)

		_, err := store.Update(ctx, order.ID, entities.OrderPatch{
			WeddingDetails: &entities.WeddingDetailsPatch{
				CoupleNames: strPtr("A & B"),
				Venue:       strPtr("X"),
			},
		})
		require.NoError(t, err)

		updated, err := store.Update(ctx, order.ID, entities.OrderPatch{
			WeddingDetails: &entities.WeddingDetailsPatch{Venue: strPtr("Y")},
		})
		require.NoError(t, err)

		require.NotNil(t, updated.WeddingDetails)
		assert.Equal(t, "A & B", updated.WeddingDetails.CoupleNames)
		assert.Equal(t, "Y", updated.WeddingDetails.Venue)
	})

	t.Run("empty string overwrites, nil retains", func(t *testing.T) {
		store := repo.NewMemoryStore()
		order := newOrder(t, store)

		_, err := store.Update(ctx, order.ID, entities.OrderPatch{
			WeddingDetails: &entities.WeddingDetailsPatch{
				CoupleNames: strPtr("A & B"),
				DressCode:   strPtr("Black tie"),
			},
		})
		require.NoError(t, err)

		updated, err := store.Update(ctx, order.ID, entities.OrderPatch{
			WeddingDetails: &entities.WeddingDetailsPatch{DressCode: strPtr("")},
		})
		require.NoError(t, err)

		assert.Equal(t, "A & B", updated.WeddingDetails.CoupleNames)
		assert.Equal(t, "", updated.WeddingDetails.DressCode)
	})

	t.Run("agenda overwrites as a whole", func(t *testing.T) {
		store := repo.NewMemoryStore()
		order := newOrder(t, store)

		_, err := store.Update(ctx, order.ID, entities.OrderPatch{
			WeddingDetails: &entities.WeddingDetailsPatch{
				Agenda: []entities.AgendaItem{{Time: "16:00", Event: "Ceremony"}, {Time: "18:00", Event: "Dinner"}},
			},
		})
		require.NoError(t, err)

		updated, err := store.Update(ctx, order.ID, entities.OrderPatch{
			WeddingDetails: &entities.WeddingDetailsPatch{
				Agenda: []entities.AgendaItem{{Time: "17:00", Event: "Ceremony"}},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []entities.AgendaItem{{Time: "17:00", Event: "Ceremony"}}, updated.WeddingDetails.Agenda)

		cleared, err := store.Update(ctx, order.ID, entities.OrderPatch{
			WeddingDetails: &entities.WeddingDetailsPatch{Agenda: []entities.AgendaItem{}},
		})
		require.NoError(t, err)
		assert.Empty(t, cleared.WeddingDetails.Agenda)
	})

	t.Run("status and content patch", func(t *testing.T) {
		store := repo.NewMemoryStore()
		order := newOrder(t, store)

		completed := entities.StatusCompleted
		content := entities.GeneratedContent{WelcomeMessage: "Welcome"}

		updated, err := store.Update(ctx, order.ID, entities.OrderPatch{
			Status:           &completed,
			GeneratedContent: &content,
		})
		require.NoError(t, err)
		assert.Equal(t, entities.StatusCompleted, updated.Status)
		require.NotNil(t, updated.GeneratedContent)
		assert.Equal(t, content, *updated.GeneratedContent)
	})

	t.Run("returned order does not alias stored state", func(t *testing.T) {
		store := repo.NewMemoryStore()
		order := newOrder(t, store)

		updated, err := store.Update(ctx, order.ID, entities.OrderPatch{
			WeddingDetails: &entities.WeddingDetailsPatch{CoupleNames: strPtr("A & B")},
		})
		require.NoError(t, err)

		updated.WeddingDetails.CoupleNames = "mutated"

		fresh, err := store.GetByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, "A & B", fresh.WeddingDetails.CoupleNames)
	})
}
