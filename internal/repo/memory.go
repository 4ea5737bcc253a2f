package repo

import (
	"context"
	"sync"
	"time"

	"github.com/wedloft/site-service/internal/entities"
)

// MemoryStore is the in-memory store variant used for tests and local runs.
// It is an explicitly owned state container: construct one per process (or
// per test case) and inject it, there is no package-level instance.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int
	orders map[int]entities.Order
	byCode map[string]int
	byEtsy map[string]int

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		orders: make(map[int]entities.Order),
		byCode: make(map[string]int),
		byEtsy: make(map[string]int),
		now:    time.Now,
	}
}

func (s *MemoryStore) GetByID(_ context.Context, id int) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order.Clone(), nil
}

func (s *MemoryStore) GetByAccessCode(_ context.Context, code string) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byCode[code]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return s.orders[id].Clone(), nil
}

func (s *MemoryStore) Create(_ context.Context, draft entities.OrderDraft) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byCode[draft.AccessCode]; taken {
		return entities.Order{}, entities.ErrOrderExists
	}
	if _, taken := s.byEtsy[draft.EtsyOrderID]; taken {
		return entities.Order{}, entities.ErrOrderExists
	}

	status := draft.Status
	if status == "" {
		status = entities.StatusPending
	}

	order := entities.Order{
		ID:          s.nextID,
		EtsyOrderID: draft.EtsyOrderID,
		AccessCode:  draft.AccessCode,
		Status:      status,
		Template:    draft.Template,
		CreatedAt:   s.now().UTC(),
	}
	if draft.WeddingDetails != nil {
		details := draft.WeddingDetails.Clone()
		order.WeddingDetails = &details
	}

	s.nextID++
	s.orders[order.ID] = order
	s.byCode[order.AccessCode] = order.ID
	s.byEtsy[order.EtsyOrderID] = order.ID

	return order.Clone(), nil
}

func (s *MemoryStore) Update(_ context.Context, id int, patch entities.OrderPatch) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.orders[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	merged := applyPatch(current.Clone(), patch)
	s.orders[id] = merged

	return merged.Clone(), nil
}
