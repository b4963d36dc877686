package impl

import (
	"context"
	"log/slog"
	"sync"

	"cartbridge/internal/domain/repository"
	"cartbridge/internal/domain/service"
	"cartbridge/internal/usecase"
)

// cartSessionService caches one cart engine per storefront client so that
// every request from the same client hits the same in-memory state.
type cartSessionService struct {
	guestRepo repository.GuestCartRepository
	api       service.CartAPIClient
	logger    *slog.Logger

	mu      sync.Mutex
	engines map[string]usecase.CartUsecase
}

// NewCartSessionService creates the per-client engine registry.
func NewCartSessionService(guestRepo repository.GuestCartRepository, api service.CartAPIClient, logger *slog.Logger) usecase.CartSessionUsecase {
	return &cartSessionService{
		guestRepo: guestRepo,
		api:       api,
		logger:    logger,
		engines:   make(map[string]usecase.CartUsecase),
	}
}

// Session returns the engine for a client, constructing and hydrating it
// from the guest store on first use.
func (s *cartSessionService) Session(ctx context.Context, clientID string) (usecase.CartUsecase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if engine, ok := s.engines[clientID]; ok {
		return engine, nil
	}

	engine, err := NewCartEngine(ctx, clientID, s.guestRepo, s.api, s.logger)
	if err != nil {
		return nil, err
	}
	s.engines[clientID] = engine

	return engine, nil
}

// Evict drops a client's cached engine; persisted guest items survive.
func (s *cartSessionService) Evict(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.engines, clientID)
}
