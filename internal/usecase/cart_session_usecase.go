package usecase

import "context"

// CartSessionUsecase hands out one cart engine per storefront client.
// Engines are created on first use, hydrated from the persisted guest
// store, and cached for the life of the process.
type CartSessionUsecase interface {
	// Session returns the engine for a client, constructing and hydrating
	// it if this is the first request from that client.
	Session(ctx context.Context, clientID string) (CartUsecase, error)

	// Evict drops a client's cached engine. Its persisted guest items
	// survive; the next Session call rehydrates them.
	Evict(clientID string)
}
