package study

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/neuronote-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// cardRepoMock
// ---------------------------------------------------------------------------

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	GetByIDForUpdateFunc func(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
	ListWithStateFunc    func(ctx context.Context, deckID *uuid.UUID) ([]domain.Card, error)

	calls struct {
		GetByIDForUpdate []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		ListWithState []struct {
			Ctx    context.Context
			DeckID *uuid.UUID
		}
	}
	lockGetByIDForUpdate sync.RWMutex
	lockListWithState    sync.RWMutex
}

func (mock *cardRepoMock) GetByIDForUpdate(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("cardRepoMock.GetByIDForUpdateFunc: method is nil but cardRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, cardID)
}

func (mock *cardRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *cardRepoMock) ListWithState(ctx context.Context, deckID *uuid.UUID) ([]domain.Card, error) {
	if mock.ListWithStateFunc == nil {
		panic("cardRepoMock.ListWithStateFunc: method is nil but cardRepo.ListWithState was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID *uuid.UUID
	}{Ctx: ctx, DeckID: deckID}
	mock.lockListWithState.Lock()
	mock.calls.ListWithState = append(mock.calls.ListWithState, callInfo)
	mock.lockListWithState.Unlock()
	return mock.ListWithStateFunc(ctx, deckID)
}

func (mock *cardRepoMock) ListWithStateCalls() []struct {
	Ctx    context.Context
	DeckID *uuid.UUID
} {
	mock.lockListWithState.RLock()
	calls := mock.calls.ListWithState
	mock.lockListWithState.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// stateRepoMock
// ---------------------------------------------------------------------------

var _ stateRepo = &stateRepoMock{}

type stateRepoMock struct {
	GetFunc    func(ctx context.Context, cardID uuid.UUID) (*domain.MemoryState, error)
	UpsertFunc func(ctx context.Context, cardID uuid.UUID, state domain.MemoryState) (*domain.MemoryState, error)

	calls struct {
		Get []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		Upsert []struct {
			Ctx    context.Context
			CardID uuid.UUID
			State  domain.MemoryState
		}
	}
	lockGet    sync.RWMutex
	lockUpsert sync.RWMutex
}

func (mock *stateRepoMock) Get(ctx context.Context, cardID uuid.UUID) (*domain.MemoryState, error) {
	if mock.GetFunc == nil {
		panic("stateRepoMock.GetFunc: method is nil but stateRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, cardID)
}

func (mock *stateRepoMock) GetCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *stateRepoMock) Upsert(ctx context.Context, cardID uuid.UUID, state domain.MemoryState) (*domain.MemoryState, error) {
	if mock.UpsertFunc == nil {
		panic("stateRepoMock.UpsertFunc: method is nil but stateRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
		State  domain.MemoryState
	}{Ctx: ctx, CardID: cardID, State: state}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, cardID, state)
}

func (mock *stateRepoMock) UpsertCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
	State  domain.MemoryState
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// deckRepoMock
// ---------------------------------------------------------------------------

var _ deckRepo = &deckRepoMock{}

type deckRepoMock struct {
	GetByIDFunc func(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			DeckID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *deckRepoMock) GetByID(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error) {
	if mock.GetByIDFunc == nil {
		panic("deckRepoMock.GetByIDFunc: method is nil but deckRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID uuid.UUID
	}{Ctx: ctx, DeckID: deckID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, deckID)
}

func (mock *deckRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	DeckID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// txManagerMock
// ---------------------------------------------------------------------------

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

// passthroughTx runs fn directly, as a committed transaction would.
func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}
