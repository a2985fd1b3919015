package deck

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/neuronote-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// deckRepoMock
// ---------------------------------------------------------------------------

var _ deckRepo = &deckRepoMock{}

type deckRepoMock struct {
	CreateFunc  func(ctx context.Context, deck domain.Deck) (*domain.Deck, error)
	GetByIDFunc func(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error)
	ListFunc    func(ctx context.Context, subject string, limit int, offset int) ([]domain.Deck, error)
	UpdateFunc  func(ctx context.Context, deck domain.Deck) (*domain.Deck, error)
	DeleteFunc  func(ctx context.Context, deckID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx  context.Context
			Deck domain.Deck
		}
		GetByID []struct {
			Ctx    context.Context
			DeckID uuid.UUID
		}
		List []struct {
			Ctx     context.Context
			Subject string
			Limit   int
			Offset  int
		}
		Update []struct {
			Ctx  context.Context
			Deck domain.Deck
		}
		Delete []struct {
			Ctx    context.Context
			DeckID uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *deckRepoMock) Create(ctx context.Context, deck domain.Deck) (*domain.Deck, error) {
	if mock.CreateFunc == nil {
		panic("deckRepoMock.CreateFunc: method is nil but deckRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Deck domain.Deck
	}{Ctx: ctx, Deck: deck}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, deck)
}

func (mock *deckRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Deck domain.Deck
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *deckRepoMock) List(ctx context.Context, subject string, limit int, offset int) ([]domain.Deck, error) {
	if mock.ListFunc == nil {
		panic("deckRepoMock.ListFunc: method is nil but deckRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Subject string
		Limit   int
		Offset  int
	}{Ctx: ctx, Subject: subject, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, subject, limit, offset)
}

func (mock *deckRepoMock) ListCalls() []struct {
	Ctx     context.Context
	Subject string
	Limit   int
	Offset  int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *deckRepoMock) Update(ctx context.Context, deck domain.Deck) (*domain.Deck, error) {
	if mock.UpdateFunc == nil {
		panic("deckRepoMock.UpdateFunc: method is nil but deckRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Deck domain.Deck
	}{Ctx: ctx, Deck: deck}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, deck)
}

func (mock *deckRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	Deck domain.Deck
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *deckRepoMock) Delete(ctx context.Context, deckID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("deckRepoMock.DeleteFunc: method is nil but deckRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID uuid.UUID
	}{Ctx: ctx, DeckID: deckID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, deckID)
}

func (mock *deckRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	DeckID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// cardRepoMock
// ---------------------------------------------------------------------------

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	CreateFunc     func(ctx context.Context, card domain.Card) (*domain.Card, error)
	GetByIDFunc    func(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
	ListByDeckFunc func(ctx context.Context, deckID uuid.UUID, limit int, offset int) ([]domain.Card, error)
	UpdateFunc     func(ctx context.Context, card domain.Card) (*domain.Card, error)
	DeleteFunc     func(ctx context.Context, cardID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx  context.Context
			Card domain.Card
		}
		GetByID []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
		ListByDeck []struct {
			Ctx    context.Context
			DeckID uuid.UUID
			Limit  int
			Offset int
		}
		Update []struct {
			Ctx  context.Context
			Card domain.Card
		}
		Delete []struct {
			Ctx    context.Context
			CardID uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockListByDeck sync.RWMutex
	lockUpdate     sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *cardRepoMock) Create(ctx context.Context, card domain.Card) (*domain.Card, error) {
	if mock.CreateFunc == nil {
		panic("cardRepoMock.CreateFunc: method is nil but cardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Card domain.Card
	}{Ctx: ctx, Card: card}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, card)
}

func (mock *cardRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Card domain.Card
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *cardRepoMock) GetByID(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	if mock.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, cardID)
}

func (mock *cardRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *cardRepoMock) ListByDeck(ctx context.Context, deckID uuid.UUID, limit int, offset int) ([]domain.Card, error) {
	if mock.ListByDeckFunc == nil {
		panic("cardRepoMock.ListByDeckFunc: method is nil but cardRepo.ListByDeck was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, DeckID: deckID, Limit: limit, Offset: offset}
	mock.lockListByDeck.Lock()
	mock.calls.ListByDeck = append(mock.calls.ListByDeck, callInfo)
	mock.lockListByDeck.Unlock()
	return mock.ListByDeckFunc(ctx, deckID, limit, offset)
}

func (mock *cardRepoMock) ListByDeckCalls() []struct {
	Ctx    context.Context
	DeckID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListByDeck.RLock()
	calls := mock.calls.ListByDeck
	mock.lockListByDeck.RUnlock()
	return calls
}

func (mock *cardRepoMock) Update(ctx context.Context, card domain.Card) (*domain.Card, error) {
	if mock.UpdateFunc == nil {
		panic("cardRepoMock.UpdateFunc: method is nil but cardRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Card domain.Card
	}{Ctx: ctx, Card: card}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, card)
}

func (mock *cardRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	Card domain.Card
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *cardRepoMock) Delete(ctx context.Context, cardID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("cardRepoMock.DeleteFunc: method is nil but cardRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CardID uuid.UUID
	}{Ctx: ctx, CardID: cardID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, cardID)
}

func (mock *cardRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	CardID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
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
