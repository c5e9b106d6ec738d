package jobboard

import (
	"context"
	"github.com/google/uuid"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
	"sync"
)

var _ boardRepo = &boardRepoMock{}

type boardRepoMock struct {
	CreateFunc  func(ctx context.Context, board *domain.JobBoard) (*domain.JobBoard, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.JobBoard, error)
	ListFunc    func(ctx context.Context) ([]*domain.JobBoard, error)
	UpdateFunc  func(ctx context.Context, board *domain.JobBoard) (*domain.JobBoard, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Board *domain.JobBoard
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx   context.Context
			Board *domain.JobBoard
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *boardRepoMock) Create(ctx context.Context, board *domain.JobBoard) (*domain.JobBoard, error) {
	if mock.CreateFunc == nil {
		panic("boardRepoMock.CreateFunc: method is nil but boardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Board *domain.JobBoard
	}{Ctx: ctx, Board: board}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, board)
}

func (mock *boardRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Board *domain.JobBoard
} {
	var calls []struct {
		Ctx   context.Context
		Board *domain.JobBoard
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *boardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobBoard, error) {
	if mock.GetByIDFunc == nil {
		panic("boardRepoMock.GetByIDFunc: method is nil but boardRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *boardRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *boardRepoMock) List(ctx context.Context) ([]*domain.JobBoard, error) {
	if mock.ListFunc == nil {
		panic("boardRepoMock.ListFunc: method is nil but boardRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *boardRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *boardRepoMock) Update(ctx context.Context, board *domain.JobBoard) (*domain.JobBoard, error) {
	if mock.UpdateFunc == nil {
		panic("boardRepoMock.UpdateFunc: method is nil but boardRepo.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Board *domain.JobBoard
	}{Ctx: ctx, Board: board}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, board)
}

func (mock *boardRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	Board *domain.JobBoard
} {
	var calls []struct {
		Ctx   context.Context
		Board *domain.JobBoard
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *boardRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("boardRepoMock.DeleteFunc: method is nil but boardRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *boardRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
