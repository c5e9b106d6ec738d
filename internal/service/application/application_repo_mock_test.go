package application

import (
	"context"
	"github.com/google/uuid"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
	"sync"
)

var _ applicationRepo = &applicationRepoMock{}

type applicationRepoMock struct {
	CreateFunc  func(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.JobApplication, error)
	ListFunc    func(ctx context.Context) ([]*domain.JobApplication, error)
	UpdateFunc  func(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			App *domain.JobApplication
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx context.Context
			App *domain.JobApplication
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

func (mock *applicationRepoMock) Create(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	if mock.CreateFunc == nil {
		panic("applicationRepoMock.CreateFunc: method is nil but applicationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		App *domain.JobApplication
	}{Ctx: ctx, App: app}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, app)
}

func (mock *applicationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	App *domain.JobApplication
} {
	var calls []struct {
		Ctx context.Context
		App *domain.JobApplication
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *applicationRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobApplication, error) {
	if mock.GetByIDFunc == nil {
		panic("applicationRepoMock.GetByIDFunc: method is nil but applicationRepo.GetByID was just called")
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

func (mock *applicationRepoMock) GetByIDCalls() []struct {
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

func (mock *applicationRepoMock) List(ctx context.Context) ([]*domain.JobApplication, error) {
	if mock.ListFunc == nil {
		panic("applicationRepoMock.ListFunc: method is nil but applicationRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *applicationRepoMock) ListCalls() []struct {
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

func (mock *applicationRepoMock) Update(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	if mock.UpdateFunc == nil {
		panic("applicationRepoMock.UpdateFunc: method is nil but applicationRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		App *domain.JobApplication
	}{Ctx: ctx, App: app}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, app)
}

func (mock *applicationRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	App *domain.JobApplication
} {
	var calls []struct {
		Ctx context.Context
		App *domain.JobApplication
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *applicationRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("applicationRepoMock.DeleteFunc: method is nil but applicationRepo.Delete was just called")
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

func (mock *applicationRepoMock) DeleteCalls() []struct {
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
