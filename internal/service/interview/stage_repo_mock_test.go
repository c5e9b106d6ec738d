package interview

import (
	"context"
	"github.com/google/uuid"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
	"sync"
)

var _ stageRepo = &stageRepoMock{}

type stageRepoMock struct {
	CreateFunc            func(ctx context.Context, stage *domain.InterviewStage) (*domain.InterviewStage, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.InterviewStage, error)
	ListFunc              func(ctx context.Context) ([]*domain.InterviewStage, error)
	ListByApplicationFunc func(ctx context.Context, appID uuid.UUID) ([]*domain.InterviewStage, error)
	UpdateFunc            func(ctx context.Context, stage *domain.InterviewStage) (*domain.InterviewStage, error)
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Stage *domain.InterviewStage
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		ListByApplication []struct {
			Ctx   context.Context
			AppID uuid.UUID
		}
		Update []struct {
			Ctx   context.Context
			Stage *domain.InterviewStage
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockCreate            sync.RWMutex
	lockGetByID           sync.RWMutex
	lockList              sync.RWMutex
	lockListByApplication sync.RWMutex
	lockUpdate            sync.RWMutex
	lockDelete            sync.RWMutex
}

func (mock *stageRepoMock) Create(ctx context.Context, stage *domain.InterviewStage) (*domain.InterviewStage, error) {
	if mock.CreateFunc == nil {
		panic("stageRepoMock.CreateFunc: method is nil but stageRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Stage *domain.InterviewStage
	}{Ctx: ctx, Stage: stage}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, stage)
}

func (mock *stageRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Stage *domain.InterviewStage
} {
	var calls []struct {
		Ctx   context.Context
		Stage *domain.InterviewStage
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *stageRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.InterviewStage, error) {
	if mock.GetByIDFunc == nil {
		panic("stageRepoMock.GetByIDFunc: method is nil but stageRepo.GetByID was just called")
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

func (mock *stageRepoMock) GetByIDCalls() []struct {
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

func (mock *stageRepoMock) List(ctx context.Context) ([]*domain.InterviewStage, error) {
	if mock.ListFunc == nil {
		panic("stageRepoMock.ListFunc: method is nil but stageRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *stageRepoMock) ListCalls() []struct {
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

func (mock *stageRepoMock) ListByApplication(ctx context.Context, appID uuid.UUID) ([]*domain.InterviewStage, error) {
	if mock.ListByApplicationFunc == nil {
		panic("stageRepoMock.ListByApplicationFunc: method is nil but stageRepo.ListByApplication was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		AppID uuid.UUID
	}{Ctx: ctx, AppID: appID}
	mock.lockListByApplication.Lock()
	mock.calls.ListByApplication = append(mock.calls.ListByApplication, callInfo)
	mock.lockListByApplication.Unlock()
	return mock.ListByApplicationFunc(ctx, appID)
}

func (mock *stageRepoMock) ListByApplicationCalls() []struct {
	Ctx   context.Context
	AppID uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		AppID uuid.UUID
	}
	mock.lockListByApplication.RLock()
	calls = mock.calls.ListByApplication
	mock.lockListByApplication.RUnlock()
	return calls
}

func (mock *stageRepoMock) Update(ctx context.Context, stage *domain.InterviewStage) (*domain.InterviewStage, error) {
	if mock.UpdateFunc == nil {
		panic("stageRepoMock.UpdateFunc: method is nil but stageRepo.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Stage *domain.InterviewStage
	}{Ctx: ctx, Stage: stage}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, stage)
}

func (mock *stageRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	Stage *domain.InterviewStage
} {
	var calls []struct {
		Ctx   context.Context
		Stage *domain.InterviewStage
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *stageRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("stageRepoMock.DeleteFunc: method is nil but stageRepo.Delete was just called")
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

func (mock *stageRepoMock) DeleteCalls() []struct {
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
