package contact

import (
	"context"
	"github.com/google/uuid"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
	"sync"
)

var _ applicationRepo = &applicationRepoMock{}

type applicationRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.JobApplication, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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
