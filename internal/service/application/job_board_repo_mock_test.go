package application

import (
	"context"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
	"sync"
)

var _ jobBoardRepo = &jobBoardRepoMock{}

type jobBoardRepoMock struct {
	ListFunc func(ctx context.Context) ([]*domain.JobBoard, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *jobBoardRepoMock) List(ctx context.Context) ([]*domain.JobBoard, error) {
	if mock.ListFunc == nil {
		panic("jobBoardRepoMock.ListFunc: method is nil but jobBoardRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *jobBoardRepoMock) ListCalls() []struct {
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
