package analytics

import (
	"context"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
	"sync"
)

var _ stageRepo = &stageRepoMock{}

type stageRepoMock struct {
	ListFunc func(ctx context.Context) ([]*domain.InterviewStage, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
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
