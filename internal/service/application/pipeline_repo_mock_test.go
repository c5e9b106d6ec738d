package application

import (
	"context"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
	"sync"
)

var _ pipelineRepo = &pipelineRepoMock{}

type pipelineRepoMock struct {
	GetFunc func(ctx context.Context) (domain.PipelineConfig, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
	}
	lockGet sync.RWMutex
}

func (mock *pipelineRepoMock) Get(ctx context.Context) (domain.PipelineConfig, error) {
	if mock.GetFunc == nil {
		panic("pipelineRepoMock.GetFunc: method is nil but pipelineRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *pipelineRepoMock) GetCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
