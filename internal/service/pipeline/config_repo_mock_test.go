package pipeline

import (
	"context"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
	"sync"
)

var _ configRepo = &configRepoMock{}

type configRepoMock struct {
	GetFunc  func(ctx context.Context) (domain.PipelineConfig, error)
	SaveFunc func(ctx context.Context, cfg domain.PipelineConfig) error

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		Save []struct {
			Ctx context.Context
			Cfg domain.PipelineConfig
		}
	}
	lockGet  sync.RWMutex
	lockSave sync.RWMutex
}

func (mock *configRepoMock) Get(ctx context.Context) (domain.PipelineConfig, error) {
	if mock.GetFunc == nil {
		panic("configRepoMock.GetFunc: method is nil but configRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *configRepoMock) GetCalls() []struct {
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

func (mock *configRepoMock) Save(ctx context.Context, cfg domain.PipelineConfig) error {
	if mock.SaveFunc == nil {
		panic("configRepoMock.SaveFunc: method is nil but configRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Cfg domain.PipelineConfig
	}{Ctx: ctx, Cfg: cfg}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, cfg)
}

func (mock *configRepoMock) SaveCalls() []struct {
	Ctx context.Context
	Cfg domain.PipelineConfig
} {
	var calls []struct {
		Ctx context.Context
		Cfg domain.PipelineConfig
	}
	mock.lockSave.RLock()
	calls = mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
