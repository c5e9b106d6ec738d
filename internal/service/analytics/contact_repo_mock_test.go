package analytics

import (
	"context"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
	"sync"
)

var _ contactRepo = &contactRepoMock{}

type contactRepoMock struct {
	ListFunc func(ctx context.Context) ([]*domain.Contact, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *contactRepoMock) List(ctx context.Context) ([]*domain.Contact, error) {
	if mock.ListFunc == nil {
		panic("contactRepoMock.ListFunc: method is nil but contactRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *contactRepoMock) ListCalls() []struct {
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
