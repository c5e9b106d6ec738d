package application

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ contactRepo = &contactRepoMock{}

type contactRepoMock struct {
	DeleteByApplicationFunc func(ctx context.Context, appID uuid.UUID) (int, error)

	calls struct {
		DeleteByApplication []struct {
			Ctx   context.Context
			AppID uuid.UUID
		}
	}
	lockDeleteByApplication sync.RWMutex
}

func (mock *contactRepoMock) DeleteByApplication(ctx context.Context, appID uuid.UUID) (int, error) {
	if mock.DeleteByApplicationFunc == nil {
		panic("contactRepoMock.DeleteByApplicationFunc: method is nil but contactRepo.DeleteByApplication was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		AppID uuid.UUID
	}{Ctx: ctx, AppID: appID}
	mock.lockDeleteByApplication.Lock()
	mock.calls.DeleteByApplication = append(mock.calls.DeleteByApplication, callInfo)
	mock.lockDeleteByApplication.Unlock()
	return mock.DeleteByApplicationFunc(ctx, appID)
}

func (mock *contactRepoMock) DeleteByApplicationCalls() []struct {
	Ctx   context.Context
	AppID uuid.UUID
} {
	var calls []struct {
		Ctx   context.Context
		AppID uuid.UUID
	}
	mock.lockDeleteByApplication.RLock()
	calls = mock.calls.DeleteByApplication
	mock.lockDeleteByApplication.RUnlock()
	return calls
}
