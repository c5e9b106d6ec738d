package contact

import (
	"context"
	"github.com/google/uuid"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
	"sync"
)

var _ contactRepo = &contactRepoMock{}

type contactRepoMock struct {
	CreateFunc            func(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	ListFunc              func(ctx context.Context) ([]*domain.Contact, error)
	ListByApplicationFunc func(ctx context.Context, appID uuid.UUID) ([]*domain.Contact, error)
	UpdateFunc            func(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx     context.Context
			Contact *domain.Contact
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
			Ctx     context.Context
			Contact *domain.Contact
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

func (mock *contactRepoMock) Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	if mock.CreateFunc == nil {
		panic("contactRepoMock.CreateFunc: method is nil but contactRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Contact *domain.Contact
	}{Ctx: ctx, Contact: contact}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, contact)
}

func (mock *contactRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Contact *domain.Contact
} {
	var calls []struct {
		Ctx     context.Context
		Contact *domain.Contact
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *contactRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	if mock.GetByIDFunc == nil {
		panic("contactRepoMock.GetByIDFunc: method is nil but contactRepo.GetByID was just called")
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

func (mock *contactRepoMock) GetByIDCalls() []struct {
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

func (mock *contactRepoMock) ListByApplication(ctx context.Context, appID uuid.UUID) ([]*domain.Contact, error) {
	if mock.ListByApplicationFunc == nil {
		panic("contactRepoMock.ListByApplicationFunc: method is nil but contactRepo.ListByApplication was just called")
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

func (mock *contactRepoMock) ListByApplicationCalls() []struct {
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

func (mock *contactRepoMock) Update(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	if mock.UpdateFunc == nil {
		panic("contactRepoMock.UpdateFunc: method is nil but contactRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Contact *domain.Contact
	}{Ctx: ctx, Contact: contact}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, contact)
}

func (mock *contactRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	Contact *domain.Contact
} {
	var calls []struct {
		Ctx     context.Context
		Contact *domain.Contact
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *contactRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("contactRepoMock.DeleteFunc: method is nil but contactRepo.Delete was just called")
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

func (mock *contactRepoMock) DeleteCalls() []struct {
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
