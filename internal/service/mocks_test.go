package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
	"github.com/AhmedEssamEsmail/SwapTool/internal/events"
	"github.com/AhmedEssamEsmail/SwapTool/internal/repository"
	"github.com/AhmedEssamEsmail/SwapTool/internal/workflow"
	"github.com/AhmedEssamEsmail/SwapTool/pkg/util"
)

// Mock repositories. Each method delegates to an injectable func field and
// falls back to a benign default, so tests only wire the calls they care
// about.

type mockEmployeeRepo struct {
	createFunc     func(ctx context.Context, employee *domain.Employee) error
	updateFunc     func(ctx context.Context, employee *domain.Employee) error
	getByIDFunc    func(ctx context.Context, id string) (*domain.Employee, error)
	getByEmailFunc func(ctx context.Context, email string) (*domain.Employee, error)
	listFunc       func(ctx context.Context, filter repository.EmployeeFilter) ([]domain.Employee, error)
}

func (m *mockEmployeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, employee)
	}
	employee.ID = "emp-new"
	return nil
}

func (m *mockEmployeeRepo) Update(ctx context.Context, employee *domain.Employee) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, employee)
	}
	return nil
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockEmployeeRepo) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *mockEmployeeRepo) List(ctx context.Context, filter repository.EmployeeFilter) ([]domain.Employee, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, nil
}

type mockShiftRepo struct {
	createFunc  func(ctx context.Context, shift *domain.Shift) error
	updateFunc  func(ctx context.Context, shift *domain.Shift) error
	deleteFunc  func(ctx context.Context, id string) error
	getByIDFunc func(ctx context.Context, id string) (*domain.Shift, error)
	listFunc    func(ctx context.Context, filter repository.ShiftFilter) ([]domain.Shift, error)
}

func (m *mockShiftRepo) Create(ctx context.Context, shift *domain.Shift) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, shift)
	}
	shift.ID = "shift-new"
	return nil
}

func (m *mockShiftRepo) Update(ctx context.Context, shift *domain.Shift) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, shift)
	}
	return nil
}

func (m *mockShiftRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockShiftRepo) GetByID(ctx context.Context, id string) (*domain.Shift, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockShiftRepo) List(ctx context.Context, filter repository.ShiftFilter) ([]domain.Shift, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, nil
}

type mockLeaveRepo struct {
	createFunc          func(ctx context.Context, request *domain.LeaveRequest) error
	getByIDFunc         func(ctx context.Context, id string) (*domain.LeaveRequest, error)
	listFunc            func(ctx context.Context, filter repository.LeaveRequestFilter) ([]domain.LeaveRequest, error)
	applyTransitionFunc func(ctx context.Context, request *domain.LeaveRequest, from domain.LeaveStatus) error
}

func (m *mockLeaveRepo) Create(ctx context.Context, request *domain.LeaveRequest) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, request)
	}
	request.ID = "leave-new"
	return nil
}

func (m *mockLeaveRepo) GetByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockLeaveRepo) List(ctx context.Context, filter repository.LeaveRequestFilter) ([]domain.LeaveRequest, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockLeaveRepo) ApplyTransition(ctx context.Context, request *domain.LeaveRequest, from domain.LeaveStatus) error {
	if m.applyTransitionFunc != nil {
		return m.applyTransitionFunc(ctx, request, from)
	}
	return nil
}

type mockSwapRepo struct {
	createFunc          func(ctx context.Context, request *domain.SwapRequest) error
	getByIDFunc         func(ctx context.Context, id string) (*domain.SwapRequest, error)
	listFunc            func(ctx context.Context, filter repository.SwapRequestFilter) ([]domain.SwapRequest, error)
	applyTransitionFunc func(ctx context.Context, request *domain.SwapRequest, from domain.SwapStatus, exchange *workflow.ShiftExchange) error
}

func (m *mockSwapRepo) Create(ctx context.Context, request *domain.SwapRequest) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, request)
	}
	request.ID = "swap-new"
	return nil
}

func (m *mockSwapRepo) GetByID(ctx context.Context, id string) (*domain.SwapRequest, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockSwapRepo) List(ctx context.Context, filter repository.SwapRequestFilter) ([]domain.SwapRequest, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockSwapRepo) ApplyTransition(ctx context.Context, request *domain.SwapRequest, from domain.SwapStatus, exchange *workflow.ShiftExchange) error {
	if m.applyTransitionFunc != nil {
		return m.applyTransitionFunc(ctx, request, from, exchange)
	}
	return nil
}

type mockSettingRepo struct {
	getFunc    func(ctx context.Context, key string) (*domain.Setting, error)
	upsertFunc func(ctx context.Context, setting *domain.Setting) error
}

func (m *mockSettingRepo) Get(ctx context.Context, key string) (*domain.Setting, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, repository.ErrNotFound
}

func (m *mockSettingRepo) Upsert(ctx context.Context, setting *domain.Setting) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, setting)
	}
	return nil
}

// capturingDispatcher records every published event for assertions.
type capturingDispatcher struct {
	published []events.Event
}

func (d *capturingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *capturingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *capturingDispatcher) lastEvent(t *testing.T) events.Event {
	t.Helper()
	require.NotEmpty(t, d.published)
	return d.published[len(d.published)-1]
}

// stubPolicy returns a fixed auto-approve flag.
type stubPolicy struct {
	enabled bool
	err     error
}

func (p stubPolicy) AutoApproveEnabled(context.Context) (bool, error) {
	return p.enabled, p.err
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, code, domainErr.Code)
}
