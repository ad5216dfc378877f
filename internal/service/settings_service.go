package service

import (
	"context"
	"errors"

	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
	"github.com/AhmedEssamEsmail/SwapTool/internal/events"
	"github.com/AhmedEssamEsmail/SwapTool/internal/persistence"
	"github.com/AhmedEssamEsmail/SwapTool/internal/repository"
	"github.com/AhmedEssamEsmail/SwapTool/internal/workflow"
	"github.com/AhmedEssamEsmail/SwapTool/pkg/util"
)

// SettingsService owns the auto-approve flag. Reads hit the cache first;
// a never-written flag reads as false.
type SettingsService struct {
	settings   repository.SettingRepository
	cache      *persistence.SettingsCache
	dispatcher events.Dispatcher
}

// SettingsDependencies bundles requirements for the settings service.
type SettingsDependencies struct {
	SettingRepo repository.SettingRepository
	Cache       *persistence.SettingsCache
	Dispatcher  events.Dispatcher
}

// NewSettingsService constructs the service.
func NewSettingsService(deps SettingsDependencies) *SettingsService {
	return &SettingsService{
		settings:   deps.SettingRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// AutoApproveEnabled reports the flag as it stands right now. Request
// creation consults this once; later flag changes never touch requests
// already created.
func (s *SettingsService) AutoApproveEnabled(ctx context.Context) (bool, error) {
	if value, ok := s.cache.GetBool(ctx, domain.SettingAutoApprove); ok {
		return value, nil
	}

	setting, err := s.settings.Get(ctx, domain.SettingAutoApprove)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.cache.SetBool(ctx, domain.SettingAutoApprove, false)
			return false, nil
		}
		return false, err
	}

	s.cache.SetBool(ctx, domain.SettingAutoApprove, setting.Value)
	return setting.Value, nil
}

// SetAutoApprove writes the flag. Workforce managers only.
func (s *SettingsService) SetAutoApprove(ctx context.Context, actor workflow.Actor, enabled bool) error {
	if actor.Role != domain.RoleWorkforceManager {
		return util.NewForbidden("workforce manager role required")
	}

	setting := &domain.Setting{Key: domain.SettingAutoApprove, Value: enabled}
	if err := s.settings.Upsert(ctx, setting); err != nil {
		return err
	}
	s.cache.SetBool(ctx, domain.SettingAutoApprove, enabled)

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventAutoApproveChanged,
		EntityID: domain.SettingAutoApprove,
		Actor:    eventActor(actor),
		Payload:  events.AutoApproveChangedPayload{Enabled: enabled},
	})
	return nil
}
