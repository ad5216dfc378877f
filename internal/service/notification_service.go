package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/AhmedEssamEsmail/SwapTool/internal/config"
	"github.com/AhmedEssamEsmail/SwapTool/internal/events"
)

// NotificationService turns request lifecycle events into stub email and
// webhook notifications. The notification worker feeds it off the request
// path.
type NotificationService struct {
	logger *zap.Logger
	cfg    config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		logger: logger,
		cfg:    cfg,
	}
}

// HandledEvents lists the event types this service consumes.
func (n *NotificationService) HandledEvents() []events.EventType {
	return []events.EventType{
		events.EventLeaveRequestCreated,
		events.EventLeaveRequestDecided,
		events.EventSwapRequestCreated,
		events.EventSwapRequestResponded,
		events.EventSwapRequestDecided,
		events.EventAutoApproveChanged,
	}
}

// Handle routes one event to its notification. Unknown types are ignored.
func (n *NotificationService) Handle(ctx context.Context, event events.Event) error {
	switch event.Type {
	case events.EventLeaveRequestCreated:
		return n.handleLeaveCreated(ctx, event)
	case events.EventLeaveRequestDecided:
		return n.handleLeaveDecided(ctx, event)
	case events.EventSwapRequestCreated:
		return n.handleSwapCreated(ctx, event)
	case events.EventSwapRequestResponded:
		return n.handleSwapResponded(ctx, event)
	case events.EventSwapRequestDecided:
		return n.handleSwapDecided(ctx, event)
	case events.EventAutoApproveChanged:
		return n.handleAutoApproveChanged(ctx, event)
	}
	return nil
}

func (n *NotificationService) handleLeaveCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("LeaveRequestCreated", zap.String("request_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleLeaveDecided(ctx context.Context, event events.Event) error {
	n.logger.Info("LeaveRequestDecided", zap.String("request_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleSwapCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("SwapRequestCreated", zap.String("request_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleSwapResponded(ctx context.Context, event events.Event) error {
	n.logger.Info("SwapRequestResponded", zap.String("request_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleSwapDecided(ctx context.Context, event events.Event) error {
	n.logger.Info("SwapRequestDecided", zap.String("request_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleAutoApproveChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("AutoApproveChanged", zap.String("key", event.EntityID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}
