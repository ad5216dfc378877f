package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AhmedEssamEsmail/SwapTool/internal/events"
	"github.com/AhmedEssamEsmail/SwapTool/internal/workflow"
)

// publishEvent fills in event identity and timing before dispatch. Dispatch
// failures never fail the request that triggered them.
func publishEvent(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = dispatcher.Publish(ctx, event)
}

func eventActor(actor workflow.Actor) events.Actor {
	return events.Actor{EmployeeID: actor.EmployeeID, Role: actor.Role}
}
