package service

import (
	"errors"

	"github.com/AhmedEssamEsmail/SwapTool/internal/repository"
	"github.com/AhmedEssamEsmail/SwapTool/internal/workflow"
	"github.com/AhmedEssamEsmail/SwapTool/pkg/util"
)

// mapWorkflowError translates engine sentinels into API-facing errors.
func mapWorkflowError(err error) error {
	switch {
	case errors.Is(err, workflow.ErrInvalidRange):
		return util.NewInvalidRange(err.Error())
	case errors.Is(err, workflow.ErrInvalidTarget):
		return util.NewInvalidTarget(err.Error())
	case errors.Is(err, workflow.ErrInvalidShift):
		return util.NewInvalidShift(err.Error())
	case errors.Is(err, workflow.ErrUnauthorized):
		return util.NewForbidden(err.Error())
	case errors.Is(err, workflow.ErrTerminalState):
		return util.NewTerminalState("request already finalized", nil)
	case errors.Is(err, workflow.ErrInvalidTransition):
		return util.NewConflict(err.Error(), nil)
	default:
		return util.NewValidationError(err.Error(), nil)
	}
}

// mapRepoError translates persistence sentinels, naming the resource for
// NOT_FOUND responses.
func mapRepoError(err error, resource string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return util.NewNotFound(resource, nil)
	case errors.Is(err, repository.ErrConflict):
		return util.NewConflict("a concurrent update changed this "+resource, nil)
	default:
		return err
	}
}
