package core

import (
	"fmt"
	"strings"

	"github.com/voidshard/fortitrack/pkg/errors"
	"github.com/voidshard/fortitrack/pkg/structs"
)

func requireActive(actor *structs.User) error {
	if actor == nil {
		return errors.ErrUnauthenticated
	}
	if !actor.IsActive() {
		return fmt.Errorf("%w user %s is not active", errors.ErrForbidden, actor.ID)
	}
	return nil
}

func requireDispatcher(actor *structs.User) error {
	err := requireActive(actor)
	if err != nil {
		return err
	}
	if !actor.CanDispatch() {
		return fmt.Errorf("%w user %s is a %s", errors.ErrForbidden, actor.ID, actor.Role)
	}
	return nil
}

func requireAdmin(actor *structs.User) error {
	err := requireActive(actor)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return fmt.Errorf("%w user %s is not an admin", errors.ErrForbidden, actor.ID)
	}
	return nil
}

// requireDispatcherFor has the mutation authorize signature; the job doesn't matter.
func requireDispatcherFor(actor *structs.User, j *structs.Job) error {
	return requireDispatcher(actor)
}

func requireAssignee(actor *structs.User, j *structs.Job) error {
	if actor.ID != j.AssignedTo {
		return fmt.Errorf("%w job %s is not assigned to %s", errors.ErrForbidden, j.ID, actor.ID)
	}
	return nil
}

func requireDispatcherOrAssignee(actor *structs.User, j *structs.Job) error {
	if actor.CanDispatch() {
		return nil
	}
	return requireAssignee(actor, j)
}

func validateRef(ref *structs.ObjectRef) error {
	if ref == nil || ref.ID == "" {
		return fmt.Errorf("%w object id required", errors.ErrInvalidArg)
	}
	if ref.ETag == "" {
		return fmt.Errorf("%w etag required for %s", errors.ErrInvalidArg, ref.ID)
	}
	return nil
}

func validateJobSpec(spec *structs.JobSpec) error {
	spec.Title = strings.TrimSpace(spec.Title)
	spec.AssignedTo = strings.TrimSpace(spec.AssignedTo)

	if spec.AssignedTo == "" {
		return errors.ErrNoAssignee
	}
	if len(spec.Title) > maxTitleLength {
		return fmt.Errorf("%w title is %d chars, max %d", errors.ErrMaxExceeded, len(spec.Title), maxTitleLength)
	}
	for name, v := range map[string]string{
		"description":          spec.Description,
		"start_location":       spec.StartLocation,
		"materials_needed":     spec.MaterialsNeeded,
		"estimated_completion": spec.EstimatedCompletion,
		"closing_notes":        spec.ClosingNotes,
	} {
		if len(v) > maxTextLength {
			return fmt.Errorf("%w %s is %d chars, max %d", errors.ErrMaxExceeded, name, len(v), maxTextLength)
		}
	}
	return nil
}
