package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/voidshard/fortitrack/internal/utils"
	ie "github.com/voidshard/fortitrack/pkg/errors"
	"github.com/voidshard/fortitrack/pkg/structs"
)

const unknownUser = "unknown"

// Identify returns the user with the given ID, as vouched for by the identity provider.
func (s *Service) Identify(ctx context.Context, userID string) (*structs.User, error) {
	if userID == "" {
		return nil, ie.ErrUnauthenticated
	}
	u, err := s.user(ctx, userID)
	if errors.Is(err, ie.ErrNotFound) {
		return nil, fmt.Errorf("%w unknown user %s", ie.ErrUnauthenticated, userID)
	}
	return u, err
}

// Users returns users matching the query (admin only).
func (s *Service) Users(ctx context.Context, actor *structs.User, q *structs.UserQuery) ([]*structs.User, error) {
	err := requireAdmin(actor)
	if err != nil {
		return nil, err
	}
	if q == nil {
		q = &structs.UserQuery{}
	}
	q.Sanitize()
	return s.db.Users(ctx, q)
}

// Technicians returns active technicians, ie. who a job may be assigned to.
func (s *Service) Technicians(ctx context.Context, actor *structs.User) ([]*structs.User, error) {
	err := requireDispatcher(actor)
	if err != nil {
		return nil, err
	}
	q := &structs.UserQuery{
		Roles:    []structs.Role{structs.RoleTechnician},
		Statuses: []structs.UserStatus{structs.UserActive},
	}
	q.Sanitize()
	return s.db.Users(ctx, q)
}

// AddUser provisions a user record. There's no actor; this is for operators (see cmd adduser).
func (s *Service) AddUser(ctx context.Context, u *structs.User) (*structs.User, error) {
	u.ID = strings.TrimSpace(u.ID)
	if u.ID == "" {
		return nil, fmt.Errorf("%w user id required", ie.ErrInvalidArg)
	}
	if structs.ToRole(string(u.Role)) == "" {
		return nil, fmt.Errorf("%w unknown role %q", ie.ErrInvalidArg, u.Role)
	}
	if u.Status == "" {
		u.Status = structs.UserActive
	} else if structs.ToUserStatus(string(u.Status)) == "" {
		return nil, fmt.Errorf("%w unknown user status %q", ie.ErrInvalidArg, u.Status)
	}
	u.ETag = utils.NewRandomID()
	u.CreatedAt = timeNow()
	u.UpdatedAt = u.CreatedAt

	err := s.db.InsertUser(ctx, u)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"user": u.ID, "role": u.Role}).Info("user added")
	return u, nil
}

// SetUserRole changes a user's role (admin only).
func (s *Service) SetUserRole(ctx context.Context, actor *structs.User, ref *structs.ObjectRef, role structs.Role) (*structs.User, error) {
	return s.mutateUser(ctx, actor, ref, "change role", func(u *structs.User, newTag string) (int64, error) {
		if structs.ToRole(string(role)) == "" {
			return 0, fmt.Errorf("%w unknown role %q", ie.ErrInvalidArg, role)
		}
		count, err := s.db.SetUserRole(ctx, ref, newTag, role)
		if err == nil {
			u.Role = role
		}
		return count, err
	})
}

// SetUserStatus activates or deactivates a user (admin only).
func (s *Service) SetUserStatus(ctx context.Context, actor *structs.User, ref *structs.ObjectRef, status structs.UserStatus) (*structs.User, error) {
	return s.mutateUser(ctx, actor, ref, "change user status", func(u *structs.User, newTag string) (int64, error) {
		if structs.ToUserStatus(string(status)) == "" {
			return 0, fmt.Errorf("%w unknown user status %q", ie.ErrInvalidArg, status)
		}
		count, err := s.db.SetUserStatus(ctx, ref, newTag, status)
		if err == nil {
			u.Status = status
		}
		return count, err
	})
}

// ReportClientError stores a diagnostic record. The actor is optional.
func (s *Service) ReportClientError(ctx context.Context, actor *structs.User, in *structs.ClientError) (*structs.ClientError, error) {
	if strings.TrimSpace(in.Error) == "" {
		return nil, fmt.Errorf("%w error message required", ie.ErrInvalidArg)
	}
	if len(in.Error)+len(in.Stack)+len(in.Context) > maxTextLength*3 {
		return nil, fmt.Errorf("%w error report too large", ie.ErrMaxExceeded)
	}
	in.ID = utils.NewRandomID()
	in.UserID = unknownUser
	if actor != nil {
		in.UserID = actor.ID
	}
	in.CreatedAt = timeNow()
	return in, s.db.InsertClientError(ctx, in)
}

func (s *Service) mutateUser(ctx context.Context, actor *structs.User, ref *structs.ObjectRef, action string, set func(u *structs.User, newTag string) (int64, error)) (*structs.User, error) {
	u, err := s.doMutateUser(ctx, actor, ref, set)
	if err != nil {
		s.notifyUser(ctx, actor, structs.SeverityError, fmt.Sprintf("Failed to %s: %v", action, err))
		return nil, err
	}
	s.notifyUser(ctx, actor, structs.SeveritySuccess, fmt.Sprintf("User %s updated", u.ID))
	return u, nil
}

func (s *Service) doMutateUser(ctx context.Context, actor *structs.User, ref *structs.ObjectRef, set func(u *structs.User, newTag string) (int64, error)) (*structs.User, error) {
	err := requireAdmin(actor)
	if err != nil {
		return nil, err
	}
	err = validateRef(ref)
	if err != nil {
		return nil, err
	}
	if ref.ID == actor.ID {
		// no self lockout
		return nil, fmt.Errorf("%w cannot change your own account", ie.ErrForbidden)
	}

	u, err := s.user(ctx, ref.ID)
	if err != nil {
		return nil, err
	}
	if u.ETag != ref.ETag {
		return nil, fmt.Errorf("%w user %s has been changed by someone else", ie.ErrETagMismatch, u.ID)
	}

	newTag := utils.NewRandomID()
	count, err := set(u, newTag)
	if err != nil {
		return nil, err
	} else if count == 0 {
		return nil, fmt.Errorf("%w user %s has been changed by someone else", ie.ErrETagMismatch, u.ID)
	}
	u.ETag = newTag
	u.UpdatedAt = timeNow()

	s.log.WithFields(logrus.Fields{"user": u.ID, "role": u.Role, "status": u.Status, "by": actor.ID}).Info("user updated")
	return u, nil
}

func (s *Service) user(ctx context.Context, id string) (*structs.User, error) {
	users, err := s.db.Users(ctx, &structs.UserQuery{UserIDs: []string{id}, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("%w user %s", ie.ErrNotFound, id)
	}
	return users[0], nil
}
