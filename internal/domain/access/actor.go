package access

import (
	"errors"

	"store-offers-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole      = errors.New("invalid role")
	ErrPermissionDenied = errs.Category("admin capability required", errs.ErrPermissionDenied)
	ErrAnonymous        = errs.Category("authenticated caller required", errs.ErrPermissionDenied)
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the caller capability handed to commands. It is built from a
// validated token by the auth middleware and never from request input.
type Actor struct {
	userID uuid.UUID
	role   Role
}

func NewActor(userID uuid.UUID, role Role) Actor {
	return Actor{userID: userID, role: role}
}

func (a Actor) UserID() uuid.UUID { return a.userID }
func (a Actor) Role() Role        { return a.role }

func (a Actor) IsAuthenticated() bool {
	return a.userID != uuid.Nil && a.role.IsValid()
}

func (a Actor) IsAdmin() bool {
	return a.IsAuthenticated() && a.role == RoleAdmin
}

func (a Actor) RequireAuthenticated() error {
	if !a.IsAuthenticated() {
		return ErrAnonymous
	}
	return nil
}

func (a Actor) RequireAdmin() error {
	if !a.IsAdmin() {
		return ErrPermissionDenied
	}
	return nil
}
