package security

import (
	"pousada-api/internal/domain/user"
	"pousada-api/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Principal is the acting user threaded through handlers and services by
// parameter, never by global state.
type Principal struct {
	ID    primitive.ObjectID
	Email string
	Role  user.Role
}

func (p Principal) IsZero() bool {
	return p.ID.IsZero()
}

// Checker evaluates the static permission table for one principal.
type Checker struct {
	principal Principal
}

func NewChecker(principal Principal) *Checker {
	return &Checker{principal: principal}
}

func (c *Checker) Has(id PermissionID) bool {
	return Allows(id, c.principal.Role)
}

// Require fails with the Forbidden sentinel when the principal's role is not
// in the permission's allow-list.
func (c *Checker) Require(id PermissionID) error {
	if !c.Has(id) {
		return errs.Mark(errs.New("permission "+string(id)+" denied for role "+c.principal.Role.String()), errs.ErrForbidden)
	}
	return nil
}

func (c *Checker) HasStorage(id StorageID) bool {
	for _, p := range permissions {
		if !Allows(p.ID, c.principal.Role) {
			continue
		}
		for _, s := range p.AllowedStorage {
			if s == id {
				return true
			}
		}
	}
	return false
}
