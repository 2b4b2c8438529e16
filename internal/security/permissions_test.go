//go:build unit

package security_test

import (
	"errors"
	"testing"

	"pousada-api/internal/domain/user"
	"pousada-api/internal/pkg/errs"
	"pousada-api/internal/security"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAllows(t *testing.T) {
	tests := []struct {
		name       string
		permission security.PermissionID
		role       user.Role
		want       bool
	}{
		{"admin can read users", security.PermissionUserRead, user.RoleAdmin, true},
		{"guest cannot read users", security.PermissionUserRead, user.RoleGuest, false},
		{"guest can create reservations", security.PermissionReservationCreate, user.RoleGuest, true},
		{"guest cannot destroy reservations", security.PermissionReservationDestroy, user.RoleGuest, false},
		{"guest can read consumptions", security.PermissionConsumptionRead, user.RoleGuest, true},
		{"guest cannot edit consumptions", security.PermissionConsumptionEdit, user.RoleGuest, false},
		{"guest can create payments", security.PermissionPaymentCreate, user.RoleGuest, true},
		{"unknown permission denied", security.PermissionID("somethingElse"), user.RoleAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, security.Allows(tt.permission, tt.role))
		})
	}
}

func TestCheckerRequire(t *testing.T) {
	guest := security.Principal{ID: primitive.NewObjectID(), Email: "guest@example.com", Role: user.RoleGuest}

	err := security.NewChecker(guest).Require(security.PermissionUserDestroy)
	assert.True(t, errors.Is(err, errs.ErrForbidden))

	assert.NoError(t, security.NewChecker(guest).Require(security.PermissionReservationRead))
}

func TestCheckerHasStorage(t *testing.T) {
	admin := security.Principal{ID: primitive.NewObjectID(), Role: user.RoleAdmin}
	guest := security.Principal{ID: primitive.NewObjectID(), Role: user.RoleGuest}

	assert.True(t, security.NewChecker(admin).HasStorage(security.StorageUserAvatar))
	assert.True(t, security.NewChecker(guest).HasStorage(security.StorageReservationDocument))
	assert.False(t, security.NewChecker(guest).HasStorage(security.StorageUserAvatar))
}

func TestStorageDestinationFor(t *testing.T) {
	dest, ok := security.StorageDestinationFor(security.StorageUserAvatar)
	assert.True(t, ok)
	assert.Contains(t, dest.Folder, ":userId")
	assert.True(t, dest.BypassWritingPermissions)

	_, ok = security.StorageDestinationFor(security.StorageID("bogus"))
	assert.False(t, ok)
}
