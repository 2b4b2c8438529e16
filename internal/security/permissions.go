package security

import "pousada-api/internal/domain/user"

type PermissionID string

const (
	PermissionUserCreate       PermissionID = "userCreate"
	PermissionUserEdit         PermissionID = "userEdit"
	PermissionUserRead         PermissionID = "userRead"
	PermissionUserDestroy      PermissionID = "userDestroy"
	PermissionUserAutocomplete PermissionID = "userAutocomplete"

	PermissionReservationCreate       PermissionID = "reservationCreate"
	PermissionReservationEdit         PermissionID = "reservationEdit"
	PermissionReservationRead         PermissionID = "reservationRead"
	PermissionReservationDestroy      PermissionID = "reservationDestroy"
	PermissionReservationAutocomplete PermissionID = "reservationAutocomplete"

	PermissionConsumptionCreate       PermissionID = "consumptionCreate"
	PermissionConsumptionEdit         PermissionID = "consumptionEdit"
	PermissionConsumptionRead         PermissionID = "consumptionRead"
	PermissionConsumptionDestroy      PermissionID = "consumptionDestroy"
	PermissionConsumptionAutocomplete PermissionID = "consumptionAutocomplete"

	PermissionPaymentCreate  PermissionID = "paymentCreate"
	PermissionPaymentEdit    PermissionID = "paymentEdit"
	PermissionPaymentRead    PermissionID = "paymentRead"
	PermissionPaymentDestroy PermissionID = "paymentDestroy"
)

type Permission struct {
	ID             PermissionID
	AllowedRoles   []user.Role
	AllowedStorage []StorageID
}

var (
	adminOnly     = []user.Role{user.RoleAdmin}
	adminAndGuest = []user.Role{user.RoleAdmin, user.RoleGuest}
)

// permissions is the static capability table. It is never mutated after
// package init.
var permissions = map[PermissionID]Permission{
	PermissionUserCreate: {
		ID:             PermissionUserCreate,
		AllowedRoles:   adminOnly,
		AllowedStorage: []StorageID{StorageUserAvatar},
	},
	PermissionUserEdit: {
		ID:             PermissionUserEdit,
		AllowedRoles:   adminOnly,
		AllowedStorage: []StorageID{StorageUserAvatar},
	},
	PermissionUserRead: {
		ID:           PermissionUserRead,
		AllowedRoles: adminOnly,
	},
	PermissionUserDestroy: {
		ID:             PermissionUserDestroy,
		AllowedRoles:   adminOnly,
		AllowedStorage: []StorageID{StorageUserAvatar},
	},
	PermissionUserAutocomplete: {
		ID:           PermissionUserAutocomplete,
		AllowedRoles: adminOnly,
	},

	PermissionReservationCreate: {
		ID:             PermissionReservationCreate,
		AllowedRoles:   adminAndGuest,
		AllowedStorage: []StorageID{StorageReservationDocument},
	},
	PermissionReservationEdit: {
		ID:             PermissionReservationEdit,
		AllowedRoles:   adminAndGuest,
		AllowedStorage: []StorageID{StorageReservationDocument},
	},
	PermissionReservationRead: {
		ID:           PermissionReservationRead,
		AllowedRoles: adminAndGuest,
	},
	PermissionReservationDestroy: {
		ID:           PermissionReservationDestroy,
		AllowedRoles: adminOnly,
	},
	PermissionReservationAutocomplete: {
		ID:           PermissionReservationAutocomplete,
		AllowedRoles: adminAndGuest,
	},

	PermissionConsumptionCreate: {
		ID:           PermissionConsumptionCreate,
		AllowedRoles: adminOnly,
	},
	PermissionConsumptionEdit: {
		ID:           PermissionConsumptionEdit,
		AllowedRoles: adminOnly,
	},
	PermissionConsumptionRead: {
		ID:           PermissionConsumptionRead,
		AllowedRoles: adminAndGuest,
	},
	PermissionConsumptionDestroy: {
		ID:           PermissionConsumptionDestroy,
		AllowedRoles: adminOnly,
	},
	PermissionConsumptionAutocomplete: {
		ID:           PermissionConsumptionAutocomplete,
		AllowedRoles: adminAndGuest,
	},

	PermissionPaymentCreate: {
		ID:           PermissionPaymentCreate,
		AllowedRoles: adminAndGuest,
	},
	PermissionPaymentEdit: {
		ID:           PermissionPaymentEdit,
		AllowedRoles: adminAndGuest,
	},
	PermissionPaymentRead: {
		ID:           PermissionPaymentRead,
		AllowedRoles: adminAndGuest,
	},
	PermissionPaymentDestroy: {
		ID:           PermissionPaymentDestroy,
		AllowedRoles: adminAndGuest,
	},
}

// Allows reports whether the given role may exercise the permission.
func Allows(id PermissionID, role user.Role) bool {
	p, ok := permissions[id]
	if !ok {
		return false
	}
	for _, r := range p.AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// AllowsStorage reports whether the permission covers writes to the given
// storage destination.
func AllowsStorage(id PermissionID, storageID StorageID) bool {
	p, ok := permissions[id]
	if !ok {
		return false
	}
	for _, s := range p.AllowedStorage {
		if s == storageID {
			return true
		}
	}
	return false
}
