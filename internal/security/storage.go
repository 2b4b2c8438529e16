package security

type StorageID string

const (
	StorageUserAvatar          StorageID = "userAvatar"
	StorageReservationDocument StorageID = "reservationDocument"
)

// StorageDestination declares where uploads for a storage id land and how
// they may be read back. Folder supports a :userId placeholder substituted
// with the uploading principal's id.
type StorageDestination struct {
	ID             StorageID
	Folder         string
	MaxSizeInBytes int64
	PublicRead     bool
	// Avatar uploads belong to the user themself, not to any entity
	// permission, hence the write-permission bypass.
	BypassWritingPermissions bool
}

var storageDestinations = map[StorageID]StorageDestination{
	StorageUserAvatar: {
		ID:                       StorageUserAvatar,
		Folder:                   "user/avatars/profile/:userId",
		MaxSizeInBytes:           3 * 1024 * 1024,
		PublicRead:               true,
		BypassWritingPermissions: true,
	},
	StorageReservationDocument: {
		ID:             StorageReservationDocument,
		Folder:         "reservation/document",
		MaxSizeInBytes: 10 * 1024 * 1024,
	},
}

// StorageDestinationFor resolves a storage id to its destination config.
// Unknown ids report false; uploads to them fail with Forbidden.
func StorageDestinationFor(id StorageID) (StorageDestination, bool) {
	dest, ok := storageDestinations[id]
	return dest, ok
}
