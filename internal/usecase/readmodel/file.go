package readmodel

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FileView is the wire shape of an uploaded file, with the download URL
// resolved fresh from the storage backend on every read.
type FileView struct {
	ID          primitive.ObjectID `json:"id"`
	Title       string             `json:"title"`
	Name        string             `json:"name"`
	SizeInBytes int64              `json:"sizeInBytes"`
	PrivateURL  string             `json:"privateUrl,omitempty"`
	PublicURL   string             `json:"publicUrl,omitempty"`
	DownloadURL string             `json:"downloadUrl"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}
