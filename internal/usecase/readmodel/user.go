package readmodel

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserView is a user with the avatar reference hydrated into a file view.
// The password hash is never part of this shape.
type UserView struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	PhoneNumber string             `json:"phoneNumber,omitempty"`
	Avatar      *FileView          `json:"avatar"`
	Birthday    string             `json:"birthday,omitempty"`
	CPF         string             `json:"cpf,omitempty"`
	Status      string             `json:"status"`
	Role        string             `json:"role"`
	Province    string             `json:"province,omitempty"`
	City        string             `json:"city,omitempty"`
	Street      string             `json:"street,omitempty"`
	ZipCode     string             `json:"zipCode,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// AutocompleteItem is the minimal id/label pair returned by autocomplete
// queries. Avatar carries a resolved download URL for user lookups only.
type AutocompleteItem struct {
	ID     primitive.ObjectID `json:"id"`
	Label  string             `json:"label"`
	Avatar *string            `json:"avatar,omitempty"`
}
