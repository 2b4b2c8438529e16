package readmodel

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReservationLineView is one embedded consumption entry with its catalog
// reference hydrated. Consumption is nil when the referenced item no longer
// exists; such lines contribute zero to the reservation cost.
type ReservationLineView struct {
	Consumption *ConsumptionView `json:"consumption"`
	Quantity    int64            `json:"quantity"`
}

// ReservationView is the fully denormalized reservation tree: documents
// resolved to file views, line items to consumption views, and createdBy to
// a user view (including that user's avatar).
type ReservationView struct {
	ID           primitive.ObjectID    `json:"id"`
	Name         string                `json:"name"`
	Email        string                `json:"email"`
	CPF          string                `json:"cpf,omitempty"`
	Province     string                `json:"province,omitempty"`
	City         string                `json:"city,omitempty"`
	Street       string                `json:"street,omitempty"`
	ZipCode      string                `json:"zipCode,omitempty"`
	Consumptions []ReservationLineView `json:"consumptions"`
	Documents    []FileView            `json:"documents"`
	CreatedBy    *UserView             `json:"createdBy"`
	Status       string                `json:"status"`
	Cost         float64               `json:"cost"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}
