package readmodel

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReservationSummary is the linked reservation as seen from a payment:
// resolved one level, never recursively hydrated.
type ReservationSummary struct {
	ID     primitive.ObjectID `json:"id"`
	Name   string             `json:"name,omitempty"`
	Status string             `json:"status,omitempty"`
	Cost   float64            `json:"cost,omitempty"`
}

type PaymentView struct {
	ID             primitive.ObjectID  `json:"id"`
	ConfirmationID string              `json:"confirmationId,omitempty"`
	Reservation    *ReservationSummary `json:"reservation"`
	CreatedBy      primitive.ObjectID  `json:"createdBy"`
	Amount         float64             `json:"amount"`
	Status         string              `json:"status"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}
