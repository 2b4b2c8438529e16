package response

import "pousada-api/internal/usecase/readmodel"

// List is the standard paged envelope for every findAndCountAll endpoint.
type List[T any] struct {
	Rows  []T   `json:"rows"`
	Count int64 `json:"count"`
}

func NewList[T any](rows []T, count int64) List[T] {
	if rows == nil {
		rows = []T{}
	}
	return List[T]{Rows: rows, Count: count}
}

type TokenResponse struct {
	Token string `json:"token"`
}

// PaymentIntentResponse carries the client-side confirmation secret returned
// by the payment processor together with the pending payment it settles.
type PaymentIntentResponse struct {
	ClientSecret string                 `json:"clientSecret"`
	Payment      *readmodel.PaymentView `json:"payment"`
}
