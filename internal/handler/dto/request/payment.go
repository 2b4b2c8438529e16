package request

import (
	"pousada-api/internal/infra/repository"
)

type PaymentCreateRequest struct {
	Data PaymentInput `json:"data" binding:"required"`
}

type PaymentInput struct {
	Reservation string `json:"reservation" binding:"required"`
}

type PaymentUpdateRequest struct {
	Data PaymentUpdateInput `json:"data" binding:"required"`
}

type PaymentUpdateInput struct {
	Amount *float64 `json:"amount" binding:"omitempty,gte=0"`
	Status *string  `json:"status" binding:"omitempty,oneof=pending success failed"`
}

func (r PaymentUpdateRequest) ToPatch() repository.PaymentPatch {
	return repository.PaymentPatch{
		Amount: r.Data.Amount,
		Status: r.Data.Status,
	}
}

// WebhookRequest is the processor event payload, reduced to the fields the
// flow consumes.
type WebhookRequest struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			Metadata struct {
				ConfirmationID string `json:"confirmationId"`
			} `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}
