package request

import (
	"pousada-api/internal/infra/repository"
)

// ListParams are the shared pagination/sort query parameters. Limit 0 means
// unlimited.
type ListParams struct {
	Limit   int64  `form:"limit"`
	Offset  int64  `form:"offset"`
	OrderBy string `form:"orderBy"`
}

func (p ListParams) ToPagination() repository.Pagination {
	return repository.Pagination{Limit: p.Limit, Offset: p.Offset, OrderBy: p.OrderBy}
}

type AutocompleteParams struct {
	Query string `form:"query"`
	Limit int64  `form:"limit"`
}

type UserListParams struct {
	ListParams
	ID     *string `form:"id"`
	Name   *string `form:"name"`
	Email  *string `form:"email"`
	Role   *string `form:"role"`
	Status *string `form:"status"`
}

func (p UserListParams) ToFilter() repository.UserFilter {
	return repository.UserFilter{
		ID:     p.ID,
		Name:   p.Name,
		Email:  p.Email,
		Role:   p.Role,
		Status: p.Status,
	}
}

type ConsumptionListParams struct {
	ListParams
	ID              *string  `form:"id"`
	Name            *string  `form:"name"`
	PriceRangeStart *float64 `form:"priceRangeStart"`
	PriceRangeEnd   *float64 `form:"priceRangeEnd"`
}

func (p ConsumptionListParams) ToFilter() repository.ConsumptionFilter {
	return repository.ConsumptionFilter{
		ID:              p.ID,
		Name:            p.Name,
		PriceRangeStart: p.PriceRangeStart,
		PriceRangeEnd:   p.PriceRangeEnd,
	}
}

type ReservationListParams struct {
	ListParams
	ID             *string  `form:"id"`
	Name           *string  `form:"name"`
	Email          *string  `form:"email"`
	CPF            *string  `form:"cpf"`
	Status         *string  `form:"status"`
	CostRangeStart *float64 `form:"costRangeStart"`
	CostRangeEnd   *float64 `form:"costRangeEnd"`
}

func (p ReservationListParams) ToFilter() repository.ReservationFilter {
	return repository.ReservationFilter{
		ID:             p.ID,
		Name:           p.Name,
		Email:          p.Email,
		CPF:            p.CPF,
		Status:         p.Status,
		CostRangeStart: p.CostRangeStart,
		CostRangeEnd:   p.CostRangeEnd,
	}
}

type PaymentListParams struct {
	ListParams
	ID               *string  `form:"id"`
	ConfirmationID   *string  `form:"confirmationId"`
	Reservation      *string  `form:"reservation"`
	CreatedBy        *string  `form:"createdBy"`
	Status           *string  `form:"status"`
	AmountRangeStart *float64 `form:"amountRangeStart"`
	AmountRangeEnd   *float64 `form:"amountRangeEnd"`
}

func (p PaymentListParams) ToFilter() repository.PaymentFilter {
	return repository.PaymentFilter{
		ID:               p.ID,
		ConfirmationID:   p.ConfirmationID,
		Reservation:      p.Reservation,
		CreatedBy:        p.CreatedBy,
		Status:           p.Status,
		AmountRangeStart: p.AmountRangeStart,
		AmountRangeEnd:   p.AmountRangeEnd,
	}
}
