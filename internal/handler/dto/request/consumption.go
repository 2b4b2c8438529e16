package request

import (
	"pousada-api/internal/infra/repository"
)

type ConsumptionCreateRequest struct {
	Data ConsumptionInput `json:"data" binding:"required"`
}

type ConsumptionInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
}

func (r ConsumptionCreateRequest) ToData() repository.ConsumptionData {
	return repository.ConsumptionData{
		Name:        r.Data.Name,
		Description: r.Data.Description,
		Price:       r.Data.Price,
	}
}

type ConsumptionUpdateRequest struct {
	Data ConsumptionUpdateInput `json:"data" binding:"required"`
}

type ConsumptionUpdateInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
}

func (r ConsumptionUpdateRequest) ToPatch() repository.ConsumptionPatch {
	return repository.ConsumptionPatch{
		Name:        r.Data.Name,
		Description: r.Data.Description,
		Price:       r.Data.Price,
	}
}
