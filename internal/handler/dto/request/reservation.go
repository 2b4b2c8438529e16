package request

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pousada-api/internal/infra/repository"
	"pousada-api/internal/usecase"
)

type ReservationLineInput struct {
	Consumption string `json:"consumption" binding:"required"`
	Quantity    int64  `json:"quantity" binding:"gte=0"`
}

type ReservationCreateRequest struct {
	Data ReservationInput `json:"data" binding:"required"`
}

type ReservationInput struct {
	Name         string                 `json:"name" binding:"required"`
	Email        string                 `json:"email" binding:"required,email"`
	CPF          string                 `json:"cpf"`
	Province     string                 `json:"province"`
	City         string                 `json:"city"`
	Street       string                 `json:"street"`
	ZipCode      string                 `json:"zipCode"`
	Consumptions []ReservationLineInput `json:"consumptions"`
	Documents    []string               `json:"documents"`
}

func (r ReservationCreateRequest) ToInput() (usecase.ReservationCreateInput, error) {
	lines, err := toLines(r.Data.Consumptions)
	if err != nil {
		return usecase.ReservationCreateInput{}, err
	}
	documents, err := toObjectIDs(r.Data.Documents)
	if err != nil {
		return usecase.ReservationCreateInput{}, err
	}
	return usecase.ReservationCreateInput{
		Name:         r.Data.Name,
		Email:        r.Data.Email,
		CPF:          r.Data.CPF,
		Province:     r.Data.Province,
		City:         r.Data.City,
		Street:       r.Data.Street,
		ZipCode:      r.Data.ZipCode,
		Consumptions: lines,
		Documents:    documents,
	}, nil
}

type ReservationUpdateRequest struct {
	Data ReservationUpdateInput `json:"data" binding:"required"`
}

type ReservationUpdateInput struct {
	Name         *string                `json:"name"`
	Email        *string                `json:"email" binding:"omitempty,email"`
	CPF          *string                `json:"cpf"`
	Province     *string                `json:"province"`
	City         *string                `json:"city"`
	Street       *string                `json:"street"`
	ZipCode      *string                `json:"zipCode"`
	Consumptions []ReservationLineInput `json:"consumptions"`
	Documents    []string               `json:"documents"`
	Status       *string                `json:"status" binding:"omitempty,oneof=checkin checkout"`
}

func (r ReservationUpdateRequest) ToInput() (usecase.ReservationUpdateInput, error) {
	input := usecase.ReservationUpdateInput{
		Name:     r.Data.Name,
		Email:    r.Data.Email,
		CPF:      r.Data.CPF,
		Province: r.Data.Province,
		City:     r.Data.City,
		Street:   r.Data.Street,
		ZipCode:  r.Data.ZipCode,
		Status:   r.Data.Status,
	}
	if r.Data.Consumptions != nil {
		lines, err := toLines(r.Data.Consumptions)
		if err != nil {
			return usecase.ReservationUpdateInput{}, err
		}
		input.Consumptions = lines
	}
	if r.Data.Documents != nil {
		documents, err := toObjectIDs(r.Data.Documents)
		if err != nil {
			return usecase.ReservationUpdateInput{}, err
		}
		if documents == nil {
			documents = []primitive.ObjectID{}
		}
		input.Documents = documents
	}
	return input, nil
}

func toLines(inputs []ReservationLineInput) ([]repository.ReservationLine, error) {
	if inputs == nil {
		return nil, nil
	}
	lines := make([]repository.ReservationLine, 0, len(inputs))
	for _, in := range inputs {
		id, err := primitive.ObjectIDFromHex(in.Consumption)
		if err != nil {
			return nil, err
		}
		lines = append(lines, repository.ReservationLine{Consumption: id, Quantity: in.Quantity})
	}
	return lines, nil
}

func toObjectIDs(values []string) ([]primitive.ObjectID, error) {
	if values == nil {
		return nil, nil
	}
	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
