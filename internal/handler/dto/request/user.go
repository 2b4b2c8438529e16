package request

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pousada-api/internal/usecase"
)

type UserCreateRequest struct {
	Data UserInput `json:"data" binding:"required"`
}

type UserInput struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=6"`
	PhoneNumber string  `json:"phoneNumber"`
	Avatar      *string `json:"avatar"`
	Birthday    string  `json:"birthday"`
	CPF         string  `json:"cpf"`
	Status      string  `json:"status" binding:"omitempty,oneof=active deactive"`
	Role        string  `json:"role" binding:"required,oneof=guest admin"`
	Province    string  `json:"province"`
	City        string  `json:"city"`
	Street      string  `json:"street"`
	ZipCode     string  `json:"zipCode"`
}

func (r UserCreateRequest) ToInput() (usecase.UserCreateInput, error) {
	input := usecase.UserCreateInput{
		Name:        r.Data.Name,
		Email:       r.Data.Email,
		Password:    r.Data.Password,
		PhoneNumber: r.Data.PhoneNumber,
		Birthday:    r.Data.Birthday,
		CPF:         r.Data.CPF,
		Status:      r.Data.Status,
		Role:        r.Data.Role,
		Province:    r.Data.Province,
		City:        r.Data.City,
		Street:      r.Data.Street,
		ZipCode:     r.Data.ZipCode,
	}
	if input.Status == "" {
		input.Status = "active"
	}
	if r.Data.Avatar != nil && *r.Data.Avatar != "" {
		id, err := primitive.ObjectIDFromHex(*r.Data.Avatar)
		if err != nil {
			return usecase.UserCreateInput{}, err
		}
		input.Avatar = &id
	}
	return input, nil
}

type UserUpdateRequest struct {
	Data UserUpdateInput `json:"data" binding:"required"`
}

type UserUpdateInput struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Password    *string `json:"password" binding:"omitempty,min=6"`
	PhoneNumber *string `json:"phoneNumber"`
	Avatar      *string `json:"avatar"`
	Birthday    *string `json:"birthday"`
	CPF         *string `json:"cpf"`
	Status      *string `json:"status" binding:"omitempty,oneof=active deactive"`
	Role        *string `json:"role" binding:"omitempty,oneof=guest admin"`
	Province    *string `json:"province"`
	City        *string `json:"city"`
	Street      *string `json:"street"`
	ZipCode     *string `json:"zipCode"`
}

func (r UserUpdateRequest) ToInput() (usecase.UserUpdateInput, error) {
	input := usecase.UserUpdateInput{
		Name:        r.Data.Name,
		Email:       r.Data.Email,
		Password:    r.Data.Password,
		PhoneNumber: r.Data.PhoneNumber,
		Birthday:    r.Data.Birthday,
		CPF:         r.Data.CPF,
		Status:      r.Data.Status,
		Role:        r.Data.Role,
		Province:    r.Data.Province,
		City:        r.Data.City,
		Street:      r.Data.Street,
		ZipCode:     r.Data.ZipCode,
	}
	if r.Data.Avatar != nil && *r.Data.Avatar != "" {
		id, err := primitive.ObjectIDFromHex(*r.Data.Avatar)
		if err != nil {
			return usecase.UserUpdateInput{}, err
		}
		input.Avatar = &id
	}
	return input, nil
}
