package request

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pousada-api/internal/usecase"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type ProfileUpdateRequest struct {
	Data ProfileInput `json:"data" binding:"required"`
}

type ProfileInput struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	Avatar      *string `json:"avatar"`
	Birthday    *string `json:"birthday"`
	CPF         *string `json:"cpf"`
	Province    *string `json:"province"`
	City        *string `json:"city"`
	Street      *string `json:"street"`
	ZipCode     *string `json:"zipCode"`
}

func (r ProfileUpdateRequest) ToInput() (usecase.ProfileUpdateInput, error) {
	input := usecase.ProfileUpdateInput{
		Name:        r.Data.Name,
		PhoneNumber: r.Data.PhoneNumber,
		Birthday:    r.Data.Birthday,
		CPF:         r.Data.CPF,
		Province:    r.Data.Province,
		City:        r.Data.City,
		Street:      r.Data.Street,
		ZipCode:     r.Data.ZipCode,
	}
	if r.Data.Avatar != nil && *r.Data.Avatar != "" {
		id, err := primitive.ObjectIDFromHex(*r.Data.Avatar)
		if err != nil {
			return usecase.ProfileUpdateInput{}, err
		}
		input.Avatar = &id
	}
	return input, nil
}
