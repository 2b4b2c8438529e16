package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pousada-api/internal/infra"
	"pousada-api/internal/infra/mongodb"
	"pousada-api/internal/infra/repository"
	"pousada-api/internal/pkg/errs"
	"pousada-api/internal/pkg/password"
	"pousada-api/internal/security"
	"pousada-api/internal/usecase/readmodel"
)

type UserRepository interface {
	AuthUserRepository
	FindAndCountAll(ctx context.Context, filter repository.UserFilter, page repository.Pagination) ([]readmodel.UserView, int64, error)
	FindAllAutocomplete(ctx context.Context, search string, limit int64) ([]readmodel.AutocompleteItem, error)
}

type UserCreateInput struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	Avatar      *primitive.ObjectID
	Birthday    string
	CPF         string
	Status      string
	Role        string
	Province    string
	City        string
	Street      string
	ZipCode     string
}

type UserUpdateInput struct {
	Name        *string
	Email       *string
	Password    *string
	PhoneNumber *string
	Avatar      *primitive.ObjectID
	Birthday    *string
	CPF         *string
	Status      *string
	Role        *string
	Province    *string
	City        *string
	Street      *string
	ZipCode     *string
}

type UserUsecase struct {
	tx    mongodb.TxRunner
	users UserRepository
	files AvatarFileRepository
}

func NewUserUsecase(tx mongodb.TxRunner, users UserRepository, files AvatarFileRepository) *UserUsecase {
	return &UserUsecase{tx: tx, users: users, files: files}
}

func (u *UserUsecase) Create(ctx context.Context, input UserCreateInput) (*readmodel.UserView, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	hashed, err := password.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	var id primitive.ObjectID
	err = u.tx.Run(ctx, func(ctx context.Context) error {
		if _, err := u.users.FindByEmail(ctx, email); err == nil {
			return errs.Mark(errs.New("email already in use"), errs.ErrEmailAlreadyInUse)
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		avatar, err := u.keptAvatar(ctx, input.Avatar)
		if err != nil {
			return err
		}

		id, err = u.users.Create(ctx, repository.UserData{
			Name:        input.Name,
			Email:       email,
			Password:    hashed,
			PhoneNumber: input.PhoneNumber,
			Avatar:      avatar,
			Birthday:    input.Birthday,
			CPF:         input.CPF,
			Status:      input.Status,
			Role:        input.Role,
			Province:    input.Province,
			City:        input.City,
			Street:      input.Street,
			ZipCode:     input.ZipCode,
		})
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Mark(err, errs.ErrEmailAlreadyInUse)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return u.FindByID(ctx, id)
}

func (u *UserUsecase) Update(ctx context.Context, id primitive.ObjectID, input UserUpdateInput) (*readmodel.UserView, error) {
	patch := repository.UserPatch{
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Birthday:    input.Birthday,
		CPF:         input.CPF,
		Status:      input.Status,
		Role:        input.Role,
		Province:    input.Province,
		City:        input.City,
		Street:      input.Street,
		ZipCode:     input.ZipCode,
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		patch.Email = &email
	}
	if input.Password != nil {
		hashed, err := password.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		patch.Password = &hashed
	}

	err := u.tx.Run(ctx, func(ctx context.Context) error {
		avatar, err := u.keptAvatar(ctx, input.Avatar)
		if err != nil {
			return err
		}
		patch.Avatar = avatar

		err = u.users.Update(ctx, id, patch)
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, errs.ErrUserNotFound)
		case infra.IsKind(err, infra.KindDuplicateKey):
			return errs.Mark(err, errs.ErrEmailAlreadyInUse)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return u.FindByID(ctx, id)
}

// DestroyAll deletes the given users at once. A user cannot delete themself
// this way.
func (u *UserUsecase) DestroyAll(ctx context.Context, principal security.Principal, ids []primitive.ObjectID) error {
	for _, id := range ids {
		if id == principal.ID {
			return errs.Mark(errs.New("cannot delete own account"), errs.ErrSelfDeletion)
		}
	}
	return u.tx.Run(ctx, func(ctx context.Context) error {
		err := u.users.DestroyAll(ctx, ids)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrUserNotFound)
		}
		return err
	})
}

func (u *UserUsecase) FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.UserView, error) {
	view, err := u.users.FindByID(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrUserNotFound)
	}
	return view, err
}

func (u *UserUsecase) FindAndCountAll(ctx context.Context, filter repository.UserFilter, page repository.Pagination) ([]readmodel.UserView, int64, error) {
	return u.users.FindAndCountAll(ctx, filter, page)
}

func (u *UserUsecase) FindAllAutocomplete(ctx context.Context, search string, limit int64) ([]readmodel.AutocompleteItem, error) {
	return u.users.FindAllAutocomplete(ctx, search, limit)
}

func (u *UserUsecase) keptAvatar(ctx context.Context, avatar *primitive.ObjectID) (*primitive.ObjectID, error) {
	if avatar == nil {
		return nil, nil
	}
	kept, err := u.files.FilterIDs(ctx, []primitive.ObjectID{*avatar})
	if err != nil {
		return nil, err
	}
	if len(kept) == 0 {
		return nil, nil
	}
	return &kept[0], nil
}
