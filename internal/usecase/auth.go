package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	domuser "pousada-api/internal/domain/user"
	"pousada-api/internal/infra"
	"pousada-api/internal/infra/mongodb"
	"pousada-api/internal/infra/repository"
	"pousada-api/internal/pkg/errs"
	"pousada-api/internal/pkg/jwt"
	"pousada-api/internal/pkg/password"
	"pousada-api/internal/security"
	"pousada-api/internal/usecase/readmodel"
)

type AuthUserRepository interface {
	Create(ctx context.Context, data repository.UserData) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, patch repository.UserPatch) error
	DestroyAll(ctx context.Context, ids []primitive.ObjectID) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.UserView, error)
	FindByEmail(ctx context.Context, email string) (*readmodel.UserView, error)
	FindPassword(ctx context.Context, id primitive.ObjectID) (string, error)
	Count(ctx context.Context) (int64, error)
}

type AvatarFileRepository interface {
	FilterIDs(ctx context.Context, ids []primitive.ObjectID) ([]primitive.ObjectID, error)
}

type ProfileUpdateInput struct {
	Name        *string
	PhoneNumber *string
	Avatar      *primitive.ObjectID
	Birthday    *string
	CPF         *string
	Province    *string
	City        *string
	Street      *string
	ZipCode     *string
}

type AuthUsecase struct {
	tx    mongodb.TxRunner
	users AuthUserRepository
	files AvatarFileRepository
	jwt   *jwt.Service
}

func NewAuthUsecase(tx mongodb.TxRunner, users AuthUserRepository, files AvatarFileRepository, jwtSvc *jwt.Service) *AuthUsecase {
	return &AuthUsecase{tx: tx, users: users, files: files, jwt: jwtSvc}
}

// Register creates an account and returns a signed token. The very first
// account becomes an admin; everyone after signs up as a guest.
func (u *AuthUsecase) Register(ctx context.Context, email, rawPassword string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hashed, err := password.HashPassword(rawPassword)
	if err != nil {
		return "", err
	}

	var userID primitive.ObjectID
	err = u.tx.Run(ctx, func(ctx context.Context) error {
		if _, err := u.users.FindByEmail(ctx, email); err == nil {
			return errs.Mark(errs.New("email already in use"), errs.ErrEmailAlreadyInUse)
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		count, err := u.users.Count(ctx)
		if err != nil {
			return err
		}
		role := domuser.RoleGuest
		if count == 0 {
			role = domuser.RoleAdmin
		}

		userID, err = u.users.Create(ctx, repository.UserData{
			Name:     email,
			Email:    email,
			Password: hashed,
			Status:   domuser.StatusActive.String(),
			Role:     role.String(),
		})
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Mark(err, errs.ErrEmailAlreadyInUse)
		}
		return err
	})
	if err != nil {
		return "", err
	}

	return u.jwt.GenerateToken(userID)
}

func (u *AuthUsecase) Login(ctx context.Context, email, rawPassword string) (string, error) {
	view, err := u.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if infra.IsKind(err, infra.KindNotFound) {
		return "", errs.Mark(errs.New("invalid email or password"), errs.ErrDomainValidation)
	}
	if err != nil {
		return "", err
	}

	hashed, err := u.users.FindPassword(ctx, view.ID)
	if err != nil {
		return "", err
	}
	if err := password.ComparePassword(hashed, rawPassword); err != nil {
		return "", errs.Mark(errs.New("invalid email or password"), errs.ErrDomainValidation)
	}

	return u.jwt.GenerateToken(view.ID)
}

// FindByToken verifies a bearer token and loads the acting principal.
func (u *AuthUsecase) FindByToken(ctx context.Context, token string) (*readmodel.UserView, error) {
	claims, err := u.jwt.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	view, err := u.users.FindByID(ctx, claims.UserID)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrUserNotFound)
	}
	return view, err
}

func (u *AuthUsecase) FindByEmail(ctx context.Context, email string) (*readmodel.UserView, error) {
	view, err := u.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrUserNotFound)
	}
	return view, err
}

func (u *AuthUsecase) ChangePassword(ctx context.Context, principal security.Principal, oldPassword, newPassword string) error {
	if principal.IsZero() {
		return errs.ErrCurrentUserMissing
	}

	hashed, err := u.users.FindPassword(ctx, principal.ID)
	if err != nil {
		return err
	}
	if err := password.ComparePassword(hashed, oldPassword); err != nil {
		return errs.Mark(errs.New("old password does not match"), errs.ErrInvalidOldPassword)
	}

	newHashed, err := password.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return u.tx.Run(ctx, func(ctx context.Context) error {
		return u.users.Update(ctx, principal.ID, repository.UserPatch{Password: &newHashed})
	})
}

// UpdateProfile lets a user edit their own record. Avatar references are
// filtered down to files that actually exist.
func (u *AuthUsecase) UpdateProfile(ctx context.Context, principal security.Principal, input ProfileUpdateInput) (*readmodel.UserView, error) {
	if principal.IsZero() {
		return nil, errs.ErrCurrentUserMissing
	}

	patch := repository.UserPatch{
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Birthday:    input.Birthday,
		CPF:         input.CPF,
		Province:    input.Province,
		City:        input.City,
		Street:      input.Street,
		ZipCode:     input.ZipCode,
	}
	if input.Avatar != nil {
		kept, err := u.files.FilterIDs(ctx, []primitive.ObjectID{*input.Avatar})
		if err != nil {
			return nil, err
		}
		if len(kept) > 0 {
			patch.Avatar = &kept[0]
		}
	}

	err := u.tx.Run(ctx, func(ctx context.Context) error {
		return u.users.Update(ctx, principal.ID, patch)
	})
	if err != nil {
		return nil, err
	}

	return u.users.FindByID(ctx, principal.ID)
}

func (u *AuthUsecase) RemoveProfile(ctx context.Context, principal security.Principal) error {
	if principal.IsZero() {
		return errs.ErrCurrentUserMissing
	}
	return u.tx.Run(ctx, func(ctx context.Context) error {
		err := u.users.DestroyAll(ctx, []primitive.ObjectID{principal.ID})
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrUserNotFound)
		}
		return err
	})
}
