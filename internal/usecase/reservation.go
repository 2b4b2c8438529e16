package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pousada-api/internal/infra"
	"pousada-api/internal/infra/mongodb"
	"pousada-api/internal/infra/repository"
	"pousada-api/internal/pkg/errs"
	"pousada-api/internal/security"
	"pousada-api/internal/usecase/readmodel"
)

type ReservationRepository interface {
	Create(ctx context.Context, data repository.ReservationData) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, patch repository.ReservationPatch) error
	UpdateTotalCost(ctx context.Context, id primitive.ObjectID) error
	TotalCost(ctx context.Context, id primitive.ObjectID) (float64, error)
	DestroyAll(ctx context.Context, ids []primitive.ObjectID) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.ReservationView, error)
	FindLatestCheckin(ctx context.Context, createdBy primitive.ObjectID) (*readmodel.ReservationSummary, error)
	FindAndCountAll(ctx context.Context, filter repository.ReservationFilter, page repository.Pagination) ([]readmodel.ReservationView, int64, error)
	FindAllAutocomplete(ctx context.Context, search string, limit int64) ([]readmodel.AutocompleteItem, error)
}

type DocumentFileRepository interface {
	FilterIDs(ctx context.Context, ids []primitive.ObjectID) ([]primitive.ObjectID, error)
}

type ReservationCreateInput struct {
	Name         string
	Email        string
	CPF          string
	Province     string
	City         string
	Street       string
	ZipCode      string
	Consumptions []repository.ReservationLine
	Documents    []primitive.ObjectID
}

type ReservationUpdateInput struct {
	Name         *string
	Email        *string
	CPF          *string
	Province     *string
	City         *string
	Street       *string
	ZipCode      *string
	Consumptions []repository.ReservationLine
	Documents    []primitive.ObjectID
	Status       *string
}

type ReservationUsecase struct {
	tx           mongodb.TxRunner
	reservations ReservationRepository
	files        DocumentFileRepository
}

func NewReservationUsecase(tx mongodb.TxRunner, reservations ReservationRepository, files DocumentFileRepository) *ReservationUsecase {
	return &ReservationUsecase{tx: tx, reservations: reservations, files: files}
}

// Create books a reservation for the acting user and computes its cost from
// the live catalog prices. The cost write happens in the same transaction as
// the insert.
func (u *ReservationUsecase) Create(ctx context.Context, principal security.Principal, input ReservationCreateInput) (*readmodel.ReservationView, error) {
	if principal.IsZero() {
		return nil, errs.ErrCurrentUserMissing
	}

	var id primitive.ObjectID
	err := u.tx.Run(ctx, func(ctx context.Context) error {
		documents, err := u.files.FilterIDs(ctx, input.Documents)
		if err != nil {
			return err
		}

		createdBy := principal.ID
		id, err = u.reservations.Create(ctx, repository.ReservationData{
			Name:         input.Name,
			Email:        input.Email,
			CPF:          input.CPF,
			Province:     input.Province,
			City:         input.City,
			Street:       input.Street,
			ZipCode:      input.ZipCode,
			Consumptions: input.Consumptions,
			Documents:    documents,
			CreatedBy:    &createdBy,
		})
		if err != nil {
			return err
		}
		return u.reservations.UpdateTotalCost(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	return u.FindByID(ctx, id)
}

// Update edits a reservation and recomputes its cost, even for a no-op body:
// catalog prices may have changed since the last write.
func (u *ReservationUsecase) Update(ctx context.Context, id primitive.ObjectID, input ReservationUpdateInput) (*readmodel.ReservationView, error) {
	err := u.tx.Run(ctx, func(ctx context.Context) error {
		patch := repository.ReservationPatch{
			Name:         input.Name,
			Email:        input.Email,
			CPF:          input.CPF,
			Province:     input.Province,
			City:         input.City,
			Street:       input.Street,
			ZipCode:      input.ZipCode,
			Consumptions: input.Consumptions,
			Status:       input.Status,
		}
		if input.Documents != nil {
			documents, err := u.files.FilterIDs(ctx, input.Documents)
			if err != nil {
				return err
			}
			if documents == nil {
				documents = []primitive.ObjectID{}
			}
			patch.Documents = documents
		}

		err := u.reservations.Update(ctx, id, patch)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrReservationNotFound)
		}
		if err != nil {
			return err
		}
		return u.reservations.UpdateTotalCost(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	return u.FindByID(ctx, id)
}

func (u *ReservationUsecase) DestroyAll(ctx context.Context, ids []primitive.ObjectID) error {
	return u.tx.Run(ctx, func(ctx context.Context) error {
		err := u.reservations.DestroyAll(ctx, ids)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrReservationNotFound)
		}
		return err
	})
}

func (u *ReservationUsecase) FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.ReservationView, error) {
	view, err := u.reservations.FindByID(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrReservationNotFound)
	}
	return view, err
}

func (u *ReservationUsecase) FindAndCountAll(ctx context.Context, filter repository.ReservationFilter, page repository.Pagination) ([]readmodel.ReservationView, int64, error) {
	return u.reservations.FindAndCountAll(ctx, filter, page)
}

func (u *ReservationUsecase) FindAllAutocomplete(ctx context.Context, search string, limit int64) ([]readmodel.AutocompleteItem, error) {
	return u.reservations.FindAllAutocomplete(ctx, search, limit)
}
