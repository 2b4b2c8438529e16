package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pousada-api/internal/infra"
	"pousada-api/internal/infra/mongodb"
	"pousada-api/internal/infra/repository"
	"pousada-api/internal/pkg/errs"
	"pousada-api/internal/usecase/readmodel"
)

type ConsumptionRepository interface {
	Create(ctx context.Context, data repository.ConsumptionData) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, patch repository.ConsumptionPatch) error
	DestroyAll(ctx context.Context, ids []primitive.ObjectID) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.ConsumptionView, error)
	FindAndCountAll(ctx context.Context, filter repository.ConsumptionFilter, page repository.Pagination) ([]readmodel.ConsumptionView, int64, error)
	FindAllAutocomplete(ctx context.Context, search string, limit int64) ([]readmodel.AutocompleteItem, error)
}

type ConsumptionUsecase struct {
	tx           mongodb.TxRunner
	consumptions ConsumptionRepository
}

func NewConsumptionUsecase(tx mongodb.TxRunner, consumptions ConsumptionRepository) *ConsumptionUsecase {
	return &ConsumptionUsecase{tx: tx, consumptions: consumptions}
}

func (u *ConsumptionUsecase) Create(ctx context.Context, data repository.ConsumptionData) (*readmodel.ConsumptionView, error) {
	var id primitive.ObjectID
	err := u.tx.Run(ctx, func(ctx context.Context) error {
		var err error
		id, err = u.consumptions.Create(ctx, data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return u.FindByID(ctx, id)
}

func (u *ConsumptionUsecase) Update(ctx context.Context, id primitive.ObjectID, patch repository.ConsumptionPatch) (*readmodel.ConsumptionView, error) {
	err := u.tx.Run(ctx, func(ctx context.Context) error {
		err := u.consumptions.Update(ctx, id, patch)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrConsumptionNotFound)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return u.FindByID(ctx, id)
}

func (u *ConsumptionUsecase) DestroyAll(ctx context.Context, ids []primitive.ObjectID) error {
	return u.tx.Run(ctx, func(ctx context.Context) error {
		err := u.consumptions.DestroyAll(ctx, ids)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrConsumptionNotFound)
		}
		return err
	})
}

func (u *ConsumptionUsecase) FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.ConsumptionView, error) {
	view, err := u.consumptions.FindByID(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrConsumptionNotFound)
	}
	return view, err
}

func (u *ConsumptionUsecase) FindAndCountAll(ctx context.Context, filter repository.ConsumptionFilter, page repository.Pagination) ([]readmodel.ConsumptionView, int64, error) {
	return u.consumptions.FindAndCountAll(ctx, filter, page)
}

func (u *ConsumptionUsecase) FindAllAutocomplete(ctx context.Context, search string, limit int64) ([]readmodel.AutocompleteItem, error) {
	return u.consumptions.FindAllAutocomplete(ctx, search, limit)
}
