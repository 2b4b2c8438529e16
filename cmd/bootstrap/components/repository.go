package components

import (
	"go.uber.org/fx"

	repo_impl "pousada-api/internal/infra/repository"
	"pousada-api/internal/pkg/clock"
	"pousada-api/internal/usecase"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		clock.NewRealClock,
		repo_impl.NewFileRepository,
		repo_impl.NewUserRepository,
		repo_impl.NewConsumptionRepository,
		repo_impl.NewReservationRepository,
		repo_impl.NewPaymentRepository,
		fx.Annotate(
			func(r *repo_impl.FileRepository) *repo_impl.FileRepository { return r },
			fx.As(new(usecase.FileRepository)),
			fx.As(new(usecase.AvatarFileRepository)),
			fx.As(new(usecase.DocumentFileRepository)),
		),
		fx.Annotate(
			func(r *repo_impl.UserRepository) *repo_impl.UserRepository { return r },
			fx.As(new(usecase.AuthUserRepository)),
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			func(r *repo_impl.ConsumptionRepository) *repo_impl.ConsumptionRepository { return r },
			fx.As(new(usecase.ConsumptionRepository)),
		),
		fx.Annotate(
			func(r *repo_impl.ReservationRepository) *repo_impl.ReservationRepository { return r },
			fx.As(new(usecase.ReservationRepository)),
		),
		fx.Annotate(
			func(r *repo_impl.PaymentRepository) *repo_impl.PaymentRepository { return r },
			fx.As(new(usecase.PaymentRepository)),
		),
	),
)
