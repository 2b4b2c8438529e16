//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	domuser "pousada-api/internal/domain/user"
	"pousada-api/internal/infra/repository"
	"pousada-api/internal/pkg/errs"
	"pousada-api/internal/security"
	"pousada-api/internal/usecase"
	"pousada-api/internal/usecase/readmodel"
	mock_usecase "pousada-api/tests/mock/usecase"
)

type ReservationUsecaseTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	reservations *mock_usecase.MockReservationRepository
	files        *mock_usecase.MockAvatarFileRepository
	uc           *usecase.ReservationUsecase
	principal    security.Principal
	ctx          context.Context
}

func TestReservationUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationUsecaseTestSuite))
}

func (s *ReservationUsecaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.reservations = mock_usecase.NewMockReservationRepository(s.ctrl)
	s.files = mock_usecase.NewMockAvatarFileRepository(s.ctrl)
	s.uc = usecase.NewReservationUsecase(passthroughTx{}, s.reservations, s.files)
	s.principal = security.Principal{ID: primitive.NewObjectID(), Role: domuser.RoleGuest}
	s.ctx = context.Background()
}

func (s *ReservationUsecaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReservationUsecaseTestSuite) TestCreate_StampsCreatorAndRecomputesCost() {
	id := primitive.NewObjectID()
	docID := primitive.NewObjectID()
	line := repository.ReservationLine{Consumption: primitive.NewObjectID(), Quantity: 2}

	s.files.EXPECT().FilterIDs(gomock.Any(), []primitive.ObjectID{docID}).
		Return([]primitive.ObjectID{docID}, nil)
	s.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data repository.ReservationData) (primitive.ObjectID, error) {
			s.Require().NotNil(data.CreatedBy)
			s.Equal(s.principal.ID, *data.CreatedBy)
			s.Equal([]repository.ReservationLine{line}, data.Consumptions)
			return id, nil
		})
	s.reservations.EXPECT().UpdateTotalCost(gomock.Any(), id).Return(nil)
	s.reservations.EXPECT().FindByID(gomock.Any(), id).
		Return(&readmodel.ReservationView{ID: id, Cost: 25}, nil)

	view, err := s.uc.Create(s.ctx, s.principal, usecase.ReservationCreateInput{
		Name:         "Guest Stay",
		Email:        "guest@example.com",
		Consumptions: []repository.ReservationLine{line},
		Documents:    []primitive.ObjectID{docID},
	})

	s.NoError(err)
	s.Equal(25.0, view.Cost)
}

func (s *ReservationUsecaseTestSuite) TestCreate_RequiresPrincipal() {
	_, err := s.uc.Create(s.ctx, security.Principal{}, usecase.ReservationCreateInput{})

	s.ErrorIs(err, errs.ErrCurrentUserMissing)
}

func (s *ReservationUsecaseTestSuite) TestUpdate_RecomputesCostOnNoOpBody() {
	id := primitive.NewObjectID()

	s.reservations.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil)
	s.reservations.EXPECT().UpdateTotalCost(gomock.Any(), id).Return(nil)
	s.reservations.EXPECT().FindByID(gomock.Any(), id).
		Return(&readmodel.ReservationView{ID: id, Cost: 45}, nil)

	view, err := s.uc.Update(s.ctx, id, usecase.ReservationUpdateInput{})

	s.NoError(err)
	s.Equal(45.0, view.Cost)
}

func (s *ReservationUsecaseTestSuite) TestUpdate_NotFound() {
	id := primitive.NewObjectID()

	s.reservations.EXPECT().Update(gomock.Any(), id, gomock.Any()).
		Return(notFound("reservation not found"))

	_, err := s.uc.Update(s.ctx, id, usecase.ReservationUpdateInput{})

	s.ErrorIs(err, errs.ErrReservationNotFound)
}
