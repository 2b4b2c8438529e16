//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	dompayment "pousada-api/internal/domain/payment"
	"pousada-api/internal/domain/reservation"
	"pousada-api/internal/domain/user"
	"pousada-api/internal/infra"
	gateway "pousada-api/internal/infra/payment"
	"pousada-api/internal/infra/repository"
	"pousada-api/internal/pkg/errs"
	"pousada-api/internal/security"
	"pousada-api/internal/usecase"
	"pousada-api/internal/usecase/readmodel"
	mock_gateway "pousada-api/tests/mock/gateway"
	mock_usecase "pousada-api/tests/mock/usecase"
)

type PaymentUsecaseTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	payments     *mock_usecase.MockPaymentRepository
	reservations *mock_usecase.MockReservationRepository
	gateway      *mock_gateway.MockIntentGateway
	uc           *usecase.PaymentUsecase
	principal    security.Principal
	ctx          context.Context
}

func TestPaymentUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentUsecaseTestSuite))
}

func (s *PaymentUsecaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.payments = mock_usecase.NewMockPaymentRepository(s.ctrl)
	s.reservations = mock_usecase.NewMockReservationRepository(s.ctrl)
	s.gateway = mock_gateway.NewMockIntentGateway(s.ctrl)
	s.uc = usecase.NewPaymentUsecase(passthroughTx{}, s.payments, s.reservations, s.gateway, "brl", discardLogger())
	s.principal = security.Principal{ID: primitive.NewObjectID(), Email: "guest@example.com", Role: user.RoleGuest}
	s.ctx = context.Background()
}

func (s *PaymentUsecaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func (s *PaymentUsecaseTestSuite) TestFindLatestReservation_NoCheckinReservation() {
	s.reservations.EXPECT().FindLatestCheckin(gomock.Any(), s.principal.ID).
		Return(nil, notFound("no active reservation"))

	_, err := s.uc.FindLatestReservation(s.ctx, s.principal)

	s.ErrorIs(err, errs.ErrNoActiveReservation)
}

func (s *PaymentUsecaseTestSuite) TestFindLatestReservation_AlreadyPaid() {
	resID := primitive.NewObjectID()
	s.reservations.EXPECT().FindLatestCheckin(gomock.Any(), s.principal.ID).
		Return(&readmodel.ReservationSummary{ID: resID, Status: reservation.StatusCheckin.String()}, nil)
	s.payments.EXPECT().FindLatestByStatus(gomock.Any(), s.principal.ID, resID, dompayment.StatusSuccess).
		Return(&readmodel.PaymentView{ID: primitive.NewObjectID(), Status: dompayment.StatusSuccess.String()}, nil)

	_, err := s.uc.FindLatestReservation(s.ctx, s.principal)

	s.ErrorIs(err, errs.ErrPaymentAlreadyDone)
}

func (s *PaymentUsecaseTestSuite) TestFindLatestReservation_CreatesPendingPayment() {
	resID := primitive.NewObjectID()
	payID := primitive.NewObjectID()

	s.reservations.EXPECT().FindLatestCheckin(gomock.Any(), s.principal.ID).
		Return(&readmodel.ReservationSummary{ID: resID, Status: reservation.StatusCheckin.String()}, nil)
	s.payments.EXPECT().FindLatestByStatus(gomock.Any(), s.principal.ID, resID, dompayment.StatusSuccess).
		Return(nil, notFound("payment not found"))
	s.reservations.EXPECT().TotalCost(gomock.Any(), resID).Return(120.5, nil)
	s.payments.EXPECT().FindLatestByStatus(gomock.Any(), s.principal.ID, resID, dompayment.StatusPending).
		Return(nil, notFound("payment not found"))

	var token string
	s.payments.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data repository.PaymentData) (primitive.ObjectID, error) {
			s.Len(data.ConfirmationID, dompayment.ConfirmationIDLength)
			s.Equal(resID, data.Reservation)
			s.Equal(s.principal.ID, data.CreatedBy)
			s.Equal(120.5, data.Amount)
			token = data.ConfirmationID
			return payID, nil
		})
	s.payments.EXPECT().FindByID(gomock.Any(), payID).
		DoAndReturn(func(context.Context, primitive.ObjectID) (*readmodel.PaymentView, error) {
			return &readmodel.PaymentView{ID: payID, ConfirmationID: token, Amount: 120.5, Status: dompayment.StatusPending.String()}, nil
		})
	s.gateway.EXPECT().CreateIntent(gomock.Any(), int64(12050), "brl", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ string, metadata map[string]string) (*gateway.Intent, error) {
			s.Equal(token, metadata["confirmationId"])
			return &gateway.Intent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil
		})

	intent, err := s.uc.FindLatestReservation(s.ctx, s.principal)

	s.NoError(err)
	s.Equal("pi_1_secret", intent.ClientSecret)
	s.Equal(payID, intent.Payment.ID)
}

func (s *PaymentUsecaseTestSuite) TestFindLatestReservation_ReusesPendingPayment() {
	resID := primitive.NewObjectID()
	payID := primitive.NewObjectID()
	existing := &readmodel.PaymentView{
		ID:             payID,
		ConfirmationID: "tok123",
		Amount:         50,
		Status:         dompayment.StatusPending.String(),
	}

	s.reservations.EXPECT().FindLatestCheckin(gomock.Any(), s.principal.ID).
		Return(&readmodel.ReservationSummary{ID: resID}, nil)
	s.payments.EXPECT().FindLatestByStatus(gomock.Any(), s.principal.ID, resID, dompayment.StatusSuccess).
		Return(nil, notFound("payment not found"))
	s.reservations.EXPECT().TotalCost(gomock.Any(), resID).Return(50.0, nil)
	s.payments.EXPECT().FindLatestByStatus(gomock.Any(), s.principal.ID, resID, dompayment.StatusPending).
		Return(existing, nil)
	s.gateway.EXPECT().CreateIntent(gomock.Any(), int64(5000), "brl", map[string]string{"confirmationId": "tok123"}).
		Return(&gateway.Intent{ID: "pi_2", ClientSecret: "pi_2_secret"}, nil)

	intent, err := s.uc.FindLatestReservation(s.ctx, s.principal)

	s.NoError(err)
	s.Equal("pi_2_secret", intent.ClientSecret)
	s.Equal("tok123", intent.Payment.ConfirmationID)
}

func (s *PaymentUsecaseTestSuite) TestFindLatestReservation_ReplacesTokenlessPending() {
	resID := primitive.NewObjectID()
	payID := primitive.NewObjectID()
	existing := &readmodel.PaymentView{ID: payID, ConfirmationID: "", Amount: 30, Status: dompayment.StatusPending.String()}

	s.reservations.EXPECT().FindLatestCheckin(gomock.Any(), s.principal.ID).
		Return(&readmodel.ReservationSummary{ID: resID}, nil)
	s.payments.EXPECT().FindLatestByStatus(gomock.Any(), s.principal.ID, resID, dompayment.StatusSuccess).
		Return(nil, notFound("payment not found"))
	s.reservations.EXPECT().TotalCost(gomock.Any(), resID).Return(30.0, nil)
	s.payments.EXPECT().FindLatestByStatus(gomock.Any(), s.principal.ID, resID, dompayment.StatusPending).
		Return(existing, nil)

	var token string
	s.payments.EXPECT().Update(gomock.Any(), payID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, patch repository.PaymentPatch) error {
			s.Require().NotNil(patch.ConfirmationID)
			s.Len(*patch.ConfirmationID, dompayment.ConfirmationIDLength)
			token = *patch.ConfirmationID
			return nil
		})
	s.payments.EXPECT().FindByID(gomock.Any(), payID).
		DoAndReturn(func(context.Context, primitive.ObjectID) (*readmodel.PaymentView, error) {
			return &readmodel.PaymentView{ID: payID, ConfirmationID: token, Amount: 30, Status: dompayment.StatusPending.String()}, nil
		})
	s.gateway.EXPECT().CreateIntent(gomock.Any(), int64(3000), "brl", gomock.Any()).
		Return(&gateway.Intent{ID: "pi_3", ClientSecret: "pi_3_secret"}, nil)

	intent, err := s.uc.FindLatestReservation(s.ctx, s.principal)

	s.NoError(err)
	s.NotEmpty(intent.Payment.ConfirmationID)
}

func (s *PaymentUsecaseTestSuite) TestHandleWebhook_ChargeSucceeded() {
	payID := primitive.NewObjectID()
	resID := primitive.NewObjectID()
	view := &readmodel.PaymentView{
		ID:             payID,
		ConfirmationID: "tok123",
		Reservation:    &readmodel.ReservationSummary{ID: resID, Status: reservation.StatusCheckin.String()},
		Status:         dompayment.StatusPending.String(),
	}

	s.payments.EXPECT().FindByConfirmationID(gomock.Any(), "tok123").Return(view, nil)
	s.payments.EXPECT().Update(gomock.Any(), payID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, patch repository.PaymentPatch) error {
			s.Require().NotNil(patch.Status)
			s.Equal(dompayment.StatusSuccess.String(), *patch.Status)
			return nil
		})
	s.reservations.EXPECT().Update(gomock.Any(), resID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, patch repository.ReservationPatch) error {
			s.Require().NotNil(patch.Status)
			s.Equal(reservation.StatusCheckout.String(), *patch.Status)
			return nil
		})
	s.reservations.EXPECT().UpdateTotalCost(gomock.Any(), resID).Return(nil)

	err := s.uc.HandleWebhook(s.ctx, usecase.WebhookEvent{Type: usecase.EventChargeSucceeded, ConfirmationID: "tok123"})

	s.NoError(err)
}

func (s *PaymentUsecaseTestSuite) TestHandleWebhook_PaymentFailed() {
	payID := primitive.NewObjectID()
	view := &readmodel.PaymentView{
		ID:             payID,
		ConfirmationID: "tok456",
		Reservation:    &readmodel.ReservationSummary{ID: primitive.NewObjectID()},
		Status:         dompayment.StatusPending.String(),
	}

	s.payments.EXPECT().FindByConfirmationID(gomock.Any(), "tok456").Return(view, nil)
	s.payments.EXPECT().Update(gomock.Any(), payID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, patch repository.PaymentPatch) error {
			s.Require().NotNil(patch.Status)
			s.Equal(dompayment.StatusFailed.String(), *patch.Status)
			return nil
		})

	err := s.uc.HandleWebhook(s.ctx, usecase.WebhookEvent{Type: usecase.EventPaymentIntentFailed, ConfirmationID: "tok456"})

	s.NoError(err)
}

func (s *PaymentUsecaseTestSuite) TestHandleWebhook_UnmatchedConfirmationID() {
	s.payments.EXPECT().FindByConfirmationID(gomock.Any(), "ghost").
		Return(nil, notFound("payment not found"))

	err := s.uc.HandleWebhook(s.ctx, usecase.WebhookEvent{Type: usecase.EventChargeSucceeded, ConfirmationID: "ghost"})

	s.NoError(err)
}

func (s *PaymentUsecaseTestSuite) TestHandleWebhook_MissingConfirmationID() {
	err := s.uc.HandleWebhook(s.ctx, usecase.WebhookEvent{Type: usecase.EventChargeSucceeded})

	s.NoError(err)
}

func (s *PaymentUsecaseTestSuite) TestHandleWebhook_IgnoredAndUnknownEvents() {
	s.NoError(s.uc.HandleWebhook(s.ctx, usecase.WebhookEvent{Type: usecase.EventPaymentMethodAttached, ConfirmationID: "tok"}))
	s.NoError(s.uc.HandleWebhook(s.ctx, usecase.WebhookEvent{Type: "customer.created", ConfirmationID: "tok"}))
}
