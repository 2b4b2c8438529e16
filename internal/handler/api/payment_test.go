//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"pousada-api/internal/domain/user"
	"pousada-api/internal/handler/api"
	"pousada-api/internal/infra"
	"pousada-api/internal/pkg/errs"
	"pousada-api/internal/security"
	"pousada-api/internal/usecase"
	"pousada-api/internal/usecase/readmodel"
	apimock "pousada-api/tests/mock/api"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockService *apimock.MockPaymentService
	principal   security.Principal
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = apimock.NewMockPaymentService(s.mockCtrl)
	handler := api.NewPaymentHandler(s.mockService)

	s.principal = security.Principal{ID: primitive.NewObjectID(), Email: "admin@example.com", Role: user.RoleAdmin}

	s.router.POST("/api/payment/webhook", handler.Webhook)
	s.router.GET("/api/payment/latest-reservation", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("principal", s.principal)
		}
		handler.FindLatestReservation(c)
	})
	s.router.GET("/api/payment/:id", func(c *gin.Context) {
		c.Set("principal", s.principal)
		handler.FindByID(c)
	})
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) postWebhook(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/payment/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *PaymentHandlerTestSuite) TestWebhookChargeSucceeded() {
	s.mockService.EXPECT().
		HandleWebhook(gomock.Any(), usecase.WebhookEvent{
			Type:           usecase.EventChargeSucceeded,
			ConfirmationID: "tok123",
		}).
		Return(nil)

	body := `{"type":"charge.succeeded","data":{"object":{"metadata":{"confirmationId":"tok123"}}}}`
	w := s.postWebhook(body)

	s.Equal(http.StatusOK, w.Code)
}

func (s *PaymentHandlerTestSuite) TestWebhookUnknownEventStillAccepted() {
	s.mockService.EXPECT().
		HandleWebhook(gomock.Any(), usecase.WebhookEvent{Type: "invoice.created"}).
		Return(nil)

	w := s.postWebhook(`{"type":"invoice.created","data":{"object":{}}}`)

	s.Equal(http.StatusOK, w.Code)
}

func (s *PaymentHandlerTestSuite) TestWebhookMalformedBody() {
	w := s.postWebhook(`{"type":`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *PaymentHandlerTestSuite) TestFindLatestReservation() {
	payment := &readmodel.PaymentView{
		ID:             primitive.NewObjectID(),
		ConfirmationID: "tok123",
		Amount:         120.5,
		Status:         "pending",
	}
	s.mockService.EXPECT().
		FindLatestReservation(gomock.Any(), s.principal).
		Return(&usecase.PaymentIntent{ClientSecret: "pi_secret", Payment: payment}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/payment/latest-reservation", nil)
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		ClientSecret string `json:"clientSecret"`
		Payment      struct {
			ConfirmationID string `json:"confirmationId"`
		} `json:"payment"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("pi_secret", resp.ClientSecret)
	s.Equal("tok123", resp.Payment.ConfirmationID)
}

func (s *PaymentHandlerTestSuite) TestFindLatestReservationNoActiveReservation() {
	s.mockService.EXPECT().
		FindLatestReservation(gomock.Any(), s.principal).
		Return(nil, errs.ErrNoActiveReservation)

	req := httptest.NewRequest(http.MethodGet, "/api/payment/latest-reservation", nil)
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), errs.ErrNoActiveReservation.Error())
}

func (s *PaymentHandlerTestSuite) TestFindByIDNotFoundMapsTo404() {
	id := primitive.NewObjectID()
	repoErr := infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	s.mockService.EXPECT().
		FindByID(gomock.Any(), id).
		Return(nil, errs.Mark(repoErr, errs.ErrPaymentNotFound))

	req := httptest.NewRequest(http.MethodGet, "/api/payment/"+id.Hex(), nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), errs.ErrPaymentNotFound.Error())
}

func (s *PaymentHandlerTestSuite) TestFindLatestReservationRequiresAuth() {
	req := httptest.NewRequest(http.MethodGet, "/api/payment/latest-reservation", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
}
