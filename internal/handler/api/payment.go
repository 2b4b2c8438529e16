package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	reqdto "pousada-api/internal/handler/dto/request"
	resdto "pousada-api/internal/handler/dto/response"
	"pousada-api/internal/infra/repository"
	"pousada-api/internal/security"
	"pousada-api/internal/usecase"
	"pousada-api/internal/usecase/readmodel"
)

type PaymentService interface {
	Create(ctx context.Context, principal security.Principal, reservationID primitive.ObjectID) (*readmodel.PaymentView, error)
	Update(ctx context.Context, id primitive.ObjectID, patch repository.PaymentPatch) (*readmodel.PaymentView, error)
	DestroyAll(ctx context.Context, ids []primitive.ObjectID) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.PaymentView, error)
	FindAndCountAll(ctx context.Context, filter repository.PaymentFilter, page repository.Pagination) ([]readmodel.PaymentView, int64, error)
	FindLatestReservation(ctx context.Context, principal security.Principal) (*usecase.PaymentIntent, error)
	HandleWebhook(ctx context.Context, event usecase.WebhookEvent) error
}

type PaymentHandler struct {
	payments PaymentService
}

func NewPaymentHandler(payments PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// @Summary List payments
// @Description List payments with filters and pagination
// @Tags payment
// @Produce json
// @Security BearerAuth
// @Param params query reqdto.PaymentListParams false "List params"
// @Success 200 {object} resdto.List[readmodel.PaymentView]
// @Failure 403 {object} httperr.Response
// @Router /payment [get]
func (h *PaymentHandler) FindAndCountAll(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionPaymentRead) {
		return
	}
	var params reqdto.PaymentListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err, "Invalid query parameters")
		return
	}

	rows, count, err := h.payments.FindAndCountAll(c.Request.Context(), params.ToFilter(), params.ToPagination())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(rows, count))
}

// @Summary Get payment
// @Tags payment
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment id"
// @Success 200 {object} readmodel.PaymentView
// @Failure 404 {object} httperr.Response
// @Router /payment/{id} [get]
func (h *PaymentHandler) FindByID(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionPaymentRead) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.payments.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create payment
// @Description Record a payment for a reservation. The amount is the reservation's current total cost.
// @Tags payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PaymentCreateRequest true "Payment payload"
// @Success 200 {object} readmodel.PaymentView
// @Failure 400 {object} httperr.Response
// @Router /payment [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionPaymentCreate) {
		return
	}
	var req reqdto.PaymentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	reservationID, err := primitive.ObjectIDFromHex(req.Data.Reservation)
	if err != nil {
		badRequest(c, err, "Invalid reservation id")
		return
	}

	view, err := h.payments.Create(c.Request.Context(), p, reservationID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update payment
// @Tags payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment id"
// @Param request body reqdto.PaymentUpdateRequest true "Payment payload"
// @Success 200 {object} readmodel.PaymentView
// @Failure 404 {object} httperr.Response
// @Router /payment/{id} [put]
func (h *PaymentHandler) Update(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionPaymentEdit) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.PaymentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	view, err := h.payments.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete payments
// @Tags payment
// @Security BearerAuth
// @Param ids query []string true "Payment ids"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /payment [delete]
func (h *PaymentHandler) DestroyAll(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionPaymentDestroy) {
		return
	}
	ids, ok := queryIDs(c)
	if !ok {
		return
	}

	if err := h.payments.DestroyAll(c.Request.Context(), ids); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Payment intent for the latest open reservation
// @Description Find the caller's latest check-in reservation and return a processor intent for it, creating or reusing a pending payment.
// @Tags payment
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PaymentIntentResponse
// @Failure 400 {object} httperr.Response
// @Router /payment/latest-reservation [get]
func (h *PaymentHandler) FindLatestReservation(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	intent, err := h.payments.FindLatestReservation(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
		Payment:      intent.Payment,
	})
}

// @Summary Payment processor webhook
// @Description Receive processor events and settle the matching pending payment. Unknown events are acknowledged and ignored.
// @Tags payment
// @Accept json
// @Success 200 "OK"
// @Failure 400 {object} httperr.Response
// @Router /payment/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var req reqdto.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	event := usecase.WebhookEvent{
		Type:           req.Type,
		ConfirmationID: req.Data.Object.Metadata.ConfirmationID,
	}
	if err := h.payments.HandleWebhook(c.Request.Context(), event); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
