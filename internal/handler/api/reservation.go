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

type ReservationService interface {
	Create(ctx context.Context, principal security.Principal, input usecase.ReservationCreateInput) (*readmodel.ReservationView, error)
	Update(ctx context.Context, id primitive.ObjectID, input usecase.ReservationUpdateInput) (*readmodel.ReservationView, error)
	DestroyAll(ctx context.Context, ids []primitive.ObjectID) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.ReservationView, error)
	FindAndCountAll(ctx context.Context, filter repository.ReservationFilter, page repository.Pagination) ([]readmodel.ReservationView, int64, error)
	FindAllAutocomplete(ctx context.Context, search string, limit int64) ([]readmodel.AutocompleteItem, error)
}

type ReservationHandler struct {
	reservations ReservationService
}

func NewReservationHandler(reservations ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

// @Summary List reservations
// @Description List reservations with filters and pagination
// @Tags reservation
// @Produce json
// @Security BearerAuth
// @Param params query reqdto.ReservationListParams false "List params"
// @Success 200 {object} resdto.List[readmodel.ReservationView]
// @Failure 403 {object} httperr.Response
// @Router /reservation [get]
func (h *ReservationHandler) FindAndCountAll(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionReservationRead) {
		return
	}
	var params reqdto.ReservationListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err, "Invalid query parameters")
		return
	}

	rows, count, err := h.reservations.FindAndCountAll(c.Request.Context(), params.ToFilter(), params.ToPagination())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(rows, count))
}

// @Summary Autocomplete reservations
// @Tags reservation
// @Produce json
// @Security BearerAuth
// @Param query query string false "Search text"
// @Success 200 {array} readmodel.AutocompleteItem
// @Failure 403 {object} httperr.Response
// @Router /reservation/autocomplete [get]
func (h *ReservationHandler) FindAllAutocomplete(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionReservationAutocomplete) {
		return
	}
	var params reqdto.AutocompleteParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err, "Invalid query parameters")
		return
	}

	items, err := h.reservations.FindAllAutocomplete(c.Request.Context(), params.Query, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get reservation
// @Tags reservation
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation id"
// @Success 200 {object} readmodel.ReservationView
// @Failure 404 {object} httperr.Response
// @Router /reservation/{id} [get]
func (h *ReservationHandler) FindByID(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionReservationRead) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.reservations.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create reservation
// @Description Create a reservation. The total cost is computed from the current consumption prices, never from the request.
// @Tags reservation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReservationCreateRequest true "Reservation payload"
// @Success 200 {object} readmodel.ReservationView
// @Failure 400 {object} httperr.Response
// @Router /reservation [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionReservationCreate) {
		return
	}
	var req reqdto.ReservationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	input, err := req.ToInput()
	if err != nil {
		badRequest(c, err, "Invalid request data")
		return
	}

	view, err := h.reservations.Create(c.Request.Context(), p, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update reservation
// @Description Update a reservation and recompute its total cost
// @Tags reservation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation id"
// @Param request body reqdto.ReservationUpdateRequest true "Reservation payload"
// @Success 200 {object} readmodel.ReservationView
// @Failure 404 {object} httperr.Response
// @Router /reservation/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionReservationEdit) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ReservationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	input, err := req.ToInput()
	if err != nil {
		badRequest(c, err, "Invalid request data")
		return
	}

	view, err := h.reservations.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete reservations
// @Tags reservation
// @Security BearerAuth
// @Param ids query []string true "Reservation ids"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /reservation [delete]
func (h *ReservationHandler) DestroyAll(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionReservationDestroy) {
		return
	}
	ids, ok := queryIDs(c)
	if !ok {
		return
	}

	if err := h.reservations.DestroyAll(c.Request.Context(), ids); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
