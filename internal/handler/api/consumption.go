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
	"pousada-api/internal/usecase/readmodel"
)

type ConsumptionService interface {
	Create(ctx context.Context, data repository.ConsumptionData) (*readmodel.ConsumptionView, error)
	Update(ctx context.Context, id primitive.ObjectID, patch repository.ConsumptionPatch) (*readmodel.ConsumptionView, error)
	DestroyAll(ctx context.Context, ids []primitive.ObjectID) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.ConsumptionView, error)
	FindAndCountAll(ctx context.Context, filter repository.ConsumptionFilter, page repository.Pagination) ([]readmodel.ConsumptionView, int64, error)
	FindAllAutocomplete(ctx context.Context, search string, limit int64) ([]readmodel.AutocompleteItem, error)
}

type ConsumptionHandler struct {
	consumptions ConsumptionService
}

func NewConsumptionHandler(consumptions ConsumptionService) *ConsumptionHandler {
	return &ConsumptionHandler{consumptions: consumptions}
}

// @Summary List consumptions
// @Description List consumable items with filters and pagination
// @Tags consumption
// @Produce json
// @Security BearerAuth
// @Param params query reqdto.ConsumptionListParams false "List params"
// @Success 200 {object} resdto.List[readmodel.ConsumptionView]
// @Failure 403 {object} httperr.Response
// @Router /consumption [get]
func (h *ConsumptionHandler) FindAndCountAll(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionConsumptionRead) {
		return
	}
	var params reqdto.ConsumptionListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err, "Invalid query parameters")
		return
	}

	rows, count, err := h.consumptions.FindAndCountAll(c.Request.Context(), params.ToFilter(), params.ToPagination())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(rows, count))
}

// @Summary Autocomplete consumptions
// @Tags consumption
// @Produce json
// @Security BearerAuth
// @Param query query string false "Search text"
// @Success 200 {array} readmodel.AutocompleteItem
// @Failure 403 {object} httperr.Response
// @Router /consumption/autocomplete [get]
func (h *ConsumptionHandler) FindAllAutocomplete(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionConsumptionAutocomplete) {
		return
	}
	var params reqdto.AutocompleteParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err, "Invalid query parameters")
		return
	}

	items, err := h.consumptions.FindAllAutocomplete(c.Request.Context(), params.Query, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get consumption
// @Tags consumption
// @Produce json
// @Security BearerAuth
// @Param id path string true "Consumption id"
// @Success 200 {object} readmodel.ConsumptionView
// @Failure 404 {object} httperr.Response
// @Router /consumption/{id} [get]
func (h *ConsumptionHandler) FindByID(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionConsumptionRead) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.consumptions.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create consumption
// @Tags consumption
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConsumptionCreateRequest true "Consumption payload"
// @Success 200 {object} readmodel.ConsumptionView
// @Failure 400 {object} httperr.Response
// @Router /consumption [post]
func (h *ConsumptionHandler) Create(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionConsumptionCreate) {
		return
	}
	var req reqdto.ConsumptionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	view, err := h.consumptions.Create(c.Request.Context(), req.ToData())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update consumption
// @Tags consumption
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Consumption id"
// @Param request body reqdto.ConsumptionUpdateRequest true "Consumption payload"
// @Success 200 {object} readmodel.ConsumptionView
// @Failure 404 {object} httperr.Response
// @Router /consumption/{id} [put]
func (h *ConsumptionHandler) Update(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionConsumptionEdit) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ConsumptionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	view, err := h.consumptions.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete consumptions
// @Tags consumption
// @Security BearerAuth
// @Param ids query []string true "Consumption ids"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /consumption [delete]
func (h *ConsumptionHandler) DestroyAll(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionConsumptionDestroy) {
		return
	}
	ids, ok := queryIDs(c)
	if !ok {
		return
	}

	if err := h.consumptions.DestroyAll(c.Request.Context(), ids); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
