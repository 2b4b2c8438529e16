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

type UserService interface {
	Create(ctx context.Context, input usecase.UserCreateInput) (*readmodel.UserView, error)
	Update(ctx context.Context, id primitive.ObjectID, input usecase.UserUpdateInput) (*readmodel.UserView, error)
	DestroyAll(ctx context.Context, principal security.Principal, ids []primitive.ObjectID) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.UserView, error)
	FindAndCountAll(ctx context.Context, filter repository.UserFilter, page repository.Pagination) ([]readmodel.UserView, int64, error)
	FindAllAutocomplete(ctx context.Context, search string, limit int64) ([]readmodel.AutocompleteItem, error)
}

type UserHandler struct {
	users UserService
}

func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{users: users}
}

// @Summary List users
// @Description List users with filters and pagination
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param params query reqdto.UserListParams false "List params"
// @Success 200 {object} resdto.List[readmodel.UserView]
// @Failure 403 {object} httperr.Response
// @Router /user [get]
func (h *UserHandler) FindAndCountAll(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionUserRead) {
		return
	}
	var params reqdto.UserListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err, "Invalid query parameters")
		return
	}

	rows, count, err := h.users.FindAndCountAll(c.Request.Context(), params.ToFilter(), params.ToPagination())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewList(rows, count))
}

// @Summary Autocomplete users
// @Description Lookup users matching a query, for selection widgets
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param query query string false "Search text"
// @Success 200 {array} readmodel.AutocompleteItem
// @Failure 403 {object} httperr.Response
// @Router /user/autocomplete [get]
func (h *UserHandler) FindAllAutocomplete(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionUserAutocomplete) {
		return
	}
	var params reqdto.AutocompleteParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err, "Invalid query parameters")
		return
	}

	items, err := h.users.FindAllAutocomplete(c.Request.Context(), params.Query, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get user
// @Description Fetch a single user by id
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} readmodel.UserView
// @Failure 404 {object} httperr.Response
// @Router /user/{id} [get]
func (h *UserHandler) FindByID(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionUserRead) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create user
// @Description Create a user as an administrator
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UserCreateRequest true "User payload"
// @Success 200 {object} readmodel.UserView
// @Failure 400 {object} httperr.Response
// @Router /user [post]
func (h *UserHandler) Create(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionUserCreate) {
		return
	}
	var req reqdto.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	input, err := req.ToInput()
	if err != nil {
		badRequest(c, err, "Invalid request data")
		return
	}

	view, err := h.users.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update user
// @Description Update a user's fields as an administrator
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Param request body reqdto.UserUpdateRequest true "User payload"
// @Success 200 {object} readmodel.UserView
// @Failure 404 {object} httperr.Response
// @Router /user/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionUserEdit) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	input, err := req.ToInput()
	if err != nil {
		badRequest(c, err, "Invalid request data")
		return
	}

	view, err := h.users.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete users
// @Description Delete the users named by the ids query parameter
// @Tags user
// @Security BearerAuth
// @Param ids query []string true "User ids"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /user [delete]
func (h *UserHandler) DestroyAll(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if !requirePermission(c, p, security.PermissionUserDestroy) {
		return
	}
	ids, ok := queryIDs(c)
	if !ok {
		return
	}

	if err := h.users.DestroyAll(c.Request.Context(), p, ids); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
