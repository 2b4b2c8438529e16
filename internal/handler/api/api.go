package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pousada-api/internal/handler/httperr"
	"pousada-api/internal/handler/middleware"
	"pousada-api/internal/infra/storage"
	"pousada-api/internal/pkg/errs"
	"pousada-api/internal/pkg/jwt"
	"pousada-api/internal/security"
)

var notFoundErrors = []error{
	errs.ErrUserNotFound,
	errs.ErrReservationNotFound,
	errs.ErrConsumptionNotFound,
	errs.ErrPaymentNotFound,
	errs.ErrFileNotFound,
}

var validationErrors = []error{
	errs.ErrEmailAlreadyInUse,
	errs.ErrSelfDeletion,
	errs.ErrCurrentUserMissing,
	errs.ErrInvalidOldPassword,
	errs.ErrNoActiveReservation,
	errs.ErrPaymentAlreadyPending,
	errs.ErrPaymentAlreadyDone,
	errs.ErrDomainValidation,
	storage.ErrFileTooLarge,
}

// respondError maps domain sentinels to the uniform error envelope.
func respondError(c *gin.Context, err error) {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			httperr.AbortWithError(c, http.StatusNotFound, err, sentinel.Error(), nil)
			return
		}
	}
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, sentinel.Error(), nil)
			return
		}
	}
	switch {
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	case errors.Is(err, jwt.ErrInvalidToken), errors.Is(err, jwt.ErrExpiredToken):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

// requirePrincipal returns the authenticated principal or aborts with 401.
func requirePrincipal(c *gin.Context) (security.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrCurrentUserMissing, "User not authenticated", nil)
		return security.Principal{}, false
	}
	return p, true
}

// requirePermission aborts with 403 unless the principal's role is in the
// permission's allow-list.
func requirePermission(c *gin.Context, p security.Principal, id security.PermissionID) bool {
	if err := security.NewChecker(p).Require(id); err != nil {
		respondError(c, err)
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		badRequest(c, err, "Invalid id")
		return primitive.NilObjectID, false
	}
	return id, true
}

// queryIDs parses the repeated "ids" query parameter of bulk-destroy
// endpoints.
func queryIDs(c *gin.Context) ([]primitive.ObjectID, bool) {
	values := c.QueryArray("ids")
	if len(values) == 0 {
		badRequest(c, errs.ErrDomainValidation, "ids is required")
		return nil, false
	}
	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			badRequest(c, err, "Invalid id")
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
