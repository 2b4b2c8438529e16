package api

import (
	"context"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pousada-api/internal/handler/httperr"
	"pousada-api/internal/infra/storage"
	"pousada-api/internal/pkg/errs"
	"pousada-api/internal/security"
	"pousada-api/internal/usecase"
	"pousada-api/internal/usecase/readmodel"
)

type FileService interface {
	Upload(ctx context.Context, r io.Reader, input usecase.FileUploadInput) (*readmodel.FileView, error)
	Destroy(ctx context.Context, id primitive.ObjectID) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.FileView, error)
}

type FileHandler struct {
	files FileService
	// local is nil when the GCS backend is active; the download endpoint
	// then has nothing to serve because GCS links are direct.
	local *storage.LocalStorage
}

func NewFileHandler(files FileService, local *storage.LocalStorage) *FileHandler {
	return &FileHandler{files: files, local: local}
}

// @Summary Upload file
// @Description Upload a file into the destination named by storageId. The stored name is a generated uuid keeping the original extension.
// @Tags file
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param storageId formData string true "Storage destination id"
// @Param file formData file true "File content"
// @Success 200 {object} readmodel.FileView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /file [post]
func (h *FileHandler) Upload(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	dest, found := security.StorageDestinationFor(security.StorageID(c.PostForm("storageId")))
	if !found {
		httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbidden, "Unknown storage destination", nil)
		return
	}
	if !dest.BypassWritingPermissions && !security.NewChecker(p).HasStorage(dest.ID) {
		httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbidden, "Forbidden", nil)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		badRequest(c, err, "file is required")
		return
	}
	if header.Size > dest.MaxSizeInBytes {
		badRequest(c, storage.ErrFileTooLarge, storage.ErrFileTooLarge.Error())
		return
	}

	folder := strings.ReplaceAll(dest.Folder, ":userId", p.ID.Hex())
	ext := strings.ToLower(path.Ext(header.Filename))
	stored := uuid.NewString() + ext

	f, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	view, err := h.files.Upload(c.Request.Context(), f, usecase.FileUploadInput{
		Title:          strings.TrimSuffix(header.Filename, path.Ext(header.Filename)),
		Name:           header.Filename,
		SizeInBytes:    header.Size,
		PrivateURL:     folder + "/" + stored,
		PublicRead:     dest.PublicRead,
		MaxSizeInBytes: dest.MaxSizeInBytes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Download file
// @Description Serve a file stored on the local backend. Cloud-stored files are downloaded through their direct links instead.
// @Tags file
// @Produce octet-stream
// @Param privateUrl query string true "Stored file path"
// @Param filename query string true "Download name"
// @Success 200 {file} binary
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /file/download [get]
func (h *FileHandler) Download(c *gin.Context) {
	if h.local == nil {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrFileNotFound, "File not found", nil)
		return
	}
	privateURL := c.Query("privateUrl")
	filename := c.Query("filename")
	if privateURL == "" || filename == "" {
		badRequest(c, errs.ErrDomainValidation, "privateUrl and filename are required")
		return
	}

	full, err := h.local.Resolve(privateURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(full, filename)
}

// @Summary Get file
// @Tags file
// @Produce json
// @Security BearerAuth
// @Param id path string true "File id"
// @Success 200 {object} readmodel.FileView
// @Failure 404 {object} httperr.Response
// @Router /file/{id} [get]
func (h *FileHandler) FindByID(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.files.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete file
// @Tags file
// @Security BearerAuth
// @Param id path string true "File id"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /file/{id} [delete]
func (h *FileHandler) Destroy(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.files.Destroy(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
