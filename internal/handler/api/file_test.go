//go:build unit

package api_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
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
	"pousada-api/internal/security"
	"pousada-api/internal/usecase"
	"pousada-api/internal/usecase/readmodel"
	apimock "pousada-api/tests/mock/api"
)

type FileHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockService *apimock.MockFileService
	principal   security.Principal
}

func (s *FileHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = apimock.NewMockFileService(s.mockCtrl)
	handler := api.NewFileHandler(s.mockService, nil)

	s.principal = security.Principal{ID: primitive.NewObjectID(), Email: "admin@example.com", Role: user.RoleAdmin}

	s.router.POST("/api/file", func(c *gin.Context) {
		c.Set("principal", s.principal)
		handler.Upload(c)
	})
}

func (s *FileHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFileHandlerSuite(t *testing.T) {
	suite.Run(t, new(FileHandlerTestSuite))
}

func (s *FileHandlerTestSuite) postUpload(storageID, filename, content string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	s.Require().NoError(mw.WriteField("storageId", storageID))
	part, err := mw.CreateFormFile("file", filename)
	s.Require().NoError(err)
	_, err = part.Write([]byte(content))
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *FileHandlerTestSuite) TestUploadKeepsOriginalNameAndTitlesWithoutExtension() {
	var captured usecase.FileUploadInput
	s.mockService.EXPECT().
		Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r io.Reader, input usecase.FileUploadInput) (*readmodel.FileView, error) {
			body, err := io.ReadAll(r)
			s.NoError(err)
			s.Equal("avatar bytes", string(body))
			captured = input
			return &readmodel.FileView{ID: primitive.NewObjectID(), Name: input.Name, Title: input.Title}, nil
		})

	w := s.postUpload("userAvatar", "avatar.PNG", "avatar bytes")

	s.Equal(http.StatusOK, w.Code)
	s.Equal("avatar", captured.Title)
	s.Equal("avatar.PNG", captured.Name)
	s.Equal(int64(len("avatar bytes")), captured.SizeInBytes)
	s.True(captured.PublicRead)
	s.Equal(int64(3*1024*1024), captured.MaxSizeInBytes)

	folder := "user/avatars/profile/" + s.principal.ID.Hex() + "/"
	s.True(strings.HasPrefix(captured.PrivateURL, folder))
	s.True(strings.HasSuffix(captured.PrivateURL, ".png"))
	stored := strings.TrimPrefix(captured.PrivateURL, folder)
	s.NotEqual("avatar.PNG", stored)
	s.NotContains(stored, "/")
}

func (s *FileHandlerTestSuite) TestUploadUnknownStorageForbidden() {
	w := s.postUpload("nothing", "doc.pdf", "x")
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *FileHandlerTestSuite) TestUploadRejectsOversizedFile() {
	w := s.postUpload("userAvatar", "big.png", strings.Repeat("a", 3*1024*1024+1))
	s.Equal(http.StatusBadRequest, w.Code)
}
