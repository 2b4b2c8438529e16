//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	domuser "pousada-api/internal/domain/user"
	"pousada-api/internal/infra/repository"
	"pousada-api/internal/pkg/errs"
	"pousada-api/internal/pkg/jwt"
	"pousada-api/internal/pkg/password"
	"pousada-api/internal/security"
	"pousada-api/internal/usecase"
	"pousada-api/internal/usecase/readmodel"
	mock_usecase "pousada-api/tests/mock/usecase"
)

type AuthUsecaseTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	users *mock_usecase.MockAuthUserRepository
	files *mock_usecase.MockAvatarFileRepository
	uc    *usecase.AuthUsecase
	jwt   *jwt.Service
	ctx   context.Context
}

func TestAuthUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(AuthUsecaseTestSuite))
}

func (s *AuthUsecaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = mock_usecase.NewMockAuthUserRepository(s.ctrl)
	s.files = mock_usecase.NewMockAvatarFileRepository(s.ctrl)
	s.jwt = jwt.NewService("test-secret", time.Hour)
	s.uc = usecase.NewAuthUsecase(passthroughTx{}, s.users, s.files, s.jwt)
	s.ctx = context.Background()
}

func (s *AuthUsecaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthUsecaseTestSuite) TestRegister_FirstUserBecomesAdmin() {
	userID := primitive.NewObjectID()

	s.users.EXPECT().FindByEmail(gomock.Any(), "first@example.com").
		Return(nil, notFound("user not found"))
	s.users.EXPECT().Count(gomock.Any()).Return(int64(0), nil)
	s.users.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data repository.UserData) (primitive.ObjectID, error) {
			s.Equal("first@example.com", data.Email)
			s.Equal(domuser.RoleAdmin.String(), data.Role)
			s.Equal(domuser.StatusActive.String(), data.Status)
			s.NotEqual("secret123", data.Password)
			return userID, nil
		})

	token, err := s.uc.Register(s.ctx, "First@Example.com", "secret123")

	s.NoError(err)
	claims, err := s.jwt.ValidateToken(token)
	s.NoError(err)
	s.Equal(userID, claims.UserID)
}

func (s *AuthUsecaseTestSuite) TestRegister_LaterUserIsGuest() {
	s.users.EXPECT().FindByEmail(gomock.Any(), "second@example.com").
		Return(nil, notFound("user not found"))
	s.users.EXPECT().Count(gomock.Any()).Return(int64(3), nil)
	s.users.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data repository.UserData) (primitive.ObjectID, error) {
			s.Equal(domuser.RoleGuest.String(), data.Role)
			return primitive.NewObjectID(), nil
		})

	_, err := s.uc.Register(s.ctx, "second@example.com", "secret123")

	s.NoError(err)
}

func (s *AuthUsecaseTestSuite) TestRegister_DuplicateEmail() {
	s.users.EXPECT().FindByEmail(gomock.Any(), "taken@example.com").
		Return(&readmodel.UserView{ID: primitive.NewObjectID(), Email: "taken@example.com"}, nil)

	_, err := s.uc.Register(s.ctx, "Taken@Example.com", "secret123")

	s.ErrorIs(err, errs.ErrEmailAlreadyInUse)
}

func (s *AuthUsecaseTestSuite) TestLogin_Success() {
	userID := primitive.NewObjectID()
	hashed, err := password.HashPassword("secret123")
	s.Require().NoError(err)

	s.users.EXPECT().FindByEmail(gomock.Any(), "guest@example.com").
		Return(&readmodel.UserView{ID: userID, Email: "guest@example.com"}, nil)
	s.users.EXPECT().FindPassword(gomock.Any(), userID).Return(hashed, nil)

	token, err := s.uc.Login(s.ctx, "Guest@Example.com", "secret123")

	s.NoError(err)
	claims, err := s.jwt.ValidateToken(token)
	s.NoError(err)
	s.Equal(userID, claims.UserID)
}

func (s *AuthUsecaseTestSuite) TestLogin_WrongPassword() {
	userID := primitive.NewObjectID()
	hashed, err := password.HashPassword("secret123")
	s.Require().NoError(err)

	s.users.EXPECT().FindByEmail(gomock.Any(), "guest@example.com").
		Return(&readmodel.UserView{ID: userID}, nil)
	s.users.EXPECT().FindPassword(gomock.Any(), userID).Return(hashed, nil)

	_, err = s.uc.Login(s.ctx, "guest@example.com", "wrong")

	s.ErrorIs(err, errs.ErrDomainValidation)
}

func (s *AuthUsecaseTestSuite) TestLogin_UnknownEmail() {
	s.users.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, notFound("user not found"))

	_, err := s.uc.Login(s.ctx, "ghost@example.com", "whatever")

	s.ErrorIs(err, errs.ErrDomainValidation)
}

func (s *AuthUsecaseTestSuite) TestFindByToken() {
	userID := primitive.NewObjectID()
	token, err := s.jwt.GenerateToken(userID)
	s.Require().NoError(err)

	s.users.EXPECT().FindByID(gomock.Any(), userID).
		Return(&readmodel.UserView{ID: userID, Email: "guest@example.com"}, nil)

	view, err := s.uc.FindByToken(s.ctx, token)

	s.NoError(err)
	s.Equal(userID, view.ID)
}

func (s *AuthUsecaseTestSuite) TestFindByToken_Invalid() {
	_, err := s.uc.FindByToken(s.ctx, "not-a-token")

	s.ErrorIs(err, jwt.ErrInvalidToken)
}

func (s *AuthUsecaseTestSuite) TestChangePassword_WrongOldPassword() {
	principal := security.Principal{ID: primitive.NewObjectID(), Role: domuser.RoleGuest}
	hashed, err := password.HashPassword("current")
	s.Require().NoError(err)

	s.users.EXPECT().FindPassword(gomock.Any(), principal.ID).Return(hashed, nil)

	err = s.uc.ChangePassword(s.ctx, principal, "not-current", "next")

	s.ErrorIs(err, errs.ErrInvalidOldPassword)
}

func (s *AuthUsecaseTestSuite) TestChangePassword_Success() {
	principal := security.Principal{ID: primitive.NewObjectID(), Role: domuser.RoleGuest}
	hashed, err := password.HashPassword("current")
	s.Require().NoError(err)

	s.users.EXPECT().FindPassword(gomock.Any(), principal.ID).Return(hashed, nil)
	s.users.EXPECT().Update(gomock.Any(), principal.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, patch repository.UserPatch) error {
			s.Require().NotNil(patch.Password)
			s.NoError(password.ComparePassword(*patch.Password, "next"))
			return nil
		})

	s.NoError(s.uc.ChangePassword(s.ctx, principal, "current", "next"))
}

func (s *AuthUsecaseTestSuite) TestChangePassword_NoPrincipal() {
	err := s.uc.ChangePassword(s.ctx, security.Principal{}, "a", "b")

	s.ErrorIs(err, errs.ErrCurrentUserMissing)
}

func (s *AuthUsecaseTestSuite) TestUpdateProfile_FiltersDanglingAvatar() {
	principal := security.Principal{ID: primitive.NewObjectID(), Role: domuser.RoleGuest}
	dangling := primitive.NewObjectID()

	s.files.EXPECT().FilterIDs(gomock.Any(), []primitive.ObjectID{dangling}).
		Return(nil, nil)
	s.users.EXPECT().Update(gomock.Any(), principal.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, patch repository.UserPatch) error {
			s.Nil(patch.Avatar)
			return nil
		})
	s.users.EXPECT().FindByID(gomock.Any(), principal.ID).
		Return(&readmodel.UserView{ID: principal.ID}, nil)

	_, err := s.uc.UpdateProfile(s.ctx, principal, usecase.ProfileUpdateInput{Avatar: &dangling})

	s.NoError(err)
}

func (s *AuthUsecaseTestSuite) TestRemoveProfile() {
	principal := security.Principal{ID: primitive.NewObjectID(), Role: domuser.RoleGuest}

	s.users.EXPECT().DestroyAll(gomock.Any(), []primitive.ObjectID{principal.ID}).Return(nil)

	s.NoError(s.uc.RemoveProfile(s.ctx, principal))
}
