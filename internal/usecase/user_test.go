//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	domuser "pousada-api/internal/domain/user"
	"pousada-api/internal/infra/repository"
	"pousada-api/internal/pkg/errs"
	"pousada-api/internal/pkg/password"
	"pousada-api/internal/security"
	"pousada-api/internal/usecase"
	"pousada-api/internal/usecase/readmodel"
	mock_usecase "pousada-api/tests/mock/usecase"
)

type UserUsecaseTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	users *mock_usecase.MockUserRepository
	files *mock_usecase.MockAvatarFileRepository
	uc    *usecase.UserUsecase
	ctx   context.Context
}

func TestUserUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(UserUsecaseTestSuite))
}

func (s *UserUsecaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = mock_usecase.NewMockUserRepository(s.ctrl)
	s.files = mock_usecase.NewMockAvatarFileRepository(s.ctrl)
	s.uc = usecase.NewUserUsecase(passthroughTx{}, s.users, s.files)
	s.ctx = context.Background()
}

func (s *UserUsecaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *UserUsecaseTestSuite) TestCreate_LowercasesEmailAndHashesPassword() {
	id := primitive.NewObjectID()

	s.users.EXPECT().FindByEmail(gomock.Any(), "new@example.com").
		Return(nil, notFound("user not found"))
	s.users.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data repository.UserData) (primitive.ObjectID, error) {
			s.Equal("new@example.com", data.Email)
			s.NoError(password.ComparePassword(data.Password, "secret123"))
			return id, nil
		})
	s.users.EXPECT().FindByID(gomock.Any(), id).
		Return(&readmodel.UserView{ID: id, Email: "new@example.com"}, nil)

	view, err := s.uc.Create(s.ctx, usecase.UserCreateInput{
		Name:     "New Guest",
		Email:    "New@Example.COM",
		Password: "secret123",
		Status:   domuser.StatusActive.String(),
		Role:     domuser.RoleGuest.String(),
	})

	s.NoError(err)
	s.Equal(id, view.ID)
}

func (s *UserUsecaseTestSuite) TestCreate_DuplicateEmail() {
	s.users.EXPECT().FindByEmail(gomock.Any(), "taken@example.com").
		Return(&readmodel.UserView{ID: primitive.NewObjectID()}, nil)

	_, err := s.uc.Create(s.ctx, usecase.UserCreateInput{Email: "taken@example.com", Password: "x"})

	s.ErrorIs(err, errs.ErrEmailAlreadyInUse)
}

func (s *UserUsecaseTestSuite) TestUpdate_RehashesNewPassword() {
	id := primitive.NewObjectID()
	newPassword := "rotated"

	s.users.EXPECT().Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, patch repository.UserPatch) error {
			s.Require().NotNil(patch.Password)
			s.NoError(password.ComparePassword(*patch.Password, newPassword))
			return nil
		})
	s.users.EXPECT().FindByID(gomock.Any(), id).
		Return(&readmodel.UserView{ID: id}, nil)

	_, err := s.uc.Update(s.ctx, id, usecase.UserUpdateInput{Password: &newPassword})

	s.NoError(err)
}

func (s *UserUsecaseTestSuite) TestDestroyAll_RejectsSelfDeletion() {
	principal := security.Principal{ID: primitive.NewObjectID(), Role: domuser.RoleAdmin}
	other := primitive.NewObjectID()

	err := s.uc.DestroyAll(s.ctx, principal, []primitive.ObjectID{other, principal.ID})

	s.ErrorIs(err, errs.ErrSelfDeletion)
}

func (s *UserUsecaseTestSuite) TestDestroyAll_Succeeds() {
	principal := security.Principal{ID: primitive.NewObjectID(), Role: domuser.RoleAdmin}
	ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}

	s.users.EXPECT().DestroyAll(gomock.Any(), ids).Return(nil)

	s.NoError(s.uc.DestroyAll(s.ctx, principal, ids))
}

func (s *UserUsecaseTestSuite) TestDestroyAll_NotFound() {
	principal := security.Principal{ID: primitive.NewObjectID(), Role: domuser.RoleAdmin}
	ids := []primitive.ObjectID{primitive.NewObjectID()}

	s.users.EXPECT().DestroyAll(gomock.Any(), ids).Return(notFound("user not found"))

	err := s.uc.DestroyAll(s.ctx, principal, ids)

	s.ErrorIs(err, errs.ErrUserNotFound)
}
