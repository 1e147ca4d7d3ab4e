package usecase_test

import (
	"testing"

	"go-finance-assistant/internal/entity"
	"go-finance-assistant/internal/params"
	"go-finance-assistant/internal/repository"
	"go-finance-assistant/internal/usecase"
	"go-finance-assistant/pkg/token"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthTest(t *testing.T) (*repository.MockUserRepository, usecase.AuthUsecase) {
	mockRepo := new(repository.MockUserRepository)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	jwtManager := token.NewTokenManager("test-secret", 1)
	au := usecase.NewAuthUsecase(mockRepo, logger, jwtManager)

	return mockRepo, au
}

func TestRegister_Success(t *testing.T) {
	mockRepo, uc := setupAuthTest(t)

	mockRepo.On("GetByEmail", "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil)

	resp, err := uc.Register(&params.RegisterRequest{
		Name:     "Alex",
		Email:    "new@example.com",
		Password: "secret123",
	})

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "new@example.com", resp.User.Email)

	mockRepo.AssertExpectations(t)
}

func TestRegister_EmailAlreadyExists(t *testing.T) {
	mockRepo, uc := setupAuthTest(t)

	existing := &entity.User{ID: uuid.New(), Email: "taken@example.com"}
	mockRepo.On("GetByEmail", "taken@example.com").Return(existing, nil)

	resp, err := uc.Register(&params.RegisterRequest{
		Name:     "Alex",
		Email:    "taken@example.com",
		Password: "secret123",
	})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 409, err.StatusCode)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestLogin_Success(t *testing.T) {
	mockRepo, uc := setupAuthTest(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &entity.User{
		ID:       uuid.New(),
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: string(hashed),
	}

	mockRepo.On("GetByEmail", "alex@example.com").Return(user, nil)

	resp, err := uc.Login(&params.LoginRequest{
		Email:    "alex@example.com",
		Password: "secret123",
	})

	assert.Nil(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)

	mockRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockRepo, uc := setupAuthTest(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &entity.User{
		ID:       uuid.New(),
		Email:    "alex@example.com",
		Password: string(hashed),
	}

	mockRepo.On("GetByEmail", "alex@example.com").Return(user, nil)

	resp, err := uc.Login(&params.LoginRequest{
		Email:    "alex@example.com",
		Password: "wrong",
	})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, "invalid email or password", err.Message)

	mockRepo.AssertExpectations(t)
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockRepo, uc := setupAuthTest(t)

	mockRepo.On("GetByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	resp, err := uc.Login(&params.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 400, err.StatusCode)

	mockRepo.AssertExpectations(t)
}
