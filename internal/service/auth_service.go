package service

import (
	"context"
	"errors"
	"os"
	"time"

	"educonnect-be/internal/dto"
	"educonnect-be/internal/entity"
	"educonnect-be/internal/pkg/apperror"
	"educonnect-be/internal/pkg/logger"
	"educonnect-be/internal/pkg/mailer"
	"educonnect-be/internal/repository/specification"
	"educonnect-be/internal/repository/unitofwork"
	"educonnect-be/pkg/events"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)

	// Exists backs the auth middleware's token-subject check.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher IEventPublisher
	log            logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, eventPublisher IEventPublisher, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func signToken(userId uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}

func userResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:        user.Id,
		Name:      user.FullName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperror.Store(err)
	}
	if existing != nil {
		return nil, apperror.InvalidInput("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Store(err)
	}
	hashStr := string(hash)

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		FullName:     req.Name,
		PasswordHash: &hashStr,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	// The unique email index is the real guard: two concurrent registers
	// with the same email race past the lookup and one insert fails here.
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.InvalidInput("User already exists")
		}
		return nil, apperror.Store(err)
	}

	token, err := signToken(user.Id)
	if err != nil {
		return nil, apperror.Store(err)
	}

	s.eventPublisher.Publish(ctx, events.UserRegistered, user.Id.String(), user.Id.String(), map[string]interface{}{
		"email": user.Email,
	})

	go func() {
		if emailErr := s.emailService.SendWelcome(user.Email, user.FullName); emailErr != nil {
			s.log.Warn("auth", "failed to send welcome email", map[string]interface{}{"email": user.Email, "error": emailErr.Error()})
		}
	}()

	return &dto.LoginResponse{Token: token, User: userResponse(user)}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperror.Store(err)
	}
	if user == nil || user.PasswordHash == nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	token, err := signToken(user.Id)
	if err != nil {
		return nil, apperror.Store(err)
	}

	return &dto.LoginResponse{Token: token, User: userResponse(user)}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.Store(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	resp := userResponse(user)
	return &resp, nil
}

func (s *authService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.UserRepository().Count(ctx, specification.ByID{ID: id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
