package services

import (
	"errors"
	"log"
	"time"

	"newsroom/config"
	"newsroom/email"
	"newsroom/models"
	"newsroom/repositories"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id uint) (*models.User, error)
	// ForgotPassword always reports success to the caller so account
	// existence is never revealed; delivery problems are only logged.
	ForgotPassword(req models.ForgotPasswordRequest) error
	ResetPassword(req models.ResetPasswordRequest) error
}

type authService struct {
	userRepo      repositories.UserRepository
	publisherRepo repositories.PublisherRepository
	resetRepo     repositories.PasswordResetRepository
	mailer        email.Sender
}

func NewAuthService(
	userRepo repositories.UserRepository,
	publisherRepo repositories.PublisherRepository,
	resetRepo repositories.PasswordResetRepository,
	mailer email.Sender,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		publisherRepo: publisherRepo,
		resetRepo:     resetRepo,
		mailer:        mailer,
	}
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	existingUser, err := s.userRepo.GetByEmail(req.Email)
	if err == nil && existingUser != nil {
		return nil, models.NewDomainError(models.ErrConflict, "user already exists")
	}

	role := req.Role
	if role == "" {
		role = models.RoleReader
	}
	if !role.Valid() {
		return nil, models.NewDomainError(models.ErrRoleMismatch, "unknown role")
	}

	// A publisher-role registration creates the publishing house in the
	// same step, with the new account as its owner.
	if role == models.RolePublisher {
		if req.PublisherName == "" {
			return nil, models.NewDomainError(models.ErrValidation, "publishing house name is required")
		}
		if _, err := s.publisherRepo.GetByName(req.PublisherName); err == nil {
			return nil, models.NewDomainError(models.ErrConflict, "a publisher with this name already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashedPassword),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	switch {
	case role == models.RolePublisher:
		publisher := &models.Publisher{
			Name:        req.PublisherName,
			Description: req.PublisherDescription,
			Website:     req.PublisherWebsite,
			OwnerID:     user.ID,
		}
		if err := s.publisherRepo.Create(publisher); err != nil {
			return nil, err
		}
	case role == models.RoleEditor && req.PublisherID != nil:
		if err := s.attachMember(user, *req.PublisherID); err != nil {
			return nil, err
		}
	case role == models.RoleJournalist && req.PublisherID != nil:
		if err := s.attachMember(user, *req.PublisherID); err != nil {
			return nil, err
		}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) attachMember(user *models.User, publisherID uint) error {
	publisher, err := s.publisherRepo.GetByID(publisherID)
	if err != nil {
		return notFound(err, "publisher not found")
	}
	if user.IsEditor() {
		return s.publisherRepo.AddEditor(publisher, user)
	}
	return s.publisherRepo.AddJournalist(publisher, user)
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewDomainError(models.ErrUnauthorized, "invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.NewDomainError(models.ErrUnauthorized, "invalid credentials")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "user not found")
	}
	return user, nil
}

func (s *authService) ForgotPassword(req models.ForgotPasswordRequest) error {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("password reset requested for unknown email")
			return nil
		}
		return err
	}

	reset := &models.PasswordResetToken{
		UserID: user.ID,
		Token:  uuid.NewString(),
	}
	if err := s.resetRepo.Create(reset); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordResetEmail(user.Email, reset.Token); err != nil {
		// Delivery failure must not alter the flow's outcome.
		log.Printf("reset email delivery failed: %v", err)
	}

	return nil
}

func (s *authService) ResetPassword(req models.ResetPasswordRequest) error {
	reset, err := s.resetRepo.GetByToken(req.Token)
	if err != nil {
		return notFound(err, "invalid reset token")
	}

	if !reset.IsValid(config.ResetTokenTTL) {
		return models.NewDomainError(models.ErrUnauthorized, "invalid or expired reset token")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &reset.User
	user.Password = string(hashedPassword)
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	reset.IsUsed = true
	return s.resetRepo.Update(reset)
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      now.Add(config.JWTExpiration).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(config.JWTSecret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}
