package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/insuretrack/insuretrack-api/internal/application/dto"
	"github.com/insuretrack/insuretrack-api/internal/application/ports"
	"github.com/insuretrack/insuretrack-api/internal/domain"
	"github.com/insuretrack/insuretrack-api/internal/domain/entity"
	"github.com/insuretrack/insuretrack-api/internal/domain/repository"
	"github.com/insuretrack/insuretrack-api/pkg/jwt"
	"github.com/insuretrack/insuretrack-api/pkg/logger"
)

// Reset tokens are single-use and expire after one hour.
const resetTokenTTL = time.Hour

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase authentication flows: register, login, password reset.
type AuthUseCase struct {
	userRepo repository.UserRepository
	mailer   ports.EmailSender
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase builds the use case with its ports.
func NewAuthUseCase(userRepo repository.UserRepository, mailer ports.EmailSender, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, mailer: mailer, jwtCfg: jwtCfg, log: log}
}

// Register creates an account: hashes the password with bcrypt and persists.
// Returns ErrEmailAlreadyExists when the email is taken.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	username := in.Username
	if username == "" {
		username = in.Email
	}
	role := in.Role
	if role == "" {
		role = entity.RoleSubcontractor
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       "active",
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		ContractorID: in.ContractorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifies email/password, generates a JWT and returns token + user.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.ContractorID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// GetMe returns the profile for an authenticated user ID.
func (uc *AuthUseCase) GetMe(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// ForgotPassword issues a reset token and mails it. It deliberately does not
// reveal whether the email exists: unknown addresses return nil.
func (uc *AuthUseCase) ForgotPassword(email string) error {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	expires := time.Now().Add(resetTokenTTL)
	user.ResetToken = uuid.New().String()
	user.ResetTokenExpires = &expires
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return err
	}
	if err := uc.mailer.SendPasswordReset(user.Email, user.Username, user.ResetToken); err != nil {
		// Token is already stored; the admin can resend. Do not fail the request.
		uc.log.Error().Err(err).Str("email", user.Email).Msg("password reset mail failed")
	}
	return nil
}

// ResetPassword consumes a reset token and sets the new password.
// Returns ErrInvalidResetToken for unknown or expired tokens.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	if in.Token == "" || in.NewPassword == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByResetToken(in.Token)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrInvalidResetToken
	}
	if user.ResetTokenExpires == nil || time.Now().After(*user.ResetTokenExpires) {
		return domain.ErrInvalidResetToken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.ResetToken = ""
	user.ResetTokenExpires = nil
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Role:         u.Role,
		Status:       u.Status,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		ContractorID: u.ContractorID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
