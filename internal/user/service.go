package user

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/exam-portal/internal/auth"
	"github.com/saulo-duarte/exam-portal/internal/config"
	"github.com/saulo-duarte/exam-portal/internal/mailer"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// OTPTTL is how long a login code stays valid after it is issued.
const OTPTTL = 5 * time.Minute

var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidOrExpiredOTP    = errors.New("invalid or expired otp")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
)

type UserService interface {
	Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error)
	Login(ctx context.Context, dto LoginDTO) error
	VerifyOTP(ctx context.Context, dto VerifyOTPDTO) (*SessionResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error)
}

type userService struct {
	repo     UserRepository
	mailer   mailer.Mailer
	cipher   *config.Cipher
	now      func() time.Time
	newOTP   func() (string, error)
	hashCost int
}

type Option func(*userService)

func WithClock(now func() time.Time) Option {
	return func(s *userService) { s.now = now }
}

// WithHashCost lowers the bcrypt cost, for tests.
func WithHashCost(cost int) Option {
	return func(s *userService) { s.hashCost = cost }
}

func NewService(repo UserRepository, m mailer.Mailer, cipher *config.Cipher, opts ...Option) UserService {
	s := &userService{
		repo:     repo,
		mailer:   m,
		cipher:   cipher,
		now:      time.Now,
		newOTP:   GenerateOTP,
		hashCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *userService) Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error) {
	log := config.WithContext(ctx).WithField("email", dto.Email)

	existing, err := s.repo.GetByEmail(ctx, dto.Email)
	if err != nil {
		log.WithError(err).Error("Failed to look up email")
		return nil, err
	}
	if existing != nil {
		log.Warn("Email already registered")
		return nil, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.hashCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		ID:           uuid.New(),
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: string(hash),
		Role:         dto.Role,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrEmailAlreadyRegistered) {
			log.Warn("Email registered concurrently")
			return nil, err
		}
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User registered")
	return ToResponse(u), nil
}

func (s *userService) Login(ctx context.Context, dto LoginDTO) error {
	log := config.WithContext(ctx).WithField("email", dto.Email)

	u, err := s.repo.GetByEmail(ctx, dto.Email)
	if err != nil {
		log.WithError(err).Error("Failed to look up user")
		return err
	}
	if u == nil {
		log.Warn("Login for unknown email")
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		log.Warn("Login with wrong password")
		return ErrInvalidCredentials
	}

	code, err := s.newOTP()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	sealed, err := s.cipher.Encrypt(code)
	if err != nil {
		return fmt.Errorf("seal otp: %w", err)
	}

	expiry := s.now().Add(OTPTTL)
	if err := s.repo.SetOTP(ctx, u.ID, sealed, expiry); err != nil {
		log.WithError(err).Error("Failed to store otp")
		return err
	}

	if err := s.mailer.Send(ctx, u.Email, "Your OTP Code", "Your OTP: "+code); err != nil {
		log.WithError(err).Error("Failed to send otp")
		return err
	}

	log.WithFields(logrus.Fields{
		"user_id":    u.ID,
		"otp_expiry": expiry,
	}).Info("OTP issued")
	return nil
}

func (s *userService) VerifyOTP(ctx context.Context, dto VerifyOTPDTO) (*SessionResponse, error) {
	log := config.WithContext(ctx).WithField("email", dto.Email)

	u, err := s.repo.GetByEmail(ctx, dto.Email)
	if err != nil {
		log.WithError(err).Error("Failed to look up user")
		return nil, err
	}
	if u == nil || u.OTP == nil || u.OTPExpiry == nil {
		log.Warn("No pending otp")
		return nil, ErrInvalidOrExpiredOTP
	}
	if s.now().After(*u.OTPExpiry) {
		log.Warn("Expired otp")
		return nil, ErrInvalidOrExpiredOTP
	}

	stored, err := s.cipher.Decrypt(*u.OTP)
	if err != nil {
		log.WithError(err).Warn("Stored otp could not be opened")
		return nil, ErrInvalidOrExpiredOTP
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(dto.OTP)) != 1 {
		log.Warn("Wrong otp")
		return nil, ErrInvalidOrExpiredOTP
	}

	consumed, err := s.repo.ConsumeOTP(ctx, u.ID, *u.OTP)
	if err != nil {
		log.WithError(err).Error("Failed to clear otp")
		return nil, err
	}
	if !consumed {
		log.Warn("OTP already used")
		return nil, ErrInvalidOrExpiredOTP
	}

	token, err := auth.GenerateJWT(auth.Identity{
		UserID:   u.ID.String(),
		Email:    u.Email,
		Username: u.Username,
		Role:     string(u.Role),
	}, auth.TokenTTL)
	if err != nil {
		log.WithError(err).Error("Failed to sign session token")
		return nil, fmt.Errorf("sign token: %w", err)
	}

	log.WithField("user_id", u.ID).Info("OTP verified, session issued")
	return &SessionResponse{
		Token:    token,
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load user")
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return ToResponse(u), nil
}

// GenerateOTP draws a six digit code uniformly from [100000, 999999].
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
