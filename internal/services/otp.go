package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/sharingyatra/yatra-backend/internal/models"
	"github.com/sharingyatra/yatra-backend/internal/storage"
	"github.com/sharingyatra/yatra-backend/internal/utils"
)

// OTPExpiry is how long an issued code stays valid. The ExpiresAt field
// on the record is the single expiry authority.
const OTPExpiry = 5 * time.Minute

var (
	ErrInvalidOTP = errors.New("invalid OTP")
	ErrOTPExpired = errors.New("OTP expired")
)

// OTPService issues and validates registration passcodes.
type OTPService struct {
	store  storage.Store
	mailer Mailer
}

func NewOTPService(store storage.Store, mailer Mailer) *OTPService {
	return &OTPService{store: store, mailer: mailer}
}

// Issue generates a fresh 6-digit code for the email, replacing any
// previous code, and mails it out.
func (s *OTPService) Issue(email string) error {
	code, err := utils.GenerateSecureOTP()
	if err != nil {
		return fmt.Errorf("generate OTP: %w", err)
	}

	// Opportunistic hygiene; correctness lives in the ExpiresAt check.
	_ = s.store.DeleteExpiredOTPs(time.Now())

	otp, err := s.store.UpsertOTP(email, code, time.Now().Add(OTPExpiry))
	if err != nil {
		return fmt.Errorf("store OTP: %w", err)
	}

	if err := s.mailer.SendOTP(email, otp.Code); err != nil {
		return fmt.Errorf("deliver OTP: %w", err)
	}
	return nil
}

// Validate checks that an exact (email, code) record exists and has not
// passed its expiry. The record is left in place until Consume.
func (s *OTPService) Validate(email, code string) (*models.OTP, error) {
	otp, err := s.store.GetOTP(email, code)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrInvalidOTP
	}
	if err != nil {
		return nil, fmt.Errorf("load OTP: %w", err)
	}
	if otp.Expired(time.Now()) {
		return nil, ErrOTPExpired
	}
	return otp, nil
}

// Consume deletes a validated record so the code cannot be replayed.
func (s *OTPService) Consume(otp *models.OTP) error {
	return s.store.DeleteOTP(otp.ID)
}
