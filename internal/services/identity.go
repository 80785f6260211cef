package services

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dropstore/dropstore-backend/internal/apperror"
	"github.com/dropstore/dropstore-backend/internal/models"
	"github.com/dropstore/dropstore-backend/internal/repository"
)

// IdentityService owns registration, email verification, login and the
// password reset flow. Passwords are stored and compared as-is; that matches
// the data already in production and is tracked as a known defect.
type IdentityService struct {
	users  repository.UserRepository
	mailer Mailer
	tokens *TokenService
}

func NewIdentityService(users repository.UserRepository, mailer Mailer, tokens *TokenService) *IdentityService {
	return &IdentityService{users: users, mailer: mailer, tokens: tokens}
}

// Register creates an unverified user and dispatches the verification mail in
// the background. The response does not depend on mail delivery.
func (s *IdentityService) Register(ctx context.Context, name, email, password, profilePic string) error {
	if name == "" {
		return apperror.Validation("Please provide your name.")
	}
	if email == "" {
		return apperror.Validation("Email is required!")
	}
	if password == "" {
		return apperror.Validation("Please provide a password.")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("looking up user by email: %w", err)
	}
	if existing != nil {
		return apperror.Conflict("User already exists")
	}

	code, err := GenerateOTP()
	if err != nil {
		return err
	}

	user := &models.User{
		Name:              name,
		Email:             email,
		Password:          password,
		ProfilePic:        profilePic,
		VerificationToken: code,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	s.sendVerificationMailAsync(user.Email, code)
	return nil
}

// Verify looks the user up by the verification token, clears it and marks the
// account verified. A stale token no longer matches anything, so a repeat
// attempt reports not-found rather than already-verified.
func (s *IdentityService) Verify(ctx context.Context, token string) error {
	user, err := s.users.FindByVerificationToken(ctx, token)
	if err != nil {
		return fmt.Errorf("looking up verification token: %w", err)
	}
	if user == nil {
		return apperror.NotFound("User not found.")
	}

	user.VerificationToken = ""
	user.Verified = true
	if err := s.users.Replace(ctx, user); err != nil {
		return fmt.Errorf("saving verified user: %w", err)
	}
	return nil
}

// ResendOTP regenerates the verification code and resends the mail. The
// verified flag is not checked; calling this on a verified account just
// produces an unusable fresh code.
func (s *IdentityService) ResendOTP(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("looking up user by email: %w", err)
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}

	code, err := GenerateOTP()
	if err != nil {
		return err
	}
	user.VerificationToken = code
	if err := s.users.Replace(ctx, user); err != nil {
		return fmt.Errorf("saving verification token: %w", err)
	}

	s.sendVerificationMailAsync(user.Email, code)
	return nil
}

// Login checks credentials and returns a signed session token.
func (s *IdentityService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("looking up user by email: %w", err)
	}
	if user == nil {
		return "", apperror.NotFound("User not found")
	}
	if !user.Verified {
		return "", apperror.Forbidden("User not verified")
	}
	if user.Password != password {
		return "", apperror.Unauthorized("Invalid Password")
	}
	return s.tokens.Generate(email)
}

// UserByToken resolves a session token to the user it belongs to.
func (s *IdentityService) UserByToken(ctx context.Context, token string) (*models.User, error) {
	email, err := s.tokens.Validate(token)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid token")
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("looking up user by email: %w", err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

// ForgotPassword stores a reset code and mails it. Unlike the verification
// mail this one is sent synchronously; a delivery failure fails the request.
func (s *IdentityService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("looking up user by email: %w", err)
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}

	code, err := GenerateOTP()
	if err != nil {
		return err
	}
	user.ResetToken = code
	if err := s.users.Replace(ctx, user); err != nil {
		return fmt.Errorf("saving reset token: %w", err)
	}

	body := fmt.Sprintf("<h1>Greetings from Dropstore.</h1><p>OTP to reset your password is %s</p>", code)
	if err := s.mailer.Send(user.Email, "Reset your password", body); err != nil {
		return fmt.Errorf("sending reset mail: %w", err)
	}
	return nil
}

// VerifyResetOTP is a standalone check: it neither consumes the code nor
// gates ResetPassword.
func (s *IdentityService) VerifyResetOTP(ctx context.Context, otp string) error {
	user, err := s.users.FindByResetToken(ctx, otp)
	if err != nil {
		return fmt.Errorf("looking up reset token: %w", err)
	}
	if user == nil {
		return apperror.NotFound("Invalid OTP")
	}
	return nil
}

// ResetPassword overwrites the password for the given email and clears the
// stored reset code. The otp argument is accepted but never compared against
// the stored token; the lookup is by email alone. Known security gap, kept
// until the clients stop depending on it.
func (s *IdentityService) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("looking up user by email: %w", err)
	}
	if user == nil {
		return apperror.NotFound("Invalid OTP")
	}

	user.Password = newPassword
	user.ResetToken = ""
	if err := s.users.Replace(ctx, user); err != nil {
		return fmt.Errorf("saving new password: %w", err)
	}
	return nil
}

// NotifyPasswordChanged sends the reset confirmation mail. Handlers call this
// after the response has been written, so delivery failures only get logged.
func (s *IdentityService) NotifyPasswordChanged(email string) {
	body := "<h1>Greetings from Dropstore.</h1><p>Your password has been reset successfully.</p>"
	if err := s.mailer.Send(email, "Password reset successful", body); err != nil {
		log.Printf("Error sending password reset confirmation: %v", err)
	}
}

// EditUser updates the display name and profile picture.
func (s *IdentityService) EditUser(ctx context.Context, userID, name, profilePic string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}
	if name == "" {
		return apperror.Validation("Name cannot be empty")
	}

	user.Name = name
	user.ProfilePic = profilePic
	if err := s.users.Replace(ctx, user); err != nil {
		return fmt.Errorf("saving user details: %w", err)
	}
	return nil
}

// AddAddress appends a shipping address to the user document.
func (s *IdentityService) AddAddress(ctx context.Context, userID string, addr models.Address) error {
	if addr.Name == "" {
		return apperror.Validation("Please provide your name.")
	}
	if addr.Street == "" {
		return apperror.Validation("Please provide your street address.")
	}
	if addr.Landmark == "" {
		return apperror.Validation("Please provide your landmark.")
	}
	if addr.PostalCode == "" {
		return apperror.Validation("Please provide your postal code.")
	}
	if addr.MobileNo == "" {
		return apperror.Validation("Please provide your mobile number.")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}

	addr.ID = primitive.NewObjectID()
	user.Addresses = append(user.Addresses, addr)
	if err := s.users.Replace(ctx, user); err != nil {
		return fmt.Errorf("saving address: %w", err)
	}
	return nil
}

// Addresses returns the user's address list.
func (s *IdentityService) Addresses(ctx context.Context, userID string) ([]models.Address, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user.Addresses, nil
}

// DeleteAddress removes the address with the given id. Unknown ids are a
// no-op that still reports success.
func (s *IdentityService) DeleteAddress(ctx context.Context, userID, addressID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}

	kept := user.Addresses[:0]
	for _, a := range user.Addresses {
		if a.ID.Hex() != addressID {
			kept = append(kept, a)
		}
	}
	user.Addresses = kept
	if err := s.users.Replace(ctx, user); err != nil {
		return fmt.Errorf("saving addresses: %w", err)
	}
	return nil
}

func (s *IdentityService) sendVerificationMailAsync(email, code string) {
	go func() {
		body := fmt.Sprintf("<h1>Greetings from Dropstore.</h1><p>Thank you for registering your email in Dropstore. OTP to verify your account is %s</p>", code)
		if err := s.mailer.Send(email, "Verify your email address", body); err != nil {
			log.Printf("Error sending verification email: %v", err)
		}
	}()
}
