package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"yodiet/internal/db"
	"yodiet/internal/models"
)

// Messages surfaced to the sign-up and login screens.
const (
	msgEmailRegistered   = "Email already registered"
	msgUsernameTaken     = "Username already taken"
	msgPasswordTooShort  = "Password must be at least 6 characters"
	msgPasswordNoDigit   = "Password must contain at least one number"
	msgUserNotFound      = "User not found"
	msgIncorrectPassword = "Incorrect password"
)

type AuthUserRepository interface {
	ExistsByEmail(email string) (bool, error)
	ExistsByUsername(username string) (bool, error)
	FindByEmailOrUsername(emailOrUsername string) (models.User, bool, error)
	CreateUnique(user *models.User) error
}

// SessionStarter marks a user as the active session after a successful login.
type SessionStarter interface {
	Begin(user models.User) error
}

type AuthService struct {
	users    AuthUserRepository
	sessions SessionStarter
}

func NewAuthService(users AuthUserRepository, sessions SessionStarter) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

type SignUpInput struct {
	UserName  string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// SignUp validates input, persists a new user with the session marker unset,
// and reports failures as *UserError with the screen-facing message. Sign-up
// never starts a session; the caller logs in afterwards.
func (service *AuthService) SignUp(input SignUpInput) error {
	// Emails are stored lowercase so lookups and the recovery flow never
	// miss an account over letter case.
	input.Email = normalizeEmail(input.Email)

	if found, err := service.users.ExistsByEmail(input.Email); err != nil {
		return userErrorf("Registration failed: %v", err)
	} else if found {
		return &UserError{Message: msgEmailRegistered}
	}

	if found, err := service.users.ExistsByUsername(input.UserName); err != nil {
		return userErrorf("Registration failed: %v", err)
	} else if found {
		return &UserError{Message: msgUsernameTaken}
	}

	switch ValidatePasswordPolicy(input.Password) {
	case ErrPasswordTooShort:
		return &UserError{Message: msgPasswordTooShort}
	case ErrPasswordNoDigit:
		return &UserError{Message: msgPasswordNoDigit}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return userErrorf("Registration failed: %v", err)
	}

	user := models.User{
		UserName:     input.UserName,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if err := service.users.CreateUnique(&user); err != nil {
		// The transactional re-check catches a registration that raced us
		// past the lookups above.
		switch {
		case errors.Is(err, db.ErrEmailTaken):
			return &UserError{Message: msgEmailRegistered}
		case errors.Is(err, db.ErrUsernameTaken):
			return &UserError{Message: msgUsernameTaken}
		default:
			return userErrorf("Registration failed: %v", err)
		}
	}
	return nil
}

// Login resolves the identifier against email and username, checks the
// password, and atomically moves the current-user marker to the matched row.
func (service *AuthService) Login(emailOrUsername string, password string) (models.User, error) {
	user, found, err := service.users.FindByEmailOrUsername(emailOrUsername)
	if err != nil {
		return models.User{}, userErrorf("Login failed: %v", err)
	}
	if !found {
		return models.User{}, &UserError{Message: msgUserNotFound}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, &UserError{Message: msgIncorrectPassword}
	}

	if err := service.sessions.Begin(user); err != nil {
		return models.User{}, userErrorf("Login failed: %v", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
