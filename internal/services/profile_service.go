package services

import "yodiet/internal/models"

// Messages surfaced by the profile editor.
const (
	msgUsernameEmpty     = "Username cannot be empty"
	msgUsernameTooShort  = "Username must be at least 4 characters"
	msgUsernameHasSpaces = "Username cannot contain spaces"
	msgFirstNameEmpty    = "First name cannot be empty"
	msgFirstNameTooShort = "First name must be at least 2 characters"
	msgEmailEmpty        = "Email cannot be empty"
	msgEmailInvalid      = "Please enter a valid email"
	msgEmailInUse        = "Email already in use"
)

type ProfileUserRepository interface {
	FindByID(userID uint) (models.User, bool, error)
	FindByEmail(email string) (models.User, bool, error)
	FindByUsername(username string) (models.User, bool, error)
	Save(user *models.User) error
}

type ProfileService struct {
	users ProfileUserRepository
}

func NewProfileService(users ProfileUserRepository) *ProfileService {
	return &ProfileService{users: users}
}

type ProfileUpdate struct {
	UserName  string
	FirstName string
	LastName  string
	Email     string
}

// UpdateProfile validates the edited fields, re-checks uniqueness for any
// username or email that actually changed, and saves. The updated user is
// returned so the caller can refresh its snapshot.
func (service *ProfileService) UpdateProfile(userID uint, update ProfileUpdate) (models.User, error) {
	update.Email = normalizeEmail(update.Email)
	if message := profileFormatMessage(update); message != "" {
		return models.User{}, &UserError{Message: message}
	}

	existing, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, userErrorf("Update failed: %v", err)
	}
	if !found {
		return models.User{}, &UserError{Message: msgUserNotFound}
	}

	if existing.UserName != update.UserName {
		if _, taken, err := service.users.FindByUsername(update.UserName); err != nil {
			return models.User{}, userErrorf("Update failed: %v", err)
		} else if taken {
			return models.User{}, &UserError{Message: msgUsernameTaken}
		}
	}

	if existing.Email != update.Email {
		if _, taken, err := service.users.FindByEmail(update.Email); err != nil {
			return models.User{}, userErrorf("Update failed: %v", err)
		} else if taken {
			return models.User{}, &UserError{Message: msgEmailInUse}
		}
	}

	existing.UserName = update.UserName
	existing.FirstName = update.FirstName
	existing.LastName = update.LastName
	existing.Email = update.Email
	if err := service.users.Save(&existing); err != nil {
		return models.User{}, userErrorf("Update failed: %v", err)
	}
	return existing, nil
}

func profileFormatMessage(update ProfileUpdate) string {
	switch ValidateUsernameFormat(update.UserName) {
	case ErrUsernameEmpty:
		return msgUsernameEmpty
	case ErrUsernameTooShort:
		return msgUsernameTooShort
	case ErrUsernameHasSpaces:
		return msgUsernameHasSpaces
	}

	switch ValidateFirstNameFormat(update.FirstName) {
	case ErrFirstNameEmpty:
		return msgFirstNameEmpty
	case ErrFirstNameTooShort:
		return msgFirstNameTooShort
	}

	switch ValidateEmailFormat(update.Email) {
	case ErrEmailEmpty:
		return msgEmailEmpty
	case ErrEmailInvalid:
		return msgEmailInvalid
	}
	return ""
}
