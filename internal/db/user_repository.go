package db

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"yodiet/internal/models"
)

var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
	ErrNoSuchUser    = errors.New("no such user")
)

type UserRepository struct {
	database *gorm.DB
	broker   *ChangeBroker
}

func NewUserRepository(database *gorm.DB, broker *ChangeBroker) *UserRepository {
	return &UserRepository{database: database, broker: broker}
}

// findOne runs query limited to a single row, reporting absence as a normal
// (user, false, nil) result.
func (repo *UserRepository) findOne(query *gorm.DB) (models.User, bool, error) {
	var user models.User
	result := query.Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) FindByID(userID uint) (models.User, bool, error) {
	return repo.findOne(repo.database.Where("id = ?", userID))
}

// Email addresses are stored lowercase, so every email lookup lowers its
// argument. Usernames stay case-sensitive.
func (repo *UserRepository) FindByEmail(email string) (models.User, bool, error) {
	return repo.findOne(repo.database.Where("email = ?", strings.ToLower(email)))
}

func (repo *UserRepository) FindByUsername(username string) (models.User, bool, error) {
	return repo.findOne(repo.database.Where("user_name = ?", username))
}

func (repo *UserRepository) FindByEmailOrUsername(emailOrUsername string) (models.User, bool, error) {
	return repo.findOne(repo.database.Where("email = ? OR user_name = ?", strings.ToLower(emailOrUsername), emailOrUsername))
}

func (repo *UserRepository) ExistsByEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).Where("email = ?", strings.ToLower(email)).Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) ExistsByUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).Where("user_name = ?", username).Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

// CreateUnique inserts user after re-checking email and username uniqueness
// inside one transaction, so two concurrent registrations cannot both pass
// the application-level existence checks. The unique indexes on the table
// remain as a storage-level backstop.
func (repo *UserRepository) CreateUnique(user *models.User) error {
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var matched int64
		if err := tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&matched).Error; err != nil {
			return err
		}
		if matched > 0 {
			return ErrEmailTaken
		}

		if err := tx.Model(&models.User{}).Where("user_name = ?", user.UserName).Count(&matched).Error; err != nil {
			return err
		}
		if matched > 0 {
			return ErrUsernameTaken
		}

		return tx.Create(user).Error
	})
	if err != nil {
		return err
	}
	repo.broker.Notify(TableUsers)
	return nil
}

func (repo *UserRepository) Save(user *models.User) error {
	if err := repo.database.Save(user).Error; err != nil {
		return err
	}
	repo.broker.Notify(TableUsers)
	return nil
}

func (repo *UserRepository) Delete(userID uint) error {
	if err := repo.database.Delete(&models.User{}, userID).Error; err != nil {
		return err
	}
	repo.broker.Notify(TableUsers)
	return nil
}

func (repo *UserRepository) DeleteAll() error {
	if err := repo.database.Where("1 = 1").Delete(&models.User{}).Error; err != nil {
		return err
	}
	repo.broker.Notify(TableUsers)
	return nil
}

func (repo *UserRepository) ListAll() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.Order("first_name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepository) FindCurrent() (models.User, bool, error) {
	return repo.findOne(repo.database.Where("is_current = ?", true))
}

// SetCurrent marks userID as the active session. The clear of every other
// row and the set of the target row run in one transaction, so no reader can
// observe zero or two marked rows.
func (repo *UserRepository) SetCurrent(userID uint) error {
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("is_current = ?", true).Update("is_current", false).Error; err != nil {
			return err
		}

		result := tx.Model(&models.User{}).Where("id = ?", userID).Update("is_current", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNoSuchUser
		}
		return nil
	})
	if err != nil {
		return err
	}
	repo.broker.Notify(TableUsers)
	return nil
}

// ClearCurrent unsets the marker on every row.
func (repo *UserRepository) ClearCurrent() error {
	if err := repo.database.Model(&models.User{}).Where("is_current = ?", true).Update("is_current", false).Error; err != nil {
		return err
	}
	repo.broker.Notify(TableUsers)
	return nil
}

// WatchCurrent emits the marked user, or nil when no session is active,
// re-emitting on every users-table change.
func (repo *UserRepository) WatchCurrent(ctx context.Context) (<-chan *models.User, error) {
	return watchQuery(ctx, repo.broker, []string{TableUsers}, func() (*models.User, error) {
		user, found, err := repo.FindCurrent()
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, nil
		}
		return &user, nil
	})
}

func (repo *UserRepository) WatchAll(ctx context.Context) (<-chan []models.User, error) {
	return watchQuery(ctx, repo.broker, []string{TableUsers}, repo.ListAll)
}
