package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"yodiet/internal/backup"
	"yodiet/internal/config"
	"yodiet/internal/db"
	"yodiet/internal/models"
	"yodiet/internal/services"
)

// Context carries the wired services into every command's Run method.
type Context struct {
	Config   config.Config
	Log      *zap.Logger
	Users    *db.UserRepository
	Auth     *services.AuthService
	Sessions *services.SessionService
	Profile  *services.ProfileService
	Health   *services.HealthService
	Goals    *services.GoalService
	Meals    *services.MealService
	Settings *services.SettingsService
	Export   *services.ExportService
	Backups  *backup.Manager
}

var errNotLoggedIn = errors.New("not logged in, run `yodiet login` first")

// requireUser restores the session for commands that act on the logged-in
// account.
func (ctx *Context) requireUser() (models.User, error) {
	user, ok, err := ctx.Sessions.Resume()
	if err != nil {
		return models.User{}, fmt.Errorf("restore session: %w", err)
	}
	if !ok {
		return models.User{}, errNotLoggedIn
	}
	return user, nil
}

func promptPassword(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	password, err := readPasswordNoEcho(os.Stdin)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}

const dayLayout = "2006-01-02"

// parseDay accepts YYYY-MM-DD in the local timezone.
func parseDay(value string) (time.Time, error) {
	day, err := time.ParseInLocation(dayLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return day, nil
}

// endOfDay pushes a parsed day to its last representable instant so ranges
// stay inclusive.
func endOfDay(day time.Time) time.Time {
	return day.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
