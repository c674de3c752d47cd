package services

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"yodiet/internal/models"
)

const defaultSessionTokenTTL = 30 * 24 * time.Hour

type SessionUserRepository interface {
	FindByID(userID uint) (models.User, bool, error)
	FindCurrent() (models.User, bool, error)
	SetCurrent(userID uint) error
	ClearCurrent() error
	WatchCurrent(ctx context.Context) (<-chan *models.User, error)
}

// SessionService owns the current-user marker. A signed restore token is
// persisted alongside the database so a later process can verify that the
// marked row really belongs to the session that logged in, instead of
// trusting the flag alone.
type SessionService struct {
	users     SessionUserRepository
	secret    []byte
	tokenTTL  time.Duration
	tokenPath string
}

// NewSessionService wires the session layer. tokenPath may be empty, in which
// case no restore token is persisted (tests do this).
func NewSessionService(users SessionUserRepository, secret string, tokenTTL time.Duration, tokenPath string) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = defaultSessionTokenTTL
	}
	return &SessionService{
		users:     users,
		secret:    []byte(secret),
		tokenTTL:  tokenTTL,
		tokenPath: tokenPath,
	}
}

type sessionClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// Begin marks user as the active session and writes the restore token. The
// marker move is atomic; zero or two marked rows are never observable.
func (service *SessionService) Begin(user models.User) error {
	if err := service.users.SetCurrent(user.ID); err != nil {
		return err
	}
	return service.writeToken(user)
}

// End clears the marker and discards the restore token.
func (service *SessionService) End() error {
	if err := service.users.ClearCurrent(); err != nil {
		return err
	}
	return service.DiscardToken()
}

// Current returns the marked user, absence being a normal result.
func (service *SessionService) Current() (models.User, bool, error) {
	return service.users.FindCurrent()
}

// Watch emits the current user (nil when logged out) on every change.
func (service *SessionService) Watch(ctx context.Context) (<-chan *models.User, error) {
	return service.users.WatchCurrent(ctx)
}

// Resume restores the session persisted by an earlier process. It succeeds
// only when a valid, unexpired token names the same user the marker points
// at; any disagreement reads as "not logged in" and stale state is discarded.
func (service *SessionService) Resume() (models.User, bool, error) {
	if service.tokenPath == "" {
		return service.users.FindCurrent()
	}

	raw, err := os.ReadFile(service.tokenPath)
	if errors.Is(err, os.ErrNotExist) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}

	userID, err := service.parseToken(string(raw))
	if err != nil {
		_ = service.DiscardToken()
		return models.User{}, false, nil
	}

	current, found, err := service.users.FindCurrent()
	if err != nil {
		return models.User{}, false, err
	}
	if !found || current.ID != userID {
		_ = service.DiscardToken()
		return models.User{}, false, nil
	}
	return current, true, nil
}

// DiscardToken removes the persisted restore token, if any.
func (service *SessionService) DiscardToken() error {
	if service.tokenPath == "" {
		return nil
	}
	if err := os.Remove(service.tokenPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (service *SessionService) writeToken(user models.User) error {
	if service.tokenPath == "" {
		return nil
	}

	now := time.Now()
	claims := sessionClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(service.tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(service.secret)
	if err != nil {
		return err
	}
	return os.WriteFile(service.tokenPath, []byte(token), 0o600)
}

func (service *SessionService) parseToken(raw string) (uint, error) {
	parsed, err := jwt.ParseWithClaims(raw, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return service.secret, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.UserID == 0 {
		return 0, jwt.ErrTokenInvalidClaims
	}
	return claims.UserID, nil
}
