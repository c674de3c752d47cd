package services

// SessionEnder tears down session state held outside the record store.
type SessionEnder interface {
	DiscardToken() error
}

type SettingsUserRepository interface {
	DeleteAll() error
}

// SettingsService implements the destructive account actions. Both sign-out
// and account deletion clear the whole users table, mirroring the
// single-profile behavior of the app: removing the rows also removes the
// current-user marker.
type SettingsService struct {
	users    SettingsUserRepository
	sessions SessionEnder
}

func NewSettingsService(users SettingsUserRepository, sessions SessionEnder) *SettingsService {
	return &SettingsService{users: users, sessions: sessions}
}

func (service *SettingsService) SignOut() error {
	if err := service.users.DeleteAll(); err != nil {
		return userErrorf("Sign out failed: %v", err)
	}
	return service.sessions.DiscardToken()
}

func (service *SettingsService) DeleteAccount() error {
	if err := service.users.DeleteAll(); err != nil {
		return userErrorf("Account deletion failed: %v", err)
	}
	return service.sessions.DiscardToken()
}
