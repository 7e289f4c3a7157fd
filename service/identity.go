package service

import (
	"fmt"
	"log"
	"sync"

	"clubfund/models"
	"clubfund/store"

	"golang.org/x/crypto/bcrypt"
)

// IdentityService manages user registration and lookup. Users are
// append-only; the only mutation is adding a new account.
type IdentityService struct {
	store store.Store
	mu    sync.Mutex // serializes register read-modify-write cycles
}

// NewIdentityService creates an identity service on top of st.
func NewIdentityService(st store.Store) *IdentityService {
	return &IdentityService{store: st}
}

// Register creates a new non-admin user. It returns (false, nil) when
// the username is already taken (case-sensitive exact match).
func (s *IdentityService) Register(username, password string) (bool, error) {
	return s.register(username, password, false)
}

func (s *IdentityService) register(username, password string, isAdmin bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []models.User
	if err := s.store.Load(store.CollectionUsers, &users); err != nil {
		return false, err
	}

	for _, u := range users {
		if u.Username == username {
			return false, nil
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	users = append(users, models.User{
		ID:       len(users) + 1,
		Username: username,
		Password: string(hash),
		IsAdmin:  isAdmin,
	})
	if err := s.store.Save(store.CollectionUsers, users); err != nil {
		return false, err
	}
	return true, nil
}

// FindByUsername returns the first user with the given username.
func (s *IdentityService) FindByUsername(username string) (models.User, bool, error) {
	var users []models.User
	if err := s.store.Load(store.CollectionUsers, &users); err != nil {
		return models.User{}, false, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

// FindByID returns the first user with the given id.
func (s *IdentityService) FindByID(id int) (models.User, bool, error) {
	var users []models.User
	if err := s.store.Load(store.CollectionUsers, &users); err != nil {
		return models.User{}, false, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

// VerifyPassword reports whether plaintext matches the user's hash.
func (s *IdentityService) VerifyPassword(user models.User, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(plaintext)) == nil
}

// DefaultAdminPassword is the documented bootstrap credential used
// when no override is configured.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// Bootstrap seeds an admin account when the user collection is empty.
// Username and password come from the caller so deployments can
// override the well-known default; a warning is logged when the
// default password is left in place.
func (s *IdentityService) Bootstrap(username, password string) error {
	if username == "" {
		username = DefaultAdminUsername
	}
	if password == "" {
		password = DefaultAdminPassword
	}

	var users []models.User
	if err := s.store.Load(store.CollectionUsers, &users); err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	created, err := s.register(username, password, true)
	if err != nil {
		return err
	}
	if created {
		log.Printf("created default admin user %q", username)
		if password == DefaultAdminPassword {
			log.Printf("warning: admin account uses the default password, change it via configuration")
		}
	}
	return nil
}
