package services

import (
	"errors"

	"freshfold/internal/domain"
	"freshfold/internal/repos"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCreds   = errors.New("invalid email or password")
	ErrEmailInUse = errors.New("email is already registered")
)

type AuthService struct {
	Users *repos.UserRepo
	Roles *repos.RoleRepo
}

func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

// Register creates the user plus their contact profile, then binds the
// session so the new customer lands logged in.
func (s *AuthService) Register(sid, email, name, phone, password string) (*domain.User, error) {
	if existing, _ := s.Users.ByEmail(email); existing != nil {
		return nil, ErrEmailInUse
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}
	u := domain.User{ID: uuid.NewString(), Email: email, Name: name, Hash: string(h)}
	p := domain.Profile{ID: u.ID, FullName: name, Phone: phone}
	if err := s.Users.Create(u, p); err != nil {
		return nil, err
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}

// IsAdmin resolves the role fresh on every call; admin status is never
// cached across requests. Lookup failures deny access and surface the error.
func (s *AuthService) IsAdmin(userID string) (bool, error) {
	return s.Roles.IsAdmin(userID)
}
