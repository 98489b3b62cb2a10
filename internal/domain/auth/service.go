package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}

type Service struct {
	repo      Repository
	tokens    TokenIssuer
	blacklist *Blacklist
	tokenTTL  time.Duration
}

func NewService(repo Repository, tokens TokenIssuer, blacklist *Blacklist, tokenTTL time.Duration) *Service {
	return &Service{repo: repo, tokens: tokens, blacklist: blacklist, tokenTTL: tokenTTL}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	role := req.Role
	if role == "" {
		role = RoleStudent
	}
	if role != RoleProfessor && role != RoleStudent {
		return nil, ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
		Role:         role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: user}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if err == ErrUserNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: user}, nil
}

// Logout blacklists the presented token until it would have expired anyway.
func (s *Service) Logout(token string) {
	s.blacklist.Add(token, time.Now().Add(s.tokenTTL))
}

func (s *Service) Me(ctx context.Context, userID int64) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}
