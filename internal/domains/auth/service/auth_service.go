package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gustavoesucri/back-end-ifd/internal/domains/auth"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/apperr"
	"github.com/gustavoesucri/back-end-ifd/pkg/logger"
)

// TokenIssuer is satisfied by *jwt.Manager.
type TokenIssuer interface {
	GenerateAccessToken(accountID int64, email string) (string, time.Time, error)
}

type ServiceInterface interface {
	Register(ctx context.Context, email, password string) (*auth.Account, error)
	Login(ctx context.Context, email, password string) (*auth.TokenResponse, error)
	// EnsureAccount creates the account unless the email is already registered.
	EnsureAccount(ctx context.Context, email, password string) (created bool, err error)
}

type authService struct {
	repo   auth.Repository
	tokens TokenIssuer
	cost   int
}

func NewAuthService(repo auth.Repository, tokens TokenIssuer) ServiceInterface {
	return &authService{repo: repo, tokens: tokens, cost: bcrypt.DefaultCost}
}

func (s *authService) Register(ctx context.Context, email, password string) (*auth.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, apperr.Internal("Erro ao processar a senha.", err)
	}

	account := &auth.Account{Email: email, PasswordHash: string(hash)}
	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			var ownerID int64
			if existing, findErr := s.repo.FindByEmail(ctx, email); findErr == nil {
				ownerID = existing.ID
			}
			return nil, apperr.Conflict(ownerID, "", fmt.Sprintf("O e-mail '%s' já está cadastrado.", email))
		}
		return nil, apperr.Internal("Erro ao tentar criar a conta no Banco de Dados.", err)
	}

	logger.Info("Account registered", map[string]interface{}{"account_id": account.ID})
	return account, nil
}

// Login returns auth.ErrInvalidCredentials for an unknown email or a wrong
// password alike.
func (s *authService) Login(ctx context.Context, email, password string) (*auth.TokenResponse, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, apperr.Internal("Erro ao tentar autenticar.", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(account.ID, account.Email)
	if err != nil {
		return nil, apperr.Internal("Erro ao gerar o token de acesso.", err)
	}

	return &auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Account:     account,
	}, nil
}

func (s *authService) EnsureAccount(ctx context.Context, email, password string) (bool, error) {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, auth.ErrAccountNotFound) {
		return false, err
	}
	if _, err := s.Register(ctx, email, password); err != nil {
		return false, err
	}
	return true, nil
}
