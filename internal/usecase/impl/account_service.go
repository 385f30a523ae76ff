// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/domain/repository"
	"shiptrack/internal/domain/service"
	"shiptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	signupSuccessMessage = "User registered successfully"
	loginSuccessMessage  = "Login successful"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		logger:      params.Logger,
	}
}

// Signup orchestrates account registration: hash the password, then probe for
// collisions and insert within one transaction. The hash happens outside the
// transaction because bcrypt is CPU-bound and must not hold a connection open.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.logger.Debug("Starting signup", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, findErr := accountRepo.FindByUsernameOrEmail(ctx, input.Username, input.Email)
		if findErr == nil {
			return domainerrors.ErrAccountExists.WrapMessage("signup collision probe matched an existing account")
		}
		if !errors.Is(findErr, repository.ErrAccountNotFound) {
			return errors.Wrap(findErr, "failed to probe for existing account")
		}

		newAccount := &entity.Account{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hashedPassword,
		}

		if createErr := accountRepo.Create(ctx, newAccount); createErr != nil {
			// The unique index decides races the probe cannot see.
			if errors.Is(createErr, repository.ErrDuplicateAccount) {
				return domainerrors.ErrAccountExists.WrapMessage("concurrent signup won the insert")
			}

			return errors.Wrap(createErr, "failed to create account")
		}

		return nil
	})

	if err != nil {
		srv.logger.Warn("Signup failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.logger.Debug("Signup completed", slog.String("username", input.Username))

	return &usecase.SignupOutput{Message: signupSuccessMessage}, nil
}

// Login verifies credentials and issues a session token. Unknown username and
// password mismatch both map to ErrInvalidCredentials so the two causes are
// indistinguishable from outside.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", slog.String("username", input.Username))

	account, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.logger.Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown username")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	// bcrypt comparison is CPU-bound; runs on the request goroutine.
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokens.Issue(account.ID)
	if err != nil {
		srv.logger.Error("Failed to issue session token", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.logger.Debug("Login completed", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{Message: loginSuccessMessage, Token: token}, nil
}

// GetAccount loads an account by ID for authenticated reads.
func (srv *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account lookup by token subject")
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return account, nil
}
