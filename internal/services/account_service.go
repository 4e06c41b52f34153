package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookstore/internal/models/db_models"
	"bookstore/internal/models/request_models"
	"bookstore/internal/models/response_models"
	"bookstore/internal/repositories"
	mem "bookstore/pkg/memcache"
	"bookstore/pkg/utils"
	"go.uber.org/zap"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	Logout(tokenID string, expiresAt time.Time)
	GetAllAccounts(ctx context.Context) ([]response_models.AccountResponse, error)
	UpdateAccount(ctx context.Context, id uint, request request_models.EditAccountRequest) (*response_models.AccountResponse, error)
	DeleteAccount(ctx context.Context, id uint) error
	EnsureAdmin(ctx context.Context, email, password string) (*response_models.AccountResponse, bool, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenManager
	revoked     mem.RevokedTokenStore
	logger      *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	tokens *utils.TokenManager,
	revoked mem.RevokedTokenStore,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		revoked:     revoked,
		logger:      logger,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.AuthResponse, error) {
	email := strings.TrimSpace(request.Email)
	if email == "" || request.Password == "" {
		return nil, utils.ErrMissingCredentials
	}

	role := utils.RoleUser
	// role_id 0 counts as absent
	if request.RoleID != nil && *request.RoleID != 0 {
		r, err := utils.RoleFromID(*request.RoleID)
		if err != nil {
			return nil, err
		}
		role = r
	}

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: find account: %v", utils.ErrDatabaseError, err)
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrHashFailure, err)
	}

	newAccount := &db_models.Account{
		Email:        email,
		PasswordHash: hashedPassword,
		RoleID:       role.ID(),
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		if errors.Is(err, utils.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: insert account: %v", utils.ErrDatabaseError, err)
	}

	a.logger.Info("account registered", zap.Uint("account_id", newAccount.ID), zap.String("role", string(role)))

	return a.issue(newAccount)
}

// Login returns ErrInvalidCredentials both for an unknown email and for a
// wrong password.
func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	email := strings.TrimSpace(request.Email)
	if email == "" || request.Password == "" {
		return nil, utils.ErrMissingCredentials
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: find account: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if !utils.ComparePasswords(account.PasswordHash, request.Password) {
		return nil, utils.ErrInvalidCredentials
	}

	return a.issue(account)
}

func (a *AccountService) Logout(tokenID string, expiresAt time.Time) {
	a.revoked.Revoke(tokenID, expiresAt)
}

func (a *AccountService) GetAllAccounts(ctx context.Context) ([]response_models.AccountResponse, error) {
	accounts, err := a.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list accounts: %v", utils.ErrDatabaseError, err)
	}

	resp := make([]response_models.AccountResponse, 0, len(accounts))
	for i := range accounts {
		resp = append(resp, toAccountResponse(&accounts[i]))
	}
	return resp, nil
}

// UpdateAccount overwrites email and role. Email uniqueness is left to the
// store's unique index.
func (a *AccountService) UpdateAccount(ctx context.Context, id uint, request request_models.EditAccountRequest) (*response_models.AccountResponse, error) {
	email := strings.TrimSpace(request.Email)
	if email == "" {
		return nil, utils.ErrInvalidEmail
	}
	if _, err := utils.RoleFromID(request.RoleID); err != nil {
		return nil, err
	}

	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: find account: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := a.accountRepo.UpdateEmailAndRole(ctx, id, email, request.RoleID); err != nil {
		if errors.Is(err, utils.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: update account: %v", utils.ErrDatabaseError, err)
	}

	account.Email = email
	account.RoleID = request.RoleID
	resp := toAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) DeleteAccount(ctx context.Context, id uint) error {
	if err := a.accountRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: delete account: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

// EnsureAdmin creates an ADMIN account, or promotes and resets the password
// of an existing one. The bool reports whether a row was created.
func (a *AccountService) EnsureAdmin(ctx context.Context, email, password string) (*response_models.AccountResponse, bool, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, false, utils.ErrMissingCredentials
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", utils.ErrHashFailure, err)
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, false, fmt.Errorf("%w: find account: %v", utils.ErrDatabaseError, err)
	}

	if account != nil {
		if err := a.accountRepo.UpdateRoleAndPassword(ctx, account.ID, utils.AdminRoleID, hashedPassword); err != nil {
			return nil, false, fmt.Errorf("%w: promote account: %v", utils.ErrDatabaseError, err)
		}
		account.RoleID = utils.AdminRoleID
		resp := toAccountResponse(account)
		return &resp, false, nil
	}

	account = &db_models.Account{Email: email, PasswordHash: hashedPassword, RoleID: utils.AdminRoleID}
	if err := a.accountRepo.InsertTx(account, ctx); err != nil {
		return nil, false, fmt.Errorf("%w: insert account: %v", utils.ErrDatabaseError, err)
	}
	resp := toAccountResponse(account)
	return &resp, true, nil
}

func (a *AccountService) issue(account *db_models.Account) (*response_models.AuthResponse, error) {
	role := account.Role()
	token, err := a.tokens.CreateToken(account.ID, account.Email, role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrTokenFailure, err)
	}
	return &response_models.AuthResponse{Token: token, Role: string(role)}, nil
}

func toAccountResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:     account.ID,
		Email:  account.Email,
		Role:   string(account.Role()),
		RoleID: account.RoleID,
	}
}
