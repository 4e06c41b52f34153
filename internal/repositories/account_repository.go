package repositories

import (
	"context"
	"errors"

	"bookstore/internal/infra"
	"bookstore/internal/models/db_models"
	"bookstore/pkg/utils"
	"gorm.io/gorm"
)

type AccountRepository interface {
	InsertTx(account *db_models.Account, ctx context.Context) error
	FindById(ctx context.Context, id uint) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	FindAll(ctx context.Context) ([]db_models.Account, error)
	UpdateEmailAndRole(ctx context.Context, id uint, email string, roleID int) error
	UpdateRoleAndPassword(ctx context.Context, id uint, roleID int, passwordHash string) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// FindByEmail returns nil, nil when no account matches.
func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {

	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

// InsertTx reports a unique index collision as utils.ErrEmailAlreadyExists.
func (a *accountRepository) InsertTx(account *db_models.Account, ctx context.Context) error {
	err := a.db.WithContext(ctx).Create(account).Error
	if infra.IsUniqueViolation(err) {
		return utils.ErrEmailAlreadyExists
	}
	return err
}

func (a *accountRepository) FindById(ctx context.Context, id uint) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindAll(ctx context.Context) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := a.db.WithContext(ctx).Order("id ASC").Find(&accounts).Error
	return accounts, err
}

func (a *accountRepository) UpdateEmailAndRole(ctx context.Context, id uint, email string, roleID int) error {
	err := a.db.WithContext(ctx).
		Model(&db_models.Account{BaseModel: db_models.BaseModel{ID: id}}).
		Updates(map[string]interface{}{"email": email, "role_id": roleID}).Error
	if infra.IsUniqueViolation(err) {
		return utils.ErrEmailAlreadyExists
	}
	return err
}

func (a *accountRepository) UpdateRoleAndPassword(ctx context.Context, id uint, roleID int, passwordHash string) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{BaseModel: db_models.BaseModel{ID: id}}).
		Updates(map[string]interface{}{"role_id": roleID, "password_hash": passwordHash}).Error
}

func (a *accountRepository) Delete(ctx context.Context, id uint) error {
	return a.db.WithContext(ctx).Delete(&db_models.Account{}, id).Error
}

func (a *accountRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := a.db.WithContext(ctx).Model(&db_models.Account{}).Count(&n).Error
	return n, err
}
