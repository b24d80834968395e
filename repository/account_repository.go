package repository

import (
	"database/sql"
	"tenbank-api/logger"
	"tenbank-api/model"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// IAccountRepository defines the contract for account database operations.
type IAccountRepository interface {
	CreateAccount(account *model.Account) error
	GetAccountsByUserID(userID int) ([]*model.Account, error)
	GetAccountByID(accountID int) (*model.Account, error)
	GetAccountByNumberForUpdate(tx *sql.Tx, number string) (*model.Account, error)
	UpdateAccountBalance(tx *sql.Tx, accountID int, newBalance int64) error
}

// AccountRepository implements IAccountRepository over Postgres.
type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// CreateAccount adds a new account to the database. A duplicate account
// number is translated to the domain error so callers never see driver
// internals.
func (r *AccountRepository) CreateAccount(account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id": account.UserID,
		"number":  account.Number,
	})
	log.Info("Executing query to create a new account")

	query := `INSERT INTO accounts (number, password, balance, user_id) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.DB.QueryRow(query, account.Number, account.Password, account.Balance, account.UserID).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			log.Info("Account number already exists")
			return model.ErrDuplicateAccountNumber
		}
		log.WithError(err).Error("Failed to execute create account query")
		return err
	}
	return nil
}

// GetAccountsByUserID retrieves all accounts owned by a specific user.
func (r *AccountRepository) GetAccountsByUserID(userID int) ([]*model.Account, error) {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to get accounts by user ID")

	query := `SELECT id, number, password, balance, user_id, created_at FROM accounts WHERE user_id = $1 ORDER BY id`
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for accounts by user ID")
		return nil, err
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		var acc model.Account
		if err := rows.Scan(&acc.ID, &acc.Number, &acc.Password, &acc.Balance, &acc.UserID, &acc.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan account row")
			return nil, err
		}
		accounts = append(accounts, &acc)
	}
	return accounts, rows.Err()
}

// GetAccountByID retrieves a single account without locking it.
func (r *AccountRepository) GetAccountByID(accountID int) (*model.Account, error) {
	log := logger.Log.WithField("account_id", accountID)
	log.Info("Executing query to get account by ID")

	account := &model.Account{}
	query := `SELECT id, number, password, balance, user_id, created_at FROM accounts WHERE id = $1`
	err := r.DB.QueryRow(query, accountID).Scan(&account.ID, &account.Number, &account.Password, &account.Balance, &account.UserID, &account.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Account not found")
		} else {
			log.WithError(err).Error("Failed to execute get account by ID query")
		}
		return nil, err
	}
	return account, nil
}

// GetAccountByNumberForUpdate reads an account inside the given transaction
// and takes a row lock, serializing concurrent balance mutations on the same
// account.
func (r *AccountRepository) GetAccountByNumberForUpdate(tx *sql.Tx, number string) (*model.Account, error) {
	log := logger.Log.WithField("number", number)
	log.Info("Executing query to get account for update")

	account := &model.Account{}
	query := `SELECT id, number, password, balance, user_id, created_at FROM accounts WHERE number = $1 FOR UPDATE`
	err := tx.QueryRow(query, number).Scan(&account.ID, &account.Number, &account.Password, &account.Balance, &account.UserID, &account.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Account not found for update")
		} else {
			log.WithError(err).Error("Failed to execute get account for update query")
		}
		return nil, err
	}
	return account, nil
}

func (r *AccountRepository) UpdateAccountBalance(tx *sql.Tx, accountID int, newBalance int64) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id":  accountID,
		"new_balance": newBalance,
	})
	log.Info("Executing query to update account balance")

	query := `UPDATE accounts SET balance = $1 WHERE id = $2`
	_, err := tx.Exec(query, newBalance, accountID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update account balance query")
		return err
	}
	return nil
}
