package service

import (
	"context"
	"database/sql"
	"fmt"
	"tenbank-api/logger"
	"tenbank-api/model"
	"tenbank-api/repository"

	"github.com/sirupsen/logrus"
)

// LedgerService executes the three balance-mutating operations. Each one
// runs inside a single database transaction: the balance update(s) and the
// history insert become visible together or not at all. Accounts are read
// with row locks so concurrent operations on the same account are
// serialized by the store.
type LedgerService struct {
	db          *sql.DB
	accountRepo repository.IAccountRepository
	historyRepo repository.IHistoryRepository
	cache       ICacheClient
}

func NewLedgerService(db *sql.DB, accountRepo repository.IAccountRepository, historyRepo repository.IHistoryRepository, cache ICacheClient) *LedgerService {
	return &LedgerService{
		db:          db,
		accountRepo: accountRepo,
		historyRepo: historyRepo,
		cache:       cache,
	}
}

// Deposit credits an account owned by userID and records one history entry
// with the deposit side populated.
func (s *LedgerService) Deposit(ctx context.Context, req model.DepositRequest, userID int) (*model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": req.AccountNumber,
		"amount":         req.Amount,
		"user_id":        userID,
	})
	log.Info("Starting deposit")

	if req.Amount <= 0 {
		return nil, model.ErrInvalidAmount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	account, err := s.accountRepo.GetAccountByNumberForUpdate(tx, req.AccountNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}
	if err := account.CheckOwner(userID); err != nil {
		return nil, err
	}

	account.Deposit(req.Amount)
	if err := s.accountRepo.UpdateAccountBalance(tx, account.ID, account.Balance); err != nil {
		return nil, fmt.Errorf("could not update account balance: %w", err)
	}

	balanceAfter := account.Balance
	history := &model.History{
		Amount:           req.Amount,
		DepositAccountID: &account.ID,
		DepositBalance:   &balanceAfter,
	}
	if err := s.historyRepo.CreateHistory(tx, history); err != nil {
		return nil, fmt.Errorf("could not create history entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	s.invalidateAccounts(ctx, account.UserID)
	log.Info("Deposit completed successfully")
	return account, nil
}

// Withdraw debits an account. The check order is fixed and significant:
// existence, ownership, credential, funds. Each check short-circuits, so a
// caller can rely on which error surfaces first.
func (s *LedgerService) Withdraw(ctx context.Context, req model.WithdrawRequest, userID int) (*model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": req.AccountNumber,
		"amount":         req.Amount,
		"user_id":        userID,
	})
	log.Info("Starting withdrawal")

	if req.Amount <= 0 {
		return nil, model.ErrInvalidAmount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	account, err := s.accountRepo.GetAccountByNumberForUpdate(tx, req.AccountNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}
	if err := account.CheckOwner(userID); err != nil {
		return nil, err
	}
	if err := account.CheckPassword(req.Password); err != nil {
		return nil, err
	}
	if err := account.CheckBalance(req.Amount); err != nil {
		return nil, err
	}

	account.Withdraw(req.Amount)
	if err := s.accountRepo.UpdateAccountBalance(tx, account.ID, account.Balance); err != nil {
		return nil, fmt.Errorf("could not update account balance: %w", err)
	}

	balanceAfter := account.Balance
	history := &model.History{
		Amount:            req.Amount,
		WithdrawAccountID: &account.ID,
		WithdrawBalance:   &balanceAfter,
	}
	if err := s.historyRepo.CreateHistory(tx, history); err != nil {
		return nil, fmt.Errorf("could not create history entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	s.invalidateAccounts(ctx, account.UserID)
	log.Info("Withdrawal completed successfully")
	return account, nil
}

// Transfer moves money between two distinct accounts and records a single
// history entry referencing both sides. The target is credited before the
// source is debited, but both mutations share one transaction so no partial
// state can ever be observed.
func (s *LedgerService) Transfer(ctx context.Context, req model.TransferRequest, userID int) (*model.History, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"from_account_number": req.FromAccountNumber,
		"to_account_number":   req.ToAccountNumber,
		"amount":              req.Amount,
		"user_id":             userID,
	})
	log.Info("Starting transfer")

	if req.Amount <= 0 {
		return nil, model.ErrInvalidAmount
	}
	if req.FromAccountNumber == req.ToAccountNumber {
		return nil, model.ErrSameAccountTransfer
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	fromAccount, err := s.accountRepo.GetAccountByNumberForUpdate(tx, req.FromAccountNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}
	toAccount, err := s.accountRepo.GetAccountByNumberForUpdate(tx, req.ToAccountNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	if err := fromAccount.CheckOwner(userID); err != nil {
		return nil, err
	}
	if err := fromAccount.CheckPassword(req.Password); err != nil {
		return nil, err
	}
	if err := fromAccount.CheckBalance(req.Amount); err != nil {
		return nil, err
	}

	toAccount.Deposit(req.Amount)
	if err := s.accountRepo.UpdateAccountBalance(tx, toAccount.ID, toAccount.Balance); err != nil {
		return nil, fmt.Errorf("could not update receiver balance: %w", err)
	}

	fromAccount.Withdraw(req.Amount)
	if err := s.accountRepo.UpdateAccountBalance(tx, fromAccount.ID, fromAccount.Balance); err != nil {
		return nil, fmt.Errorf("could not update sender balance: %w", err)
	}

	fromBalance := fromAccount.Balance
	toBalance := toAccount.Balance
	history := &model.History{
		Amount:            req.Amount,
		WithdrawAccountID: &fromAccount.ID,
		WithdrawBalance:   &fromBalance,
		DepositAccountID:  &toAccount.ID,
		DepositBalance:    &toBalance,
	}
	if err := s.historyRepo.CreateHistory(tx, history); err != nil {
		return nil, fmt.Errorf("could not create history entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	s.invalidateAccounts(ctx, fromAccount.UserID, toAccount.UserID)
	log.Info("Transfer completed successfully")
	return history, nil
}

// invalidateAccounts drops the cached account lists of the affected owners
// after a successful commit. Cache errors are not fatal; the entry expires
// on its own.
func (s *LedgerService) invalidateAccounts(ctx context.Context, userIDs ...int) {
	if s.cache == nil {
		return
	}
	for _, userID := range userIDs {
		s.cache.Del(ctx, accountsCacheKey(userID))
	}
}
