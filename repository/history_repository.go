package repository

import (
	"database/sql"
	"tenbank-api/logger"
	"tenbank-api/model"

	"github.com/sirupsen/logrus"
)

// IHistoryRepository defines the contract for ledger history operations.
// History rows are append-only: there is no update or delete.
type IHistoryRepository interface {
	CreateHistory(tx *sql.Tx, history *model.History) error
	GetHistoryByAccountID(accountID int, historyType string, offset, limit int) ([]*model.History, error)
	CountHistoryByAccountID(accountID int, historyType string) (int, error)
}

// HistoryRepository implements IHistoryRepository over Postgres.
type HistoryRepository struct {
	DB *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{DB: db}
}

// CreateHistory inserts the audit record inside the caller's transaction so
// it commits or rolls back together with the balance updates.
func (r *HistoryRepository) CreateHistory(tx *sql.Tx, history *model.History) error {
	log := logger.Log.WithFields(logrus.Fields{
		"amount":              history.Amount,
		"withdraw_account_id": history.WithdrawAccountID,
		"deposit_account_id":  history.DepositAccountID,
	})
	log.Info("Executing query to create a new history entry")

	query := `INSERT INTO histories (amount, w_account_id, w_balance, d_account_id, d_balance) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	err := tx.QueryRow(query, history.Amount, history.WithdrawAccountID, history.WithdrawBalance, history.DepositAccountID, history.DepositBalance).Scan(&history.ID, &history.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create history query")
		return err
	}
	return nil
}

// historyFilter maps a validated history type to its WHERE clause. The
// placeholder is always $1 (the account id).
func historyFilter(historyType string) string {
	switch historyType {
	case model.HistoryTypeDeposit:
		return `d_account_id = $1`
	case model.HistoryTypeWithdrawal:
		return `w_account_id = $1`
	default:
		return `(w_account_id = $1 OR d_account_id = $1)`
	}
}

// GetHistoryByAccountID retrieves one page of history entries for an
// account, most recent first.
func (r *HistoryRepository) GetHistoryByAccountID(accountID int, historyType string, offset, limit int) ([]*model.History, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": accountID,
		"type":       historyType,
		"offset":     offset,
		"limit":      limit,
	})
	log.Info("Executing query to get history by account ID")

	query := `
		SELECT id, amount, w_account_id, w_balance, d_account_id, d_balance, created_at
		FROM histories
		WHERE ` + historyFilter(historyType) + `
		ORDER BY created_at DESC, id DESC
		OFFSET $2 LIMIT $3`

	rows, err := r.DB.Query(query, accountID, offset, limit)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for history by account ID")
		return nil, err
	}
	defer rows.Close()

	var entries []*model.History
	for rows.Next() {
		var h model.History
		if err := rows.Scan(&h.ID, &h.Amount, &h.WithdrawAccountID, &h.WithdrawBalance, &h.DepositAccountID, &h.DepositBalance, &h.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan history row")
			return nil, err
		}
		entries = append(entries, &h)
	}
	return entries, rows.Err()
}

// CountHistoryByAccountID returns the total number of entries matching the
// filter, used for computing total pages.
func (r *HistoryRepository) CountHistoryByAccountID(accountID int, historyType string) (int, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": accountID,
		"type":       historyType,
	})
	log.Info("Executing query to count history by account ID")

	query := `SELECT COUNT(*) FROM histories WHERE ` + historyFilter(historyType)

	var count int
	if err := r.DB.QueryRow(query, accountID).Scan(&count); err != nil {
		log.WithError(err).Error("Failed to execute count history query")
		return 0, err
	}
	return count, nil
}
