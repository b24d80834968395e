package repository

import (
	"tenbank-api/model"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestHistoryRepository_CreateHistory(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewHistoryRepository(db)

	accountID := 10
	balanceAfter := int64(1500)
	history := &model.History{
		Amount:           500,
		DepositAccountID: &accountID,
		DepositBalance:   &balanceAfter,
	}

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(`INSERT INTO histories`).
		WithArgs(int64(500), nil, nil, accountID, balanceAfter).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))

	tx, err := db.Begin()
	assert.NoError(t, err)

	err = repo.CreateHistory(tx, history)

	assert.NoError(t, err)
	assert.Equal(t, 1, history.ID)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestHistoryRepository_GetHistoryByAccountID(t *testing.T) {
	columns := []string{"id", "amount", "w_account_id", "w_balance", "d_account_id", "d_balance", "created_at"}

	t.Run("withdrawal filter", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewHistoryRepository(db)

		dbMock.ExpectQuery(`FROM histories\s+WHERE w_account_id = \$1\s+ORDER BY created_at DESC, id DESC\s+OFFSET \$2 LIMIT \$3`).
			WithArgs(10, 0, 2).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(5, int64(200), 10, int64(800), nil, nil, time.Now()).
				AddRow(4, int64(100), 10, int64(1000), nil, nil, time.Now()))

		entries, err := repo.GetHistoryByAccountID(10, model.HistoryTypeWithdrawal, 0, 2)

		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, 5, entries[0].ID)
		assert.NotNil(t, entries[0].WithdrawAccountID)
		assert.Nil(t, entries[0].DepositAccountID)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("all filter matches either side", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewHistoryRepository(db)

		dbMock.ExpectQuery(`FROM histories\s+WHERE \(w_account_id = \$1 OR d_account_id = \$1\)`).
			WithArgs(10, 0, 10).
			WillReturnRows(sqlmock.NewRows(columns))

		entries, err := repo.GetHistoryByAccountID(10, model.HistoryTypeAll, 0, 10)

		assert.NoError(t, err)
		assert.Empty(t, entries)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestHistoryRepository_CountHistoryByAccountID(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewHistoryRepository(db)

	dbMock.ExpectQuery(`SELECT COUNT\(\*\) FROM histories WHERE d_account_id = \$1`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountHistoryByAccountID(10, model.HistoryTypeDeposit)

	assert.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
