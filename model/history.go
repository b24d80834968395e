package model

import "time"

// History type filters accepted by the history query service.
const (
	HistoryTypeAll        = "all"
	HistoryTypeDeposit    = "deposit"
	HistoryTypeWithdrawal = "withdrawal"
)

// History is the immutable audit record of one ledger operation. Exactly one
// side is populated for a pure deposit or withdrawal; both sides are
// populated for a transfer. A *Balance field holds the matching account's
// balance immediately after the operation and is set whenever the account id
// on that side is set. Rows are never updated or deleted.
type History struct {
	ID                int       `json:"id"`
	Amount            int64     `json:"amount"`
	WithdrawAccountID *int      `json:"withdraw_account_id,omitempty"`
	WithdrawBalance   *int64    `json:"withdraw_balance,omitempty"`
	DepositAccountID  *int      `json:"deposit_account_id,omitempty"`
	DepositBalance    *int64    `json:"deposit_balance,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// ValidateHistoryType rejects unknown filter values before any query runs.
func ValidateHistoryType(historyType string) error {
	switch historyType {
	case HistoryTypeAll, HistoryTypeDeposit, HistoryTypeWithdrawal:
		return nil
	default:
		return ErrInvalidHistoryType
	}
}

// HistoryPage is one page of an account's history plus the pagination
// metadata the caller needs to render page links.
type HistoryPage struct {
	Account    *Account   `json:"account"`
	Entries    []*History `json:"entries"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalCount int        `json:"total_count"`
	TotalPages int        `json:"total_pages"`
}
