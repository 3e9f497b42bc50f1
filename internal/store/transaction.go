package store

import (
	"context"
	"fmt"

	"affiliate-search/internal/database"
)

// TransactionSummary 為單一使用者的交易彙總結果
type TransactionSummary struct {
	Count              int
	TotalCommission    float64
	TotalCharityAmount float64
}

// SummarizeTransactionsByUser 以單一查詢彙總該使用者的交易
// 無任何交易時各欄位為零值
func SummarizeTransactionsByUser(ctx context.Context, db database.DB, userID string) (*TransactionSummary, error) {
	row := db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(commission), 0),
		        COALESCE(SUM(charity_amount), 0)
		 FROM transactions WHERE user_id = $1`,
		userID,
	)
	s := &TransactionSummary{}
	if err := row.Scan(
		&s.Count,
		&s.TotalCommission,
		&s.TotalCharityAmount,
	); err != nil {
		return nil, fmt.Errorf("SummarizeTransactionsByUser: %w", err)
	}
	return s, nil
}
