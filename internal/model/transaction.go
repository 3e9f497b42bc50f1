// File: internal/model/transaction.go
package model

import "time"

// Transaction 由外部結算程序直接寫入，本服務只讀取與彙總
type Transaction struct {
	ID            string    `db:"id" json:"id"`
	UserID        string    `db:"user_id" json:"user_id"`
	ProductID     string    `db:"product_id" json:"product_id"`
	Amount        float64   `db:"amount" json:"amount"`
	Commission    float64   `db:"commission" json:"commission"`
	CharityAmount float64   `db:"charity_amount" json:"charity_amount"`
	CharityID     *string   `db:"charity_id" json:"charity_id"`
	CreatedAt     time.Time `db:"created_at" json:"timestamp"`
}
