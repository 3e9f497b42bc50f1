// File: internal/model/charity.go
package model

type Charity struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Website     string `db:"website" json:"website"`
}
