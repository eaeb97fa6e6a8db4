package models

import "time"

// BankRate is the daily snapshot of Torn bank interest rates per term.
// At most one row per date.
type BankRate struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Date        time.Time `json:"date" gorm:"uniqueIndex;not null"`
	OneWeek     float64   `json:"one_week"`
	TwoWeeks    float64   `json:"two_weeks"`
	OneMonth    float64   `json:"one_month"`
	TwoMonths   float64   `json:"two_months"`
	ThreeMonths float64   `json:"three_months"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
