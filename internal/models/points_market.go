package models

import "time"

// PointsMarket is the daily points-market snapshot: the mean cost per point
// across all listings at collection time, truncated to an integer.
// At most one row per date.
type PointsMarket struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Date        time.Time `json:"date" gorm:"uniqueIndex;not null"`
	AverageCost int64     `json:"average_cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
