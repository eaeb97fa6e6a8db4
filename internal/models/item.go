package models

import "time"

// Item is the slowly-changing item dimension. One row per Torn item id,
// created on first sighting and updated in place, never deleted.
type Item struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TornID      int64     `json:"torn_id" gorm:"uniqueIndex;not null"`
	Name        string    `json:"name" gorm:"index"`
	Description string    `json:"description"`
	Effect      string    `json:"effect"`
	Requirement string    `json:"requirement"`
	Type        string    `json:"type"`
	WeaponType  string    `json:"weapon_type"`
	Image       string    `json:"image"`
	Tradeable   bool      `json:"tradeable"`
	// LastChanged is the most recent collection date on which any of the
	// descriptive fields above actually differed from the stored row.
	LastChanged time.Time `json:"last_changed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemPrice is the daily price fact for one item. At most one row per
// (torn_id, date); re-collection for the same day overwrites in place.
type ItemPrice struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TornID      int64     `json:"torn_id" gorm:"uniqueIndex:idx_item_prices_item_date;not null"`
	Date        time.Time `json:"date" gorm:"uniqueIndex:idx_item_prices_item_date;not null"`
	BuyPrice    int64     `json:"buy_price"`
	SellPrice   int64     `json:"sell_price"`
	MarketValue int64     `json:"market_value"`
	Circulation int64     `json:"circulation"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
