package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/ajcraig99/tornticker/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Feed is one upstream data category, collected and stored independently.
type Feed string

const (
	FeedItems        Feed = "items"
	FeedBank         Feed = "bank"
	FeedPointsMarket Feed = "pointsmarket"
	FeedStats        Feed = "stats"
)

// Day truncates t to its UTC calendar date. All observation rows are keyed
// at day precision.
func Day(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

// Store owns the write path to the collector tables.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WithFeedTx runs fn in its own transaction. Each feed gets one, so a
// failure while mapping or writing one feed rolls back only that feed.
func (s *Store) WithFeedTx(fn func(tx *gorm.DB) error) error {
	return s.db.Transaction(fn)
}

// NeedsCollection reports whether the feed has no observation row for the
// given date yet. The driver uses it to skip feeds (and their API calls)
// already collected today.
func (s *Store) NeedsCollection(feed Feed, date time.Time) (bool, error) {
	day := Day(date)

	var model interface{}
	switch feed {
	case FeedItems:
		model = &models.ItemPrice{}
	case FeedBank:
		model = &models.BankRate{}
	case FeedPointsMarket:
		model = &models.PointsMarket{}
	case FeedStats:
		model = &models.Stats{}
	default:
		return false, fmt.Errorf("unknown feed %q", feed)
	}

	var count int64
	if err := s.db.Model(model).Where("date = ?", day).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// UpsertItem writes the item dimension row. New ids are inserted with
// LastChanged set to the collection date. Existing rows are overwritten
// only when at least one descriptive field differs, which also bumps
// LastChanged; an identical payload leaves the row untouched so the stamp
// keeps recording when the item actually last changed.
func (s *Store) UpsertItem(tx *gorm.DB, item models.Item, collectedOn time.Time) error {
	var existing models.Item
	err := tx.Where("torn_id = ?", item.TornID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item.LastChanged = Day(collectedOn)
		return tx.Create(&item).Error
	}
	if err != nil {
		return err
	}

	if itemUnchanged(existing, item) {
		return nil
	}

	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	item.LastChanged = Day(collectedOn)
	return tx.Save(&item).Error
}

func itemUnchanged(a, b models.Item) bool {
	return a.Name == b.Name &&
		a.Description == b.Description &&
		a.Effect == b.Effect &&
		a.Requirement == b.Requirement &&
		a.Type == b.Type &&
		a.WeaponType == b.WeaponType &&
		a.Image == b.Image &&
		a.Tradeable == b.Tradeable
}

// UpsertItemPrice overwrites the (torn_id, date) price row unconditionally.
func (s *Store) UpsertItemPrice(tx *gorm.DB, price models.ItemPrice) error {
	price.Date = Day(price.Date)
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "torn_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"buy_price", "sell_price", "market_value", "circulation", "updated_at",
		}),
	}).Create(&price).Error
}

// UpsertBankRate overwrites the bank rate row for its date unconditionally.
func (s *Store) UpsertBankRate(tx *gorm.DB, rate models.BankRate) error {
	rate.Date = Day(rate.Date)
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"one_week", "two_weeks", "one_month", "two_months", "three_months", "updated_at",
		}),
	}).Create(&rate).Error
}

// UpsertPointsMarket overwrites the points market row for its date
// unconditionally.
func (s *Store) UpsertPointsMarket(tx *gorm.DB, pm models.PointsMarket) error {
	pm.Date = Day(pm.Date)
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"average_cost", "updated_at"}),
	}).Create(&pm).Error
}

// UpsertStats overwrites the stats row for its date unconditionally. The
// counter set is wide, so all non-key columns are replaced.
func (s *Store) UpsertStats(tx *gorm.DB, st models.Stats) error {
	st.Date = Day(st.Date)
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		UpdateAll: true,
	}).Create(&st).Error
}
