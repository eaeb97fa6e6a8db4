package collector

import (
	"time"

	"github.com/ajcraig99/tornticker/internal/models"
	"github.com/ajcraig99/tornticker/internal/store"
	"gorm.io/gorm"
)

// BankCollector snapshots the bank interest rates for today.
type BankCollector struct {
	fetcher Fetcher
	st      *store.Store
}

func (c *BankCollector) Feed() store.Feed { return store.FeedBank }

func (c *BankCollector) Collect(tx *gorm.DB, today time.Time) error {
	bank, err := c.fetcher.Bank()
	if err != nil {
		return err
	}

	return c.st.UpsertBankRate(tx, models.BankRate{
		Date:        today,
		OneWeek:     bank.OneWeek,
		TwoWeeks:    bank.TwoWeeks,
		OneMonth:    bank.OneMonth,
		TwoMonths:   bank.TwoMonths,
		ThreeMonths: bank.ThreeMonths,
	})
}
