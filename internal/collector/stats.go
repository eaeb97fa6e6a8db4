package collector

import (
	"time"

	"github.com/ajcraig99/tornticker/internal/store"
	"gorm.io/gorm"
)

// StatsCollector snapshots the game-wide counters. The row is dated by
// the upstream timestamp, not the local clock, so a run near midnight
// lands on the day the data actually belongs to.
type StatsCollector struct {
	fetcher Fetcher
	st      *store.Store
}

func (c *StatsCollector) Feed() store.Feed { return store.FeedStats }

func (c *StatsCollector) Collect(tx *gorm.DB, today time.Time) error {
	payload, err := c.fetcher.Stats()
	if err != nil {
		return err
	}

	row := payload.Stats
	row.Date = store.Day(time.Unix(payload.Timestamp, 0))
	return c.st.UpsertStats(tx, row)
}
