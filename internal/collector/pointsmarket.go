package collector

import (
	"time"

	"github.com/ajcraig99/tornticker/internal/models"
	"github.com/ajcraig99/tornticker/internal/store"
	"github.com/ajcraig99/tornticker/internal/tornapi"
	"gorm.io/gorm"
)

// PointsMarketCollector reduces the current listings to a single average
// cost per point for today.
type PointsMarketCollector struct {
	fetcher Fetcher
	st      *store.Store
}

func (c *PointsMarketCollector) Feed() store.Feed { return store.FeedPointsMarket }

func (c *PointsMarketCollector) Collect(tx *gorm.DB, today time.Time) error {
	listings, err := c.fetcher.PointsMarket()
	if err != nil {
		return err
	}

	return c.st.UpsertPointsMarket(tx, models.PointsMarket{
		Date:        today,
		AverageCost: averageCost(listings),
	})
}

// averageCost is the arithmetic mean of listing costs, truncated to an
// integer. An empty market averages to 0.
func averageCost(listings map[string]tornapi.PointsListing) int64 {
	if len(listings) == 0 {
		return 0
	}
	var total int64
	for _, l := range listings {
		total += l.Cost
	}
	return total / int64(len(listings))
}
