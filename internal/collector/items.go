package collector

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ajcraig99/tornticker/internal/models"
	"github.com/ajcraig99/tornticker/internal/store"
	"gorm.io/gorm"
)

// ItemsCollector writes the item dimension and the daily price fact from
// a single items fetch.
type ItemsCollector struct {
	fetcher Fetcher
	st      *store.Store
}

func (c *ItemsCollector) Feed() store.Feed { return store.FeedItems }

func (c *ItemsCollector) Collect(tx *gorm.DB, today time.Time) error {
	items, err := c.fetcher.Items()
	if err != nil {
		return err
	}

	for id, p := range items {
		tornID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return fmt.Errorf("unparsable item id %q: %w", id, err)
		}

		item := models.Item{
			TornID:      tornID,
			Name:        p.Name,
			Description: p.Description,
			Effect:      p.Effect,
			Requirement: p.Requirement,
			Type:        p.Type,
			WeaponType:  p.WeaponType,
			Image:       p.Image,
			Tradeable:   p.Tradeable,
		}
		if err := c.st.UpsertItem(tx, item, today); err != nil {
			return fmt.Errorf("upserting item %d: %w", tornID, err)
		}

		price := models.ItemPrice{
			TornID:      tornID,
			Date:        today,
			BuyPrice:    p.BuyPrice,
			SellPrice:   p.SellPrice,
			MarketValue: p.MarketValue,
			Circulation: p.Circulation,
		}
		if err := c.st.UpsertItemPrice(tx, price); err != nil {
			return fmt.Errorf("upserting price for item %d: %w", tornID, err)
		}
	}
	return nil
}
