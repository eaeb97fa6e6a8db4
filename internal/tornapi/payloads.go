package tornapi

import (
	"encoding/json"
	"fmt"

	"github.com/ajcraig99/tornticker/internal/models"
)

// ItemPayload is one entry of the items selection, keyed upstream by the
// item id as a decimal string.
type ItemPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Effect      string `json:"effect"`
	Requirement string `json:"requirement"`
	Type        string `json:"type"`
	WeaponType  string `json:"weapon_type"`
	BuyPrice    int64  `json:"buy_price"`
	SellPrice   int64  `json:"sell_price"`
	MarketValue int64  `json:"market_value"`
	Circulation int64  `json:"circulation"`
	Image       string `json:"image"`
	Tradeable   bool   `json:"tradeable"`
}

// BankPayload carries the bank interest rate per deposit term.
type BankPayload struct {
	OneWeek     float64 `json:"1w"`
	TwoWeeks    float64 `json:"2w"`
	OneMonth    float64 `json:"1m"`
	TwoMonths   float64 `json:"2m"`
	ThreeMonths float64 `json:"3m"`
}

// PointsListing is one current listing on the points market.
type PointsListing struct {
	Cost      int64 `json:"cost"`
	Quantity  int64 `json:"quantity"`
	TotalCost int64 `json:"total_cost"`
}

// StatsPayload is the stats selection: the flat counter set plus the
// upstream timestamp the snapshot was taken at.
type StatsPayload struct {
	models.Stats
	Timestamp int64 `json:"timestamp"`
}

// Items fetches the items selection, keyed by item id.
func (c *Client) Items() (map[string]ItemPayload, error) {
	raw, err := c.fetch("items")
	if err != nil {
		return nil, err
	}
	var out struct {
		Items map[string]ItemPayload `json:"items"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding items payload: %w", err)
	}
	return out.Items, nil
}

// Bank fetches the bank selection.
func (c *Client) Bank() (BankPayload, error) {
	raw, err := c.fetch("bank")
	if err != nil {
		return BankPayload{}, err
	}
	var out struct {
		Bank BankPayload `json:"bank"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return BankPayload{}, fmt.Errorf("decoding bank payload: %w", err)
	}
	return out.Bank, nil
}

// PointsMarket fetches the current points market listings, keyed by
// listing id.
func (c *Client) PointsMarket() (map[string]PointsListing, error) {
	raw, err := c.fetch("pointsmarket")
	if err != nil {
		return nil, err
	}
	var out struct {
		PointsMarket map[string]PointsListing `json:"pointsmarket"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding pointsmarket payload: %w", err)
	}
	return out.PointsMarket, nil
}

// Stats fetches the game-wide aggregate counters.
func (c *Client) Stats() (StatsPayload, error) {
	raw, err := c.fetch("stats")
	if err != nil {
		return StatsPayload{}, err
	}
	var out struct {
		Stats StatsPayload `json:"stats"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return StatsPayload{}, fmt.Errorf("decoding stats payload: %w", err)
	}
	return out.Stats, nil
}
