package tornapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ajcraig99/tornticker/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, serverURL string, maxAttempts int) (*Client, *[]time.Duration) {
	t.Helper()

	logg := logrus.New()
	logg.SetOutput(io.Discard)

	cfg := &config.Config{
		APIKey:         "testkey",
		APIBaseURL:     serverURL,
		APIComment:     "tornticker",
		MaxAttempts:    maxAttempts,
		BaseWait:       time.Second,
		RequestTimeout: time.Second,
	}

	c := NewClient(cfg, logg)
	sleeps := &[]time.Duration{}
	c.sleep = func(d time.Duration) { *sleeps = append(*sleeps, d) }
	return c, sleeps
}

func TestFetchRetriesMalformedBodyThenSucceeds(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 5 {
			fmt.Fprint(w, "<html>not json</html>")
			return
		}
		fmt.Fprint(w, `{"bank":{"1w":39.6,"2w":40.8,"1m":42.5,"2m":46.1,"3m":49.5}}`)
	}))
	defer srv.Close()

	c, sleeps := testClient(t, srv.URL, 5)

	bank, err := c.Bank()
	require.NoError(t, err)
	assert.Equal(t, 39.6, bank.OneWeek)
	assert.Equal(t, 49.5, bank.ThreeMonths)
	assert.Equal(t, 5, calls)

	// Linear backoff: base*1, base*2, base*3, base*4 between the five attempts.
	require.Len(t, *sleeps, 4)
	for i, d := range *sleeps {
		assert.Equal(t, time.Duration(i+1)*time.Second, d)
	}
}

func TestFetchRetryableCodeRetries(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			fmt.Fprint(w, `{"error":{"code":5,"error":"Too many requests"}}`)
			return
		}
		fmt.Fprint(w, `{"pointsmarket":{}}`)
	}))
	defer srv.Close()

	c, sleeps := testClient(t, srv.URL, 5)

	listings, err := c.PointsMarket()
	require.NoError(t, err)
	assert.Empty(t, listings)
	assert.Equal(t, 2, calls)
	require.Len(t, *sleeps, 1)
	assert.Equal(t, time.Second, (*sleeps)[0])
}

func TestFetchFatalCodeAbortsImmediately(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"error":{"code":2,"error":"Incorrect key"}}`)
	}))
	defer srv.Close()

	c, sleeps := testClient(t, srv.URL, 5)

	_, err := c.Items()
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 2, apiErr.Code)
	assert.Equal(t, "Incorrect key", apiErr.Message)
	assert.False(t, apiErr.Retryable())

	// Zero additional attempts, zero waits.
	assert.Equal(t, 1, calls)
	assert.Empty(t, *sleeps)
}

func TestFetchRetriesExhausted(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"error":{"code":17,"error":"Backend error occurred"}}`)
	}))
	defer srv.Close()

	c, _ := testClient(t, srv.URL, 3)

	_, err := c.Stats()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRetriesExhausted))

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "exhaustion must stay distinct from a fatal code")
	assert.Equal(t, 3, calls)
}

func TestFetchTransportErrorIsTransient(t *testing.T) {
	// A server that closes immediately leaves nothing listening.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c, sleeps := testClient(t, srv.URL, 2)

	_, err := c.Bank()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRetriesExhausted))
	assert.Len(t, *sleeps, 1)
}

func TestItemsDecodesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "items", r.URL.Query().Get("selections"))
		assert.Equal(t, "testkey", r.URL.Query().Get("key"))
		assert.Equal(t, "tornticker", r.URL.Query().Get("comment"))
		fmt.Fprint(w, `{"items":{"1":{"name":"Hammer","description":"A small hammer.",
			"type":"Melee","weapon_type":"Clubbing","buy_price":75,"sell_price":50,
			"market_value":65,"circulation":1100562,"image":"hammer.png","tradeable":true}}}`)
	}))
	defer srv.Close()

	c, _ := testClient(t, srv.URL, 5)

	items, err := c.Items()
	require.NoError(t, err)
	require.Contains(t, items, "1")

	hammer := items["1"]
	assert.Equal(t, "Hammer", hammer.Name)
	assert.Equal(t, int64(75), hammer.BuyPrice)
	assert.Equal(t, int64(1100562), hammer.Circulation)
	assert.True(t, hammer.Tradeable)
	// Optional fields absent from the payload fall back to zero values.
	assert.Equal(t, "", hammer.Effect)
	assert.Equal(t, "", hammer.Requirement)
}

func TestStatsCarriesTimestamp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"stats":{"timestamp":1719878400,"users_total":3412867,"total_drugs_used":4064160754}}`)
	}))
	defer srv.Close()

	c, _ := testClient(t, srv.URL, 5)

	stats, err := c.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1719878400), stats.Timestamp)
	assert.Equal(t, int64(3412867), stats.UsersTotal)
	assert.Equal(t, int64(4064160754), stats.TotalDrugsUsed)
}
