package collector

import (
	"errors"
	"time"

	"github.com/ajcraig99/tornticker/internal/config"
	"github.com/ajcraig99/tornticker/internal/store"
	"github.com/ajcraig99/tornticker/internal/tornapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Fetcher is the slice of the API client the collectors depend on.
// Substituted with a fake in tests.
type Fetcher interface {
	Items() (map[string]tornapi.ItemPayload, error)
	Bank() (tornapi.BankPayload, error)
	PointsMarket() (map[string]tornapi.PointsListing, error)
	Stats() (tornapi.StatsPayload, error)
}

// Collector maps one feed's payload onto normalized rows inside the
// feed's transaction. today is the collection date used for skip checks
// and for feeds dated by wall clock.
type Collector interface {
	Feed() store.Feed
	Collect(tx *gorm.DB, today time.Time) error
}

// Runner drives one run-to-completion collection pass over all feeds.
type Runner struct {
	st         *store.Store
	collectors []Collector
	log        *logrus.Logger
	delay      time.Duration
	sleep      func(time.Duration)
	now        func() time.Time
}

func NewRunner(st *store.Store, fetcher Fetcher, log *logrus.Logger, cfg *config.Config) *Runner {
	return &Runner{
		st: st,
		collectors: []Collector{
			&ItemsCollector{fetcher: fetcher, st: st},
			&BankCollector{fetcher: fetcher, st: st},
			&PointsMarketCollector{fetcher: fetcher, st: st},
			&StatsCollector{fetcher: fetcher, st: st},
		},
		log:   log,
		delay: cfg.FeedDelay,
		sleep: time.Sleep,
		now:   time.Now,
	}
}

// Run collects every feed that has no row for today yet, strictly in
// order, pausing between feeds that hit the network. Fetch-stage failures
// (fatal upstream code, retries exhausted) abort the run; mapping and
// store failures roll back their own feed and the run moves on.
func (r *Runner) Run() error {
	start := r.now()
	var collected, skipped, failed int
	fetched := false

	for _, c := range r.collectors {
		feed := c.Feed()
		today := store.Day(r.now())

		needs, err := r.st.NeedsCollection(feed, today)
		if err != nil {
			r.log.WithField("feed", feed).Errorf("skip check failed: %v", err)
			failed++
			continue
		}
		if !needs {
			r.log.WithFields(logrus.Fields{"feed": feed, "date": today.Format("2006-01-02")}).
				Info("already collected, skipping")
			skipped++
			continue
		}

		if fetched {
			r.sleep(r.delay)
		}
		fetched = true

		err = r.st.WithFeedTx(func(tx *gorm.DB) error {
			return c.Collect(tx, today)
		})
		if err != nil {
			if runFatal(err) {
				return err
			}
			r.log.WithField("feed", feed).Errorf("feed failed, rolled back: %v", err)
			failed++
			continue
		}

		r.log.WithFields(logrus.Fields{"feed": feed, "date": today.Format("2006-01-02")}).
			Info("committed")
		collected++
	}

	r.log.WithFields(logrus.Fields{
		"collected": collected,
		"skipped":   skipped,
		"failed":    failed,
		"duration":  r.now().Sub(start).String(),
	}).Info("run complete")

	return nil
}

// runFatal reports whether the error means the shared credential or
// session is unusable for the rest of this run. Retryable upstream codes
// never escape the fetcher, so any surviving *APIError is fatal.
func runFatal(err error) bool {
	var apiErr *tornapi.APIError
	if errors.As(err, &apiErr) {
		return true
	}
	return errors.Is(err, tornapi.ErrRetriesExhausted)
}
