package cron

import (
	"time"

	"github.com/jasonlvhit/gocron"

	"github.com/openretail/backoffice/config"
	"github.com/openretail/backoffice/models"
	"github.com/openretail/backoffice/reconciliation"
	"github.com/openretail/backoffice/types"
)

// SummaryWarmJob keeps today's dashboard summary hot. Correctness does not
// depend on it: withdraw mutations evict overlapping cache entries
// synchronously, this job only re-primes after eviction or TTL expiry.
type SummaryWarmJob struct {
}

func (j *SummaryWarmJob) Process() {
	s := gocron.NewScheduler()
	s.Every(5).Minutes().Do(warmTodaySummary)
	<-s.Start()
}

func warmTodaySummary() {
	start_date, end_date, err := reconciliation.ResolvePeriod(types.PeriodToday, "", "", time.Now())
	if err != nil {
		config.Logger.Errorf("Failed to resolve warm period: %v", err)
		return
	}

	cache := reconciliation.NewSummaryCache()
	generation := cache.Generation()

	summary, err := models.NewFinanceEngine().Reconcile(start_date, end_date)
	if err != nil {
		config.Logger.Errorf("Failed to warm summary %s..%s: %v", start_date, end_date, err)
		return
	}

	cache.Store(start_date, end_date, summary, generation)

	config.Logger.Infof("Warmed summary %s..%s", start_date, end_date)
}
