package reconciliation

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/openretail/backoffice/config"
)

// SummaryCache keeps computed summaries in redis keyed by date range, with a
// side index of every cached range. A withdraw mutation must call
// InvalidateDate before the mutation is acknowledged: a cache hit served
// after an acknowledged mutation is a correctness bug, the figure is
// reconciled against physical cash.
type SummaryCache struct {
	redis *config.CacheService
}

const summaryKeyPrefix = "backoffice:finance:summary:"
const summaryKeyIndex = "backoffice:finance:summary_index"
const summaryKeyGeneration = "backoffice:finance:summary_gen"

func NewSummaryCache() *SummaryCache {
	return &SummaryCache{redis: config.Redis}
}

func summaryCacheTTL() time.Duration {
	ttl := 120
	if v := os.Getenv("SUMMARY_CACHE_TTL_SECONDS"); len(v) > 0 {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = n
		}
	}

	return time.Duration(ttl) * time.Second
}

func summaryCacheKey(startDate string, endDate string) string {
	return summaryKeyPrefix + startDate + ":" + endDate
}

func splitSummaryCacheKey(key string) (string, string, bool) {
	if !strings.HasPrefix(key, summaryKeyPrefix) {
		return "", "", false
	}

	parts := strings.Split(strings.TrimPrefix(key, summaryKeyPrefix), ":")
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) == 0 {
		return "", "", false
	}

	return parts[0], parts[1], true
}

// rangeContainsDate relies on the canonical date format ordering
// lexicographically, no parsing needed.
func rangeContainsDate(startDate string, endDate string, date string) bool {
	return startDate <= date && date <= endDate
}

func (s *SummaryCache) Fetch(startDate string, endDate string) (*Summary, bool) {
	if s.redis == nil {
		return nil, false
	}

	summary := &Summary{}
	if err := s.redis.GetKey(summaryCacheKey(startDate, endDate), summary); err != nil {
		return nil, false
	}

	return summary, true
}

// Generation reads the invalidation counter. Callers observe it before
// computing a summary and hand it back to Store.
func (s *SummaryCache) Generation() int64 {
	if s.redis == nil {
		return 0
	}

	generation, err := s.redis.Connection.Get(s.redis.Ctx, summaryKeyGeneration).Int64()
	if err != nil {
		return 0
	}

	return generation
}

// Store drops the write when the generation moved since the caller observed
// it: a summary computed before a withdraw mutation must not re-enter the
// cache after that mutation's eviction.
func (s *SummaryCache) Store(startDate string, endDate string, summary *Summary, generation int64) {
	if s.redis == nil {
		return
	}

	key := summaryCacheKey(startDate, endDate)

	if current := s.Generation(); current != generation {
		config.Logger.Infof("Skipped caching summary %s: generation moved %d -> %d", key, generation, current)
		return
	}

	if err := s.redis.SetKey(key, summary, summaryCacheTTL()); err != nil {
		config.Logger.Errorf("Failed to cache summary %s: %v", key, err)
		return
	}

	if err := s.redis.Connection.SAdd(s.redis.Ctx, summaryKeyIndex, key).Err(); err != nil {
		config.Logger.Errorf("Failed to index cached summary %s: %v", key, err)
	}
}

// InvalidateDate evicts every cached summary whose range contains date.
// Eviction is by range overlap, not by exact key match, so a mutation can
// never leave a stale figure behind under a differently-keyed range.
func (s *SummaryCache) InvalidateDate(date string) {
	if s.redis == nil {
		return
	}

	// Advance the generation first: an in-flight computation that started
	// before this mutation must not store its result even if listing or
	// evicting keys fails below.
	if err := s.redis.Connection.Incr(s.redis.Ctx, summaryKeyGeneration).Err(); err != nil {
		config.Logger.Errorf("Failed to advance summary generation: %v", err)
	}

	keys, err := s.redis.Connection.SMembers(s.redis.Ctx, summaryKeyIndex).Result()
	if err != nil {
		config.Logger.Errorf("Failed to list cached summaries: %v", err)
		return
	}

	for _, key := range keys {
		startDate, endDate, ok := splitSummaryCacheKey(key)
		if !ok || !rangeContainsDate(startDate, endDate, date) {
			continue
		}

		if err := s.redis.DeleteKey(key); err != nil {
			config.Logger.Errorf("Failed to evict cached summary %s: %v", key, err)
			continue
		}

		if err := s.redis.Connection.SRem(s.redis.Ctx, summaryKeyIndex, key).Err(); err != nil {
			config.Logger.Errorf("Failed to unindex cached summary %s: %v", key, err)
		}
	}
}
