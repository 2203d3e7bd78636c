// Package metrics collects gateway request statistics: atomic counters,
// a bounded request history with buffered flush, a rolling QPS window, and
// periodic persistence through the storage interface.
package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"translateapi/internal/core"
)

// atomicCounters holds the lock-free request counters.
type atomicCounters struct {
	totalRequests      atomic.Int64
	successfulRequests atomic.Int64
	failedRequests     atomic.Int64
	totalResponseTime  atomic.Int64
}

// MetricsConfig configuration for MetricsService.
type MetricsConfig struct {
	SaveInterval time.Duration
	HistorySize  int
	Storage      core.StorageInterface
	Logger       core.Logger
}

// MetricsService collects and manages gateway metrics.
type MetricsService struct {
	counters atomicCounters

	historyMu      sync.RWMutex
	requestHistory []core.RequestRecord
	pairCounts     map[string]int64
	maxHistorySize int

	bufferMu      sync.Mutex
	historyBuffer []core.RequestRecord

	recentMu       sync.Mutex
	recentRequests []time.Time

	cacheHits   atomic.Int64
	cacheMisses atomic.Int64

	storage         core.StorageInterface
	logger          core.Logger
	lastSaveTime    time.Time
	minSaveInterval time.Duration

	flushTicker *time.Ticker
	done        chan struct{}
	closeOnce   sync.Once
}

// NewMetricsService creates a new MetricsService.
func NewMetricsService(config MetricsConfig) *MetricsService {
	ms := &MetricsService{
		maxHistorySize:  config.HistorySize,
		pairCounts:      make(map[string]int64),
		storage:         config.Storage,
		logger:          config.Logger,
		minSaveInterval: config.SaveInterval,
		historyBuffer:   make([]core.RequestRecord, 0, core.HistoryBatchSize),
		done:            make(chan struct{}),
	}

	ms.flushTicker = time.NewTicker(core.HistoryFlushInterval)
	go ms.flushLoop()

	return ms
}

func (ms *MetricsService) flushLoop() {
	for {
		select {
		case <-ms.flushTicker.C:
			ms.flushBuffer()
		case <-ms.done:
			return
		}
	}
}

// RecordHTTPRequest records the duration of one HTTP request.
func (ms *MetricsService) RecordHTTPRequest(duration time.Duration) {
	ms.counters.totalRequests.Add(1)
	ms.counters.totalResponseTime.Add(duration.Milliseconds())

	now := time.Now()
	ms.recentMu.Lock()
	ms.recentRequests = append(ms.recentRequests, now)
	// Keep only the QPS window.
	cutoff := now.Add(-time.Minute)
	trimmed := ms.recentRequests[:0]
	for _, t := range ms.recentRequests {
		if t.After(cutoff) {
			trimmed = append(trimmed, t)
		}
	}
	ms.recentRequests = trimmed
	ms.recentMu.Unlock()
}

// RecordTranslation records the outcome of one translation call. Pair is
// empty when the request failed before a pair was established.
func (ms *MetricsService) RecordTranslation(pair string, success bool, duration time.Duration) {
	if success {
		ms.counters.successfulRequests.Add(1)
	} else {
		ms.counters.failedRequests.Add(1)
	}

	record := core.RequestRecord{
		Timestamp:  time.Now().Unix(),
		Pair:       pair,
		Success:    success,
		DurationMs: duration.Milliseconds(),
	}

	ms.bufferMu.Lock()
	ms.historyBuffer = append(ms.historyBuffer, record)
	full := len(ms.historyBuffer) >= core.HistoryBatchSize
	ms.bufferMu.Unlock()

	if full {
		ms.flushBuffer()
	}
}

// RecordCacheHit records a translation result cache hit.
func (ms *MetricsService) RecordCacheHit() {
	ms.cacheHits.Add(1)
}

// RecordCacheMiss records a translation result cache miss.
func (ms *MetricsService) RecordCacheMiss() {
	ms.cacheMisses.Add(1)
}

// GetQPS returns requests per second over the last minute.
func (ms *MetricsService) GetQPS() float64 {
	ms.recentMu.Lock()
	defer ms.recentMu.Unlock()

	cutoff := time.Now().Add(-time.Minute)
	count := 0
	for _, t := range ms.recentRequests {
		if t.After(cutoff) {
			count++
		}
	}
	return float64(count) / 60.0
}

// CacheStats returns result cache hit/miss counts.
func (ms *MetricsService) CacheStats() (hits, misses int64) {
	return ms.cacheHits.Load(), ms.cacheMisses.Load()
}

func (ms *MetricsService) flushBuffer() {
	ms.bufferMu.Lock()
	if len(ms.historyBuffer) == 0 {
		ms.bufferMu.Unlock()
		return
	}
	batch := ms.historyBuffer
	ms.historyBuffer = make([]core.RequestRecord, 0, core.HistoryBatchSize)
	ms.bufferMu.Unlock()

	ms.historyMu.Lock()
	for _, record := range batch {
		if record.Pair != "" {
			ms.pairCounts[record.Pair]++
		}
	}
	ms.requestHistory = append(ms.requestHistory, batch...)
	if overflow := len(ms.requestHistory) - ms.maxHistorySize; overflow > 0 {
		ms.requestHistory = ms.requestHistory[overflow:]
	}
	ms.historyMu.Unlock()

	ms.maybeSave()
}

// GetStats returns a copy of the current statistics snapshot.
func (ms *MetricsService) GetStats() core.GatewayStats {
	ms.historyMu.RLock()
	defer ms.historyMu.RUnlock()

	history := make([]core.RequestRecord, len(ms.requestHistory))
	copy(history, ms.requestHistory)

	pairCounts := make(map[string]int64, len(ms.pairCounts))
	for pair, count := range ms.pairCounts {
		pairCounts[pair] = count
	}

	return core.GatewayStats{
		TotalRequests:       ms.counters.totalRequests.Load(),
		SuccessfulRequests:  ms.counters.successfulRequests.Load(),
		FailedRequests:      ms.counters.failedRequests.Load(),
		TotalResponseTimeMs: ms.counters.totalResponseTime.Load(),
		PairCounts:          pairCounts,
		RequestHistory:      history,
	}
}

// LoadStats restores persisted statistics at startup.
func (ms *MetricsService) LoadStats() error {
	if ms.storage == nil {
		return nil
	}

	stats, err := ms.storage.LoadStats()
	if err != nil {
		return err
	}

	ms.counters.totalRequests.Store(stats.TotalRequests)
	ms.counters.successfulRequests.Store(stats.SuccessfulRequests)
	ms.counters.failedRequests.Store(stats.FailedRequests)
	ms.counters.totalResponseTime.Store(stats.TotalResponseTimeMs)

	ms.historyMu.Lock()
	ms.requestHistory = stats.RequestHistory
	if ms.requestHistory == nil {
		ms.requestHistory = []core.RequestRecord{}
	}
	ms.pairCounts = stats.PairCounts
	if ms.pairCounts == nil {
		ms.pairCounts = make(map[string]int64)
	}
	ms.historyMu.Unlock()

	return nil
}

// maybeSave persists the snapshot, rate-limited by minSaveInterval.
func (ms *MetricsService) maybeSave() {
	if ms.storage == nil {
		return
	}

	ms.historyMu.Lock()
	if time.Since(ms.lastSaveTime) < ms.minSaveInterval {
		ms.historyMu.Unlock()
		return
	}
	ms.lastSaveTime = time.Now()
	ms.historyMu.Unlock()

	stats := ms.GetStats()
	if err := ms.storage.SaveStats(&stats); err != nil {
		if ms.logger != nil {
			ms.logger.Warn("Failed to save stats: %v", err)
		}
	}
}

// Close flushes pending records, saves a final snapshot and stops workers.
func (ms *MetricsService) Close() error {
	var saveErr error
	ms.closeOnce.Do(func() {
		ms.flushTicker.Stop()
		close(ms.done)
		ms.flushBuffer()

		if ms.storage != nil {
			stats := ms.GetStats()
			saveErr = ms.storage.SaveStats(&stats)
		}
	})
	return saveErr
}
