package metrics

import (
	"sync"
	"time"
)

// Collector keeps in-process request counters. Scrape it via /metrics; there
// is no push pipeline.
type Collector struct {
	mu             sync.Mutex
	requestsTotal  int64
	requestsByCode map[int]int64
	errorsByCode   map[string]int64
	totalDuration  time.Duration
}

func NewCollector() *Collector {
	return &Collector{
		requestsByCode: make(map[int]int64),
		errorsByCode:   make(map[string]int64),
	}
}

func (c *Collector) RecordRequest(status int, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requestsTotal++
	c.requestsByCode[status]++
	c.totalDuration += duration
}

func (c *Collector) RecordError(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorsByCode[code]++
}

type Snapshot struct {
	RequestsTotal  int64            `json:"requests_total"`
	RequestsByCode map[int]int64    `json:"requests_by_status"`
	ErrorsByCode   map[string]int64 `json:"errors_by_code"`
	AvgDurationMS  float64          `json:"avg_duration_ms"`
}

func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := Snapshot{
		RequestsTotal:  c.requestsTotal,
		RequestsByCode: make(map[int]int64, len(c.requestsByCode)),
		ErrorsByCode:   make(map[string]int64, len(c.errorsByCode)),
	}
	for status, count := range c.requestsByCode {
		snap.RequestsByCode[status] = count
	}
	for code, count := range c.errorsByCode {
		snap.ErrorsByCode[code] = count
	}
	if c.requestsTotal > 0 {
		snap.AvgDurationMS = float64(c.totalDuration.Milliseconds()) / float64(c.requestsTotal)
	}
	return snap
}
