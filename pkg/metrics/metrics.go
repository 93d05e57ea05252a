// Package metrics stores application gauges and counters in an embedded
// tstorage time-series database under the configured workdir.
package metrics

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/nakabonne/tstorage"
)

var (
	mu       sync.Mutex
	storage  tstorage.Storage
	counters = map[string]int64{}
)

// InitMetrics opens the metrics storage below workdir. It must be called
// before any gauge or counter is written; writes before init are dropped.
func InitMetrics(workdir string) error {
	s, err := tstorage.NewStorage(
		tstorage.WithDataPath(filepath.Join(workdir, "metrics")),
		tstorage.WithTimestampPrecision(tstorage.Seconds),
		tstorage.WithRetention(30*24*time.Hour),
	)
	if err != nil {
		return err
	}
	mu.Lock()
	storage = s
	mu.Unlock()
	return nil
}

// SetGauge writes an instantaneous value for the metric.
func SetGauge(metric string, value int64) {
	insert(metric, float64(value))
}

// AddCounter increments a monotonic counter and records its new total.
func AddCounter(metric string, delta int64) {
	mu.Lock()
	counters[metric] += delta
	total := counters[metric]
	mu.Unlock()
	insert(metric, float64(total))
}

// GetPoints returns the datapoints recorded for metric in [start, end].
func GetPoints(metric string, start, end int64) ([]*tstorage.DataPoint, error) {
	mu.Lock()
	s := storage
	mu.Unlock()
	if s == nil {
		return nil, nil
	}
	return s.Select(metric, nil, start, end)
}

func insert(metric string, value float64) {
	mu.Lock()
	s := storage
	mu.Unlock()
	if s == nil {
		return
	}
	_ = s.InsertRows([]tstorage.Row{
		{
			Metric:    metric,
			DataPoint: tstorage.DataPoint{Timestamp: time.Now().Unix(), Value: value},
		},
	})
}

// Close flushes and closes the metrics storage.
func Close() error {
	mu.Lock()
	s := storage
	storage = nil
	mu.Unlock()
	if s == nil {
		return nil
	}
	return s.Close()
}
