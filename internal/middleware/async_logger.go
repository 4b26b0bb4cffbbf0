package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/inspectwise/inspection-service/internal/domain/model"
	"github.com/inspectwise/inspection-service/internal/logger"
	"github.com/inspectwise/inspection-service/internal/metrics"
	"github.com/inspectwise/inspection-service/internal/service"
)

// AsyncLoggerConfig sizes the audit writer pool.
type AsyncLoggerConfig struct {
	// BufferSize is the number of entries that may wait for a worker.
	BufferSize int
	// NumWorkers is the number of goroutines writing entries.
	NumWorkers int
	// WriteTimeout bounds a single write to the log store.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns the defaults used by the server.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{BufferSize: 1000, NumWorkers: 4, WriteTimeout: 5 * time.Second}
}

// AsyncLoggerStats counts entries by outcome.
type AsyncLoggerStats struct {
	Enqueued int64
	Dropped  int64
	Written  int64
	Failed   int64
}

// AsyncLogger persists request and audit entries off the request path.
// Entries are dropped, never blocked on, once the buffer is full or the
// logger has been stopped.
type AsyncLogger struct {
	sink         service.LoggingService
	queue        chan *model.LogEntry
	quit         chan struct{}
	workers      sync.WaitGroup
	stopOnce     sync.Once
	stopped      atomic.Bool
	writeTimeout time.Duration

	enqueued, dropped, written, failed atomic.Int64
}

// NewAsyncLogger starts the worker pool. It returns nil when there is no
// logging service to write to.
func NewAsyncLogger(sink service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if sink == nil {
		return nil
	}

	al := &AsyncLogger{
		sink:         sink,
		queue:        make(chan *model.LogEntry, cfg.BufferSize),
		quit:         make(chan struct{}),
		writeTimeout: cfg.WriteTimeout,
	}
	for range max(cfg.NumWorkers, 1) {
		al.workers.Add(1)
		go al.run()
	}
	return al
}

func (al *AsyncLogger) run() {
	defer al.workers.Done()
	for {
		select {
		case entry := <-al.queue:
			al.write(entry)
		case <-al.quit:
			al.drain()
			return
		}
	}
}

// drain writes whatever is still buffered.
func (al *AsyncLogger) drain() {
	for {
		select {
		case entry := <-al.queue:
			al.write(entry)
		default:
			return
		}
	}
}

func (al *AsyncLogger) write(entry *model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	if err := al.sink.CreateLog(ctx, entry); err != nil {
		al.failed.Add(1)
		metrics.RecordLogEntry("failed")
		log := logger.Logger()
		log.Warn().Err(err).
			Str("action_type", entry.ActionType).
			Str("report_id", entry.ReportID).
			Msg("Failed to write log entry")
		return
	}
	al.written.Add(1)
	metrics.RecordLogEntry("written")
}

// Log enqueues an entry. It reports false when the entry was dropped.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	if !al.stopped.Load() {
		select {
		case al.queue <- entry:
			al.enqueued.Add(1)
			metrics.RecordLogEntry("enqueued")
			return true
		default:
		}
	}
	al.dropped.Add(1)
	metrics.RecordLogEntry("dropped")
	return false
}

// Stop waits for the workers to drain the buffer. Calling it twice is safe.
func (al *AsyncLogger) Stop() {
	al.stopOnce.Do(func() {
		al.stopped.Store(true)
		close(al.quit)
		al.workers.Wait()
	})
}

// Stats returns the entry counters.
func (al *AsyncLogger) Stats() AsyncLoggerStats {
	return AsyncLoggerStats{
		Enqueued: al.enqueued.Load(),
		Dropped:  al.dropped.Load(),
		Written:  al.written.Load(),
		Failed:   al.failed.Load(),
	}
}

var (
	globalAsyncLogger   *AsyncLogger
	globalAsyncLoggerMu sync.RWMutex
)

// InitAsyncLogger installs the process-wide async logger, stopping any
// previous one.
func InitAsyncLogger(sink service.LoggingService, cfg AsyncLoggerConfig) {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
	}
	globalAsyncLogger = NewAsyncLogger(sink, cfg)
}

// GetAsyncLogger returns the process-wide async logger, or nil.
func GetAsyncLogger() *AsyncLogger {
	globalAsyncLoggerMu.RLock()
	defer globalAsyncLoggerMu.RUnlock()
	return globalAsyncLogger
}

// StopAsyncLogger drains and removes the process-wide async logger.
func StopAsyncLogger() {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
		globalAsyncLogger = nil
	}
}
