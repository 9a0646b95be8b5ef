package progress

import (
	"log"
	"sync"
	"time"
)

type watchKey struct {
	userID   string
	courseID string
	lessonID string
}

type watchSample struct {
	watchTime    int64
	lastPosition int64
}

// Flusher buffers watch-time reports and writes them through the Store on
// a fixed cadence. Deltas recorded between flushes are merged, so one
// flush counts as one watch event per lesson no matter how many reports
// arrived. Stop halts the ticker and flushes whatever is left.
type Flusher struct {
	store    *Store
	interval time.Duration

	mu      sync.Mutex
	pending map[watchKey]*watchSample

	stop chan struct{}
	done chan struct{}
}

func NewFlusher(store *Store, interval time.Duration) *Flusher {
	return &Flusher{
		store:    store,
		interval: interval,
		pending:  make(map[watchKey]*watchSample),
	}
}

// Start launches the periodic flush loop.
func (f *Flusher) Start() {
	f.stop = make(chan struct{})
	f.done = make(chan struct{})
	go func() {
		defer close(f.done)
		ticker := time.NewTicker(f.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				f.Flush()
			case <-f.stop:
				return
			}
		}
	}()
	log.Printf("[WATCH-FLUSHER] Started, flushing every %s", f.interval)
}

// Record buffers watched seconds for a lesson. The latest reported
// position wins.
func (f *Flusher) Record(userID, courseID, lessonID string, watchTime, currentPosition int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := watchKey{userID: userID, courseID: courseID, lessonID: lessonID}
	sample, ok := f.pending[key]
	if !ok {
		sample = &watchSample{}
		f.pending[key] = sample
	}
	sample.watchTime += watchTime
	sample.lastPosition = currentPosition
}

// Flush writes all buffered samples through the store. Failed writes are
// logged and dropped, not retried.
func (f *Flusher) Flush() {
	f.mu.Lock()
	batch := f.pending
	f.pending = make(map[watchKey]*watchSample)
	f.mu.Unlock()

	for key, sample := range batch {
		err := f.store.UpdateWatchProgress(key.userID, key.courseID, key.lessonID, sample.watchTime, sample.lastPosition)
		if err != nil {
			log.Printf("[WATCH-FLUSHER] Failed to flush watch time for user %s course %s: %v", key.userID, key.courseID, err)
		}
	}
}

// Stop ends the flush loop and flushes the remaining samples.
func (f *Flusher) Stop() {
	if f.stop != nil {
		close(f.stop)
		<-f.done
	}
	f.Flush()
}
