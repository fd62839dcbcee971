package jobs

import (
	"log"
	"time"

	"github.com/sharingyatra/yatra-backend/internal/storage"
)

// CleanupJob sweeps expired OTP and session rows on a fixed interval.
// Expiry is enforced at read time by the ExpiresAt checks; this job only
// keeps the tables from accumulating dead rows.
type CleanupJob struct {
	store    storage.Store
	interval time.Duration
	stop     chan struct{}
}

// NewCleanupJob creates a new cleanup job scheduler
func NewCleanupJob(store storage.Store, interval time.Duration) *CleanupJob {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &CleanupJob{
		store:    store,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start begins the background sweep
func (j *CleanupJob) Start() {
	log.Printf("Starting expiry cleanup job (every %v)", j.interval)
	go j.run()
}

// Stop halts the background sweep
func (j *CleanupJob) Stop() {
	close(j.stop)
}

func (j *CleanupJob) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			if err := j.store.DeleteExpiredOTPs(now); err != nil {
				log.Printf("cleanup: expired OTPs: %v", err)
			}
			if err := j.store.DeleteExpiredSessions(now); err != nil {
				log.Printf("cleanup: expired sessions: %v", err)
			}
		case <-j.stop:
			log.Println("Stopping expiry cleanup job")
			return
		}
	}
}
