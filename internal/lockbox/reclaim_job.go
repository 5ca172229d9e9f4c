package lockbox

import (
	"context"
	"time"

	"github.com/osse101/Lockbox_Go/internal/logger"
)

// ReclaimJob sweeps expired entries to the administrator on a schedule
type ReclaimJob struct {
	service Service
}

// NewReclaimJob creates a reclaim job acting as the service's administrator
func NewReclaimJob(service Service) *ReclaimJob {
	return &ReclaimJob{service: service}
}

// Process runs one reclaim
func (j *ReclaimJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgReclaimJobStarting)

	start := time.Now()
	swept, err := j.service.Reclaim(ctx, j.service.Administrator())
	if err != nil {
		log.Error(LogMsgReclaimJobFailed, LogFieldError, err, LogFieldDuration, time.Since(start))
		return err
	}

	log.Info(LogMsgReclaimJobCompleted, LogFieldAmount, swept.Dec(), LogFieldDuration, time.Since(start))
	return nil
}
