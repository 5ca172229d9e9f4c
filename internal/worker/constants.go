package worker

import "time"

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 5 * time.Minute

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"
