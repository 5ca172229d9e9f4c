package scheduler

const (
	LogMsgScheduled        = "Job scheduled"
	LogMsgScheduleDisabled = "Job not scheduled, interval is not positive"
	LogMsgTickSkipped      = "Worker queue full, skipping scheduled run"
)
