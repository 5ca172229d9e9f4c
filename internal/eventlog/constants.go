package eventlog

// JSON payload field keys used to find who an event concerns
const (
	PayloadKeyBeneficiary    = "beneficiary"
	PayloadKeyPerBeneficiary = "per_beneficiary"
	PayloadKeyAdministrator  = "administrator"
	PayloadKeyCaller         = "caller"
)

// Log messages - service events
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded, skipping log"
	LogMsgFailedToLogEvent        = "Failed to log event to journal"
	LogMsgEventLogged             = "Event logged to journal"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting journal cleanup job"
	LogMsgCleanupJobFailed    = "Journal cleanup failed"
	LogMsgCleanupJobCompleted = "Journal cleanup completed"
)

// Log field keys
const (
	LogFieldType          = "type"
	LogFieldBeneficiary   = "beneficiary"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)
