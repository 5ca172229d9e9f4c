package custody

// Log messages
const (
	LogMsgDeposit = "Custody deposit"
	LogMsgPayOut  = "Custody payout"
)
