package bootstrap

import (
	"fmt"

	"github.com/osse101/Lockbox_Go/internal/event"
	"github.com/osse101/Lockbox_Go/internal/eventlog"
	"github.com/osse101/Lockbox_Go/internal/logger"
	"github.com/osse101/Lockbox_Go/internal/metrics"
)

// RegisterEventHandlers subscribes the metrics collector and the ledger
// journal to the bus
func RegisterEventHandlers(bus event.Bus, journal eventlog.Service) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	logger.Info(LogMsgMetricsCollectorRegistered)

	if err := journal.Subscribe(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
	}
	logger.Info(LogMsgEventLoggerInitialized)

	return nil
}
