package cloudev

import (
	"time"

	"github.com/sirupsen/logrus"
)

// CallRecord is the structured diagnostic record emitted once per API
// call. It has no effect on control flow.
type CallRecord struct {
	Time         time.Time
	Name         string
	Method       string
	URL          string
	StatusCode   int
	RequestBody  []byte
	ResponseBody []byte
	Duration     time.Duration
}

// CallLogger receives one CallRecord per API call. Implementations must
// not retain the body slices past the call.
type CallLogger interface {
	LogCall(record CallRecord)
}

type nopCallLogger struct{}

func (nopCallLogger) LogCall(CallRecord) {}

// LogrusCallLogger writes call records to a logrus logger at debug level.
// It is the sink selected by the config LOGGER flag.
type LogrusCallLogger struct {
	logger *logrus.Logger
}

func NewLogrusCallLogger(logger *logrus.Logger) *LogrusCallLogger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusCallLogger{logger: logger}
}

func (l *LogrusCallLogger) LogCall(record CallRecord) {
	fields := logrus.Fields{
		"name":   record.Name,
		"method": record.Method,
		"url":    record.URL,
		"status": record.StatusCode,
		"took":   record.Duration,
	}
	if len(record.RequestBody) > 0 {
		fields["request"] = string(record.RequestBody)
	}
	if len(record.ResponseBody) > 0 {
		fields["response"] = string(record.ResponseBody)
	}
	l.logger.WithFields(fields).Debug("api call")
}
