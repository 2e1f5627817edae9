package adapter

import (
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/soul-scribe/internal/logger"
)

// restyLogger routes resty's internal messages into zerolog.
type restyLogger struct {
	log *logger.Logger
}

func newRestyLogger(log *logger.Logger) resty.Logger {
	return &restyLogger{log: log}
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Str("component", "resty").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Str("component", "resty").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Str("component", "resty").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
