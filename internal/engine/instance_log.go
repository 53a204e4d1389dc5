package engine

import (
	"ethereplodor-server/pkg/api"
	"fmt"

	"github.com/sirupsen/logrus"
)

// maxLogs bounds the batch kept between two snapshots.
const maxLogs = 200

// AddLog appends a game log line to the next snapshot batch.
func (s *Simulation) AddLog(text, logType string) {
	s.logSeq++
	if len(s.logs) >= maxLogs {
		s.logs = append(s.logs[:0], s.logs[1:]...)
	}
	s.logs = append(s.logs, api.LogEntry{
		ID:        fmt.Sprintf("%d_%d", s.tick, s.logSeq),
		Text:      text,
		Type:      logType,
		Timestamp: s.now.UnixMilli(),
	})
	s.log.WithFields(logrus.Fields{
		"tick":     s.tick,
		"log_type": logType,
	}).Debug(text)
}
