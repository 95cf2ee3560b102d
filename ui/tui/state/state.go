package state

import (
	"time"

	"circleprogress/internal/collector"
	"circleprogress/internal/engine"
)

type Page int

const (
	PageMenu    Page = iota
	PageGauge        // ring driven by keys or a sensor source
	PageConsole      // "Event Console"
)

// AppState holds what the pages render between frames.
type AppState struct {
	CurrentPage Page

	// Source feeding the gauge; empty means manual control.
	Source     string
	Sample     collector.Sample
	HasSample  bool
	Result     engine.CheckResult
	LastUpdate time.Time
	Err        error

	ConsoleLogs []string
}

// Log appends a timestamped line, keeping at most limit entries.
func (s *AppState) Log(at time.Time, line string, limit int) {
	s.ConsoleLogs = append(s.ConsoleLogs, "["+at.Format("15:04:05")+"] "+line)
	if limit > 0 && len(s.ConsoleLogs) > limit {
		s.ConsoleLogs = s.ConsoleLogs[len(s.ConsoleLogs)-limit:]
	}
}

// ResetSource clears everything learned from the previous source.
func (s *AppState) ResetSource(source string) {
	s.Source = source
	s.Sample = collector.Sample{}
	s.HasSample = false
	s.Result = engine.CheckResult{}
	s.Err = nil
}
