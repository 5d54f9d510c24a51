package application

import (
	"log/slog"
	"sync"

	"slimpdf/internal/services"
	"slimpdf/internal/transport"
)

// AppStats combines lifetime totals from the history database with the
// current session's counters.
type AppStats struct {
	TotalFilesCompressed   int64 `json:"total_files_compressed"`
	TotalDataSaved         int64 `json:"total_data_saved"`
	SessionFilesCompressed int   `json:"session_files_compressed"`
	SessionDataSaved       int64 `json:"session_data_saved"`
}

type StatsManager struct {
	history *services.HistoryService
	emitter transport.EventEmitter
	logger  *slog.Logger

	mu           sync.Mutex
	sessionFiles int
	sessionSaved int64
}

func NewStatsManager(history *services.HistoryService, emitter transport.EventEmitter, logger *slog.Logger) *StatsManager {
	return &StatsManager{
		history: history,
		emitter: emitter,
		logger:  logger,
	}
}

// UpdateStats folds a finished run into the session counters and pushes a
// stats:update event.
func (m *StatsManager) UpdateStats(filesCompressed int, dataSaved int64) {
	m.mu.Lock()
	m.sessionFiles += filesCompressed
	m.sessionSaved += dataSaved
	m.mu.Unlock()

	m.emitter.Emit(transport.EventStatsUpdate, m.GetStats())
}

func (m *StatsManager) GetStats() *AppStats {
	m.mu.Lock()
	stats := &AppStats{
		SessionFilesCompressed: m.sessionFiles,
		SessionDataSaved:       m.sessionSaved,
	}
	m.mu.Unlock()

	lifetime, err := m.history.Lifetime()
	if err != nil {
		m.logger.Warn("failed to read lifetime stats", "error", err)
		return stats
	}

	stats.TotalFilesCompressed = lifetime.FilesCompressed
	stats.TotalDataSaved = lifetime.BytesSaved
	return stats
}
