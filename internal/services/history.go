package services

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// CompressionRecord is one finished compression, persisted for the history
// view and lifetime statistics.
type CompressionRecord struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	FileName         string    `json:"file_name"`
	Level            string    `json:"level"`
	OriginalSize     int64     `json:"original_size"`
	CompressedSize   int64     `json:"compressed_size"`
	ReductionPercent float64   `json:"reduction_percent"`
	CreatedAt        time.Time `json:"created_at"`
}

// LifetimeStats aggregates all recorded compressions.
type LifetimeStats struct {
	FilesCompressed int64 `json:"files_compressed"`
	BytesSaved      int64 `json:"bytes_saved"`
}

// HistoryService persists compression history in the app database.
type HistoryService struct {
	db *gorm.DB
}

// NewHistoryService opens (and migrates) the history database.
func NewHistoryService(dbPath string) (*HistoryService, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&CompressionRecord{}); err != nil {
		return nil, err
	}

	return &HistoryService{db: db}, nil
}

// Record stores one finished compression.
func (s *HistoryService) Record(record *CompressionRecord) error {
	return s.db.Create(record).Error
}

// Recent returns the newest records, most recent first.
func (s *HistoryService) Recent(limit int) ([]CompressionRecord, error) {
	var records []CompressionRecord
	err := s.db.Order("created_at DESC").Limit(limit).Find(&records).Error
	return records, err
}

// Lifetime returns aggregate statistics over all records.
func (s *HistoryService) Lifetime() (LifetimeStats, error) {
	var stats LifetimeStats

	err := s.db.Model(&CompressionRecord{}).Count(&stats.FilesCompressed).Error
	if err != nil {
		return stats, err
	}

	err = s.db.Model(&CompressionRecord{}).
		Select("COALESCE(SUM(original_size - compressed_size), 0)").
		Scan(&stats.BytesSaved).Error
	return stats, err
}
