// Package model defines shared data structures.
package model

import (
	"time"

	"github.com/verte-zerg/wordstat/internal/analyzer"
)

// Config defines analysis and output settings resolved from flags and config file.
type Config struct {
	TopN       int
	LongestN   int
	WPM        float64
	IgnoreFile string
	Format     string
	Color      bool
	Save       bool
}

// HistoryConfig defines filters for stored analyses.
type HistoryConfig struct {
	Source string
	Since  *time.Time
	Last   int
}

// AnalysisRecord is a stored analysis.
type AnalysisRecord struct {
	ID         int64
	AnalyzedAt time.Time
	Source     string
	Stats      analyzer.Stats
}
