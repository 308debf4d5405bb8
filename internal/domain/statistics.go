package domain

import (
	"context"
	"time"
)

// StatusBuckets are the exact status literals counted by the aggregator.
type StatusBuckets struct {
	Available   string
	Unavailable string
}

func DefaultStatusBuckets() StatusBuckets {
	return StatusBuckets{Available: "Disponible", Unavailable: "No disponible"}
}

// VacancyStats is one aggregation of a vacancy snapshot. Each value
// replaces the previous one entirely.
type VacancyStats struct {
	Available   int       `json:"available"`
	Unavailable int       `json:"unavailable"`
	Other       int       `json:"other"`
	Total       int       `json:"total"`
	AsOf        time.Time `json:"as_of"`
}

// Summary backs the home screen counters.
type Summary struct {
	Vacancies          int64 `json:"vacancies"`
	Candidates         int64 `json:"candidates"`
	AssignmentRecords  int64 `json:"assignments_collection"`
	AssignedCandidates int64 `json:"assigned_candidates"`
}

type StatisticsUsecase interface {
	CurrentVacancyStats(ctx context.Context) (*VacancyStats, error)
	SubscribeVacancyStats(ctx context.Context, onStats func(VacancyStats)) (Subscription, error)
	Refresh(ctx context.Context) string
	Summary(ctx context.Context) (*Summary, error)
}
