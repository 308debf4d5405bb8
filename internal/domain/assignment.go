package domain

import "context"

// Assignment records that a candidate occupies (or is proposed for) a
// vacancy. VacancyTitle is a snapshot taken at assignment time and goes
// stale when the vacancy is edited later.
type Assignment struct {
	CandidateID  string `json:"candidate_id"`
	VacancyID    string `json:"vacancy_id"`
	VacancyTitle string `json:"vacancy_title"`
}

// AssignmentView is an assignment as seen from the candidate list.
// Dangling is set when the referenced vacancy no longer exists.
type AssignmentView struct {
	Assignment
	CandidateName string `json:"candidate_name"`
	Dangling      bool   `json:"dangling"`
}

// AssignmentRecordRepository reads the legacy asignaciones collection.
// It is only ever counted.
type AssignmentRecordRepository interface {
	Count(ctx context.Context) (int64, error)
}

type AssignmentUsecase interface {
	Assign(ctx context.Context, candidateID, vacancyID string) (*Assignment, error)
	Unassign(ctx context.Context, candidateID string) error
	ListAssignments(ctx context.Context) ([]AssignmentView, error)
}
