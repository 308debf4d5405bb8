package usecase

import (
	"context"
	"time"

	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"
)

// RefreshMessage is returned by a manual refresh; the counts are already live.
const RefreshMessage = "Los datos ya están sincronizados en tiempo real."

type statisticsUsecase struct {
	vacancyRepo    domain.VacancyRepository
	candidateRepo  domain.CandidateRepository
	assignmentRepo domain.AssignmentRecordRepository
	buckets        domain.StatusBuckets
	now            func() time.Time
}

func NewStatisticsUsecase(
	vacancyRepo domain.VacancyRepository,
	candidateRepo domain.CandidateRepository,
	assignmentRepo domain.AssignmentRecordRepository,
	buckets domain.StatusBuckets,
) domain.StatisticsUsecase {
	return &statisticsUsecase{
		vacancyRepo:    vacancyRepo,
		candidateRepo:  candidateRepo,
		assignmentRepo: assignmentRepo,
		buckets:        buckets,
		now:            time.Now,
	}
}

// CountByStatus classifies a snapshot by exact status match. Values that
// match neither bucket are reported as Other and excluded from both.
func CountByStatus(vacancies []domain.Vacancy, buckets domain.StatusBuckets, asOf time.Time) domain.VacancyStats {
	stats := domain.VacancyStats{Total: len(vacancies), AsOf: asOf}
	for _, v := range vacancies {
		switch string(v.Status) {
		case buckets.Available:
			stats.Available++
		case buckets.Unavailable:
			stats.Unavailable++
		default:
			stats.Other++
		}
	}
	return stats
}

func (u *statisticsUsecase) CurrentVacancyStats(ctx context.Context) (*domain.VacancyStats, error) {
	vacancies, err := u.vacancyRepo.List(ctx)
	if err != nil {
		return nil, storeError(err, vacancyNotFound)
	}
	stats := CountByStatus(vacancies, u.buckets, u.now())
	return &stats, nil
}

// SubscribeVacancyStats publishes a fresh aggregate for every vacancy
// snapshot. The caller must cancel the returned subscription.
func (u *statisticsUsecase) SubscribeVacancyStats(ctx context.Context, onStats func(domain.VacancyStats)) (domain.Subscription, error) {
	sub, err := u.vacancyRepo.Watch(ctx, func(vacancies []domain.Vacancy) {
		onStats(CountByStatus(vacancies, u.buckets, u.now()))
	})
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	return sub, nil
}

func (u *statisticsUsecase) Refresh(ctx context.Context) string {
	return RefreshMessage
}

func (u *statisticsUsecase) Summary(ctx context.Context) (*domain.Summary, error) {
	vacancies, err := u.vacancyRepo.List(ctx)
	if err != nil {
		return nil, storeError(err, vacancyNotFound)
	}
	candidates, err := u.candidateRepo.List(ctx)
	if err != nil {
		return nil, storeError(err, candidateNotFound)
	}
	records, err := u.assignmentRepo.Count(ctx)
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}

	summary := &domain.Summary{
		Vacancies:         int64(len(vacancies)),
		Candidates:        int64(len(candidates)),
		AssignmentRecords: records,
	}
	for i := range candidates {
		if candidates[i].Assignment() != nil {
			summary.AssignedCandidates++
		}
	}
	return summary, nil
}
