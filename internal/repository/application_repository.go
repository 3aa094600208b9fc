package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board/internal/domain"
)

// ApplicationRepository manages job application persistence. Listings are
// returned in insertion order.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	ListByJob(ctx context.Context, jobID string) ([]domain.Application, error)
	ListByJobs(ctx context.Context, jobIDs []string) ([]domain.Application, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository constructs repository.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

const applicationColumns = `id, job_id, candidate_id, name, email, resume, applied_at`

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	const query = `
        INSERT INTO applications (job_id, candidate_id, name, email, resume)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, applied_at`
	err := r.pool.QueryRow(ctx, query,
		app.JobID,
		app.CandidateID,
		app.Name,
		app.Email,
		app.Resume,
	).Scan(&app.ID, &app.AppliedAt)
	return translate(err)
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	const query = `SELECT ` + applicationColumns + ` FROM applications WHERE job_id=$1 ORDER BY seq`
	rows, err := r.pool.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *applicationRepository) ListByJobs(ctx context.Context, jobIDs []string) ([]domain.Application, error) {
	if len(jobIDs) == 0 {
		return []domain.Application{}, nil
	}
	const query = `SELECT ` + applicationColumns + ` FROM applications WHERE job_id = ANY($1::uuid[]) ORDER BY seq`
	rows, err := r.pool.Query(ctx, query, jobIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func scanApplications(rows pgx.Rows) ([]domain.Application, error) {
	result := []domain.Application{}
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID,
			&app.JobID,
			&app.CandidateID,
			&app.Name,
			&app.Email,
			&app.Resume,
			&app.AppliedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	return result, rows.Err()
}
