package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board/internal/domain"
)

// JobRepository encapsulates job persistence.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context) ([]domain.Job, error)
	ListByPoster(ctx context.Context, employerID string) ([]domain.Job, error)
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository instantiates repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

const jobColumns = `id, title, company, location, type, description, responsibilities,
               qualifications, salary, posted_date, posted_by`

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (title, company, location, type, description, responsibilities,
                          qualifications, salary, posted_date, posted_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,COALESCE($9, NOW()),$10)
        RETURNING id, posted_date`

	var postedDate any
	if !job.PostedDate.IsZero() {
		postedDate = job.PostedDate
	}
	err := r.pool.QueryRow(ctx, query,
		job.Title,
		job.Company,
		job.Location,
		job.Type,
		job.Description,
		nonNil(job.Responsibilities),
		nonNil(job.Qualifications),
		job.Salary,
		postedDate,
		job.PostedBy,
	).Scan(&job.ID, &job.PostedDate)
	return translate(err)
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	const query = `SELECT ` + jobColumns + ` FROM jobs WHERE id=$1`
	var job domain.Job
	if err := r.pool.QueryRow(ctx, query, id).Scan(jobScanTargets(&job)...); err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

func (r *jobRepository) List(ctx context.Context) ([]domain.Job, error) {
	const query = `SELECT ` + jobColumns + ` FROM jobs ORDER BY seq`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *jobRepository) ListByPoster(ctx context.Context, employerID string) ([]domain.Job, error) {
	const query = `SELECT ` + jobColumns + ` FROM jobs WHERE posted_by=$1 ORDER BY seq`
	rows, err := r.pool.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func jobScanTargets(job *domain.Job) []any {
	return []any{
		&job.ID,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.Type,
		&job.Description,
		&job.Responsibilities,
		&job.Qualifications,
		&job.Salary,
		&job.PostedDate,
		&job.PostedBy,
	}
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	result := []domain.Job{}
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(jobScanTargets(&job)...); err != nil {
			return nil, err
		}
		result = append(result, job)
	}
	return result, rows.Err()
}

func nonNil(lines []string) []string {
	if lines == nil {
		return []string{}
	}
	return lines
}
