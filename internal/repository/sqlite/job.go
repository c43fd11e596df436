package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/hireorbit/backend/internal/model"
	"github.com/hireorbit/backend/internal/repository"
)

// Compile-time check that *DB implements repository.JobRepository.
var _ repository.JobRepository = (*DB)(nil)

// CreateJob inserts a new job posting. The ID and CreatedAt are assigned
// here; OwnerID is trusted — the caller is always an authenticated session,
// and the foreign key rejects an owner that does not exist.
func (db *DB) CreateJob(ctx context.Context, job *model.Job) error {
	job.ID = xid.New().String()
	job.CreatedAt = time.Now()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO jobs (id, title, description, deadline, owner_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		job.ID,
		job.Title,
		job.Description,
		job.Deadline,
		job.OwnerID,
		job.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting job: %w", err)
	}

	return nil
}

// ListJobsByOwner returns the jobs owned by ownerID, newest first.
// Jobs owned by other accounts are never included.
func (db *DB) ListJobsByOwner(ctx context.Context, ownerID string, opts repository.ListOptions) ([]model.Job, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, title, description, deadline, owner_id, created_at
		 FROM jobs
		 WHERE owner_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ? OFFSET ?`,
		ownerID,
		limit,
		offset,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing jobs for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	jobs := make([]model.Job, 0, limit)

	for rows.Next() {
		var j model.Job
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Description, &j.Deadline,
			&j.OwnerID, &j.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning job row: %w", err)
		}
		jobs = append(jobs, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating jobs: %w", err)
	}

	return jobs, nil
}
