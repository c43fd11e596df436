package model

import "time"

// Job represents a job posting created by a user.
//
// OwnerID references the account that created the job and is immutable —
// every job has exactly one owner, and listing is always scoped to the
// owner. Deadline is a free-form string (e.g. "2026-09-30" or "end of Q3");
// the system stores it verbatim and never interprets it.
type Job struct {
	ID          string    `json:"id"          db:"id"`
	Title       string    `json:"title"       db:"title"`
	Description string    `json:"description" db:"description"`
	Deadline    string    `json:"deadline"    db:"deadline"`
	OwnerID     string    `json:"ownerId"     db:"owner_id"`
	CreatedAt   time.Time `json:"createdAt"   db:"created_at"`
}
