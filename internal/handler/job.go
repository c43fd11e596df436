package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hireorbit/backend/internal/auth"
	"github.com/hireorbit/backend/internal/repository"
	"github.com/hireorbit/backend/internal/service"
)

// JobHandler serves the job endpoints. Both routes sit behind RequireAuth,
// and every query is scoped to the account the middleware resolved.
type JobHandler struct {
	jobs   *service.JobService
	logger *slog.Logger
}

// NewJobHandler creates a JobHandler.
func NewJobHandler(jobs *service.JobService, logger *slog.Logger) *JobHandler {
	return &JobHandler{
		jobs:   jobs,
		logger: logger,
	}
}

// HandleList returns the caller's jobs.
//
// HTTP: GET /jobs?limit=N&offset=M (both optional)
// Auth: required
func (h *JobHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Detail: "Not authenticated"})
		return
	}

	opts := repository.ListOptions{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}

	jobs, err := h.jobs.ListForOwner(r.Context(), user.ID, opts)
	if err != nil {
		h.logger.Error("listing jobs failed",
			slog.String("userID", user.ID),
			slog.String("error", err.Error()),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, jobs)
}

// HandleCreate persists a new job owned by the caller.
//
// HTTP: POST /jobs {title, description?, deadline?}
// Auth: required
func (h *JobHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Detail: "Not authenticated"})
		return
	}

	var req createJobRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	job, err := h.jobs.Create(r.Context(), user.ID, req.Title, req.Description, req.Deadline)
	if err != nil {
		h.logger.Error("creating job failed",
			slog.String("userID", user.ID),
			slog.String("error", err.Error()),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// queryInt parses an integer query parameter; 0 (the "use defaults" value)
// on absence or garbage.
func queryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
