package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/app"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/job"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/middleware"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type jobRequest struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Requirements job.Requirements `json:"requirements"`
	Deadline     time.Time        `json:"deadline"`
}

type jobUpdateRequest struct {
	Deadline time.Time `json:"deadline"`
	IsActive *bool     `json:"is_active"`
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Create(r.Context(), job.Job{
		CompanyID:    ident.SubjectID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Deadline:     req.Deadline,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 0)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	updated, err := h.jobs.Update(r.Context(), ident.SubjectID, jobID, req.Deadline, isActive)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *JobHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.jobs.Deactivate(r.Context(), ident.SubjectID, jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 0)
	if err != nil {
		response.Error(w, err)
		return
	}
	found, err := h.jobs.Get(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, found)
}

func (h *JobHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	items, err := h.jobs.ListActive(r.Context(), limit, offset)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *JobHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.jobs.ListByCompany(r.Context(), ident.SubjectID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
