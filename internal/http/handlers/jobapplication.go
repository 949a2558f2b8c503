package handlers

import (
	"net/http"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/app"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/jobapplication"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/middleware"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/response"
)

type JobApplicationHandler struct {
	jobApplications *app.JobApplicationService
}

func NewJobApplicationHandler(jobApplications *app.JobApplicationService) *JobApplicationHandler {
	return &JobApplicationHandler{jobApplications: jobApplications}
}

type jobApplicationStatusRequest struct {
	Status string `json:"status"`
}

// Apply handles POST /jobs/{id}/applications.
func (h *JobApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
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
	created, err := h.jobApplications.Apply(r.Context(), ident.SubjectID, jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// Applicants handles GET /jobs/{id}/applicants and returns the ranked list.
func (h *JobApplicationHandler) Applicants(w http.ResponseWriter, r *http.Request) {
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
	ranked, err := h.jobApplications.RankApplicants(r.Context(), ident.SubjectID, jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, ranked)
}

func (h *JobApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobAppID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobApplicationStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.jobApplications.UpdateStatus(r.Context(), ident.SubjectID, jobAppID, jobapplication.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *JobApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.jobApplications.ListByStudent(r.Context(), ident.SubjectID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
