package handlers

import (
	"net/http"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/app"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/institution"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/middleware"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/response"
)

type CatalogHandler struct {
	catalog *app.CatalogService
}

func NewCatalogHandler(catalog *app.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type institutionRequest struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Website string `json:"website"`
}

type courseRequest struct {
	InstitutionID string `json:"institution_id"`
	Name          string `json:"name"`
	Faculty       string `json:"faculty"`
	Description   string `json:"description"`
	DurationYears int    `json:"duration_years"`
}

func (h *CatalogHandler) CreateInstitution(w http.ResponseWriter, r *http.Request) {
	var req institutionRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.catalog.CreateInstitution(r.Context(), institution.Institution{
		Name:    req.Name,
		City:    req.City,
		Website: req.Website,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *CatalogHandler) ListInstitutions(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListInstitutions(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) GetInstitution(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 0)
	if err != nil {
		response.Error(w, err)
		return
	}
	found, err := h.catalog.GetInstitution(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, found)
}

func (h *CatalogHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req courseRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	institutionID, err := common.ParseUUID(req.InstitutionID)
	if err != nil {
		response.Error(w, common.NewError(common.CodeValidation, "invalid institution_id", err))
		return
	}
	created, err := h.catalog.CreateCourse(r.Context(), ident.InstitutionID, institution.Course{
		InstitutionID: institutionID,
		Name:          req.Name,
		Faculty:       req.Faculty,
		Description:   req.Description,
		DurationYears: req.DurationYears,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// ListCourses handles GET /institutions/{id}/courses.
func (h *CatalogHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	institutionID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.catalog.ListCourses(r.Context(), institutionID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 0)
	if err != nil {
		response.Error(w, err)
		return
	}
	found, err := h.catalog.GetCourse(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, found)
}
