package handler

import (
	"log/slog"
	"net/http"

	"portfolio/internal/domain/services"
	"portfolio/internal/httputil"
)

// SkillHandler handles skill and category HTTP requests
type SkillHandler struct {
	skillService services.SkillService
	logger       *slog.Logger
}

// NewSkillHandler creates a new skill handler
func NewSkillHandler(skillService services.SkillService, logger *slog.Logger) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
		logger:       logger,
	}
}

// ListSkills retrieves all skills
// GET /skills
func (h *SkillHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skillService.ListSkills(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, skills)
}

// ListCategories retrieves all skill categories
// GET /skills/categories
func (h *SkillHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.skillService.ListCategories(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, categories)
}

// CreateSkill creates a new skill
// POST /admin/skill
func (h *SkillHandler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var req services.CreateSkillRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	skill, err := h.skillService.CreateSkill(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, skill)
}

// UpdateSkill updates a skill
// PUT /admin/skill/{id}
func (h *SkillHandler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req services.UpdateSkillRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	skill, err := h.skillService.UpdateSkill(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, skill)
}

// DeleteSkill deletes a skill
// DELETE /admin/skill/{id}
func (h *SkillHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.skillService.DeleteSkill(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateCategory creates a new skill category
// POST /admin/category
func (h *SkillHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req services.CategoryRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.skillService.CreateCategory(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, category)
}

// UpdateCategory updates a category
// PUT /admin/category/{id}
func (h *SkillHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req services.CategoryRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.skillService.UpdateCategory(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, category)
}

// DeleteCategory deletes a category; conflicts while skills reference it
// DELETE /admin/category/{id}
func (h *SkillHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.skillService.DeleteCategory(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
