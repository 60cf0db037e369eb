package adaptor

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ListPackages handles GET /api/packages (public)
func (h *CatalogHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 12)
	packageType := query.Get("type")
	locale := query.Get("locale")

	packages, err := h.service.ListPackages(r.Context(), packageType, locale, page, perPage)
	if err != nil {
		handleServiceError(h.log, w, err, "list packages")
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// GetPackageBySlug handles GET /api/packages/{slug} (public)
func (h *CatalogHandler) GetPackageBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Package slug is required", nil)
		return
	}

	pkg, err := h.service.GetPackageBySlug(r.Context(), slug, r.URL.Query().Get("locale"))
	if err != nil {
		handleServiceError(h.log, w, err, "get package by slug")
		return
	}

	utils.ResponseSuccess(w, "success", pkg)
}

// ==================== ADMIN METHODS ====================

// CreatePackage handles POST /api/admin/packages (admin only)
func (h *CatalogHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.PackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	pkg, err := h.service.CreatePackage(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create package")
		return
	}

	utils.ResponseCreated(w, "success", pkg)
}

// ListAllPackages handles GET /api/admin/packages (admin only)
func (h *CatalogHandler) ListAllPackages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 20)

	packages, err := h.service.ListAllPackages(r.Context(), page, perPage)
	if err != nil {
		handleServiceError(h.log, w, err, "list all packages")
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// GetPackageByID handles GET /api/admin/packages/{id} (admin only)
func (h *CatalogHandler) GetPackageByID(w http.ResponseWriter, r *http.Request) {
	packageID := chi.URLParam(r, "id")
	if packageID == "" {
		utils.ResponseBadRequest(w, "Package ID is required", nil)
		return
	}

	pkg, err := h.service.GetPackageByID(r.Context(), packageID)
	if err != nil {
		handleServiceError(h.log, w, err, "get package by ID")
		return
	}

	utils.ResponseSuccess(w, "success", pkg)
}

// UpdatePackage handles PUT /api/admin/packages/{id} (admin only)
func (h *CatalogHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	packageID := chi.URLParam(r, "id")
	if packageID == "" {
		utils.ResponseBadRequest(w, "Package ID is required", nil)
		return
	}

	var req request.PackageUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	pkg, err := h.service.UpdatePackage(r.Context(), packageID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update package")
		return
	}

	utils.ResponseSuccess(w, "success", pkg)
}

// DeletePackage handles DELETE /api/admin/packages/{id} (admin only)
func (h *CatalogHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	packageID := chi.URLParam(r, "id")
	if packageID == "" {
		utils.ResponseBadRequest(w, "Package ID is required", nil)
		return
	}

	if err := h.service.DeletePackage(r.Context(), packageID); err != nil {
		handleServiceError(h.log, w, err, "delete package")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
