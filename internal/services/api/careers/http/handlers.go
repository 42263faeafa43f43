// Package http provides http transport for careers
package http

import (
	stdhttp "net/http"

	"chalkline/internal/modkit/httpkit"
	"chalkline/internal/services/api/careers/domain"
	svc "chalkline/internal/services/api/careers/service"
)

// Register mounts careers endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateInput](r, "/create", h.create)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.UpdateInput](r, "/update", h.update)
	httpkit.PostJSON[domain.DeleteInput](r, "/delete", h.del)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /careers/create Careers careersCreate
// @Summary Create a career
// @Tags Careers
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Career"
// @Success 200 {object} domain.Career "ok"
// @Router /careers/create [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// swagger:route POST /careers/get Careers careersGet
// @Summary Fetch one career
// @Tags Careers
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "Id"
// @Success 200 {object} domain.Career "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /careers/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in)
}

// swagger:route POST /careers/list Careers careersList
// @Summary List careers
// @Tags Careers
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Filters"
// @Success 200 {array} domain.Career "ok"
// @Router /careers/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /careers/update Careers careersUpdate
// @Summary Rename a career
// @Tags Careers
// @Accept json
// @Produce json
// @Param payload body domain.UpdateInput true "Update"
// @Success 200 {object} domain.Career "ok"
// @Router /careers/update [post]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), in)
}

// swagger:route POST /careers/delete Careers careersDelete
// @Summary Delete a career
// @Tags Careers
// @Accept json
// @Produce json
// @Param payload body domain.DeleteInput true "Id"
// @Success 200 {object} domain.Deleted "ok"
// @Router /careers/delete [post]
func (h *handlers) del(r *stdhttp.Request, in domain.DeleteInput) (any, error) {
	return h.svc.Delete(r.Context(), in)
}
