// Package http provides http transport for course groups
package http

import (
	stdhttp "net/http"

	"chalkline/internal/modkit/httpkit"
	"chalkline/internal/services/api/groups/domain"
	svc "chalkline/internal/services/api/groups/service"
)

// Register mounts group endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateInput](r, "/create", h.create)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.UpdateInput](r, "/update", h.update)
	httpkit.PostJSON[domain.DeleteInput](r, "/delete", h.del)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /groups/create Groups groupsCreate
// @Summary Create a course group
// @Tags Groups
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Group"
// @Success 200 {object} domain.Group "ok"
// @Router /groups/create [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// swagger:route POST /groups/get Groups groupsGet
// @Summary Fetch one course group
// @Tags Groups
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "Id"
// @Success 200 {object} domain.Group "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /groups/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in)
}

// swagger:route POST /groups/list Groups groupsList
// @Summary List course groups
// @Tags Groups
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Filters"
// @Success 200 {array} domain.Group "ok"
// @Router /groups/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /groups/update Groups groupsUpdate
// @Summary Update a course group
// @Tags Groups
// @Accept json
// @Produce json
// @Param payload body domain.UpdateInput true "Update"
// @Success 200 {object} domain.Group "ok"
// @Router /groups/update [post]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), in)
}

// swagger:route POST /groups/delete Groups groupsDelete
// @Summary Delete a course group
// @Tags Groups
// @Accept json
// @Produce json
// @Param payload body domain.DeleteInput true "Id"
// @Success 200 {object} domain.Deleted "ok"
// @Router /groups/delete [post]
func (h *handlers) del(r *stdhttp.Request, in domain.DeleteInput) (any, error) {
	return h.svc.Delete(r.Context(), in)
}
