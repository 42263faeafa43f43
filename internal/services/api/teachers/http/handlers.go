// Package http provides http transport for teachers
package http

import (
	stdhttp "net/http"

	"chalkline/internal/modkit/httpkit"
	"chalkline/internal/services/api/teachers/domain"
	svc "chalkline/internal/services/api/teachers/service"
)

// Register mounts teacher endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateInput](r, "/create", h.create)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.UpdateInput](r, "/update", h.update)
	httpkit.PostJSON[domain.DeleteInput](r, "/delete", h.del)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /teachers/create Teachers teachersCreate
// @Summary Create a teacher
// @Tags Teachers
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Teacher"
// @Success 200 {object} domain.Teacher "ok"
// @Router /teachers/create [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// swagger:route POST /teachers/get Teachers teachersGet
// @Summary Fetch one teacher
// @Tags Teachers
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "Id"
// @Success 200 {object} domain.Teacher "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /teachers/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in)
}

// swagger:route POST /teachers/list Teachers teachersList
// @Summary List teachers
// @Tags Teachers
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Filters"
// @Success 200 {array} domain.Teacher "ok"
// @Router /teachers/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /teachers/update Teachers teachersUpdate
// @Summary Update a teacher, including availability and the active flag
// @Tags Teachers
// @Accept json
// @Produce json
// @Param payload body domain.UpdateInput true "Update"
// @Success 200 {object} domain.Teacher "ok"
// @Router /teachers/update [post]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), in)
}

// swagger:route POST /teachers/delete Teachers teachersDelete
// @Summary Delete a teacher
// @Tags Teachers
// @Accept json
// @Produce json
// @Param payload body domain.DeleteInput true "Id"
// @Success 200 {object} domain.Deleted "ok"
// @Router /teachers/delete [post]
func (h *handlers) del(r *stdhttp.Request, in domain.DeleteInput) (any, error) {
	return h.svc.Delete(r.Context(), in)
}
