// Package http provides http transport for classrooms
package http

import (
	stdhttp "net/http"

	"chalkline/internal/modkit/httpkit"
	"chalkline/internal/services/api/classrooms/domain"
	svc "chalkline/internal/services/api/classrooms/service"
)

// Register mounts classrooms endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateInput](r, "/create", h.create)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.UpdateInput](r, "/update", h.update)
	httpkit.PostJSON[domain.DeleteInput](r, "/delete", h.del)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /classrooms/create Classrooms classroomsCreate
// @Summary Create a classroom
// @Tags Classrooms
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Classroom"
// @Success 200 {object} domain.Classroom "ok"
// @Router /classrooms/create [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// swagger:route POST /classrooms/get Classrooms classroomsGet
// @Summary Fetch one classroom
// @Tags Classrooms
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "Id"
// @Success 200 {object} domain.Classroom "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /classrooms/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in)
}

// swagger:route POST /classrooms/list Classrooms classroomsList
// @Summary List classrooms
// @Tags Classrooms
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Filters"
// @Success 200 {array} domain.Classroom "ok"
// @Router /classrooms/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /classrooms/update Classrooms classroomsUpdate
// @Summary Update a classroom
// @Tags Classrooms
// @Accept json
// @Produce json
// @Param payload body domain.UpdateInput true "Update"
// @Success 200 {object} domain.Classroom "ok"
// @Router /classrooms/update [post]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), in)
}

// swagger:route POST /classrooms/delete Classrooms classroomsDelete
// @Summary Delete a classroom
// @Tags Classrooms
// @Accept json
// @Produce json
// @Param payload body domain.DeleteInput true "Id"
// @Success 200 {object} domain.Deleted "ok"
// @Router /classrooms/delete [post]
func (h *handlers) del(r *stdhttp.Request, in domain.DeleteInput) (any, error) {
	return h.svc.Delete(r.Context(), in)
}
