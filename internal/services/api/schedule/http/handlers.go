// Package http provides http transport for schedule events
package http

import (
	stdhttp "net/http"

	"chalkline/internal/modkit/httpkit"
	"chalkline/internal/services/api/schedule/domain"
	svc "chalkline/internal/services/api/schedule/service"
)

// Register mounts schedule endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateInput](r, "/create", h.create)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.UpdateInput](r, "/update", h.update)
	httpkit.PostJSON[domain.DeleteInput](r, "/delete", h.del)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /schedule/create Schedule scheduleCreate
// @Summary Schedule an event
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Event"
// @Success 200 {object} domain.Event "ok"
// @Router /schedule/create [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// swagger:route POST /schedule/get Schedule scheduleGet
// @Summary Fetch one event
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "Id"
// @Success 200 {object} domain.Event "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /schedule/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in)
}

// swagger:route POST /schedule/list Schedule scheduleList
// @Summary List events
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Filters"
// @Success 200 {array} domain.Event "ok"
// @Router /schedule/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /schedule/update Schedule scheduleUpdate
// @Summary Update an event
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body domain.UpdateInput true "Update"
// @Success 200 {object} domain.Event "ok"
// @Router /schedule/update [post]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), in)
}

// swagger:route POST /schedule/delete Schedule scheduleDelete
// @Summary Delete an event
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body domain.DeleteInput true "Id"
// @Success 200 {object} domain.Deleted "ok"
// @Router /schedule/delete [post]
func (h *handlers) del(r *stdhttp.Request, in domain.DeleteInput) (any, error) {
	return h.svc.Delete(r.Context(), in)
}
