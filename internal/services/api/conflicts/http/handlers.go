// Package http provides http transport for conflict detection
package http

import (
	stdhttp "net/http"

	"chalkline/internal/modkit/httpkit"
	"chalkline/internal/services/api/conflicts/domain"
	svc "chalkline/internal/services/api/conflicts/service"
)

// Register mounts conflict endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CheckInput](r, "/check", h.check)
	httpkit.PostJSON[domain.ScanInput](r, "/scan", h.scan)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /conflicts/check Conflicts conflictsCheck
// @Summary Evaluate an inline snapshot for hard constraint conflicts
// @Tags Conflicts
// @Accept json
// @Produce json
// @Param payload body domain.CheckInput true "Snapshot"
// @Success 200 {object} domain.Report "ok"
// @Failure 400 {object} httpkit.Envelope "invalid snapshot"
// @Router /conflicts/check [post]
func (h *handlers) check(r *stdhttp.Request, in domain.CheckInput) (any, error) {
	return h.svc.Check(r.Context(), in)
}

// swagger:route POST /conflicts/scan Conflicts conflictsScan
// @Summary Run detection over the full stored schedule
// @Tags Conflicts
// @Accept json
// @Produce json
// @Param payload body domain.ScanInput true "Options"
// @Success 200 {object} domain.Report "ok"
// @Router /conflicts/scan [post]
func (h *handlers) scan(r *stdhttp.Request, in domain.ScanInput) (any, error) {
	return h.svc.Scan(r.Context(), in)
}
