package http

import (
	"net/http"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issuereport/pkg/domain/interfaces"
	"github.com/secmon-lab/issuereport/pkg/domain/model"
	"github.com/secmon-lab/issuereport/pkg/utils/apperr"
)

// DashboardHandler serves the dashboard JSON API
type DashboardHandler struct {
	dashboardUC interfaces.Dashboard
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUC interfaces.Dashboard) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// HandleCatalog returns the initial option list of every selector
func (h *DashboardHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.dashboardUC.Selectors(r.Context()))
}

// HandleOptions returns the Subscription and Severity options for a
// Project and Resource Platform selection
func (h *DashboardHandler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	f := filterFromQuery(r.URL.Query()).Normalize()
	writeJSON(w, r, http.StatusOK, h.dashboardUC.Options(r.Context(), f.Project, f.Platform))
}

// HandleView renders every chart for the selection given in the query
func (h *DashboardHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter := filterFromQuery(r.URL.Query())

	view, err := h.dashboardUC.Render(ctx, filter)
	if err != nil {
		err = goerr.Wrap(err, "failed to render dashboard", goerr.V("filter", filter))
		apperr.Handle(ctx, err)
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, view)
}

func filterFromQuery(q url.Values) model.Filter {
	return model.Filter{
		Project:      q.Get("project"),
		Severity:     q.Get("severity"),
		Platform:     q.Get("platform"),
		Subscription: q.Get("subscription"),
	}
}
