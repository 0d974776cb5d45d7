package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	httpCtrl "github.com/secmon-lab/issuereport/pkg/controller/http"
	"github.com/secmon-lab/issuereport/pkg/domain/interfaces"
	"github.com/secmon-lab/issuereport/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/issuereport/pkg/domain/model"
	"github.com/secmon-lab/issuereport/pkg/domain/types"
	"github.com/secmon-lab/issuereport/pkg/usecase"
)

func newTestDashboard(t *testing.T) *usecase.Dashboard {
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	table := model.NewTable([]model.Issue{
		{Row: 1, Status: types.IssueStatusOpen, Severity: types.SeverityHigh, Projects: "Alpha, Beta", Platform: "AWS", Subscription: "sub-1", CreatedAt: created},
		{Row: 2, Status: types.IssueStatusResolved, Severity: types.SeverityLow, Projects: "Alpha", Platform: "AWS", Subscription: "sub-2", CreatedAt: created, ResolvedAt: created.AddDate(0, 0, 2)},
		{Row: 3, Status: types.IssueStatusOpen, Severity: types.SeverityMedium, Projects: "Gamma", Platform: "Azure", Subscription: "sub-3", CreatedAt: created.AddDate(0, 0, 1)},
	})
	session, err := model.NewSession("test.csv", table, time.UTC)
	gt.NoError(t, err).Required()
	return usecase.NewDashboard(session, nil)
}

func newTestServer(t *testing.T, uc interfaces.Dashboard) http.Handler {
	server, err := httpCtrl.NewServer(context.Background(), ":0", uc)
	gt.NoError(t, err).Required()
	return server.Handler
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var v T
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &v)).Required()
	return v
}

func TestHealth(t *testing.T) {
	w := get(t, newTestServer(t, newTestDashboard(t)), "/health")
	gt.Equal(t, w.Code, http.StatusOK)
	gt.Equal(t, w.Header().Get("Content-Type"), "application/json")

	body := decode[map[string]string](t, w)
	gt.Equal(t, body["status"], "healthy")
	gt.Equal(t, body["service"], "issuereport")
}

func TestCatalog(t *testing.T) {
	w := get(t, newTestServer(t, newTestDashboard(t)), "/api/catalog")
	gt.Equal(t, w.Code, http.StatusOK)

	selectors := decode[model.Selectors](t, w)
	gt.Equal(t, selectors.Projects, []string{types.AllProjects, "Alpha", "Beta", "Gamma"})
	gt.Equal(t, selectors.Platforms, []string{types.AllPlatforms, "AWS", "Azure"})
	gt.Equal(t, selectors.Subscriptions, []string{types.AllSubscriptions, "sub-1", "sub-2", "sub-3"})
	gt.Equal(t, selectors.Severities[0], types.AllSeverities)
}

func TestOptions(t *testing.T) {
	h := newTestServer(t, newTestDashboard(t))

	t.Run("project narrows subscriptions", func(t *testing.T) {
		w := get(t, h, "/api/options?project=Alpha")
		gt.Equal(t, w.Code, http.StatusOK)

		opts := decode[model.Options](t, w)
		gt.Equal(t, opts.Subscriptions, []string{types.AllSubscriptions, "sub-1", "sub-2"})
		gt.Equal(t, opts.Severities, []string{types.AllSeverities, "HIGH", "LOW"})
		gt.Equal(t, opts.Subscription, types.AllSubscriptions)
	})

	t.Run("platform narrows subscriptions", func(t *testing.T) {
		opts := decode[model.Options](t, get(t, h, "/api/options?platform=Azure"))
		gt.Equal(t, opts.Subscriptions, []string{types.AllSubscriptions, "sub-3"})
	})
}

func TestView(t *testing.T) {
	h := newTestServer(t, newTestDashboard(t))

	t.Run("unfiltered", func(t *testing.T) {
		w := get(t, h, "/api/view")
		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, w.Header().Get("Cache-Control"), "no-cache, no-store, no-transform, must-revalidate, private, max-age=0")

		view := decode[model.View](t, w)
		gt.Equal(t, view.Total, 3)
		gt.A(t, view.LineCharts).Longer(0)
		gt.A(t, view.PieGroups).Longer(0)
	})

	t.Run("filtered by query", func(t *testing.T) {
		view := decode[model.View](t, get(t, h, "/api/view?project=Beta&severity=HIGH"))
		gt.Equal(t, view.Total, 1)
		gt.Equal(t, view.Filter.Project, "Beta")
		gt.Equal(t, view.Filter.Platform, types.AllPlatforms)
	})

	t.Run("no matching rows", func(t *testing.T) {
		w := get(t, h, "/api/view?subscription=missing")
		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, decode[model.View](t, w).Total, 0)
	})
}

func TestViewError(t *testing.T) {
	uc := &mocks.DashboardMock{
		RenderFunc: func(ctx context.Context, filter model.Filter) (*model.View, error) {
			return nil, errors.New("broken table")
		},
	}

	w := get(t, newTestServer(t, uc), "/api/view?platform=AWS")
	gt.Equal(t, w.Code, http.StatusInternalServerError)
	gt.S(t, decode[map[string]string](t, w)["error"]).Contains("failed to render dashboard")

	calls := uc.RenderCalls()
	gt.A(t, calls).Length(1)
	gt.Equal(t, calls[0].Filter.Platform, "AWS")
}

func TestFrontend(t *testing.T) {
	h := newTestServer(t, newTestDashboard(t))

	w := get(t, h, "/")
	gt.Equal(t, w.Code, http.StatusOK)
	gt.S(t, w.Body.String()).Contains("Issue Report")

	w = get(t, h, "/app.js")
	gt.Equal(t, w.Code, http.StatusOK)
	gt.Equal(t, w.Header().Get("Content-Type"), "application/javascript; charset=utf-8")
	gt.S(t, w.Body.String()).Contains("/api/view")
}
