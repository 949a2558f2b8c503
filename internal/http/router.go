package http

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/user"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/handlers"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/metrics"
	httpmw "github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/middleware"
)

type RouterDependencies struct {
	ProfileHandler        *handlers.ProfileHandler
	TranscriptHandler     *handlers.TranscriptHandler
	ApplicationHandler    *handlers.ApplicationHandler
	JobHandler            *handlers.JobHandler
	JobApplicationHandler *handlers.JobApplicationHandler
	CatalogHandler        *handlers.CatalogHandler
	NotificationHandler   *handlers.NotificationHandler
	ReportHandler         *handlers.ReportHandler
	MetricsHandler        *handlers.MetricsHandler
	AuthMiddleware        *httpmw.AuthMiddleware
	Metrics               *metrics.Collector
	Limiter               httpmw.Limiter
	Logger                *zap.Logger
	RequestTimeout        time.Duration
	ApplyRateLimit        int
	ApplyRateWindow       time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	if deps.ApplyRateLimit <= 0 {
		deps.ApplyRateLimit = 10
	}
	if deps.ApplyRateWindow <= 0 {
		deps.ApplyRateWindow = time.Minute
	}
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(),
		httpmw.RequestID,
		httpmw.Logging(r.deps.Logger),
		httpmw.BodyLimit(maxBodyBytes),
		httpmw.Recover(r.deps.Logger),
		httpmw.Metrics(r.deps.Metrics),
		httpmw.Timeout(r.deps.RequestTimeout),
	)
	handler.ServeHTTP(w, req)
}

func pathDepth(path string) int {
	return len(strings.Split(strings.Trim(path, "/"), "/"))
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.Get(w, req)
			return
		case req.Method == http.MethodGet && path == "/institutions":
			r.deps.CatalogHandler.ListInstitutions(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/institutions/") && strings.HasSuffix(path, "/courses"):
			r.deps.CatalogHandler.ListCourses(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/institutions/") && pathDepth(path) == 2:
			r.deps.CatalogHandler.GetInstitution(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/courses/") && pathDepth(path) == 2:
			r.deps.CatalogHandler.GetCourse(w, req)
			return
		case req.Method == http.MethodGet && path == "/jobs":
			r.deps.JobHandler.ListActive(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/") && pathDepth(path) == 2:
			r.deps.JobHandler.Get(w, req)
			return
		}

		protectedPrefixes := []string{"/profile", "/transcripts", "/applications", "/jobs", "/job-applications", "/companies", "/notifications", "/reports", "/institutions", "/courses"}
		for _, prefix := range protectedPrefixes {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(r.handleProtected))
				protected.ServeHTTP(w, req)
				return
			}
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path
	requireStudent := httpmw.RequireRole(user.RoleStudent)
	requireCompany := httpmw.RequireRole(user.RoleCompany)
	requireInstitution := httpmw.RequireRole(user.RoleInstitution)
	requireAdmin := httpmw.RequireRole(user.RoleAdmin)
	applyLimit := httpmw.RateLimit(r.deps.Limiter, httpmw.SubjectKey, r.deps.ApplyRateLimit, r.deps.ApplyRateWindow)

	switch {
	case req.Method == http.MethodGet && path == "/profile":
		requireStudent(http.HandlerFunc(r.deps.ProfileHandler.Get)).ServeHTTP(w, req)
		return
	case (req.Method == http.MethodPut || req.Method == http.MethodPost) && path == "/profile":
		requireStudent(http.HandlerFunc(r.deps.ProfileHandler.Upsert)).ServeHTTP(w, req)
		return

	case req.Method == http.MethodPost && path == "/transcripts":
		requireStudent(http.HandlerFunc(r.deps.TranscriptHandler.Upload)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/transcripts/latest":
		requireStudent(http.HandlerFunc(r.deps.TranscriptHandler.Latest)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/transcripts":
		requireStudent(http.HandlerFunc(r.deps.TranscriptHandler.List)).ServeHTTP(w, req)
		return

	case req.Method == http.MethodPost && path == "/applications":
		requireStudent(applyLimit(http.HandlerFunc(r.deps.ApplicationHandler.Apply))).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/applications/eligibility":
		requireStudent(http.HandlerFunc(r.deps.ApplicationHandler.Eligibility)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/applications/incoming":
		requireInstitution(http.HandlerFunc(r.deps.ApplicationHandler.ListForInstitution)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/applications":
		requireStudent(http.HandlerFunc(r.deps.ApplicationHandler.ListMine)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/withdraw"):
		requireStudent(http.HandlerFunc(r.deps.ApplicationHandler.Withdraw)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/status"):
		requireInstitution(http.HandlerFunc(r.deps.ApplicationHandler.UpdateStatus)).ServeHTTP(w, req)
		return

	case req.Method == http.MethodPost && path == "/jobs":
		requireCompany(http.HandlerFunc(r.deps.JobHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/jobs/") && pathDepth(path) == 2:
		requireCompany(http.HandlerFunc(r.deps.JobHandler.Update)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/jobs/") && strings.HasSuffix(path, "/deactivate"):
		requireCompany(http.HandlerFunc(r.deps.JobHandler.Deactivate)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/companies/jobs":
		requireCompany(http.HandlerFunc(r.deps.JobHandler.ListMine)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/jobs/") && strings.HasSuffix(path, "/applications"):
		requireStudent(applyLimit(http.HandlerFunc(r.deps.JobApplicationHandler.Apply))).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/") && strings.HasSuffix(path, "/applicants"):
		requireCompany(http.HandlerFunc(r.deps.JobApplicationHandler.Applicants)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/job-applications/") && strings.HasSuffix(path, "/status"):
		requireCompany(http.HandlerFunc(r.deps.JobApplicationHandler.UpdateStatus)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/job-applications":
		requireStudent(http.HandlerFunc(r.deps.JobApplicationHandler.ListMine)).ServeHTTP(w, req)
		return

	case req.Method == http.MethodPost && path == "/institutions":
		requireAdmin(http.HandlerFunc(r.deps.CatalogHandler.CreateInstitution)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/courses":
		requireInstitution(http.HandlerFunc(r.deps.CatalogHandler.CreateCourse)).ServeHTTP(w, req)
		return

	case req.Method == http.MethodGet && path == "/notifications":
		r.deps.NotificationHandler.List(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/notifications/") && strings.HasSuffix(path, "/read"):
		r.deps.NotificationHandler.MarkRead(w, req)
		return

	case req.Method == http.MethodGet && path == "/reports/overview":
		requireAdmin(http.HandlerFunc(r.deps.ReportHandler.Overview)).ServeHTTP(w, req)
		return
	}

	http.NotFound(w, req)
}
