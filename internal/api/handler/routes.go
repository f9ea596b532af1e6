package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/ads-report-api/internal/api/handler/router"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-report-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		{
			Path:        "/metrics",
			Method:      http.MethodGet,
			Handler:     promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients/:id/sync",
			Method:      http.MethodPost,
			Handler:     SyncClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/report.csv",
			Method:      http.MethodGet,
			Handler:     DownloadReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/whatsapp",
			Method:      http.MethodPost,
			Handler:     SendWhatsApp(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func MassSync(service syncing.Syncer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync/mass-update",
			Method:      http.MethodPost,
			Handler:     MassUpdate(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(job DailyJob) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/daily/run",
			Method:      http.MethodPost,
			Handler:     RunDailyJob(job),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(job),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
