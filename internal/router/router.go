package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appointmentHandler "github.com/bizmate/booking-api/internal/handler/appointment"
	authHandler "github.com/bizmate/booking-api/internal/handler/auth"
	healthHandler "github.com/bizmate/booking-api/internal/handler/health"
	locationHandler "github.com/bizmate/booking-api/internal/handler/location"
	scheduleHandler "github.com/bizmate/booking-api/internal/handler/schedule"
	specialistHandler "github.com/bizmate/booking-api/internal/handler/specialist"
	"github.com/bizmate/booking-api/internal/middleware"
)

type Handlers struct {
	Auth        *authHandler.Handler
	Specialist  *specialistHandler.Handler
	Location    *locationHandler.Handler
	Schedule    *scheduleHandler.Handler
	Appointment *appointmentHandler.Handler
	Health      *healthHandler.Handler
}

type Config struct {
	RateLimitRPS float64
	RateBurst    int
	CORS         middleware.CORSConfig
}

type Router struct {
	engine   *gin.Engine
	auth     *middleware.AuthMiddleware
	handlers Handlers
	metrics  *routerMetrics
}

func NewRouter(auth *middleware.AuthMiddleware, handlers Handlers, config Config) *Router {
	gin.SetMode(gin.ReleaseMode)
	middleware.RegisterValidators()
	engine := gin.New()

	r := &Router{
		engine:   engine,
		auth:     auth,
		handlers: handlers,
		metrics:  newRouterMetrics(),
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
		middleware.CORS(config.CORS),
	)

	rateLimiter := middleware.NewRateLimiter(config.RateLimitRPS, config.RateBurst)
	engine.Use(rateLimiter.RateLimit())

	return r
}

// Setup mounts every route. Reads require a valid token; writes to staff,
// locations and schedules additionally require the manager role.
func (r *Router) Setup() {
	r.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.metrics.registry, promhttp.HandlerOpts{})))
	r.engine.GET("/healthz", r.handlers.Health.LivenessCheck)

	api := r.engine.Group("/api/v1")

	r.handlers.Health.RegisterRoutes(api)
	r.handlers.Auth.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(r.auth.Authenticate())

	manage := r.auth.RequireManager()
	r.handlers.Specialist.RegisterRoutes(protected, manage)
	r.handlers.Location.RegisterRoutes(protected, manage)
	r.handlers.Schedule.RegisterRoutes(protected, manage)
	r.handlers.Appointment.RegisterRoutes(protected)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

type routerMetrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func newRouterMetrics() *routerMetrics {
	m := &routerMetrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "booking_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "booking_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "booking_errors_total",
				Help: "Total number of HTTP error responses",
			},
			[]string{"method", "path", "type"},
		),
	}
	m.registry.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
