package web

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"venuehub/internal/domain/entities"
	"venuehub/pkg/auth"
)

const (
	userKey       = "user"
	localeKey     = "locale"
	authCookie    = "session"
	cookieAuthKey = "cookie_auth"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "venuehub_http_requests_total",
		Help: "Total number of HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "venuehub_http_request_duration_seconds",
		Help:    "Duration of HTTP request handling",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Metrics records request counts and latencies per route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Tracing opens a server span per request, continuing any incoming trace.
func Tracing() gin.HandlerFunc {
	tracer := otel.Tracer("venuehub/web")
	return func(c *gin.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		name := c.Request.Method + " " + c.FullPath()
		ctx, span := tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(
			attribute.String("http.request.method", c.Request.Method),
			attribute.String("http.route", c.FullPath()),
			attribute.Int("http.response.status_code", status),
		)
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}

// Locale picks the response language from Accept-Language.
func Locale(tr Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(localeKey, tr.Match(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// Authenticate attaches the user carried by a valid bearer token or session
// cookie. Requests without one continue anonymously.
func Authenticate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := bearerToken(c)
		fromCookie := false
		if tok == "" {
			tok, _ = c.Cookie(authCookie)
			fromCookie = tok != ""
		}
		if tok != "" {
			if claims, err := auth.ParseValidate(secret, tok); err == nil {
				c.Set(userKey, &entities.User{ID: claims.Subject, Username: claims.Name})
				c.Set(cookieAuthKey, fromCookie)
			}
		}
		c.Next()
	}
}

// SameOriginCookie rejects state-changing requests authenticated by the
// session cookie unless Origin, or failing that Referer, names this host.
// Bearer-token requests cannot be forged cross-site and pass through.
func SameOriginCookie() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isMutation(c.Request.Method) || !c.GetBool(cookieAuthKey) {
			c.Next()
			return
		}
		if !sameOrigin(c.Request) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func sameOrigin(r *http.Request) bool {
	source := strings.TrimSpace(r.Header.Get("Origin"))
	if source == "" {
		source = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if source == "" || r.Host == "" {
		return false
	}
	u, err := url.Parse(source)
	if err != nil || u.Host == "" {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

// RequireUser redirects anonymous page requests to the login page.
func RequireUser(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentUser(c); !ok {
			target := loginURL + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireUserJSON rejects anonymous API requests with 401.
func (h *Handler) RequireUserJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentUser(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"code":    "unauthorized",
				"message": h.t(c, "errors.unauthorized", nil),
			}})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func currentUser(c *gin.Context) (*entities.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*entities.User)
	return u, ok && u != nil
}

func localeOf(c *gin.Context) string {
	return c.GetString(localeKey)
}

func (h *Handler) t(c *gin.Context, key string, data map[string]any) string {
	return h.tr.T(localeOf(c), key, data)
}
