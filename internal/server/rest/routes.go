package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) routes(opts Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	reg, gatherer := opts.Registerer, opts.Gatherer
	if reg == nil {
		r := prometheus.NewRegistry()
		reg, gatherer = r, r
	}
	m := newMetrics(reg)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		requestID(),
		accessLog(s.logger),
		m.instrument(),
	)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, detail("Not Found"))
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, detail("Method Not Allowed"))
	})
	r.HandleMethodNotAllowed = true

	r.GET("/", s.health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	limiter := newLoginLimiter(opts.LoginRate, opts.LoginBurst)
	a := r.Group("/auth", bodyLimit(maxBodyBytes))
	a.POST("/register", s.register)
	a.POST("/login", throttle(limiter, m), s.login)

	n := r.Group("/notes", bodyLimit(maxBodyBytes), s.authenticate())
	n.GET("/", s.listNotes)
	n.POST("/", s.createNote)
	n.GET("/search", s.searchNotes)
	n.GET("/:id", s.getNote)

	return r
}
