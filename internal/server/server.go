package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	authdomain "github.com/smallbiznis/sica/internal/auth/domain"
	"github.com/smallbiznis/sica/internal/auth/session"
	"github.com/smallbiznis/sica/internal/config"
	"github.com/smallbiznis/sica/internal/observability"
	obslogger "github.com/smallbiznis/sica/internal/observability/logger"
	"github.com/smallbiznis/sica/internal/observability/metrics"
	"github.com/smallbiznis/sica/internal/observability/tracing"
	productdomain "github.com/smallbiznis/sica/internal/product/domain"
	providerdomain "github.com/smallbiznis/sica/internal/provider/domain"
	saledomain "github.com/smallbiznis/sica/internal/sale/domain"
	statsdomain "github.com/smallbiznis/sica/internal/stats/domain"
	userdomain "github.com/smallbiznis/sica/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Server holds the HTTP handler dependencies.
type Server struct {
	log      *zap.Logger
	sessions *session.Manager
	auth     authdomain.Service
	users    userdomain.Service
	products productdomain.Service
	provs    providerdomain.Service
	sales    saledomain.Service
	stats    statsdomain.Service
}

type Params struct {
	fx.In

	Log      *zap.Logger
	Sessions *session.Manager
	Auth     authdomain.Service
	Users    userdomain.Service
	Products productdomain.Service
	Provs    providerdomain.Service
	Sales    saledomain.Service
	Stats    statsdomain.Service
}

func New(p Params) *Server {
	return &Server{
		log:      p.Log.Named("server"),
		sessions: p.Sessions,
		auth:     p.Auth,
		users:    p.Users,
		products: p.Products,
		provs:    p.Provs,
		sales:    p.Sales,
		stats:    p.Stats,
	}
}

// NewEngine builds the gin engine with the shared middleware chain and
// operational endpoints. Route registration happens separately so tests
// can mount a subset.
func NewEngine(log *zap.Logger, obsCfg observability.Config, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	if !obsCfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(log, obslogger.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(tracing.GinMiddleware())
	r.Use(metrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(httpMetrics.Registry(), promhttp.HandlerOpts{})))

	return r
}

// RegisterRoutes mounts the API surface.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.POST("/login", s.Login)

	authed := r.Group("/", s.AuthRequired())
	{
		authed.POST("/logout", s.Logout)

		authed.GET("/user", s.ListUsers)
		authed.POST("/user", s.CreateUser)
		authed.GET("/user/:id", s.GetUser)
		authed.PUT("/user/:id", s.UpdateUser)
		authed.DELETE("/user/:id", s.DeactivateUser)

		authed.GET("/product", s.ListProducts)
		authed.POST("/product", s.CreateProduct)
		authed.GET("/product/:id", s.GetProduct)
		authed.PUT("/product/:id", s.UpdateProduct)
		authed.DELETE("/product/:id", s.DeactivateProduct)

		authed.GET("/provider", s.ListProviders)
		authed.POST("/provider", s.CreateProvider)
		authed.GET("/provider/:id", s.GetProvider)
		authed.PUT("/provider/:id", s.UpdateProvider)
		authed.DELETE("/provider/:id", s.DeactivateProvider)

		authed.GET("/sale", s.ListSales)
		authed.POST("/sale", s.CreateSale)
		authed.GET("/sale/date", s.ListSalesByDate)
		authed.GET("/sale/product/:id", s.ListSalesByProduct)
		authed.GET("/sale/user/:id", s.ListSalesByUser)

		authed.GET("/stats/products", s.TopProducts)
		authed.GET("/stats/sales/day", s.SalesPerDay)
		authed.GET("/stats/sales/week", s.SalesPerWeek)
		authed.GET("/stats/sales/month", s.SalesPerMonth)
		authed.GET("/stats/sales/seller", s.SalesPerSeller)
	}
}

type RunParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Cfg       config.Config
	Log       *zap.Logger
	Engine    *gin.Engine
	Server    *Server
}

// Run starts the HTTP listener and ties it to the fx lifecycle.
func Run(p RunParams) {
	p.Server.RegisterRoutes(p.Engine)

	srv := &http.Server{
		Addr:              p.Cfg.HTTPAddr,
		Handler:           p.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log := p.Log.Named("server")
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := newListener(ctx, srv.Addr)
			if err != nil {
				return err
			}
			log.Info("http server listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("http server shutting down")
			return srv.Shutdown(ctx)
		},
	})
}

func newListener(ctx context.Context, addr string) (net.Listener, error) {
	var lc net.ListenConfig
	return lc.Listen(ctx, "tcp", addr)
}

// Module wires the HTTP server into the application graph.
var Module = fx.Module("server",
	fx.Provide(New),
	fx.Provide(NewEngine),
	fx.Invoke(Run),
)
