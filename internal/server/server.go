package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/rezonia/price-engine/internal/config"
	"github.com/rezonia/price-engine/internal/price"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool

	// Registry builds every price served. Nil uses price.Default().
	Registry *price.Registry
	Logger   *slog.Logger
}

// Server represents the HTTP API server
type Server struct {
	config   *Config
	router   *gin.Engine
	registry *price.Registry
	logger   *slog.Logger
	srv      *http.Server
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := config.Registry
	if registry == nil {
		registry = price.Default()
	}

	if err := registerValidators(); err != nil {
		logger.Error("failed to register validators", slog.String("error", err.Error()))
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))

	s := &Server{
		config:   config,
		router:   router,
		registry: registry,
		logger:   logger,
		srv: &http.Server{
			Addr:         config.Address,
			Handler:      router,
			ReadTimeout:  config.ReadTimeout,
			WriteTimeout: config.WriteTimeout,
		},
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/calculators", s.handleCalculators)

		prices := v1.Group("/prices")
		prices.POST("", s.handleBuild)
		prices.POST("/add", s.handleAdd)
		prices.POST("/subtract", s.handleSubtract)
		prices.POST("/multiply", s.handleMultiply)
		prices.POST("/divide", s.handleDivide)
		prices.POST("/adjust", s.handleAdjust)
	}
}

// Run starts the HTTP server. It returns nil after Shutdown.
func (s *Server) Run() error {
	s.logger.Info("server listening", slog.String("address", s.config.Address))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops a running server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleCalculators(c *gin.Context) {
	c.JSON(http.StatusOK, CalculatorsResponse{
		Calculators: config.Describe(s.registry),
	})
}

func (s *Server) handleBuild(c *gin.Context) {
	var req PriceRequest
	if !s.bind(c, &req) {
		return
	}

	p, err := s.build(req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, NewPriceResponse(p))
}

func (s *Server) handleAdd(c *gin.Context) {
	s.binary(c, price.Price.Add)
}

func (s *Server) handleSubtract(c *gin.Context) {
	s.binary(c, price.Price.Subtract)
}

func (s *Server) handleMultiply(c *gin.Context) {
	s.scale(c, price.Price.Multiply)
}

func (s *Server) handleDivide(c *gin.Context) {
	s.scale(c, price.Price.Divide)
}

func (s *Server) binary(c *gin.Context, op func(price.Price, price.Price) (price.Price, error)) {
	var req BinaryRequest
	if !s.bind(c, &req) {
		return
	}

	left, err := s.build(req.Left)
	if err != nil {
		s.fail(c, err)
		return
	}
	right, err := s.build(req.Right)
	if err != nil {
		s.fail(c, err)
		return
	}

	result, err := op(left, right)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, NewPriceResponse(result))
}

func (s *Server) scale(c *gin.Context, op func(price.Price, decimal.Decimal) (price.Price, error)) {
	var req ScaleRequest
	if !s.bind(c, &req) {
		return
	}

	p, err := s.build(req.Price)
	if err != nil {
		s.fail(c, err)
		return
	}

	result, err := op(p, *req.Factor)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, NewPriceResponse(result))
}

func (s *Server) handleAdjust(c *gin.Context) {
	var req AdjustRequest
	if !s.bind(c, &req) {
		return
	}

	p, err := s.build(req.Price)
	if err != nil {
		s.fail(c, err)
		return
	}

	var result price.Price
	switch req.Op {
	case "add_gross":
		result, err = p.AddGross(*req.Value, req.Currency)
	case "subtract_gross":
		result, err = p.SubtractGross(*req.Value, req.Currency)
	case "subtract_nett":
		result, err = p.SubtractNett(*req.Value, req.Currency)
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, NewPriceResponse(result))
}

// build turns a request into a price bound to the server's registry
func (s *Server) build(req PriceRequest) (price.Price, error) {
	rate := 0
	if req.TaxRate != nil {
		rate = *req.TaxRate
	}

	switch req.By {
	case "nett":
		return s.registry.BuildByNett(req.Nett, rate, req.Currency)
	case "gross":
		return s.registry.BuildByGross(req.Gross, rate, req.Currency)
	}

	opts := []price.Option{price.WithCurrency(req.Currency)}
	if req.TaxRate != nil {
		opts = append(opts, price.WithTaxRate(rate))
	}
	return s.registry.New(req.Nett, req.Gross, opts...)
}

func (s *Server) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		LoggerFrom(c).Warn("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return false
	}
	return true
}

func (s *Server) fail(c *gin.Context, err error) {
	status, kind := classify(err)
	LoggerFrom(c).Warn("price operation failed",
		slog.String("error", err.Error()),
		slog.String("kind", kind),
	)
	c.JSON(status, ErrorResponse{Error: err.Error(), Kind: kind})
}

// classify maps a price error kind to an HTTP status
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, price.ErrIncompatibleCurrency):
		return http.StatusConflict, "incompatible_currency"
	case errors.Is(err, price.ErrInvalidArgument):
		return http.StatusUnprocessableEntity, "invalid_argument"
	case errors.Is(err, price.ErrIllegalState):
		return http.StatusUnprocessableEntity, "illegal_state"
	default:
		return http.StatusInternalServerError, ""
	}
}
