package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rezonia/zugferd/internal/builder"
	"github.com/rezonia/zugferd/internal/capability"
	"github.com/rezonia/zugferd/internal/docspec"
	"github.com/rezonia/zugferd/internal/model"
	"github.com/rezonia/zugferd/internal/profile"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// Strict is the default for requests without a strict query parameter
	Strict bool
	Debug  bool
	Logger *slog.Logger
}

// Server represents the HTTP API server
type Server struct {
	config *Config
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config: config,
		router: router,
		logger: logger.With("component", "server"),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/profiles", s.handleProfiles)
		v1.GET("/profiles/:profile/capabilities", s.handleCapabilities)

		// Build endpoints take a YAML document description
		v1.POST("/documents", s.handleBuild)
		v1.POST("/check", s.handleCheck)
	}
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

func (s *Server) handleProfiles(c *gin.Context) {
	profiles := make([]ProfileResponse, 0, len(profile.All()))
	for _, p := range profile.All() {
		profiles = append(profiles, ProfileResponse{
			Name:      p.String(),
			Rank:      p.Rank(),
			Guideline: p.URN(),
			Fields:    capability.MaskFor(p).Len(),
		})
	}
	c.JSON(http.StatusOK, profiles)
}

func (s *Server) handleCapabilities(c *gin.Context) {
	p, err := profile.Parse(c.Param("profile"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	fields := capability.Fields(p)
	resp := CapabilitiesResponse{Profile: p.String(), Fields: make([]FieldResponse, 0, len(fields))}
	for _, f := range fields {
		resp.Fields = append(resp.Fields, FieldResponse{
			Field: f.String(),
			Mode:  f.Mode.String(),
			Since: f.Since.String(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleBuild(c *gin.Context) {
	d, ok := s.readDescription(c)
	if !ok {
		return
	}

	strict := s.config.Strict
	if raw := c.Query("strict"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid strict parameter", Details: err.Error()})
			return
		}
		strict = v
	}

	b, err := d.Build(c.Query("profile"), builder.WithStrict(strict), builder.WithLogger(s.logger))
	if err != nil {
		s.writeBuildError(c, b, err)
		return
	}

	doc, err := b.Finalize()
	if err != nil {
		s.writeBuildError(c, b, err)
		return
	}

	c.JSON(http.StatusOK, BuildResponse{
		Profile:   b.Profile().String(),
		Guideline: b.Profile().URN(),
		Document:  doc,
		Skipped:   skippedFields(b.Skipped()),
	})
}

func (s *Server) handleCheck(c *gin.Context) {
	d, ok := s.readDescription(c)
	if !ok {
		return
	}

	fits := make([]FitResponse, 0, len(profile.All()))
	for _, p := range profile.All() {
		b, err := d.Build(p.String())
		fit := FitResponse{Profile: p.String()}
		if b != nil {
			fit.Skipped = skippedFields(b.Skipped())
		}
		if err != nil {
			fit.Error = err.Error()
		}
		fits = append(fits, fit)
	}
	c.JSON(http.StatusOK, fits)
}

// readDescription decodes the request body. A posted description has no
// base directory, so any attachment it names fails the build.
func (s *Server) readDescription(c *gin.Context) (*docspec.Description, bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return nil, false
	}

	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body"})
		return nil, false
	}

	d, err := docspec.Load(bytes.NewReader(body))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid description", Details: err.Error()})
		return nil, false
	}
	return d, true
}

func (s *Server) writeBuildError(c *gin.Context, b *builder.Builder, err error) {
	resp := ErrorResponse{Error: "document build failed", Details: err.Error()}
	if b != nil {
		resp.Skipped = skippedFields(b.Skipped())
	}

	var (
		capErr          *model.CapabilityError
		constructionErr *model.ConstructionError
		requiredErr     *model.RequiredFieldError
		logicErr        *model.LogicError
	)
	switch {
	case b == nil:
		// profile could not be resolved
		c.JSON(http.StatusBadRequest, resp)
	case errors.As(err, &capErr), errors.As(err, &constructionErr),
		errors.As(err, &requiredErr), errors.As(err, &logicErr):
		c.JSON(http.StatusUnprocessableEntity, resp)
	default:
		s.logger.Error("document build failed", "error", err)
		c.JSON(http.StatusInternalServerError, resp)
	}
}

func skippedFields(skips []capability.Skip) []string {
	if len(skips) == 0 {
		return nil
	}
	fields := make([]string, len(skips))
	for i, s := range skips {
		fields[i] = s.Field
	}
	return fields
}
