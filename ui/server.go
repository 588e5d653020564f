package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"math"
	"net/http"
	"strconv"

	"univar/app"
	"univar/internal"
	"univar/internal/config"
	"univar/ports"
	"univar/ui/services"
	"univar/ui/templates/fragments"

	"github.com/gin-gonic/gin"
)

// Server represents the web server for the univariate analysis page
type Server struct {
	router        *gin.Engine
	templates     *template.Template
	embeddedFiles fs.FS
	prose         *services.RenderService

	cfg      *config.Config
	reader   ports.DatasetReader
	store    ports.DatasetStore
	analysis *app.AnalysisService
	charts   ports.ChartRenderer
	logger   *internal.Logger
}

// Dependencies are the collaborators the server needs
type Dependencies struct {
	Config   *config.Config
	Reader   ports.DatasetReader
	Store    ports.DatasetStore
	Analysis *app.AnalysisService
	Charts   ports.ChartRenderer
	Logger   *internal.Logger
}

// NewServer creates a server whose templates and static files come from
// embeddedFiles, laid out as templates/ and static/.
func NewServer(embeddedFiles fs.FS, deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		deps.Config = config.Default()
	}
	if deps.Logger == nil {
		deps.Logger = internal.DefaultLogger
	}

	s := &Server{
		router:        gin.New(),
		embeddedFiles: embeddedFiles,
		prose:         services.NewRenderService(),
		cfg:           deps.Config,
		reader:        deps.Reader,
		store:         deps.Store,
		analysis:      deps.Analysis,
		charts:        deps.Charts,
		logger:        deps.Logger.WithComponent("Server"),
	}

	if err := s.parseTemplates(); err != nil {
		return nil, err
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

func (s *Server) funcMap() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"fmtFloat": func(v float64, decimals int) string {
			if math.IsNaN(v) {
				return "NaN"
			}
			return strconv.FormatFloat(v, 'f', decimals, 64)
		},
		"dataURI": func(img *ports.Image) template.URL {
			if img == nil {
				return ""
			}
			return template.URL(img.DataURI())
		},
		"prose": s.prose.Section,
	}
}

// parseTemplates parses every template file under templates/, naming each
// by its path relative to that directory.
func (s *Server) parseTemplates() error {
	templatesFS, err := fs.Sub(s.embeddedFiles, "templates")
	if err != nil {
		return fmt.Errorf("failed to create templates filesystem: %w", err)
	}

	root, err := fs.Glob(templatesFS, "*.html")
	if err != nil {
		return fmt.Errorf("failed to glob root templates: %w", err)
	}
	nested, err := fs.Glob(templatesFS, "*/*.html")
	if err != nil {
		return fmt.Errorf("failed to glob nested templates: %w", err)
	}
	files := append(root, nested...)
	if len(files) == 0 {
		return fmt.Errorf("no templates found")
	}

	s.templates = template.New("").Funcs(s.funcMap())
	for _, file := range files {
		content, err := fs.ReadFile(templatesFS, file)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", file, err)
		}
		if _, err := s.templates.New(file).Parse(string(content)); err != nil {
			return fmt.Errorf("failed to parse template %s: %w", file, err)
		}
	}
	for _, required := range fragments.GetAllTemplatePaths() {
		if s.templates.Lookup(required) == nil {
			return fmt.Errorf("missing template %s", required)
		}
	}
	s.logger.Debug("parsed %d templates: %v", len(files), files)
	return nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.POST("/upload", s.handleFileUpload)
	s.router.POST("/reset", s.handleReset)
	s.router.GET("/healthz", s.handleHealth)
}

// Mount serves h for every path under prefix
func (s *Server) Mount(prefix string, h http.Handler) {
	s.router.Any(prefix+"/*path", gin.WrapH(h))
}

// Handler exposes the gin engine
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	s.logger.Info("Starting univariate analysis UI on http://%s", addr)
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
