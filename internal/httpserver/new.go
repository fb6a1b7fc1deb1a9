package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	chatHTTP "jewelry-concierge/internal/chat/delivery/http"
	leadHTTP "jewelry-concierge/internal/lead/delivery/http"
	legacyHTTP "jewelry-concierge/internal/legacy/delivery/http"
	"jewelry-concierge/internal/middleware"
	researchHTTP "jewelry-concierge/internal/research/delivery/http"
	widgetHTTP "jewelry-concierge/internal/widget/delivery/http"
	"jewelry-concierge/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin  *gin.Engine
	l    log.Logger
	port int
	mode string

	// Middleware
	mw           middleware.Middleware
	corsOrigins  []string
	trustedHosts []string

	// Domain handlers
	chatHandler     chatHTTP.Handler
	leadHandler     leadHTTP.Handler
	researchHandler researchHTTP.Handler
	legacyHandler   legacyHTTP.Handler
	widgetHandler   widgetHTTP.Handler

	// Health signals
	llmConfigured bool
	crmEnabled    bool
	searchEnabled bool
	widgetReady   bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Port int
	Mode string

	Middleware   middleware.Middleware
	CORSOrigins  []string
	TrustedHosts []string

	ChatHandler     chatHTTP.Handler
	LeadHandler     leadHTTP.Handler
	ResearchHandler researchHTTP.Handler
	LegacyHandler   legacyHTTP.Handler
	WidgetHandler   widgetHTTP.Handler

	LLMConfigured bool
	CRMEnabled    bool
	SearchEnabled bool
	WidgetReady   bool
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		mw:              cfg.Middleware,
		corsOrigins:     cfg.CORSOrigins,
		trustedHosts:    cfg.TrustedHosts,
		chatHandler:     cfg.ChatHandler,
		leadHandler:     cfg.LeadHandler,
		researchHandler: cfg.ResearchHandler,
		legacyHandler:   cfg.LegacyHandler,
		widgetHandler:   cfg.WidgetHandler,
		llmConfigured:   cfg.LLMConfigured,
		crmEnabled:      cfg.CRMEnabled,
		searchEnabled:   cfg.SearchEnabled,
		widgetReady:     cfg.WidgetReady,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	if srv.leadHandler == nil {
		return errors.New("lead handler is required")
	}
	if srv.researchHandler == nil {
		return errors.New("research handler is required")
	}
	if srv.legacyHandler == nil {
		return errors.New("legacy handler is required")
	}
	if srv.widgetHandler == nil {
		return errors.New("widget handler is required")
	}
	return nil
}
