package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jewelry-concierge/config"
	_ "jewelry-concierge/docs" // Swagger docs
	chatHTTP "jewelry-concierge/internal/chat/delivery/http"
	"jewelry-concierge/internal/chat/repository/memory"
	chatUC "jewelry-concierge/internal/chat/usecase"
	"jewelry-concierge/internal/httpserver"
	leadHTTP "jewelry-concierge/internal/lead/delivery/http"
	leadUC "jewelry-concierge/internal/lead/usecase"
	legacyHTTP "jewelry-concierge/internal/legacy/delivery/http"
	"jewelry-concierge/internal/middleware"
	researchHTTP "jewelry-concierge/internal/research/delivery/http"
	researchUC "jewelry-concierge/internal/research/usecase"
	"jewelry-concierge/internal/widget"
	widgetHTTP "jewelry-concierge/internal/widget/delivery/http"
	"jewelry-concierge/pkg/ghl"
	"jewelry-concierge/pkg/llm"
	"jewelry-concierge/pkg/log"
	"jewelry-concierge/pkg/tavily"
)

// @title       Brax Fine Jewelers Concierge API
// @description Conversational widget backend with CRM lead capture and jewelry market research.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Jewelry Concierge...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Active persona: %s", cfg.Persona.Active)

	// 3. Model gateway (required)
	gateway, err := llm.New(llm.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize model gateway: ", err)
		return
	}

	// 4. Optional integrations
	var crmClient ghl.IGHL
	if cfg.CRM.Enabled() {
		client, crmErr := ghl.New(logger, ghl.Config{
			PITToken:   cfg.CRM.Token,
			LocationID: cfg.CRM.LocationID,
			BaseURL:    cfg.CRM.BaseURL,
		})
		if crmErr != nil {
			logger.Warnf(ctx, "CRM not available (optional): %v", crmErr)
		} else {
			crmClient = client
			logger.Info(ctx, "CRM integration initialized")
		}
	} else {
		logger.Warn(ctx, "CRM skipped: GHL_API_TOKEN or GHL_LOCATION_ID is missing")
	}

	var searchClient tavily.ISearch
	if cfg.Search.APIKey != "" {
		client, searchErr := tavily.New(logger, cfg.Search.APIKey, "")
		if searchErr != nil {
			logger.Warnf(ctx, "Web search not available (optional): %v", searchErr)
		} else {
			searchClient = client
			logger.Info(ctx, "Web search integration initialized")
		}
	} else {
		logger.Warn(ctx, "Web search skipped: TAVILY_API_KEY is missing")
	}

	// 5. Widget renderer
	renderer, err := widget.NewRenderer(logger, cfg.Widget.AvatarPath)
	if err != nil {
		logger.Error(ctx, "Failed to initialize widget renderer: ", err)
		return
	}

	// 6. Domains
	sessionStore := memory.New(cfg.Session.MaxSessions, cfg.Session.TTL)
	chatUseCase := chatUC.New(logger, gateway, sessionStore, cfg.Persona.Prompt)
	chatHandler := chatHTTP.New(logger, chatUseCase, cfg.Admin.Token)

	leadUseCase := leadUC.New(logger, crmClient, leadUC.Config{
		PipelineID: cfg.CRM.PipelineID,
		StageID:    cfg.CRM.StageID,
	})
	leadHandler := leadHTTP.New(logger, leadUseCase)

	researchUseCase := researchUC.New(logger, searchClient)
	researchHandler := researchHTTP.New(logger, researchUseCase)

	legacyHandler := legacyHTTP.New(logger)
	widgetHandler := widgetHTTP.New(logger, renderer)

	mw := middleware.New(logger, middleware.Config{
		ChatPerMin:   cfg.RateLimit.ChatPerMin,
		ClearPerMin:  cfg.RateLimit.ClearPerMin,
		SearchPerMin: cfg.RateLimit.SearchPerMin,
		LeadPerMin:   cfg.RateLimit.LeadPerMin,
	})

	// 7. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Middleware:      mw,
		CORSOrigins:     cfg.CORS.AllowedOrigins,
		TrustedHosts:    cfg.HTTPServer.TrustedHosts,
		ChatHandler:     chatHandler,
		LeadHandler:     leadHandler,
		ResearchHandler: researchHandler,
		LegacyHandler:   legacyHandler,
		WidgetHandler:   widgetHandler,
		LLMConfigured:   cfg.LLM.APIKey != "",
		CRMEnabled:      crmClient != nil,
		SearchEnabled:   searchClient != nil,
		WidgetReady:     renderer != nil,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
