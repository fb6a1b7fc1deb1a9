package httpserver

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "jewelry-concierge/internal/chat/delivery/http"
	leadHTTP "jewelry-concierge/internal/lead/delivery/http"
	legacyHTTP "jewelry-concierge/internal/legacy/delivery/http"
	researchHTTP "jewelry-concierge/internal/research/delivery/http"
	widgetHTTP "jewelry-concierge/internal/widget/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(srv.mw.Recovery())

	ctx := context.Background()
	if len(srv.trustedHosts) > 0 {
		srv.gin.Use(srv.mw.TrustedHosts(srv.trustedHosts))
		srv.l.Infof(ctx, "Trusted hosts: %v", srv.trustedHosts)
	}

	corsCfg := cors.DefaultConfig()
	if len(srv.corsOrigins) == 0 {
		// The widget gets embedded on storefronts we do not control.
		corsCfg.AllowAllOrigins = true
		srv.l.Infof(ctx, "CORS mode: allow all origins")
	} else {
		corsCfg.AllowOrigins = srv.corsOrigins
		srv.l.Infof(ctx, "CORS mode: allow-list of %d origins", len(srv.corsOrigins))
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Admin-Token")
	srv.gin.Use(cors.New(corsCfg))
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv HTTPServer) registerDomainRoutes() {
	chatHTTP.RegisterRoutes(srv.gin, srv.chatHandler, srv.mw)
	leadHTTP.RegisterRoutes(srv.gin, srv.leadHandler, srv.mw)
	researchHTTP.RegisterRoutes(srv.gin, srv.researchHandler, srv.mw)
	legacyHTTP.RegisterRoutes(srv.gin, srv.legacyHandler)
	widgetHTTP.RegisterRoutes(srv.gin, srv.widgetHandler)

	srv.l.Infof(context.Background(), "Domain routes registered")
}

// Engine exposes the router for in-process testing.
func (srv HTTPServer) Engine() *gin.Engine {
	return srv.gin
}
