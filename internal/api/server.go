package api

import (
	"github.com/gin-gonic/gin"

	"github.com/PhabloC/oakio-backend/internal/api/handlers"
	"github.com/PhabloC/oakio-backend/internal/api/middleware"
	"github.com/PhabloC/oakio-backend/internal/config"
	"github.com/PhabloC/oakio-backend/internal/service"
)

type Server struct {
	router   *gin.Engine
	config   *config.Config
	services *service.Services
}

func NewServer(cfg *config.Config, services *service.Services) *Server {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	server := &Server{
		router:   router,
		config:   cfg,
		services: services,
	}

	server.setupRoutes()

	return server
}

func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestLogger())

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api/v1")

	transactionHandler := handlers.NewTransactionHandler(s.services.Transaction)
	ativoHandler := handlers.NewAtivoHandler(s.services.Ativo)
	metaHandler := handlers.NewMetaHandler(s.services.Meta)
	dividaHandler := handlers.NewDividaHandler(s.services.Divida)
	patrimonioHandler := handlers.NewPatrimonioHandler(s.services.Patrimonio)
	dashboardHandler := handlers.NewDashboardHandler(s.services.Dashboard)
	simuladorHandler := handlers.NewSimuladorHandler(s.services.Simulador)
	imagemHandler := handlers.NewImagemHandler(s.services.Imagem)
	preferenciaHandler := handlers.NewPreferenciaHandler(s.services.Preferencia)

	// tudo autenticado: o token vem do provedor de identidade hospedado
	protected := api.Group("")
	protected.Use(middleware.Auth(s.config.JWTSecret))
	{
		// transações e agregados do fluxo de caixa
		transactions := protected.Group("/transacoes")
		{
			transactions.POST("", transactionHandler.Create)
			transactions.GET("", transactionHandler.List)
			transactions.GET("/resumo", transactionHandler.Resumo)
			transactions.GET("/por-dia", transactionHandler.PorDia)
			transactions.GET("/por-mes", transactionHandler.PorMes)
			transactions.PUT("/:id", transactionHandler.Update)
			transactions.PATCH("/:id/paga", transactionHandler.SetPaga)
			transactions.DELETE("/:id", transactionHandler.Delete)
		}

		// carteira de investimentos
		ativos := protected.Group("/ativos")
		{
			ativos.POST("", ativoHandler.Create)
			ativos.GET("", ativoHandler.List)
			ativos.GET("/alocacao", ativoHandler.Alocacao)
			ativos.POST("/reset-investimentos", ativoHandler.ResetInvestimentos)
			ativos.PUT("/:id", ativoHandler.Update)
			ativos.POST("/:id/aporte", ativoHandler.AddAporte)
			ativos.PATCH("/:id/valor-atual", ativoHandler.SetValorAtual)
			ativos.DELETE("/:id", ativoHandler.Delete)
		}

		// metas
		metas := protected.Group("/metas")
		{
			metas.POST("", metaHandler.Create)
			metas.GET("", metaHandler.List)
			metas.PUT("/:id", metaHandler.Update)
			metas.POST("/:id/adicionar", metaHandler.AddMoney)
			metas.POST("/:id/concluir", metaHandler.Complete)
			metas.POST("/:id/reabrir", metaHandler.Reopen)
			metas.DELETE("/:id", metaHandler.Delete)
		}

		// dívidas
		dividas := protected.Group("/dividas")
		{
			dividas.POST("", dividaHandler.Create)
			dividas.GET("", dividaHandler.List)
			dividas.PUT("/:id", dividaHandler.Update)
			dividas.POST("/:id/pagamento", dividaHandler.RegistrarPagamento)
			dividas.POST("/:id/quitar", dividaHandler.Quitar)
			dividas.DELETE("/:id", dividaHandler.Delete)
		}

		// patrimônio
		patrimonio := protected.Group("/patrimonio")
		{
			patrimonio.GET("/historico", patrimonioHandler.Historico)
			patrimonio.POST("/snapshot", patrimonioHandler.Snapshot)
		}

		protected.GET("/dashboard", dashboardHandler.Get)
		protected.GET("/reserva", dashboardHandler.Reserva)
		protected.POST("/simulador", simuladorHandler.Projetar)
		protected.GET("/imagens", imagemHandler.Search)
		protected.GET("/preferencias", preferenciaHandler.Get)
		protected.PUT("/preferencias", preferenciaHandler.Update)
	}
}
