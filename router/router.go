package router

import (
	"time"

	"clubfund/api"
	"clubfund/config"
	_ "clubfund/docs"
	"clubfund/middleware"
	"clubfund/service"
	"clubfund/store"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter wires services and routes on top of the given store.
func SetupRouter(cfg *config.Config, st store.Store) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	identity := service.NewIdentityService(st)
	ledger := service.NewLedgerService(st)
	submissions := service.NewSubmissionService(st, ledger)

	authHandler := api.NewAuthHandler(cfg, identity)
	fundHandler := api.NewFundHandler(ledger)
	expenseHandler := api.NewExpenseHandler(ledger)
	submissionHandler := api.NewSubmissionHandler(cfg, submissions)
	summaryHandler := api.NewSummaryHandler(ledger, submissions)
	exportHandler := api.NewExportHandler(ledger)

	r := gin.Default()
	r.Use(CORSMiddleware())

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// auth
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", middleware.RateLimit(10, time.Minute), authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		// public ledger views
		v1.GET("/ledger", summaryHandler.Ledger)
		v1.GET("/summary", summaryHandler.Monthly)
		v1.GET("/funds", fundHandler.List)
		v1.GET("/expenses", expenseHandler.List)

		// public submission intake
		v1.POST("/submissions", middleware.RateLimit(10, time.Minute), submissionHandler.Submit)

		// authenticated
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.GET("/auth/profile", authHandler.GetProfile)

			// admin only
			admin := authorized.Group("")
			admin.Use(middleware.AdminOnly())
			{
				admin.GET("/dashboard", summaryHandler.Dashboard)
				admin.POST("/funds", fundHandler.Create)
				admin.POST("/expenses", expenseHandler.Create)

				admin.GET("/submissions/pending", submissionHandler.ListPending)
				admin.POST("/submissions/:id/approve", submissionHandler.Approve)
				admin.POST("/submissions/:id/reject", submissionHandler.Reject)

				admin.GET("/export/funds", exportHandler.ExportFunds)
				admin.GET("/export/expenses", exportHandler.ExportExpenses)
				admin.GET("/export/excel", exportHandler.ExportExcel)
			}
		}
	}

	// uploaded screenshots
	r.Static("/uploads", cfg.Upload.Dir)

	// health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware allows browser clients from any origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
