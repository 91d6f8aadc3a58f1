package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"coachmarket.backend/internal/interfaces/http/handlers"
	"coachmarket.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	onboardingHandler *handlers.OnboardingHandler
	checkoutHandler   *handlers.CheckoutHandler
	webhookHandler    *handlers.WebhookHandler
	coachHandler      *handlers.CoachHandler
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Intake forms (public)
		coaches := v1.Group("/coaches")
		{
			coaches.POST("/apply", middleware.IdempotencyMiddleware(), d.coachHandler.Apply)
			coaches.GET("", d.coachHandler.ListCoaches)
			coaches.GET("/:slug", d.coachHandler.GetCoach)
			coaches.GET("/:slug/payments", d.coachHandler.ListCoachPayments)
		}
		v1.POST("/intake", middleware.IdempotencyMiddleware(), d.coachHandler.SubmitIntake)

		// Payment gateway integration
		stripeGroup := v1.Group("/stripe")
		{
			stripeGroup.POST("/connect-link", d.onboardingHandler.CreateConnectLink)
		}
		v1.POST("/checkout", middleware.IdempotencyMiddleware(), d.checkoutHandler.CreateCheckout)

		// Signed gateway deliveries; no idempotency middleware here, the
		// processor is idempotent by construction.
		webhooks := v1.Group("/webhooks")
		{
			webhooks.POST("/stripe", d.webhookHandler.HandleStripeWebhook)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID, Idempotency-Key, Stripe-Signature")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
