package routes

import (
	"clearview_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPrices = "/prices"
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	rg.POST(PathPrices, h.CalculatePrices)

	quotes := rg.Group(PathQuotes)
	{
		// Intake form and lookups.
		quotes.POST("", h.StartQuote)
		quotes.GET("", h.ListQuotes)
		quotes.GET("/:id", h.GetQuote)

		// Estimator session.
		quotes.POST("/:id/session", h.OpenSession)
		quotes.GET("/:id/session", h.GetSession)
		quotes.POST("/:id/main-service", h.SelectMainService)
		quotes.POST("/:id/add-ons", h.ToggleAddOn)
		quotes.PUT("/:id/frequency", h.SetFrequency)
		quotes.POST("/:id/submit", h.SubmitQuote)

		// After submit.
		quotes.POST("/:id/email", h.SendEstimateEmail)
		quotes.GET("/:id/booking", h.GetBookingLink)
	}
}
