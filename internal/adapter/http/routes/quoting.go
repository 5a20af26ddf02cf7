package routes

import (
	"linguaquote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes  = "/quotes"
	PathReviews = "/reviews"
)

func addQuotingRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, reviewHandler *handlers.ReviewHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.POST("/fast", quoteHandler.FastQuote)
		quotes.GET("/number/:number", quoteHandler.GetQuoteByNumber)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.DELETE("/:id", quoteHandler.Cancel)
		quotes.POST("/:id/documents", quoteHandler.AttachDocument)
		quotes.POST("/:id/documents/:document_id/analysis", quoteHandler.ApplyAnalysis)
		quotes.POST("/:id/recompute", quoteHandler.RecomputeTotals)
		quotes.POST("/:id/review", quoteHandler.RequestReview)
		quotes.POST("/:id/pay", quoteHandler.Pay)
	}

	reviews := rg.Group(PathReviews)
	{
		reviews.GET("/:id", reviewHandler.GetReview)
		reviews.POST("/:id/claim", reviewHandler.Claim)
		reviews.POST("/:id/release", reviewHandler.Release)
		reviews.POST("/:id/force-release", reviewHandler.ForceRelease)
		reviews.POST("/:id/corrections", reviewHandler.SubmitCorrection)
		reviews.POST("/:id/approve", reviewHandler.Approve)
		reviews.POST("/:id/reject", reviewHandler.Reject)
		reviews.POST("/:id/escalate", reviewHandler.Escalate)
	}
}
