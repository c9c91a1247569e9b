package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bitbucket.org/crgw/booking-hub/internal/middleware"
	"bitbucket.org/crgw/booking-hub/internal/schema"
	"bitbucket.org/crgw/booking-hub/internal/tools/slowlog"
)

func RegisterRoutes(router *gin.Engine, pipeline *Pipeline) {
	router.POST("/booking", func(ctx *gin.Context) {
		logger := ctx.MustGet("logger").(*zerolog.Logger)

		slowLog := slowlog.CreateLogger(logger)
		slowLog.Start("booking")
		defer slowLog.Stop("booking")

		var raw schema.RawBookingSubmission
		if err := ctx.ShouldBindJSON(&raw); err != nil {
			middleware.HandleError(ctx, http.StatusBadRequest, "Failed to bind booking submission", err)
			return
		}

		success, failure := pipeline.Submit(ctx.Request.Context(), raw, logger)
		if failure != nil {
			status, message := failureResponse(failure)
			middleware.HandleError(ctx, status, message, failure)
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"order":         success.Order,
			"authorization": success.Authorization,
			"totalAmount":   success.Price.TotalAmount,
			"currency":      success.Price.Currency,
		})
	})
}

func failureResponse(failure *Failure) (int, string) {
	switch failure.Stage {
	case schema.StageValidating:
		return http.StatusBadRequest, failure.Err.Error()

	case schema.StageFetchingOffer:
		if errors.Is(failure.Err, schema.ErrOfferNotFound) {
			return http.StatusNotFound, "The selected offer is no longer available"
		}
		return http.StatusBadGateway, "Failed fetching the offer"

	case schema.StagePricing:
		return http.StatusUnprocessableEntity, "The offer cannot be priced"

	case schema.StageAuthorizing:
		return http.StatusBadGateway, "Payment could not be authorized"

	default:
		return http.StatusBadGateway, "The booking could not be completed"
	}
}
