package airports

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bitbucket.org/crgw/booking-hub/internal/middleware"
)

const defaultLimit = 10

func RegisterRoutes(router *gin.Engine, client *Client) {
	router.GET("/airports", func(ctx *gin.Context) {
		logger := ctx.MustGet("logger").(*zerolog.Logger)

		searchQuery := ctx.Query("query")
		if searchQuery == "" {
			middleware.HandleError(ctx, http.StatusBadRequest, "query is required", nil)
			return
		}

		limit := defaultLimit
		if rawLimit := ctx.Query("limit"); rawLimit != "" {
			parsed, err := strconv.Atoi(rawLimit)
			if err != nil || parsed < 1 {
				middleware.HandleError(ctx, http.StatusBadRequest, "limit must be a positive integer", err)
				return
			}
			limit = parsed
		}

		airports, err := client.Search(ctx.Request.Context(), searchQuery, limit, logger)
		if err != nil {
			middleware.HandleError(ctx, http.StatusBadGateway, "Failed searching airports", err)
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"airports": airports,
		})
	})
}
