package web

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/gin-gonic/gin"

	"bitbucket.org/crgw/booking-hub/internal/middleware"
)

// OpenapiValidator rejects requests that do not match the served API
// contract before any handler runs. A missing or broken contract file
// turns the middleware into a pass-through.
func OpenapiValidator(content []byte) gin.HandlerFunc {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(content)
	if err == nil {
		err = doc.Validate(loader.Context)
	}

	var contractRouter routers.Router
	if err == nil {
		contractRouter, err = legacyrouter.NewRouter(doc)
	}

	if err != nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		route, pathParams, findErr := contractRouter.FindRoute(c.Request)
		if findErr != nil {
			c.Next()
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    c.Request,
			PathParams: pathParams,
			Route:      route,
			Options: &openapi3filter.Options{
				AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
			},
		}

		if validateErr := openapi3filter.ValidateRequest(c.Request.Context(), input); validateErr != nil {
			middleware.HandleError(c, http.StatusBadRequest, "Request does not match the API contract", validateErr)
			return
		}

		c.Next()
	}
}
