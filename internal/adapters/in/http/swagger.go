package http

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const swaggerInstance = "dispatch"

type swaggerDoc string

func (d swaggerDoc) ReadDoc() string { return string(d) }

var (
	swaggerOnce sync.Once
	swaggerErr  error
)

// registerSwaggerDoc publishes the OpenAPI document to the swag registry the
// UI handler reads from. swag panics on a second registration under the same
// name, and the document is the same for every echo instance.
func registerSwaggerDoc(swagger *openapi3.T) error {
	swaggerOnce.Do(func() {
		data, err := swagger.MarshalJSON()
		if err != nil {
			swaggerErr = fmt.Errorf("marshal openapi document: %w", err)
			return
		}
		swag.Register(swaggerInstance, swaggerDoc(data))
	})
	return swaggerErr
}

// swaggerHandler serves the Swagger UI under /swagger/index.html and the
// document under /swagger/doc.json.
func swaggerHandler() echo.HandlerFunc {
	return echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(swaggerInstance))
}
