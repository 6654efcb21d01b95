// Package docs 提供静态 API 文档：交互式 swagger-ui 页面
// 和 OpenAPI 描述文件。
package docs

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed openapi.json
var openapiSpec []byte

//go:embed swagger.html
var swaggerPage []byte

// SwaggerUI 返回交互式文档页面
func SwaggerUI(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", swaggerPage)
}

// OpenAPISpec 返回 OpenAPI JSON 描述
func OpenAPISpec(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", openapiSpec)
}
