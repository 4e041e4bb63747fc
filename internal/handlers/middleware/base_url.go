package middleware

import "github.com/gin-gonic/gin"

// BaseURLContextKey guarda a base URL pública usada em image_url e nos tipos de problema
const BaseURLContextKey = "base_url"

// BaseURL adiciona a base URL configurada ao contexto
func BaseURL(baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(BaseURLContextKey, baseURL)
		c.Next()
	}
}
