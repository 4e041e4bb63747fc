package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/ecoleta/internal/handlers/middleware"
	"github.com/rafabene/ecoleta/internal/infrastructure/i18n"
)

const baseURLContextKey = middleware.BaseURLContextKey

// T é um helper para traduzir mensagens no contexto do Gin
// Uso: dto.T(c, "validation.required", map[string]interface{}{"Field": "name"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	// Buscar serviço i18n do contexto
	i18nService, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		// Fallback: retornar a chave se serviço não estiver disponível
		return key
	}

	service, ok := i18nService.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// Has informa se a chave existe no idioma da requisição
func Has(c *gin.Context, key string) bool {
	i18nService, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		return false
	}

	service, ok := i18nService.(*i18n.Service)
	if !ok {
		return false
	}

	return service.Has(GetLanguage(c), key)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	lang, exists := c.Get(middleware.LanguageContextKey)
	if !exists {
		return "en" // Fallback
	}

	langStr, ok := lang.(string)
	if !ok {
		return "en"
	}

	return langStr
}
