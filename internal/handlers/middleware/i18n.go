package middleware

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/ecoleta/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey guarda o idioma resolvido da requisição
	LanguageContextKey = "language"
	// I18nServiceContextKey guarda o serviço de traduções usado pelos DTOs
	I18nServiceContextKey = "i18n_service"
	// LanguageQueryParam sobrescreve o Accept-Language (?lang=pt-BR)
	LanguageQueryParam = "lang"
)

// I18n resolve o idioma das mensagens de erro da requisição.
// Ordem: ?lang, Accept-Language (por peso q), idioma padrão.
// O idioma escolhido volta no header Content-Language.
func I18n(service *i18n.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := matchLanguage(service, c.Query(LanguageQueryParam))
		if lang == "" {
			lang = ResolveLanguage(service, c.GetHeader("Accept-Language"))
		}
		if lang == "" {
			lang = service.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, service)
		c.Header("Content-Language", lang)

		c.Next()
	}
}

type weightedTag struct {
	tag    string
	weight float64
}

// ResolveLanguage escolhe o locale suportado de maior peso no Accept-Language.
// "pt", "pt-PT" e "pt-br" resolvem para "pt-BR"; "en-US" resolve para "en".
func ResolveLanguage(service *i18n.Service, header string) string {
	var tags []weightedTag
	for _, part := range strings.Split(header, ",") {
		tag, weight := parseWeightedTag(part)
		if tag == "" || tag == "*" || weight <= 0 {
			continue
		}
		tags = append(tags, weightedTag{tag: tag, weight: weight})
	}

	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].weight > tags[j].weight
	})

	for _, t := range tags {
		if lang := matchLanguage(service, t.tag); lang != "" {
			return lang
		}
	}

	return ""
}

func parseWeightedTag(part string) (string, float64) {
	tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
	weight := 1.0

	for _, param := range strings.Split(params, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || strings.TrimSpace(key) != "q" {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return "", 0
		}
		weight = q
	}

	return strings.TrimSpace(tag), weight
}

// matchLanguage compara sem diferenciar maiúsculas, primeiro a tag inteira e depois só o idioma base
func matchLanguage(service *i18n.Service, tag string) string {
	if tag == "" {
		return ""
	}

	supported := service.GetSupportedLanguages()
	for _, lang := range supported {
		if strings.EqualFold(lang, tag) {
			return lang
		}
	}

	base := baseLanguage(tag)
	for _, lang := range supported {
		if strings.EqualFold(baseLanguage(lang), base) {
			return lang
		}
	}

	return ""
}

func baseLanguage(tag string) string {
	base, _, _ := strings.Cut(tag, "-")
	return base
}
