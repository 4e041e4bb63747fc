package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/ecoleta/internal/handlers/dto"
	"github.com/rafabene/ecoleta/internal/services"
)

// ItemHandler lida com requisições HTTP relacionadas a itens
type ItemHandler struct {
	itemService *services.ItemService
}

// NewItemHandler cria um novo ItemHandler
func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

// ListItems godoc
// @Summary List items
// @Description Lista todos os itens de coleta, sem filtros nem paginação
// @Tags Items
// @Produce json
// @Success 200 {array} dto.ItemResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	items, err := h.itemService.ListItems(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		dto.AbortWithProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponses(dto.BaseURL(c), items))
}
