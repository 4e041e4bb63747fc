package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/ecoleta/internal/domain/entities"
	"github.com/rafabene/ecoleta/internal/domain/errors"
	"github.com/rafabene/ecoleta/internal/domain/valueobjects"
	"github.com/rafabene/ecoleta/internal/handlers/dto"
	"github.com/rafabene/ecoleta/internal/infrastructure/metrics"
	"github.com/rafabene/ecoleta/internal/services"
)

// PointHandler lida com requisições HTTP relacionadas a pontos de coleta
type PointHandler struct {
	pointService *services.PointService
	metrics      *metrics.Metrics
}

// NewPointHandler cria um novo PointHandler. metrics pode ser nil.
func NewPointHandler(pointService *services.PointService, m *metrics.Metrics) *PointHandler {
	return &PointHandler{
		pointService: pointService,
		metrics:      m,
	}
}

// CreatePoint godoc
// @Summary Create point
// @Description Cadastra um ponto de coleta com foto e itens aceitos
// @Tags Points
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Nome"
// @Param email formData string true "E-mail"
// @Param whatsapp formData string true "Whatsapp"
// @Param latitude formData number true "Latitude"
// @Param longitude formData number true "Longitude"
// @Param city formData string true "Cidade"
// @Param uf formData string true "UF"
// @Param items formData string true "Ids dos itens separados por vírgula"
// @Param image formData file true "Foto do ponto"
// @Success 201 {object} dto.PointResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /points [post]
func (h *PointHandler) CreatePoint(c *gin.Context) {
	var req dto.CreatePointRequest

	if err := c.ShouldBind(&req); err != nil {
		if fieldErrors := dto.ValidationErrors(c, err); fieldErrors != nil {
			dto.AbortWithProblem(c, dto.ValidationErrorResponseI18n(c, fieldErrors))
			return
		}
		_ = c.Error(err)
		dto.AbortWithProblem(c, dto.BadRequestErrorResponseI18n(c))
		return
	}

	latitude, longitude, err := req.Coordinates()
	if err != nil {
		dto.AbortWithProblem(c, dto.BadRequestErrorResponseI18n(c))
		return
	}

	itemIDs, err := req.ItemIDs()
	if err != nil {
		h.handleError(c, err)
		return
	}

	file, err := req.Image.Open()
	if err != nil {
		_ = c.Error(err)
		dto.AbortWithProblem(c, dto.BadRequestErrorResponseI18n(c))
		return
	}
	defer file.Close()

	point, err := h.pointService.CreatePoint(c.Request.Context(), services.CreatePointInput{
		Name:      req.Name,
		Email:     req.Email,
		Whatsapp:  req.Whatsapp,
		Latitude:  latitude,
		Longitude: longitude,
		City:      req.City,
		UF:        req.UF,
		ItemIDs:   itemIDs,
		Image:     &services.Upload{Name: req.Image.Filename, Content: file},
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.PointCreated(req.Image.Size)
	}

	c.JSON(http.StatusCreated, dto.ToPointResponse(dto.BaseURL(c), point))
}

// GetPoint godoc
// @Summary Get point
// @Description Busca um ponto com os títulos dos itens associados
// @Tags Points
// @Produce json
// @Param id path int true "Id do ponto"
// @Success 200 {object} dto.PointDetailResponse
// @Failure 400 {object} dto.MessageResponse
// @Router /points/{id} [get]
func (h *PointHandler) GetPoint(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: dto.PointNotFoundMessage})
		return
	}

	detail, err := h.pointService.GetPoint(c.Request.Context(), uint(id))
	if err != nil {
		if errs.Is(err, errors.ErrPointNotFound) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: dto.PointNotFoundMessage})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPointDetailResponse(dto.BaseURL(c), detail))
}

// ListPoints godoc
// @Summary List points
// @Description Lista pontos da cidade/UF que aceitam ao menos um dos itens
// @Tags Points
// @Produce json
// @Param city query string false "Cidade (igualdade exata)"
// @Param uf query string false "UF (igualdade exata)"
// @Param items query string false "Ids dos itens separados por vírgula"
// @Success 200 {array} dto.PointResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /points [get]
func (h *PointHandler) ListPoints(c *gin.Context) {
	var query dto.ListPointsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.AbortWithProblem(c, dto.BadRequestErrorResponseI18n(c))
		return
	}

	itemIDs, err := valueobjects.ParseItemIDs(query.Items)
	if err != nil {
		h.handleError(c, err)
		return
	}

	points, err := h.pointService.ListPoints(c.Request.Context(), services.ListPointsInput{
		City:    query.City,
		UF:      query.UF,
		ItemIDs: itemIDs.Uints(),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPointResponses(dto.BaseURL(c), points))
}

// handleError converte erros de domínio em respostas RFC 7807.
// A mensagem dos erros sentinela é a chave de tradução.
func (h *PointHandler) handleError(c *gin.Context, err error) {
	var field, tag string

	switch {
	case errs.Is(err, errors.ErrInvalidUF):
		field, tag, err = "uf", "max", errors.ErrInvalidUF
	case errs.Is(err, errors.ErrInvalidItemIDs):
		field, tag, err = "items", dto.ItemIDsTag, errors.ErrInvalidItemIDs
	case errs.Is(err, errors.ErrNoItems):
		field, tag, err = "items", "required", errors.ErrNoItems
	case errs.Is(err, errors.ErrImageRequired):
		field, tag, err = "image", "required", errors.ErrImageRequired
	case errs.Is(err, errors.ErrImageTooLarge):
		field, tag, err = "image", "max", errors.ErrImageTooLarge
	case errs.Is(err, entities.ErrInvalidPointData):
		dto.AbortWithProblem(c, dto.ValidationErrorResponseI18n(c, nil))
		return
	case errs.Is(err, errors.ErrStorageFailure):
		_ = c.Error(err)
		response := dto.InternalErrorResponseI18n(c)
		response.Detail = dto.T(c, errors.ErrStorageFailure.Error())
		dto.AbortWithProblem(c, response)
		return
	default:
		_ = c.Error(err)
		dto.AbortWithProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}

	dto.AbortWithProblem(c, dto.ValidationErrorResponseI18n(c, []dto.ValidationError{{
		Field:   field,
		Tag:     tag,
		Message: dto.T(c, err.Error()),
	}}))
}
