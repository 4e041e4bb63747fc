package dto

import (
	"mime/multipart"
	"strconv"

	"github.com/rafabene/ecoleta/internal/domain/entities"
	"github.com/rafabene/ecoleta/internal/domain/valueobjects"
)

// CreatePointRequest representa o formulário multipart de cadastro de ponto.
// Coordenadas chegam como texto para que valores inválidos virem erro de campo.
type CreatePointRequest struct {
	Name      string                `form:"name" binding:"required,notblank"`
	Email     string                `form:"email" binding:"required,email"`
	Whatsapp  string                `form:"whatsapp" binding:"required,numeric"`
	Latitude  string                `form:"latitude" binding:"required,numeric"`
	Longitude string                `form:"longitude" binding:"required,numeric"`
	City      string                `form:"city" binding:"required,notblank"`
	UF        string                `form:"uf" binding:"required,notblank,trimmed,max=2"`
	Items     string                `form:"items" binding:"required,item_ids"`
	Image     *multipart.FileHeader `form:"image" binding:"required" swaggerignore:"true"`
}

// Coordinates converte latitude e longitude já validadas
func (r *CreatePointRequest) Coordinates() (float64, float64, error) {
	lat, err := strconv.ParseFloat(r.Latitude, 64)
	if err != nil {
		return 0, 0, err
	}
	lng, err := strconv.ParseFloat(r.Longitude, 64)
	if err != nil {
		return 0, 0, err
	}
	return lat, lng, nil
}

// ItemIDs converte a lista de itens já validada
func (r *CreatePointRequest) ItemIDs() ([]uint, error) {
	ids, err := valueobjects.ParseItemIDs(r.Items)
	if err != nil {
		return nil, err
	}
	return ids.Uints(), nil
}

// ListPointsQuery representa os filtros de GET /points
type ListPointsQuery struct {
	City  string `form:"city"`
	UF    string `form:"uf"`
	Items string `form:"items"`
}

// PointResponse representa um ponto com a URL pública da foto
type PointResponse struct {
	ID        uint    `json:"id"`
	Image     string  `json:"image"`
	ImageURL  string  `json:"image_url"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Whatsapp  string  `json:"whatsapp"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	UF        string  `json:"uf"`
}

// PointDetailResponse é a resposta de GET /points/:id
type PointDetailResponse struct {
	Point PointResponse       `json:"point"`
	Items []ItemTitleResponse `json:"items"`
}

// PhotoURL monta <baseURL>/uploads/photos/<arquivo>
func PhotoURL(baseURL, image string) string {
	return baseURL + "/uploads/photos/" + image
}

// ToPointResponse converte uma entidade Point para PointResponse
func ToPointResponse(baseURL string, point *entities.Point) PointResponse {
	return PointResponse{
		ID:        point.ID,
		Image:     point.Image,
		ImageURL:  PhotoURL(baseURL, point.Image),
		Name:      point.Name,
		Email:     point.Email,
		Whatsapp:  point.Whatsapp,
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
		City:      point.City,
		UF:        point.UF,
	}
}

// ToPointResponses converte uma lista de pontos
func ToPointResponses(baseURL string, points []*entities.Point) []PointResponse {
	responses := make([]PointResponse, len(points))
	for i, point := range points {
		responses[i] = ToPointResponse(baseURL, point)
	}
	return responses
}

// ToPointDetailResponse converte um ponto com os títulos dos seus itens
func ToPointDetailResponse(baseURL string, detail *entities.PointDetail) PointDetailResponse {
	items := make([]ItemTitleResponse, len(detail.ItemTitles))
	for i, title := range detail.ItemTitles {
		items[i] = ItemTitleResponse{Title: title}
	}

	return PointDetailResponse{
		Point: ToPointResponse(baseURL, detail.Point),
		Items: items,
	}
}

// PointNotFoundMessage é a mensagem fixa de GET /points/:id para ids inexistentes
const PointNotFoundMessage = "Point not found."
