package dto

import (
	"github.com/rafabene/ecoleta/internal/domain/entities"
)

// ItemResponse representa um item de coleta
type ItemResponse struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

// ItemTitleResponse é o item como aparece no detalhe de um ponto
type ItemTitleResponse struct {
	Title string `json:"title"`
}

// ToItemResponses converte itens usando <baseURL>/uploads/<image>
func ToItemResponses(baseURL string, items []*entities.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = ItemResponse{
			ID:       item.ID,
			Title:    item.Title,
			ImageURL: baseURL + "/uploads/" + item.Image,
		}
	}
	return responses
}
