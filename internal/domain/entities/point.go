package entities

import (
	"errors"
	"strings"
)

// MaxUFLength é o tamanho máximo da sigla do estado
const MaxUFLength = 2

var (
	ErrInvalidPointData = errors.New("invalid point data")
)

// Point representa um ponto de coleta cadastrado
type Point struct {
	ID        uint
	Image     string // nome do arquivo armazenado
	Name      string
	Email     string
	Whatsapp  string
	Latitude  float64
	Longitude float64
	City      string
	UF        string
}

// PointItem associa um ponto a um item aceito por ele
type PointItem struct {
	PointID uint
	ItemID  uint
}

// PointDetail é um ponto com os títulos dos itens associados
type PointDetail struct {
	Point      *Point
	ItemTitles []string
}

// Associations gera uma associação por item, preservando ordem e duplicatas
func (p *Point) Associations(itemIDs []uint) []PointItem {
	pointItems := make([]PointItem, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		pointItems = append(pointItems, PointItem{PointID: p.ID, ItemID: itemID})
	}
	return pointItems
}

// Validate valida os dados cadastrais do ponto. A foto é verificada à parte,
// pois só ganha nome depois de gravada.
func (p *Point) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}

	if strings.TrimSpace(p.Email) == "" {
		return errors.New("email is required")
	}

	if strings.TrimSpace(p.City) == "" {
		return errors.New("city is required")
	}

	if strings.TrimSpace(p.UF) == "" || len([]rune(p.UF)) > MaxUFLength {
		return errors.New("uf must have at most 2 characters")
	}

	return nil
}
