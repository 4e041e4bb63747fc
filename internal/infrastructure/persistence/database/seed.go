package database

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:embed seeds/items.json
var itemsSeed []byte

// uniqueViolation é o SQLSTATE do postgres para chave duplicada
const uniqueViolation = "23505"

// DefaultItems retorna os itens de referência da aplicação
func DefaultItems() ([]ItemModel, error) {
	var items []ItemModel
	if err := json.Unmarshal(itemsSeed, &items); err != nil {
		return nil, fmt.Errorf("failed to parse items seed: %w", err)
	}
	return items, nil
}

// SeedItems insere os itens de referência ignorando os que já existem.
// Retorna quantos itens foram inseridos.
func SeedItems(db *gorm.DB) (int, error) {
	items, err := DefaultItems()
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, item := range items {
		if err := db.Create(&item).Error; err != nil {
			if isDuplicate(err) {
				continue
			}
			return inserted, fmt.Errorf("failed to seed item %q: %w", item.Title, err)
		}
		inserted++
	}

	return inserted, nil
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
