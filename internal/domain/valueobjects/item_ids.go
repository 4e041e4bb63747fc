package valueobjects

import (
	"strconv"
	"strings"

	"github.com/rafabene/ecoleta/internal/domain/errors"
)

// ItemIDs é a lista de identificadores de itens recebida como texto separado por vírgulas.
// A ordem e as duplicatas são preservadas.
type ItemIDs []uint

// ParseItemIDs converte "1, 2,3" em ItemIDs. Cada token é aparado e deve ser um inteiro
// não negativo; texto vazio resulta em lista vazia.
func ParseItemIDs(raw string) (ItemIDs, error) {
	if strings.TrimSpace(raw) == "" {
		return ItemIDs{}, nil
	}

	tokens := strings.Split(raw, ",")
	ids := make(ItemIDs, 0, len(tokens))

	for _, token := range tokens {
		id, err := strconv.ParseUint(strings.TrimSpace(token), 10, 64)
		if err != nil {
			return nil, errors.ErrInvalidItemIDs
		}
		ids = append(ids, uint(id))
	}

	return ids, nil
}

// IsValidItemIDs informa se raw é uma lista não vazia de inteiros separados por vírgula
func IsValidItemIDs(raw string) bool {
	ids, err := ParseItemIDs(raw)
	return err == nil && len(ids) > 0
}

// String retorna a forma textual (ex.: "1,2,3")
func (ids ItemIDs) String() string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}

// Uints retorna os identificadores como []uint
func (ids ItemIDs) Uints() []uint {
	return []uint(ids)
}
