package valueobjects

import (
	"strings"
	"unicode/utf8"

	"github.com/rafabene/ecoleta/internal/domain/errors"
)

// UF é a sigla de um estado brasileiro (no máximo 2 caracteres)
type UF struct {
	value string
}

// NewUF cria uma UF validada. O valor é mantido exatamente como recebido,
// pois a busca de pontos compara city/uf por igualdade exata.
// Espaços nas bordas são recusados em vez de removidos.
func NewUF(uf string) (UF, error) {
	if strings.TrimSpace(uf) != uf || uf == "" || utf8.RuneCountInString(uf) > 2 {
		return UF{}, errors.ErrInvalidUF
	}

	return UF{value: uf}, nil
}

// String retorna a sigla
func (u UF) String() string {
	return u.value
}
