package ports

import (
	"context"
	"io"
)

// FileStorage persiste arquivos enviados pelos clientes
type FileStorage interface {
	// Save grava o conteúdo sob um nome único derivado de originalName e retorna esse nome
	Save(ctx context.Context, originalName string, content io.Reader) (string, error)
	// Remove apaga um arquivo gravado anteriormente
	Remove(ctx context.Context, storedName string) error
}
