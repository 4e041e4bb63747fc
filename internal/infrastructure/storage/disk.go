package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	domainerrors "github.com/rafabene/ecoleta/internal/domain/errors"
	"github.com/rafabene/ecoleta/internal/domain/ports"
)

// PhotosSubdir é o subdiretório de UPLOADS_DIR onde ficam as fotos dos pontos
const PhotosSubdir = "photos"

// prefixBytes é a quantidade de bytes aleatórios do prefixo do nome gerado
const prefixBytes = 6

// ErrFileTooLarge indica upload maior que UPLOAD_MAX_BYTES
var ErrFileTooLarge = domainerrors.ErrImageTooLarge

// DiskStorage grava uploads em um diretório local
type DiskStorage struct {
	dir      string
	maxBytes int64
	random   io.Reader
}

// NewDiskStorage cria o diretório (se necessário) e retorna o storage.
// maxBytes <= 0 desativa o limite de tamanho.
func NewDiskStorage(dir string, maxBytes int64) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir %s: %w", dir, err)
	}

	return &DiskStorage{dir: dir, maxBytes: maxBytes, random: rand.Reader}, nil
}

var _ ports.FileStorage = (*DiskStorage)(nil)

// Dir retorna o diretório de gravação
func (s *DiskStorage) Dir() string {
	return s.dir
}

// Save grava content como "<hex aleatório>-<nome original>"
func (s *DiskStorage) Save(ctx context.Context, originalName string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, err := s.generateName(originalName)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, name)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}

	reader := content
	if s.maxBytes > 0 {
		reader = io.LimitReader(content, s.maxBytes+1)
	}

	written, err := io.Copy(file, reader)
	closeErr := file.Close()

	if err == nil && s.maxBytes > 0 && written > s.maxBytes {
		err = ErrFileTooLarge
	}
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}

	return name, nil
}

// Remove apaga um arquivo gravado; arquivo inexistente não é erro
func (s *DiskStorage) Remove(_ context.Context, storedName string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(storedName)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *DiskStorage) generateName(originalName string) (string, error) {
	buf := make([]byte, prefixBytes)
	if _, err := io.ReadFull(s.random, buf); err != nil {
		return "", fmt.Errorf("failed to generate file name: %w", err)
	}

	return hex.EncodeToString(buf) + "-" + sanitizeName(originalName), nil
}

// sanitizeName descarta diretórios e separadores do nome enviado pelo cliente
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	if name == "." || name == "/" || name == ".." || name == "" {
		return "upload"
	}
	return name
}
