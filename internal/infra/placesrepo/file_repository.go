package placesrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/yucatanweather/app/internal/domain/catalog"
	"github.com/yucatanweather/app/internal/domain/places"
)

// EmbeddedRepository serves the place list compiled into the binary.
type EmbeddedRepository struct{}

// NewEmbeddedRepository constructs the default source.
func NewEmbeddedRepository() *EmbeddedRepository {
	return &EmbeddedRepository{}
}

// Load implements places.Repository.
func (EmbeddedRepository) Load(_ context.Context) ([]catalog.Location, error) {
	return decode(catalog.DefaultPlacesJSON())
}

// FileRepository reads the place list from disk on every call.
type FileRepository struct {
	path string
}

// NewFileRepository constructs a file-backed source.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load implements places.Repository.
func (r *FileRepository) Load(_ context.Context) ([]catalog.Location, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read places file: %w", err)
	}
	return decode(data)
}

func decode(data []byte) ([]catalog.Location, error) {
	var locations []catalog.Location
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, fmt.Errorf("decode places: %w", err)
	}
	return locations, nil
}

func decodeReader(r io.Reader) ([]catalog.Location, error) {
	var locations []catalog.Location
	if err := json.NewDecoder(r).Decode(&locations); err != nil {
		return nil, fmt.Errorf("decode places: %w", err)
	}
	return locations, nil
}

var (
	_ places.Repository = (*EmbeddedRepository)(nil)
	_ places.Repository = (*FileRepository)(nil)
)
