package placesrepo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yucatanweather/app/internal/domain/catalog"
)

func TestEmbeddedRepositoryMatchesCatalog(t *testing.T) {
	list, err := NewEmbeddedRepository().Load(context.Background())
	require.NoError(t, err)
	require.Len(t, list, catalog.Default().Len())
}

func TestFileRepositoryReadsOnEveryCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Sisal","lat":21.16,"lng":-90.03,"category":"beaches"}]`), 0o600))
	repo := NewFileRepository(path)

	list, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, catalog.Beaches, list[0].Category)

	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))
	list, err = repo.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestFileRepositoryErrors(t *testing.T) {
	_, err := NewFileRepository(filepath.Join(t.TempDir(), "missing.json")).Load(context.Background())
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":`), 0o600))
	_, err = NewFileRepository(path).Load(context.Background())
	require.Error(t, err)
}

func TestSanitizeEndpoint(t *testing.T) {
	require.Equal(t, "minio.local:9000", sanitizeEndpoint(" http://minio.local:9000/bucket "))
	require.Equal(t, "s3.example.com", sanitizeEndpoint("https://s3.example.com"))
}

func TestNewObjectRepositoryRequiresBucketAndKey(t *testing.T) {
	_, err := NewObjectRepository("localhost:9000", "a", "b", "", "places.json", "", nil)
	require.Error(t, err)
}
