package wheel

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
)

// zipEntry is one file to place in a test archive, in listing order.
type zipEntry struct {
	name string
	body string
}

// buildArchive writes a zip archive into dir and returns its path.
func buildArchive(t *testing.T, dir, filename string, entries []zipEntry) string {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, e := range entries {
		f, err := w.Create(e.name)
		require.NoError(t, err)
		_, err = f.Write([]byte(e.body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	p := filepath.Join(dir, filename)
	require.NoError(t, os.WriteFile(p, buf.Bytes(), 0o644))
	return p
}

// buildWheel writes a minimal wheel with the given METADATA content.
func buildWheel(t *testing.T, dir, filename, metadataContent string) string {
	t.Helper()
	return buildArchive(t, dir, filename, []zipEntry{
		{name: "dummy_project/__init__.py", body: "__version__ = '0.0.1.dev1'\n"},
		{name: "dummy_project-0.0.1.dev1.dist-info/METADATA", body: metadataContent},
	})
}

const dummyMetadata = `Metadata-Version: 2.1
Name: dummy-project
Version: 0.0.1.dev1
Summary: A dummy project for testing
`
