package fastq_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/grailbio/fastqc/fastq"
	"github.com/grailbio/testutil"
	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, dir, name string, contents []byte) string {
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, contents, 0644))
	return path
}

func writeGzipFile(t *testing.T, dir, name string, contents []byte) string {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write(contents)
	assert.NoError(t, err)
	assert.NoError(t, gw.Close())
	return writeFile(t, dir, name, buf.Bytes())
}

func TestOpenPlainFileIsMapped(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	data := []byte("@r\nACGT\n+\nIIII\n")
	path := writeFile(t, tempDir, "plain.fastq", data)

	src, err := fastq.Open(context.Background(), path, 0)
	assert.NoError(t, err)
	defer src.Close()

	assert.True(t, src.Mapped())
	assert.Equal(t, data, src.Bytes())
	assert.EqualValues(t, 0, src.WindowStart())
}

func TestOpenGzipFileIsStreaming(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	data := []byte("@r\nACGTACGTACGT\n+\nIIIIIIIIIIII\n")
	path := writeGzipFile(t, tempDir, "compressed.fastq.gz", data)

	src, err := fastq.Open(context.Background(), path, 0)
	assert.NoError(t, err)
	defer src.Close()

	assert.False(t, src.Mapped())
	assert.NoError(t, src.Grow(int64(len(data))))
	assert.Equal(t, data, src.Bytes())
}

func TestOpenGzipSourceGrowReportsEOFPastEnd(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	data := []byte("@r\nACGT\n+\nIIII\n")
	path := writeGzipFile(t, tempDir, "short.fastq.gz", data)

	src, err := fastq.Open(context.Background(), path, 0)
	assert.NoError(t, err)
	defer src.Close()

	err = src.Grow(int64(len(data)) + 1000)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, data, src.Bytes())
}
