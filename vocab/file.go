package vocab

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arloliu/featenc/compress"
	"github.com/arloliu/featenc/internal/pool"
)

// candidateSuffixes lists the file names probed for a column, in order.
// A bare column name is tried first, then the plain and compressed extensions.
var candidateSuffixes = []string{"", ".txt", ".zst", ".zstd", ".s2", ".lz4"}

// FileLoader loads vocabularies from a local directory holding one file per column.
//
// For column "country" the loader probes country, country.txt, country.zst,
// country.zstd, country.s2 and country.lz4 and decodes the first file found.
type FileLoader struct {
	fsys fs.FS
	root string
}

var _ Loader = (*FileLoader)(nil)

// NewFileLoader creates a loader reading from dir.
func NewFileLoader(dir string) *FileLoader {
	return &FileLoader{fsys: os.DirFS(dir), root: dir}
}

// NewFSLoader creates a loader reading from an fs.FS, e.g. an embed.FS or fstest.MapFS.
func NewFSLoader(fsys fs.FS) *FileLoader {
	return &FileLoader{fsys: fsys}
}

// Load reads and parses the vocabulary file of column.
func (l *FileLoader) Load(ctx context.Context, column string) (*Vocabulary, error) {
	if err := validateColumn(column); err != nil {
		return nil, err
	}

	for _, suffix := range candidateSuffixes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := column + suffix
		v, err := l.loadFile(column, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Join(l.root, name), err)
		}

		return v, nil
	}

	return nil, notFound(column)
}

func (l *FileLoader) loadFile(column, name string) (*Vocabulary, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fs.ErrNotExist
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	if _, err := buf.ReadFrom(f); err != nil {
		return nil, err
	}

	payload, err := compress.DecompressPath(name, buf.Bytes())
	if err != nil {
		return nil, err
	}

	return ParseBytes(column, payload), nil
}
