// Package dict loads scanning dictionaries into a trie.
//
// A dictionary holds one entry per line: a key, optionally followed by a tab
// and the value reported for it. Keys without a value map to themselves.
// Blank lines and lines starting with '#' are skipped. Input may be
// gzip-compressed.
package dict

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/e11jah/patricia"
	"go.uber.org/zap"
)

const maxLineSize = 1 << 20

var gzipMagic = []byte{0x1f, 0x8b}

// Load parses a dictionary from r. Later lines override earlier ones with
// the same key.
func Load(r io.Reader) (*patricia.Trie[string], error) {
	br := bufio.NewReader(r)
	if magic, err := br.Peek(len(gzipMagic)); err == nil && string(magic) == string(gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer zr.Close()
		return parse(zr)
	}
	return parse(br)
}

func parse(r io.Reader) (*patricia.Trie[string], error) {
	t := patricia.New[string]()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSuffix(sc.Text(), "\r")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		key, value, found := strings.Cut(text, "\t")
		if !found {
			value = key
		}
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", line)
		}
		t.Set(key, value)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	return t, nil
}

// LoadFile opens and parses the dictionary at path.
func LoadFile(path string, log *zap.Logger) (*patricia.Trie[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Info("dictionary loaded",
		zap.String("path", path),
		zap.Int("entries", t.Size()))
	return t, nil
}
