// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

package publish

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// Sink stores rendered documents under a flat name.
type Sink interface {
	WriteFile(name string, data []byte) error
}

// DirSink writes documents into a directory on disk.
type DirSink struct {
	Dir string
}

// WriteFile writes data to Dir/name, creating Dir if needed.
func (s DirSink) WriteFile(name string, data []byte) error {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("publish: create output dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("publish: write %s: %w", path, err)
	}
	return nil
}

// gzipSink writes every document twice: as-is and as a name.gz sibling so
// static servers can serve the precompressed copy.
type gzipSink struct {
	next Sink
}

func (s gzipSink) WriteFile(name string, data []byte) error {
	if err := s.next.WriteFile(name, data); err != nil {
		return err
	}
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return fmt.Errorf("publish: gzip %s: %w", name, err)
	}
	zw.Name = name
	if _, err := zw.Write(data); err != nil {
		return fmt.Errorf("publish: gzip %s: %w", name, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("publish: gzip %s: %w", name, err)
	}
	return s.next.WriteFile(name+".gz", buf.Bytes())
}
