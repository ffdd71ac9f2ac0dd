// Package writer writes compiled block models to disk.
package writer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/carpenter/pkg/blockmodel"
	"github.com/Faultbox/carpenter/pkg/encoding"
)

// Options controls how documents are named and encoded.
type Options struct {
	Minified      bool
	ResourceNames bool // lowercase ASCII file names usable as resource locations
	Log           *zap.Logger
}

// FileName returns the file a group's document is written to.
func (o Options) FileName(group string) string {
	if o.ResourceNames {
		return encoding.ResourceName(group) + ".json"
	}
	return encoding.FileName(group) + ".json"
}

// Write writes one file per document in result order and returns the
// written paths. dest is created if missing.
func Write(dest string, result *blockmodel.OrderedMap[*blockmodel.Document], opts Options) ([]string, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	if err := os.MkdirAll(dest, 0755); err != nil {
		return nil, fmt.Errorf("creating destination %s: %w", dest, err)
	}

	var written []string
	seen := make(map[string]string)
	for _, group := range result.Keys() {
		doc, _ := result.Get(group)
		name := opts.FileName(group)
		if prev, ok := seen[name]; ok {
			log.Warn("groups share an output file", zap.String("file", name),
				zap.String("group", group), zap.String("previous", prev))
		}
		seen[name] = group

		data, err := Encode(doc, opts.Minified)
		if err != nil {
			return written, fmt.Errorf("encoding %s: %w", group, err)
		}

		path := filepath.Join(dest, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		log.Debug("wrote model", zap.String("group", group), zap.String("path", path), zap.Int("bytes", len(data)))
		written = append(written, path)
	}
	return written, nil
}

// Encode encodes v as compact JSON when minified, otherwise as tab-indented
// JSON with arrays of scalars kept on one line.
func Encode(v any, minified bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	compact := bytes.TrimRight(buf.Bytes(), "\n")
	if minified {
		return compact, nil
	}

	var out bytes.Buffer
	out.Grow(len(compact) * 2)
	indent(&out, compact)
	return out.Bytes(), nil
}

// indent pretty-prints compact JSON.
func indent(dst *bytes.Buffer, src []byte) {
	depth := 0
	newline := func() {
		dst.WriteByte('\n')
		for i := 0; i < depth; i++ {
			dst.WriteByte('\t')
		}
	}

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch c {
		case '"':
			end := stringEnd(src, i)
			dst.Write(src[i:end])
			i = end - 1
		case '{', '[':
			if i+1 < len(src) && (src[i+1] == '}' || src[i+1] == ']') {
				dst.Write(src[i : i+2])
				i++
				continue
			}
			if c == '[' {
				if end, ok := scalarArray(src, i); ok {
					writeInline(dst, src[i:end])
					i = end - 1
					continue
				}
			}
			dst.WriteByte(c)
			depth++
			newline()
		case '}', ']':
			depth--
			newline()
			dst.WriteByte(c)
		case ',':
			dst.WriteByte(',')
			newline()
		case ':':
			dst.WriteString(": ")
		default:
			dst.WriteByte(c)
		}
	}
}

// stringEnd returns the index just past the string literal starting at i.
func stringEnd(src []byte, i int) int {
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case '"':
			return j + 1
		}
	}
	return len(src)
}

// scalarArray returns the end of the array starting at i if it holds no
// objects or arrays.
func scalarArray(src []byte, i int) (int, bool) {
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '"':
			j = stringEnd(src, j) - 1
		case '[', '{':
			return 0, false
		case ']':
			return j + 1, true
		}
	}
	return 0, false
}

func writeInline(dst *bytes.Buffer, src []byte) {
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '"':
			end := stringEnd(src, i)
			dst.Write(src[i:end])
			i = end - 1
		case ',':
			dst.WriteString(", ")
		default:
			dst.WriteByte(src[i])
		}
	}
}
