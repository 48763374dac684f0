package converter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"
)

// MimeType is one entry of the source document.
type MimeType struct {
	Name       string
	Extensions []string
}

// Registry holds the source document in key order.
type Registry struct {
	Types []MimeType
}

// LoadRegistry reads the registry stored at path.
func LoadRegistry(path string) (Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Registry{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Registry{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reg, err := ReadRegistry(f)
	if err != nil {
		return Registry{}, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// ReadRegistry decodes a JSON object of the form {"mime/type": ["ext", ...]}.
// Keys keep their document order. A repeated key replaces the earlier list
// but keeps the earlier position. Input that is not valid UTF-8 is rejected.
func ReadRegistry(r io.Reader) (Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Registry{}, fmt.Errorf("read registry: %w", err)
	}
	if !utf8.Valid(data) {
		return Registry{}, fmt.Errorf("%w: invalid UTF-8", ErrFormat)
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return Registry{}, err
	}

	var reg Registry
	seen := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Registry{}, formatErr(err)
		}
		name, ok := tok.(string)
		if !ok {
			return Registry{}, fmt.Errorf("%w: unexpected key %v", ErrFormat, tok)
		}

		exts, err := decodeExtensions(dec)
		if err != nil {
			return Registry{}, fmt.Errorf("%w: %q: %v", ErrFormat, name, err)
		}

		if i, ok := seen[name]; ok {
			reg.Types[i].Extensions = exts
			continue
		}
		seen[name] = len(reg.Types)
		reg.Types = append(reg.Types, MimeType{Name: name, Extensions: exts})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return Registry{}, err
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return Registry{}, formatErr(err)
		}
		return Registry{}, fmt.Errorf("%w: trailing data %v", ErrFormat, tok)
	}

	return reg, nil
}

func decodeExtensions(dec *json.Decoder) ([]string, error) {
	var raw []*string
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("expected an array of strings, got null")
	}

	exts := make([]string, 0, len(raw))
	for i, ext := range raw {
		if ext == nil {
			return nil, fmt.Errorf("element %d is null", i)
		}
		exts = append(exts, *ext)
	}
	return exts, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return formatErr(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrFormat, want, tok)
	}
	return nil
}

func formatErr(err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w: %v", ErrFormat, err)
}
