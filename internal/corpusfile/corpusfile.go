// Package corpusfile reads name corpora stored as YAML documents:
//
//	metadata:
//	  description: Demons and devils from folklore
//	  segmenter: fantasy
//	  version: "1.0"
//	  sources:
//	    - name: Dictionary of Demons
//	      url: https://example.org
//	      license: CC-BY
//	names:
//	  - Mephistopheles
//	  - Haborym
package corpusfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wyrdbound/wyrdbound-rng/internal/syllables"
)

var (
	// ErrLoadFile is returned when a corpus file cannot be read or decoded
	ErrLoadFile = errors.New("failed to load corpus file")

	// ErrNoNames is returned when a corpus file lists no usable names
	ErrNoNames = errors.New("corpus file has no names")
)

// Source cites where the names of a corpus come from
type Source struct {
	Name    string `yaml:"name"`
	URL     string `yaml:"url,omitempty"`
	License string `yaml:"license,omitempty"`
}

type Metadata struct {
	Description string   `yaml:"description,omitempty"`
	Segmenter   string   `yaml:"segmenter,omitempty"`
	Version     string   `yaml:"version,omitempty"`
	Sources     []Source `yaml:"sources,omitempty"`
}

// File is a decoded corpus file
type File struct {
	Metadata Metadata `yaml:"metadata"`
	Names    []string `yaml:"-"`
}

type rawFile struct {
	Metadata Metadata    `yaml:"metadata"`
	Names    []yaml.Node `yaml:"names"`
}

// Load reads and decodes the corpus file at path
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFile, err)
	}
	defer f.Close()

	file, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Parse decodes a corpus document. Entries that are not strings or are
// blank are skipped.
func Parse(r io.Reader) (*File, error) {
	var raw rawFile
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoNames
		}
		return nil, fmt.Errorf("%w: %w", ErrLoadFile, err)
	}

	file := &File{Metadata: raw.Metadata}
	for _, node := range raw.Names {
		if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
			continue
		}
		if name := strings.TrimSpace(node.Value); name != "" {
			file.Names = append(file.Names, name)
		}
	}
	if len(file.Names) == 0 {
		return nil, ErrNoNames
	}
	return file, nil
}

// SegmenterKind resolves the segmenter to use. A non-empty override wins
// over the declared segmenter; fantasy is the fallback.
func (f *File) SegmenterKind(override string) (syllables.Kind, error) {
	name := override
	if name == "" {
		name = f.Metadata.Segmenter
	}
	if name == "" {
		return syllables.KindFantasy, nil
	}
	return syllables.ParseKind(name)
}
