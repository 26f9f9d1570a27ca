// Package assets embeds the default symbol set: one SVG per fixity kind
// plus miscellaneous glyphs such as the dimension tick. It implements
// diagram.SymbolSource.
package assets

import (
	"embed"
	"fmt"
	"sync"

	"github.com/beamz/beamplot/paths"
)

//go:embed symbols/*.svg
var symbolFS embed.FS

// Source resolves symbol names against the embedded default set.
// Parsed outlines are immutable, so they are cached and shared.
type Source struct {
	mu    sync.Mutex
	cache map[string]*paths.Outline
}

// Default returns the embedded symbol source.
func Default() *Source {
	return &Source{cache: map[string]*paths.Outline{}}
}

// Outline returns the compound outline for a named symbol. An unknown
// name is a configuration error.
func (s *Source) Outline(name string) (*paths.Outline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.cache[name]; ok {
		return o, nil
	}
	f, err := symbolFS.Open("symbols/" + name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("no symbol %q in default set", name)
	}
	defer f.Close()
	o, err := paths.FromSVG(f)
	if err != nil {
		return nil, fmt.Errorf("symbol %q: %w", name, err)
	}
	s.cache[name] = o
	return o, nil
}
