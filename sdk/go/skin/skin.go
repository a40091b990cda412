// Package skin is the high-level entry point: it loads a skin document,
// deserializes it into typed elements, and assembles the element
// hierarchy, returning the result next to the recoverable diagnostics.
package skin

import (
	"context"
	"io"

	"github.com/eqforge/sidl/internal/config"
	"github.com/eqforge/sidl/internal/core/assemble"
	"github.com/eqforge/sidl/internal/core/decode"
	"github.com/eqforge/sidl/internal/core/diag"
	"github.com/eqforge/sidl/internal/core/element"
	"github.com/eqforge/sidl/internal/core/node"
	"github.com/eqforge/sidl/internal/core/observability/log"
	"github.com/eqforge/sidl/internal/core/registry"
	"github.com/eqforge/sidl/internal/loader"
	"github.com/eqforge/sidl/pkg/sequence"
)

// Skin is the parse-and-assemble result for one document. A non-nil Skin
// always carries the full diagnostics list; a nil Skin comes with an
// error, never both.
type Skin struct {
	Source      string
	Elements    []element.Element
	Assembly    *assemble.Result
	Diagnostics []diag.Event
}

// Element looks up any indexed element by ScreenID.
func (s *Skin) Element(id string) (element.Element, bool) {
	el, ok := s.Assembly.Index[id]
	return el, ok
}

// Container looks up a container by ScreenID.
func (s *Skin) Container(id string) (element.Container, bool) {
	c, ok := s.Assembly.Containers[id]
	return c, ok
}

// Containers returns the assembled containers sorted by ScreenID, for
// callers that need a stable iteration order over the map.
func (s *Skin) Containers() []element.Container {
	return sequence.FromMap(s.Assembly.Containers).Sort(func(a, b element.Container) bool {
		return a.Base().ScreenID < b.Base().ScreenID
	}).Collect()
}

func (s *Skin) Orphans() []element.Element {
	return s.Assembly.Orphans
}

// Parser owns the pipeline state shared across documents: registry,
// loader cache, logger, options. It is safe to reuse for many documents.
type Parser struct {
	opts   config.Options
	log    log.Log
	loader *loader.Loader
	reg    *registry.Registry
}

func NewParser(opts config.Options) *Parser {
	l := log.New(opts.Level())
	return &Parser{
		opts:   opts,
		log:    l,
		loader: loader.New(l, opts.CacheSize),
		reg:    registry.Default(),
	}
}

// Registry exposes the parser's schema registry so callers can plug in
// additional element variants before loading.
func (p *Parser) Registry() *registry.Registry { return p.reg }

// Load reads, deserializes, and assembles one skin file.
func (p *Parser) Load(path string) (*Skin, error) {
	root, err := p.loader.Document(path)
	if err != nil {
		return nil, err
	}
	return p.run(path, root)
}

// Parse runs the pipeline over a stream; name labels errors and the
// resulting Skin.
func (p *Parser) Parse(r io.Reader, name string) (*Skin, error) {
	root, err := node.Parse(r)
	if err != nil {
		return nil, diag.NewDocumentError(diag.ErrMalformedDocument, name, err)
	}
	return p.run(name, root)
}

// ParseBytes runs the pipeline over an in-memory document through the
// loader cache.
func (p *Parser) ParseBytes(name string, data []byte) (*Skin, error) {
	root, err := p.loader.Bytes(name, data)
	if err != nil {
		return nil, err
	}
	return p.run(name, root)
}

// LoadDirectory loads every matching skin file under dir. Files are read
// and tokenized concurrently; each document is then assembled on its own.
func (p *Parser) LoadDirectory(ctx context.Context, dir string) (map[string]*Skin, error) {
	roots, err := p.loader.Directory(ctx, dir, p.opts.Pattern)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*Skin, len(roots))
	for path, root := range roots {
		s, err := p.run(path, root)
		if err != nil {
			return nil, err
		}
		out[path] = s
	}
	return out, nil
}

func (p *Parser) run(source string, root *node.Node) (*Skin, error) {
	diags := diag.NewCollector(p.log)
	dec := decode.New(p.reg, diags, p.log)
	elements := dec.Document(root)

	var opts []assemble.Option
	if !p.opts.Heuristics {
		opts = append(opts, assemble.WithoutHeuristics())
	}
	result := assemble.New(diags, p.log, opts...).Assemble(elements)

	if p.opts.RejectDuplicateIDs && diags.Has(diag.KindDuplicateScreenID) {
		return nil, diag.NewDocumentError(diag.ErrDuplicateScreenID, source, nil)
	}

	return &Skin{
		Source:      source,
		Elements:    elements,
		Assembly:    result,
		Diagnostics: diags.Events(),
	}, nil
}

// Load is the convenience one-shot with default options.
func Load(path string) (*Skin, error) {
	return NewParser(config.Default()).Load(path)
}
