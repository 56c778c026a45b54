package corpus

// provenance records the distinct names a statistic was drawn from, in
// first-seen order.
type provenance struct {
	names []string
	seen  map[string]struct{}
}

func (p *provenance) add(name string) {
	if p.seen == nil {
		p.seen = make(map[string]struct{})
	}
	if _, ok := p.seen[name]; ok {
		return
	}
	p.seen[name] = struct{}{}
	p.names = append(p.names, name)
}

// list is nil-safe
func (p *provenance) list() []string {
	if p == nil {
		return nil
	}
	return p.names
}

func provenanceFor[K comparable](m map[K]*provenance, key K) *provenance {
	if m[key] == nil {
		m[key] = &provenance{}
	}
	return m[key]
}
