package cache

// ScopedKeyer prefixes every key of an inner Keyer. The HTTP API uses it to
// keep its entries apart from CLI entries when both share a Redis instance:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "api:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or DefaultKeyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) StrokeKey(char string) string {
	return k.prefix + k.inner.StrokeKey(char)
}

func (k *ScopedKeyer) GridKey(input string, opts GridKeyOpts) string {
	return k.prefix + k.inner.GridKey(input, opts)
}

func (k *ScopedKeyer) ArtifactKey(gridHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(gridHash, opts)
}

func (k *ScopedKeyer) SheetKey(id string) string {
	return k.prefix + k.inner.SheetKey(id)
}
