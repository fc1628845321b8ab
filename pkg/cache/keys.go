package cache

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// StrokeKey returns "strokes:<char>". Characters are short and safe to
// store verbatim, which keeps keys readable in redis-cli.
func (DefaultKeyer) StrokeKey(char string) string {
	return "strokes:" + char
}

func (DefaultKeyer) GridKey(input string, opts GridKeyOpts) string {
	return hashKey("grid", input, opts)
}

func (DefaultKeyer) ArtifactKey(gridHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", gridHash, opts)
}

func (DefaultKeyer) SheetKey(id string) string {
	return "sheet:" + id
}

var _ Keyer = DefaultKeyer{}
