package render

import (
	"slices"

	errs "github.com/matzehuels/copybook/pkg/errors"
	"github.com/matzehuels/copybook/pkg/grid"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Formats lists every supported format.
var Formats = []string{FormatJSON, FormatText}

// ValidateFormat checks that format is a well-formed name of a supported
// format.
func ValidateFormat(format string) error {
	if err := errs.ValidateFormatName(format); err != nil {
		return err
	}
	if !slices.Contains(Formats, format) {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: json, text)", format)
	}
	return nil
}

// ValidateFormats checks every format in formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Option configures a rendering.
type Option func(*options)

type options struct {
	template *grid.TemplateConfig
	kind     *grid.Kind
	compact  bool
	styled   bool
}

// WithTemplate records the configuration the grid was laid out with.
func WithTemplate(cfg grid.TemplateConfig) Option {
	return func(o *options) { o.template = &cfg }
}

// WithKind records the strategy that produced the grid.
func WithKind(k grid.Kind) Option {
	return func(o *options) { o.kind = &k }
}

// Compact disables JSON indentation.
func Compact() Option {
	return func(o *options) { o.compact = true }
}

// Styled colors the text preview for a terminal.
func Styled() Option {
	return func(o *options) { o.styled = true }
}

func collect(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Render renders g in the given format.
func Render(format string, g grid.Grid, opts ...Option) ([]byte, error) {
	switch format {
	case FormatJSON:
		return JSON(g, opts...)
	case FormatText:
		return []byte(Text(g, opts...)), nil
	default:
		return nil, ValidateFormat(format)
	}
}
