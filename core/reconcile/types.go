package reconcile

import "errors"

// ErrUnexpectedProperty is returned in strict mode when a resx geometry entry
// has no counterpart in the designer index and no exempt suffix.
var ErrUnexpectedProperty = errors.New("unexpected new property")

// ExemptSuffixes lists property name suffixes whose resx entries may be
// dropped when the designer file does not set them. The designer only writes
// these when they differ from the default, and the localizer re-scaled the
// defaults.
var ExemptSuffixes = []string{"Margin", "Padding", "SplitterWidth"}

// Config holds reconciliation settings.
type Config struct {
	// Strict aborts the run on an unexpected property instead of copying it through.
	Strict bool `mapstructure:"strict" default:"true"`
	// CacheTTLSeconds is how long a built designer index is reused. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
}

// Index is an ordered mapping from geometry names to their value text.
// Keys are unique; setting an existing key overwrites the value in place.
type Index struct {
	keys   []string
	values map[string]string
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{values: make(map[string]string)}
}

// Set inserts or overwrites name.
func (i *Index) Set(name, value string) {
	if _, exists := i.values[name]; !exists {
		i.keys = append(i.keys, name)
	}
	i.values[name] = value
}

// Get returns the value stored for name.
func (i *Index) Get(name string) (string, bool) {
	v, ok := i.values[name]
	return v, ok
}

// Has reports whether name is present.
func (i *Index) Has(name string) bool {
	_, ok := i.values[name]
	return ok
}

// Delete removes name. Deleting a missing name is a no-op.
func (i *Index) Delete(name string) {
	if _, exists := i.values[name]; !exists {
		return
	}
	delete(i.values, name)
	for n, k := range i.keys {
		if k == name {
			i.keys = append(i.keys[:n], i.keys[n+1:]...)
			break
		}
	}
}

// Keys returns the names in insertion order.
func (i *Index) Keys() []string {
	out := make([]string, len(i.keys))
	copy(out, i.keys)
	return out
}

// Len returns the number of names.
func (i *Index) Len() int {
	return len(i.keys)
}

// OutcomeKind classifies what happened to a recognised resx entry.
type OutcomeKind string

const (
	// OutcomeReplaced means the value was rewritten from the designer index.
	OutcomeReplaced OutcomeKind = "replaced"
	// OutcomeSkipped means the entry was dropped from the output.
	OutcomeSkipped OutcomeKind = "skipped"
	// OutcomeUnchanged means the entry was copied through as-is (lenient mode).
	OutcomeUnchanged OutcomeKind = "unchanged"
)

// Outcome is the decision taken for one resx entry.
type Outcome struct {
	Kind OutcomeKind `json:"kind" yaml:"kind"`
	Name string      `json:"name" yaml:"name"`
	// Value is the designer value for Replaced outcomes.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	// Line is the copied value line for Unchanged outcomes.
	Line string `json:"line,omitempty" yaml:"line,omitempty"`
}

// LogLine renders the outcome for the run log. Unchanged outcomes are not
// logged and return an empty string.
func (o Outcome) LogLine() string {
	switch o.Kind {
	case OutcomeReplaced:
		return o.Name + " => " + o.Value
	case OutcomeSkipped:
		return o.Name + " skipped"
	default:
		return ""
	}
}
