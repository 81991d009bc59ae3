package git

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Pathspec is either a single path or an ordered list of paths. The zero
// value means no path was supplied.
type Pathspec struct {
	paths []string
	multi bool
}

// Path returns a Pathspec holding one path.
func Path(path string) Pathspec {
	return Pathspec{paths: []string{path}}
}

// Paths returns a Pathspec holding an ordered list of paths. Each one becomes
// a separate command-line token.
func Paths(paths ...string) Pathspec {
	return Pathspec{paths: append([]string(nil), paths...), multi: true}
}

// IsZero reports whether no path was supplied.
func (p Pathspec) IsZero() bool {
	return p.paths == nil
}

// IsList reports whether the Pathspec was given as a list.
func (p Pathspec) IsList() bool {
	return p.multi
}

// Args returns the paths as command-line tokens.
func (p Pathspec) Args() []string {
	return append([]string(nil), p.paths...)
}

// orDefault substitutes def when no path was supplied.
func (p Pathspec) orDefault(def string) Pathspec {
	if p.IsZero() {
		return Path(def)
	}
	return p
}

var errPathspecType = errors.New("path must be a string or a list of strings")

// UnmarshalJSON accepts either "a.txt" or ["a.txt", "b.txt"]. null leaves
// the Pathspec unset.
func (p *Pathspec) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = Pathspec{}
		return nil
	}

	switch data[0] {
	case '"':
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*p = Path(single)
	case '[':
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return errPathspecType
		}
		// An empty list is treated like an omitted path.
		*p = Paths(list...)
	default:
		return errPathspecType
	}
	return nil
}

// MarshalJSON renders the Pathspec in the shape it was given.
func (p Pathspec) MarshalJSON() ([]byte, error) {
	switch {
	case p.IsZero():
		return []byte("null"), nil
	case p.multi:
		return json.Marshal(p.paths)
	default:
		return json.Marshal(p.paths[0])
	}
}
