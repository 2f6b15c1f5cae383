package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Genres is an ordered list of genre names. It is stored in a single text
// column using the brace-wrapped form ({Jazz,"Rock n Roll"}) that existing
// rows already use, and parsed once when read.
type Genres []string

// ParseGenres parses the stored form. Unbalanced quotes or braces are
// tolerated: the text is split on top-level commas and each element trimmed.
func ParseGenres(s string) Genres {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	if strings.TrimSpace(s) == "" {
		return Genres{}
	}

	var (
		out     Genres
		cur     strings.Builder
		quoted  bool
		escaped bool
	)
	flush := func() {
		g := strings.TrimSpace(cur.String())
		if g != "" {
			out = append(out, g)
		}
		cur.Reset()
	}
	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\' && quoted:
			escaped = true
		case r == '"':
			quoted = !quoted
		case r == ',' && !quoted:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	if out == nil {
		return Genres{}
	}
	return out
}

// NewGenres trims the submitted values and drops blanks, keeping order.
func NewGenres(values []string) Genres {
	out := make(Genres, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// String renders the stored form.
func (g Genres) String() string {
	parts := make([]string, len(g))
	for i, v := range g {
		if strings.ContainsAny(v, `,"{}\ `) {
			v = `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(v) + `"`
		}
		parts[i] = v
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func (g Genres) Value() (driver.Value, error) {
	return g.String(), nil
}

func (g *Genres) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*g = Genres{}
	case string:
		*g = ParseGenres(v)
	case []byte:
		*g = ParseGenres(string(v))
	default:
		return fmt.Errorf("genres: unsupported column type %T", src)
	}
	return nil
}
