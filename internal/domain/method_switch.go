package domain

import (
	"net/url"
	"strings"

	m "mutavec.dev/pkg/mutavec/internal/model"
)

// SwitchMethod returns a clone of v with the transmission method toggled.
//
// GET becomes POST; for query-based kinds the target's query component is
// stripped so the body-carried parameters do not collide with a stale query
// string. Any other method becomes GET with the target left untouched: a
// POST vector switched to GET keeps its target as-is and does not rebuild a
// query string from its parameters.
func SwitchMethod(v m.Vector) m.Vector {
	out := v.Clone()

	if v.Method() == m.MethodGet {
		out.SetMethod(m.MethodPost)

		if v.QueryBased() {
			out.SetTarget(stripQuery(v.Target()))
		}

		return out
	}

	out.SetMethod(m.MethodGet)

	return out
}

func stripQuery(target string) string {
	u, err := url.Parse(target)
	if err != nil {
		// Unparseable target: cut at the first '?' instead.
		if i := strings.IndexByte(target, '?'); i >= 0 {
			return target[:i]
		}

		return target
	}

	u.RawQuery = ""
	u.ForceQuery = false

	return u.String()
}
