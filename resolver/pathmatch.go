package resolver

import "strings"

// MatchPath reports whether an actual request path matches a contract path
// template. A template segment wrapped in braces matches exactly one
// non-empty path segment; every other segment must match byte-for-byte.
// The match is total: both paths must have the same number of segments, so
// there are no prefix or trailing-segment matches.
func MatchPath(actual, template string) bool {
	actualSegs := strings.Split(actual, "/")
	templateSegs := strings.Split(template, "/")
	if len(actualSegs) != len(templateSegs) {
		return false
	}
	for i, ts := range templateSegs {
		if isParamSegment(ts) {
			if actualSegs[i] == "" {
				return false
			}
			continue
		}
		if actualSegs[i] != ts {
			return false
		}
	}
	return true
}

// PathParams extracts the values bound to a template's parameter segments.
// Returns nil when the path does not match the template.
func PathParams(actual, template string) map[string]string {
	if !MatchPath(actual, template) {
		return nil
	}
	actualSegs := strings.Split(actual, "/")
	templateSegs := strings.Split(template, "/")

	var params map[string]string
	for i, ts := range templateSegs {
		if !isParamSegment(ts) {
			continue
		}
		if params == nil {
			params = make(map[string]string)
		}
		params[ts[1:len(ts)-1]] = actualSegs[i]
	}
	return params
}

// isParamSegment reports whether a template segment is a {name} placeholder.
func isParamSegment(seg string) bool {
	return len(seg) > 2 && seg[0] == '{' && seg[len(seg)-1] == '}'
}
