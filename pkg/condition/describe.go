package condition

import "strings"

// Describe renders a condition for display. When expandCompound is set,
// each atomic part is looked up in the dictionary (key → display text,
// falling back to the raw part when absent) and the parts are rejoined
// with the detected operator. Otherwise the original text is returned
// unchanged.
func Describe(description string, dictionary map[string]string, expandCompound bool) string {
	if !expandCompound {
		return description
	}

	parsed := Parse(description)
	if len(parsed.Parts) == 0 {
		return description
	}

	resolved := make([]string, len(parsed.Parts))
	for i, part := range parsed.Parts {
		if text, ok := dictionary[part]; ok {
			resolved[i] = text
		} else {
			resolved[i] = part
		}
	}

	if !parsed.IsCompound {
		return resolved[0]
	}
	return strings.Join(resolved, " "+string(parsed.Operator)+" ")
}
