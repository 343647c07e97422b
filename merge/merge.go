// Package merge implements deep-recursive merging of settings documents.
//
// Merge combines two documents with overlay precedence: nested mappings are
// merged key by key, while every other value type (scalars, sequences, or a
// mapping paired with a non-mapping) is replaced wholesale by the overlay
// side. An explicit null in the overlay is an ordinary value and overrides
// the base; only omitting a key inherits the base value.
//
// Resolving three scopes is a left-to-right fold in ascending precedence
// order: Merge(Merge(user, project), local). Any grouping that preserves the
// ascending application order yields the same result; descending order does
// not.
package merge

// Document is a settings document: string keys mapping to scalars, sequences,
// or nested documents.
type Document = map[string]any

// Merge combines base and overlay with overlay precedence and returns a new
// document. Neither input is mutated, and the result shares no mutable
// substructure with either input.
func Merge(base, overlay Document) Document {
	result := make(Document, len(base)+len(overlay))

	for key, baseVal := range base {
		overlayVal, ok := overlay[key]
		if !ok {
			result[key] = cloneValue(baseVal)
			continue
		}

		baseDoc, baseIsDoc := baseVal.(Document)
		overlayDoc, overlayIsDoc := overlayVal.(Document)
		if baseIsDoc && overlayIsDoc {
			result[key] = Merge(baseDoc, overlayDoc)
		} else {
			// Overlay wins, including explicit null.
			result[key] = cloneValue(overlayVal)
		}
	}

	for key, overlayVal := range overlay {
		if _, ok := base[key]; !ok {
			result[key] = cloneValue(overlayVal)
		}
	}

	return result
}

// Clone returns a deep copy of a document. Useful when handing a document to
// callers that may mutate it.
func Clone(doc Document) Document {
	if doc == nil {
		return Document{}
	}
	result := make(Document, len(doc))
	for key, val := range doc {
		result[key] = cloneValue(val)
	}
	return result
}

// cloneValue deep-copies nested documents and sequences. Scalars are returned
// as-is; they are immutable in Go.
func cloneValue(v any) any {
	switch val := v.(type) {
	case Document:
		return Clone(val)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = cloneValue(elem)
		}
		return out
	default:
		return v
	}
}
