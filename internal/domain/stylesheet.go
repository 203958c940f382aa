package domain

// StylesheetRef is the absolute address of an external stylesheet found on a page.
type StylesheetRef struct {
	URL string `json:"url"`
}

// NewStylesheetRefs wraps raw addresses, keeping their order.
func NewStylesheetRefs(urls []string) []StylesheetRef {
	refs := make([]StylesheetRef, 0, len(urls))
	for _, u := range urls {
		refs = append(refs, StylesheetRef{URL: u})
	}
	return refs
}
