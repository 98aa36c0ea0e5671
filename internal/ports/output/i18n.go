package output

// T is the translation port used for flashes and page labels.
type T interface {
	// T renders key for locale; data fills template placeholders and may be nil.
	T(locale, key string, data map[string]any) string
}
