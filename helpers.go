package weave

///////////////////////////////////////////////////////////////////////////////
// Helpers
///////////////////////////////////////////////////////////////////////////////

// Ptr returns a pointer to v. Handy for the optional bool fields of
// TagConfig, e.g. AllowsChildren: weave.Ptr(false).
func Ptr[T any](v T) *T { return &v }

// orDefault dereferences b, falling back to def when b is unset.
func orDefault(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
