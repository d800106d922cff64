package enumerate

// RequestHome returns the home selector of a decoded request, or "" for
// requests that are not home-scoped.
func RequestHome(req any) string {
	if r, ok := req.(interface{ HomeSelector() string }); ok {
		return r.HomeSelector()
	}
	return ""
}

// ItemCount returns how many entities a response carries.
func ItemCount(resp any) int {
	if r, ok := resp.(interface{ Count() int }); ok {
		return r.Count()
	}
	return 0
}
