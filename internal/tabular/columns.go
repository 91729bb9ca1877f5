package tabular

import "strings"

// ResolveColumn picks the header that should supply a wanted field. The
// resolution order is fixed:
//
//  1. exact case-insensitive match on want
//  2. case-insensitive substring match, first header in file order wins
//  3. the fallback name, whether or not it appears in headers
//
// Source exports disagree on header spelling ("OrderID", "Order ID",
// "orderid"), so the caller passes the loosest hint that is still
// unambiguous for that file.
func ResolveColumn(headers []string, want, fallback string) string {
	for _, h := range headers {
		if strings.EqualFold(h, want) {
			return h
		}
	}

	lowerWant := strings.ToLower(want)
	for _, h := range headers {
		if strings.Contains(strings.ToLower(h), lowerWant) {
			return h
		}
	}

	return fallback
}
