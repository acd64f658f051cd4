// Package params reads DataTables server-side listing parameters.
//
// GET /settings/payment-history?draw=2&start=20&length=10&search[value]=upi&order[0][column]=1&order[0][dir]=desc
// → ParseListQuery() → domain.ListQuery{Draw:2, Start:20, Length:10, Search:"upi", OrderColumn:1, OrderDir:"desc"}
// → repo clamps and whitelists, SQL LIMIT/OFFSET
// → dto.TableResponseDTO echoes draw with totals
package params

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
)

// ParseListQuery parses the query string safely. Malformed numbers fall
// back to their defaults rather than failing the request.
func ParseListQuery(q url.Values) domain.ListQuery {
	lq := domain.ListQuery{
		Start:    intParam(q, "start", 0),
		Length:   intParam(q, "length", domain.DefaultPageLength),
		Search:   strings.TrimSpace(q.Get("search[value]")),
		Draw:     intParam(q, "draw", 0),
		OrderDir: "desc",
	}
	lq.OrderColumn = intParam(q, "order[0][column]", 0)
	if strings.EqualFold(strings.TrimSpace(q.Get("order[0][dir]")), "asc") {
		lq.OrderDir = "asc"
	}
	return lq.Normalized()
}

func intParam(q url.Values, key string, def int) int {
	s := strings.TrimSpace(q.Get(key))
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
