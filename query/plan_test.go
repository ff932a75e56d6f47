package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

// A seller searching houses between 100k and 300k, second page of two: the
// whole query plan the storage layer would execute.
func TestSearchQueryPlan(t *testing.T) {
	params := url.Values{
		"propertyType": {"house"},
		"minPrice":     {"100000"},
		"maxPrice":     {"300000"},
		"page":         {"2"},
		"limit":        {"2"},
	}

	filter := ParsePropertyFilter(params, ScopePublic)
	page := ResolvePagination(params.Get("page"), params.Get("limit"), 10)
	sort := ResolveSort(params.Get("sortBy"), params.Get("sortOrder"))

	assert.Equal(t, bson.M{
		"status":       "available",
		"isActive":     true,
		"propertyType": "house",
		"price":        bson.M{"$gte": 100000.0, "$lte": 300000.0},
	}, filter.Query())

	assert.Equal(t, int64(2), page.Skip())
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, sort)

	// Two matches in range means one page, and this request asks for page 2.
	assert.Equal(t, PaginationMeta{Page: 2, Limit: 2, Total: 2, Pages: 1}, page.Meta(2))
}
