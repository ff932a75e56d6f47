// Package query builds storage predicates, pagination windows, and sort specs
// from untrusted request parameters. Malformed values degrade to "no filter"
// rather than erroring, so stale or partially typed query strings from clients
// never fail a search.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JusticeOpara/real-estate-hub/models"
)

// Scope selects which base predicate a property search carries.
type Scope int

const (
	// ScopePublic restricts results to active, available listings.
	ScopePublic Scope = iota
	// ScopeOwner drops the base predicate; used for a seller's own listings.
	ScopeOwner
	// ScopeAdmin drops the base predicate and allows explicit status filters.
	ScopeAdmin
)

// PropertyFilter holds the validated subset of search parameters. Nil pointer
// fields mean the parameter was absent or unparseable.
type PropertyFilter struct {
	PropertyType string
	ListingType  string
	City         string
	State        string
	Bedrooms     *int
	Bathrooms    *int
	MinPrice     *float64
	MaxPrice     *float64
	Search       string
	Status       string
	Owner        *primitive.ObjectID

	Scope Scope
}

// ParsePropertyFilter extracts filter parameters from a query string. Invalid
// enum members and unparseable numbers are dropped silently.
func ParsePropertyFilter(values url.Values, scope Scope) PropertyFilter {
	f := PropertyFilter{Scope: scope}

	if v := values.Get("propertyType"); models.PropertyTypes[v] {
		f.PropertyType = v
	}
	if v := values.Get("listingType"); models.ListingTypes[v] {
		f.ListingType = v
	}
	f.City = strings.TrimSpace(values.Get("city"))
	f.State = strings.TrimSpace(values.Get("state"))

	f.Bedrooms = parseMinCount(values.Get("bedrooms"))
	f.Bathrooms = parseMinCount(values.Get("bathrooms"))
	f.MinPrice = parsePrice(values.Get("minPrice"))
	f.MaxPrice = parsePrice(values.Get("maxPrice"))

	f.Search = strings.TrimSpace(values.Get("search"))

	if scope == ScopeAdmin {
		if v := values.Get("status"); models.PropertyStatuses[v] {
			f.Status = v
		}
	}

	return f
}

func parseMinCount(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func parsePrice(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// Query folds the populated fields into a single conjunctive bson document.
// A min bound above the max bound is kept as given; the resulting query simply
// matches nothing.
func (f PropertyFilter) Query() bson.M {
	q := bson.M{}

	if f.Scope == ScopePublic {
		q["status"] = models.StatusAvailable
		q["isActive"] = true
	}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.Owner != nil {
		q["owner"] = *f.Owner
	}

	if f.PropertyType != "" {
		q["propertyType"] = f.PropertyType
	}
	if f.ListingType != "" {
		q["listingType"] = f.ListingType
	}
	if f.City != "" {
		q["location.city"] = bson.M{"$regex": regexEscape(f.City), "$options": "i"}
	}
	if f.State != "" {
		q["location.state"] = bson.M{"$regex": regexEscape(f.State), "$options": "i"}
	}
	if f.Bedrooms != nil {
		q["specifications.bedrooms"] = bson.M{"$gte": *f.Bedrooms}
	}
	if f.Bathrooms != nil {
		q["specifications.bathrooms"] = bson.M{"$gte": *f.Bathrooms}
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		q["price"] = price
	}

	if f.Search != "" {
		q["$text"] = bson.M{"$search": f.Search}
	}

	return q
}

var regexMeta = strings.NewReplacer(
	`\`, `\\`, `.`, `\.`, `+`, `\+`, `*`, `\*`, `?`, `\?`,
	`(`, `\(`, `)`, `\)`, `[`, `\[`, `]`, `\]`, `{`, `\{`, `}`, `\}`,
	`^`, `\^`, `$`, `\$`, `|`, `\|`,
)

// regexEscape neutralizes regex metacharacters so city/state inputs behave as
// plain substring matches.
func regexEscape(s string) string {
	return regexMeta.Replace(s)
}
