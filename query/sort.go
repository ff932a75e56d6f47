package query

import "go.mongodb.org/mongo-driver/bson"

// sortFields whitelists client-sortable fields and maps them onto their
// document paths.
var sortFields = map[string]string{
	"createdAt": "createdAt",
	"price":     "price",
	"views":     "views",
	"area":      "specifications.area",
}

// ResolveSort returns a sort spec for the given field and direction. Unknown
// fields and directions fall back to newest-first.
func ResolveSort(field, order string) bson.D {
	path, ok := sortFields[field]
	if !ok {
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	dir := -1
	if order == "asc" {
		dir = 1
	}
	return bson.D{{Key: path, Value: dir}}
}
