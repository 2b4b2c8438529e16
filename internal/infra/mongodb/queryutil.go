package mongodb

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sort parses a "<field>_<ASC|DESC>" order key into a sort document. The
// logical "id" field maps to the store's native _id. Empty input means no
// sort.
func Sort(orderBy string) bson.D {
	if orderBy == "" {
		return nil
	}

	column, order, _ := strings.Cut(orderBy, "_")
	if column == "id" {
		column = "_id"
	}

	direction := -1
	if order == "ASC" {
		direction = 1
	}

	return bson.D{{Key: column, Value: direction}}
}

// CoerceID returns the value as an ObjectID when it is a valid hex id.
// Invalid input yields a freshly generated id that matches no stored record,
// so malformed filter values produce empty result sets instead of query
// errors.
func CoerceID(value string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NewObjectIDFromTimestamp(time.Now())
	}
	return id
}

// EscapeRegex escapes characters with special meaning in a regular
// expression so user search text is safe to embed in a case-insensitive
// substring match.
func EscapeRegex(value string) string {
	return regexp.QuoteMeta(value)
}

// ContainsPattern builds a case-insensitive substring filter on field.
func ContainsPattern(field, search string) bson.M {
	return bson.M{field: bson.M{"$regex": EscapeRegex(search), "$options": "i"}}
}

// EqualsPattern builds a case-insensitive whole-value filter on field.
func EqualsPattern(field, value string) bson.M {
	return bson.M{field: bson.M{"$regex": "^" + EscapeRegex(value) + "$", "$options": "i"}}
}

// AppendRangeCriteria appends a greater-or-equal clause for start and a
// less-or-equal clause for end, each independently omitted when absent.
func AppendRangeCriteria(criteria []bson.M, field string, start, end *float64) []bson.M {
	if start != nil {
		criteria = append(criteria, bson.M{field: bson.M{"$gte": *start}})
	}
	if end != nil {
		criteria = append(criteria, bson.M{field: bson.M{"$lte": *end}})
	}
	return criteria
}

// And folds the collected criteria into one conjunctive filter. An empty
// criteria list imposes no constraint.
func And(criteria []bson.M) bson.M {
	if len(criteria) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": criteria}
}
