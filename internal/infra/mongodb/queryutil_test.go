//go:build unit

package mongodb_test

import (
	"testing"

	"pousada-api/internal/infra/mongodb"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSort(t *testing.T) {
	tests := []struct {
		name    string
		orderBy string
		want    bson.D
	}{
		{"empty means no sort", "", nil},
		{"ascending", "name_ASC", bson.D{{Key: "name", Value: 1}}},
		{"descending", "createdAt_DESC", bson.D{{Key: "createdAt", Value: -1}}},
		{"id maps to native identifier", "id_ASC", bson.D{{Key: "_id", Value: 1}}},
		{"missing direction defaults to descending", "name", bson.D{{Key: "name", Value: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, mongodb.Sort(tt.orderBy)); diff != "" {
				t.Errorf("Sort(%q) mismatch (-want +got):\n%s", tt.orderBy, diff)
			}
		})
	}
}

func TestCoerceID(t *testing.T) {
	valid := primitive.NewObjectID()
	assert.Equal(t, valid, mongodb.CoerceID(valid.Hex()))

	// Malformed input must coerce to a fresh id that matches nothing,
	// not an error.
	coerced := mongodb.CoerceID("not-an-object-id")
	assert.False(t, coerced.IsZero())
	assert.NotEqual(t, valid, coerced)
}

func TestEscapeRegex(t *testing.T) {
	assert.Equal(t, `a\.b\*c`, mongodb.EscapeRegex("a.b*c"))
	assert.Equal(t, `\(\[\{\\`, mongodb.EscapeRegex(`([{\`))
	assert.Equal(t, "plain text", mongodb.EscapeRegex("plain text"))
}

func TestAppendRangeCriteria(t *testing.T) {
	start, end := 10.0, 20.0

	var criteria []bson.M
	criteria = mongodb.AppendRangeCriteria(criteria, "price", &start, &end)
	assert.Equal(t, []bson.M{
		{"price": bson.M{"$gte": 10.0}},
		{"price": bson.M{"$lte": 20.0}},
	}, criteria)

	criteria = mongodb.AppendRangeCriteria(nil, "price", nil, &end)
	assert.Equal(t, []bson.M{{"price": bson.M{"$lte": 20.0}}}, criteria)

	criteria = mongodb.AppendRangeCriteria(nil, "price", nil, nil)
	assert.Empty(t, criteria)
}

func TestAnd(t *testing.T) {
	assert.Equal(t, bson.M{}, mongodb.And(nil))

	clause := bson.M{"status": "checkin"}
	assert.Equal(t, bson.M{"$and": []bson.M{clause}}, mongodb.And([]bson.M{clause}))
}
