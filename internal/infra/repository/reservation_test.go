//go:build unit

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTotalCost(t *testing.T) {
	itemA := primitive.NewObjectID()
	itemB := primitive.NewObjectID()
	missing := primitive.NewObjectID()

	tests := []struct {
		name   string
		lines  []reservationLine
		prices map[primitive.ObjectID]float64
		want   float64
	}{
		{
			name:  "sums price times quantity",
			lines: []reservationLine{{Consumption: itemA, Quantity: 2}, {Consumption: itemB, Quantity: 1}},
			prices: map[primitive.ObjectID]float64{
				itemA: 10,
				itemB: 5,
			},
			want: 25,
		},
		{
			name:   "empty line list costs zero",
			lines:  nil,
			prices: map[primitive.ObjectID]float64{itemA: 10},
			want:   0,
		},
		{
			name:   "missing consumption contributes zero",
			lines:  []reservationLine{{Consumption: missing, Quantity: 3}, {Consumption: itemA, Quantity: 1}},
			prices: map[primitive.ObjectID]float64{itemA: 10},
			want:   10,
		},
		{
			name:   "zero quantity contributes zero",
			lines:  []reservationLine{{Consumption: itemA, Quantity: 0}},
			prices: map[primitive.ObjectID]float64{itemA: 10},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, totalCost(tt.lines, tt.prices))
		})
	}
}
