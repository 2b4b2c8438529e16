package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pousada-api/internal/infra/mongodb"
)

// Pagination holds the page slice and order of a list query. Limit 0 means
// unlimited; OrderBy defaults to creation time, newest first.
type Pagination struct {
	Limit   int64
	Offset  int64
	OrderBy string
}

func findOptions(p Pagination) *options.FindOptions {
	opts := options.Find()
	sort := mongodb.Sort(p.OrderBy)
	if sort == nil {
		sort = bson.D{{Key: "createdAt", Value: -1}}
	}
	opts.SetSort(sort)
	if p.Offset > 0 {
		opts.SetSkip(p.Offset)
	}
	if p.Limit > 0 {
		opts.SetLimit(p.Limit)
	}
	return opts
}

func autocompleteOptions(orderBy string, limit int64) *options.FindOptions {
	opts := options.Find().SetSort(mongodb.Sort(orderBy))
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return opts
}
