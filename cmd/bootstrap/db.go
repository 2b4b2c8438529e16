package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"pousada-api/internal/infra/mongodb"
	"pousada-api/internal/pkg/config"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewMongoClient,
		NewDatabase,
		mongodb.NewTxRunner,
	),
	fx.Invoke(ensureIndexes),
)

func NewMongoClient(lc fx.Lifecycle, cfg config.Config) (*mongo.Client, error) {
	client, cleanup, err := mongodb.Connect(cfg.Mongo)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}

func NewDatabase(client *mongo.Client, cfg config.Config) *mongo.Database {
	return client.Database(cfg.Mongo.Database)
}

func ensureIndexes(lc fx.Lifecycle, db *mongo.Database) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return mongodb.EnsureIndexes(ctx, db)
		},
	})
}
