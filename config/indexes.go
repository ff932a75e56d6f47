package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the query layer depends on. The unique
// compound index on favorites is what turns a concurrent duplicate insert into
// a rejected write instead of a second edge.
func EnsureIndexes(cfg *Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	users := GetCollection(cfg.UsersCollection)
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	favorites := GetCollection(cfg.FavoritesCollection)
	_, err = favorites.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "propertyId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	properties := GetCollection(cfg.PropertiesCollection)
	_, err = properties.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}},
		},
		{
			Keys: bson.D{
				{Key: "location.city", Value: 1},
				{Key: "propertyType", Value: 1},
				{Key: "price", Value: 1},
			},
		},
	})
	return err
}
