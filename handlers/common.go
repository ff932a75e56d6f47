package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JusticeOpara/real-estate-hub/models"
)

func optionsAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// attachOwners resolves the owner summaries for a page of properties in one
// users query instead of one per row.
func attachOwners(ctx context.Context, users *mongo.Collection, properties []models.Property) error {
	if len(properties) == 0 {
		return nil
	}

	seen := map[primitive.ObjectID]bool{}
	ids := make([]primitive.ObjectID, 0, len(properties))
	for _, p := range properties {
		if p.Owner.IsZero() || seen[p.Owner] {
			continue
		}
		seen[p.Owner] = true
		ids = append(ids, p.Owner)
	}
	if len(ids) == 0 {
		return nil
	}

	cursor, err := users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	owners := map[primitive.ObjectID]*models.OwnerSummary{}
	for cursor.Next(ctx) {
		var o models.OwnerSummary
		if err := cursor.Decode(&o); err != nil {
			continue
		}
		owners[o.ID] = &o
	}

	for i := range properties {
		properties[i].OwnerInfo = owners[properties[i].Owner]
	}
	return nil
}

func attachOwner(ctx context.Context, users *mongo.Collection, property *models.Property) {
	if property == nil || property.Owner.IsZero() {
		return
	}
	var o models.OwnerSummary
	if err := users.FindOne(ctx, bson.M{"_id": property.Owner}).Decode(&o); err == nil {
		property.OwnerInfo = &o
	}
}
