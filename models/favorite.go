package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorite is a many-to-many edge between a user and a property. The storage
// layer holds a unique index on (userId, propertyId).
type Favorite struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID     primitive.ObjectID `json:"userId" bson:"userId"`
	PropertyID primitive.ObjectID `json:"propertyId" bson:"propertyId"`
	Property   *Property          `json:"property,omitempty" bson:"-"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

type AddFavoriteRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
}
