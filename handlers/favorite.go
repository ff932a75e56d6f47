package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JusticeOpara/real-estate-hub/config"
	"github.com/JusticeOpara/real-estate-hub/logger"
	"github.com/JusticeOpara/real-estate-hub/middleware"
	"github.com/JusticeOpara/real-estate-hub/models"
	"github.com/JusticeOpara/real-estate-hub/query"
	"github.com/JusticeOpara/real-estate-hub/utils"
)

const favoritePageSize = 10

type FavoriteController struct {
	collection *mongo.Collection
	properties *mongo.Collection
	users      *mongo.Collection
}

func NewFavoriteController(cfg *config.Config) *FavoriteController {
	return &FavoriteController{
		collection: config.GetCollection(cfg.FavoritesCollection),
		properties: config.GetCollection(cfg.PropertiesCollection),
		users:      config.GetCollection(cfg.UsersCollection),
	}
}

// Add creates the favorite edge. The unique (userId, propertyId) index is the
// arbiter: a concurrent duplicate insert loses with a duplicate-key error
// instead of producing a second edge.
func (fc *FavoriteController) Add(c echo.Context) error {
	p := middleware.GetPrincipal(c)

	var req models.AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.FailValidation(c, "Validation failed", utils.ValidationFields(err))
	}

	propertyID, err := primitive.ObjectIDFromHex(req.PropertyID)
	if err != nil {
		return utils.Fail(c, http.StatusNotFound, "Property not found")
	}

	ctx := context.Background()

	count, err := fc.properties.CountDocuments(ctx, bson.M{"_id": propertyID})
	if err != nil {
		logger.Error().Err(err).Msg("failed to check property")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to add favorite")
	}
	if count == 0 {
		return utils.Fail(c, http.StatusNotFound, "Property not found")
	}

	favorite := models.Favorite{
		ID:         primitive.NewObjectID(),
		UserID:     p.ID,
		PropertyID: propertyID,
		CreatedAt:  time.Now(),
	}

	if _, err := fc.collection.InsertOne(ctx, favorite); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.Fail(c, http.StatusConflict, "Property already in favorites")
		}
		logger.Error().Err(err).Msg("failed to insert favorite")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to add favorite")
	}

	return utils.OKMessage(c, http.StatusCreated, "Property added to favorites", echo.Map{"favorite": favorite})
}

func (fc *FavoriteController) Remove(c echo.Context) error {
	p := middleware.GetPrincipal(c)

	propertyID, err := primitive.ObjectIDFromHex(c.Param("propertyId"))
	if err != nil {
		return utils.Fail(c, http.StatusNotFound, "Favorite not found")
	}

	result, err := fc.collection.DeleteOne(context.Background(), bson.M{
		"userId":     p.ID,
		"propertyId": propertyID,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to remove favorite")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to remove favorite")
	}
	if result.DeletedCount == 0 {
		return utils.Fail(c, http.StatusNotFound, "Favorite not found")
	}

	return utils.OKMessage(c, http.StatusOK, "Property removed from favorites", nil)
}

func (fc *FavoriteController) List(c echo.Context) error {
	p := middleware.GetPrincipal(c)
	page := query.ResolvePagination(c.QueryParam("page"), c.QueryParam("limit"), favoritePageSize)

	ctx := context.Background()
	q := bson.M{"userId": p.ID}

	total, err := fc.collection.CountDocuments(ctx, q)
	if err != nil {
		logger.Error().Err(err).Msg("failed to count favorites")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to fetch favorites")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := fc.collection.Find(ctx, q, opts)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch favorites")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to fetch favorites")
	}
	defer cursor.Close(ctx)

	favorites := []models.Favorite{}
	if err := cursor.All(ctx, &favorites); err != nil {
		logger.Error().Err(err).Msg("failed to decode favorites")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to fetch favorites")
	}

	fc.populateProperties(ctx, favorites)

	return utils.OKList(c, http.StatusOK, echo.Map{"favorites": favorites}, page.Meta(total))
}

func (fc *FavoriteController) populateProperties(ctx context.Context, favorites []models.Favorite) {
	if len(favorites) == 0 {
		return
	}

	ids := make([]primitive.ObjectID, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.PropertyID)
	}

	cursor, err := fc.properties.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to populate favorite properties")
		return
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		logger.Warn().Err(err).Msg("failed to decode favorite properties")
		return
	}
	if err := attachOwners(ctx, fc.users, properties); err != nil {
		logger.Warn().Err(err).Msg("failed to populate owners")
	}

	byID := map[primitive.ObjectID]*models.Property{}
	for i := range properties {
		byID[properties[i].ID] = &properties[i]
	}
	for i := range favorites {
		favorites[i].Property = byID[favorites[i].PropertyID]
	}
}
