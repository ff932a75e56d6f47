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
	"github.com/JusticeOpara/real-estate-hub/models"
	"github.com/JusticeOpara/real-estate-hub/query"
	"github.com/JusticeOpara/real-estate-hub/utils"
)

const adminPageSize = 10

type AdminController struct {
	users      *mongo.Collection
	properties *mongo.Collection
	favorites  *mongo.Collection
}

func NewAdminController(cfg *config.Config) *AdminController {
	return &AdminController{
		users:      config.GetCollection(cfg.UsersCollection),
		properties: config.GetCollection(cfg.PropertiesCollection),
		favorites:  config.GetCollection(cfg.FavoritesCollection),
	}
}

func (ac *AdminController) ListUsers(c echo.Context) error {
	page := query.ResolvePagination(c.QueryParam("page"), c.QueryParam("limit"), adminPageSize)

	ctx := context.Background()

	total, err := ac.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("failed to count users")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to fetch users")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := ac.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch users")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to fetch users")
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		logger.Error().Err(err).Msg("failed to decode users")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to fetch users")
	}

	return utils.OKList(c, http.StatusOK, echo.Map{"users": users}, page.Meta(total))
}

// UpdateUser lets an admin change a user's role or toggle the active flag;
// deactivation is the soft-disable path, deletion the hard one.
func (ac *AdminController) UpdateUser(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return utils.Fail(c, http.StatusNotFound, "User not found")
	}

	var req models.AdminUpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.FailValidation(c, "Validation failed", utils.ValidationFields(err))
	}

	updateDoc := bson.M{"updatedAt": time.Now()}
	if req.Role != "" {
		updateDoc["role"] = req.Role
	}
	if req.IsActive != nil {
		updateDoc["isActive"] = *req.IsActive
	}

	var user models.User
	err = ac.users.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
		optionsAfter(),
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.Fail(c, http.StatusNotFound, "User not found")
		}
		logger.Error().Err(err).Msg("failed to update user")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to update user")
	}

	return utils.OKMessage(c, http.StatusOK, "User updated successfully", echo.Map{"user": user})
}

// DeleteUser removes the user and cascades: their properties, their outgoing
// favorites, and every favorite pointing at a deleted property.
func (ac *AdminController) DeleteUser(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return utils.Fail(c, http.StatusNotFound, "User not found")
	}

	ctx := context.Background()

	result, err := ac.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Error().Err(err).Msg("failed to delete user")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to delete user")
	}
	if result.DeletedCount == 0 {
		return utils.Fail(c, http.StatusNotFound, "User not found")
	}

	cursor, err := ac.properties.Find(ctx, bson.M{"owner": id},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		logger.Error().Err(err).Msg("failed to list owned properties for cascade")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to delete user")
	}

	ownedIDs := []primitive.ObjectID{}
	for cursor.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err == nil {
			ownedIDs = append(ownedIDs, doc.ID)
		}
	}
	cursor.Close(ctx)

	if len(ownedIDs) > 0 {
		if _, err := ac.properties.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ownedIDs}}); err != nil {
			logger.Warn().Err(err).Msg("failed to cascade owned properties")
		}
		if _, err := ac.favorites.DeleteMany(ctx, bson.M{"propertyId": bson.M{"$in": ownedIDs}}); err != nil {
			logger.Warn().Err(err).Msg("failed to cascade favorites of owned properties")
		}
	}
	if _, err := ac.favorites.DeleteMany(ctx, bson.M{"userId": id}); err != nil {
		logger.Warn().Err(err).Msg("failed to cascade user favorites")
	}

	return utils.OKMessage(c, http.StatusOK, "User deleted successfully", nil)
}

// ListProperties is the admin search: no base predicate, explicit status
// filter allowed, paginated, newest-first by default.
func (ac *AdminController) ListProperties(c echo.Context) error {
	filter := query.ParsePropertyFilter(c.QueryParams(), query.ScopeAdmin)
	page := query.ResolvePagination(c.QueryParam("page"), c.QueryParam("limit"), adminPageSize)
	sort := query.ResolveSort(c.QueryParam("sortBy"), c.QueryParam("sortOrder"))

	ctx := context.Background()
	q := filter.Query()

	total, err := ac.properties.CountDocuments(ctx, q)
	if err != nil {
		logger.Error().Err(err).Msg("failed to count properties")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to fetch properties")
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := ac.properties.Find(ctx, q, opts)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch properties")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to fetch properties")
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		logger.Error().Err(err).Msg("failed to decode properties")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to fetch properties")
	}

	if err := attachOwners(ctx, ac.users, properties); err != nil {
		logger.Warn().Err(err).Msg("failed to populate owners")
	}

	return utils.OKList(c, http.StatusOK, echo.Map{"properties": properties}, page.Meta(total))
}

func (ac *AdminController) UpdatePropertyStatus(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return utils.Fail(c, http.StatusNotFound, "Property not found")
	}

	var req models.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.FailValidation(c, "Validation failed", utils.ValidationFields(err))
	}

	updateDoc := bson.M{
		"status":    req.Status,
		"updatedAt": time.Now(),
	}
	if req.Featured != nil {
		updateDoc["featured"] = *req.Featured
	}

	var property models.Property
	err = ac.properties.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
		optionsAfter(),
	).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.Fail(c, http.StatusNotFound, "Property not found")
		}
		logger.Error().Err(err).Msg("failed to update property status")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to update property status")
	}

	return utils.OKMessage(c, http.StatusOK, "Property status updated", echo.Map{"property": property})
}

func (ac *AdminController) Stats(c echo.Context) error {
	ctx := context.Background()

	totalUsers, err := ac.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("failed to count users")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to fetch stats")
	}
	totalProperties, err := ac.properties.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("failed to count properties")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to fetch stats")
	}
	activeListings, err := ac.properties.CountDocuments(ctx, bson.M{"status": models.StatusAvailable})
	if err != nil {
		logger.Error().Err(err).Msg("failed to count active listings")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to fetch stats")
	}
	totalSellers, err := ac.users.CountDocuments(ctx, bson.M{"role": models.RoleSeller})
	if err != nil {
		logger.Error().Err(err).Msg("failed to count sellers")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to fetch stats")
	}

	return utils.OK(c, http.StatusOK, echo.Map{
		"totalUsers":      totalUsers,
		"totalProperties": totalProperties,
		"activeListings":  activeListings,
		"totalSellers":    totalSellers,
	})
}
