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

	"github.com/JusticeOpara/real-estate-hub/authz"
	"github.com/JusticeOpara/real-estate-hub/config"
	"github.com/JusticeOpara/real-estate-hub/logger"
	"github.com/JusticeOpara/real-estate-hub/middleware"
	"github.com/JusticeOpara/real-estate-hub/models"
	"github.com/JusticeOpara/real-estate-hub/query"
	"github.com/JusticeOpara/real-estate-hub/utils"
)

const (
	publicPageSize = 10
	ownerPageSize  = 12
)

type PropertyController struct {
	collection *mongo.Collection
	users      *mongo.Collection
	favorites  *mongo.Collection
}

func NewPropertyController(cfg *config.Config) *PropertyController {
	return &PropertyController{
		collection: config.GetCollection(cfg.PropertiesCollection),
		users:      config.GetCollection(cfg.UsersCollection),
		favorites:  config.GetCollection(cfg.FavoritesCollection),
	}
}

func (pc *PropertyController) Create(c echo.Context) error {
	p := middleware.GetPrincipal(c)

	var req models.PropertyRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.FailValidation(c, "Validation failed", utils.ValidationFields(err))
	}

	spec := req.Specifications
	if spec.AreaUnit == "" {
		spec.AreaUnit = "sqft"
	}

	now := time.Now()
	property := models.Property{
		ID:             primitive.NewObjectID(),
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		PropertyType:   req.PropertyType,
		ListingType:    req.ListingType,
		Location:       req.Location,
		Specifications: spec,
		Amenities:      req.Amenities,
		Images:         req.Images,
		Owner:          p.ID,
		Status:         models.StatusAvailable,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := pc.collection.InsertOne(context.Background(), property); err != nil {
		logger.Error().Err(err).Msg("failed to insert property")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to create property")
	}

	return utils.OKMessage(c, http.StatusCreated, "Property created successfully", echo.Map{"property": property})
}

// List is the public search: base predicate plus whatever valid filters the
// query string carries, paginated and sorted.
func (pc *PropertyController) List(c echo.Context) error {
	filter := query.ParsePropertyFilter(c.QueryParams(), query.ScopePublic)
	page := query.ResolvePagination(c.QueryParam("page"), c.QueryParam("limit"), publicPageSize)
	sort := query.ResolveSort(c.QueryParam("sortBy"), c.QueryParam("sortOrder"))

	return pc.findPage(c, filter.Query(), page, sort)
}

// MyProperties lists the caller's own listings regardless of status,
// newest-first.
func (pc *PropertyController) MyProperties(c echo.Context) error {
	p := middleware.GetPrincipal(c)

	filter := query.PropertyFilter{Scope: query.ScopeOwner, Owner: &p.ID}
	page := query.ResolvePagination(c.QueryParam("page"), c.QueryParam("limit"), ownerPageSize)
	sort := query.ResolveSort("", "")

	return pc.findPage(c, filter.Query(), page, sort)
}

func (pc *PropertyController) findPage(c echo.Context, q bson.M, page query.Pagination, sort bson.D) error {
	ctx := context.Background()

	total, err := pc.collection.CountDocuments(ctx, q)
	if err != nil {
		logger.Error().Err(err).Msg("failed to count properties")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to fetch properties")
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := pc.collection.Find(ctx, q, opts)
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

	if err := attachOwners(ctx, pc.users, properties); err != nil {
		logger.Warn().Err(err).Msg("failed to populate owners")
	}

	return utils.OKList(c, http.StatusOK, echo.Map{"properties": properties}, page.Meta(total))
}

// Get fetches one property and atomically bumps its view counter. Every
// detail fetch counts, repeat viewers included.
func (pc *PropertyController) Get(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return utils.Fail(c, http.StatusNotFound, "Property not found")
	}

	ctx := context.Background()

	var property models.Property
	err = pc.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}},
		optionsAfter(),
	).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.Fail(c, http.StatusNotFound, "Property not found")
		}
		logger.Error().Err(err).Msg("failed to fetch property")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to fetch property")
	}

	attachOwner(ctx, pc.users, &property)

	return utils.OK(c, http.StatusOK, echo.Map{"property": property})
}

func (pc *PropertyController) Update(c echo.Context) error {
	p := middleware.GetPrincipal(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return utils.Fail(c, http.StatusNotFound, "Property not found")
	}

	ctx := context.Background()

	var property models.Property
	if err := pc.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.Fail(c, http.StatusNotFound, "Property not found")
		}
		logger.Error().Err(err).Msg("failed to fetch property")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to update property")
	}

	if !authz.CanMutate(p, property.Owner) {
		return utils.Fail(c, http.StatusForbidden, "Not authorized to update this property")
	}

	var req models.UpdatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.FailValidation(c, "Validation failed", utils.ValidationFields(err))
	}

	updateDoc := bson.M{"updatedAt": time.Now()}
	if req.Title != nil {
		updateDoc["title"] = *req.Title
	}
	if req.Description != nil {
		updateDoc["description"] = *req.Description
	}
	if req.Price != nil {
		updateDoc["price"] = *req.Price
	}
	if req.PropertyType != nil {
		updateDoc["propertyType"] = *req.PropertyType
	}
	if req.ListingType != nil {
		updateDoc["listingType"] = *req.ListingType
	}
	if req.Location != nil {
		updateDoc["location"] = *req.Location
	}
	if req.Specifications != nil {
		updateDoc["specifications"] = *req.Specifications
	}
	if req.Amenities != nil {
		updateDoc["amenities"] = req.Amenities
	}
	if req.Images != nil {
		updateDoc["images"] = req.Images
	}
	if req.Status != nil {
		updateDoc["status"] = *req.Status
	}

	err = pc.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
		optionsAfter(),
	).Decode(&property)
	if err != nil {
		// The property can be deleted between the ownership check and the
		// write; that is still a missing resource, not a server fault.
		if err == mongo.ErrNoDocuments {
			return utils.Fail(c, http.StatusNotFound, "Property not found")
		}
		logger.Error().Err(err).Msg("failed to update property")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to update property")
	}

	return utils.OKMessage(c, http.StatusOK, "Property updated successfully", echo.Map{"property": property})
}

func (pc *PropertyController) Delete(c echo.Context) error {
	p := middleware.GetPrincipal(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return utils.Fail(c, http.StatusNotFound, "Property not found")
	}

	ctx := context.Background()

	var property models.Property
	if err := pc.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.Fail(c, http.StatusNotFound, "Property not found")
		}
		logger.Error().Err(err).Msg("failed to fetch property")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to delete property")
	}

	if !authz.CanMutate(p, property.Owner) {
		return utils.Fail(c, http.StatusForbidden, "Not authorized to delete this property")
	}

	if _, err := pc.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		logger.Error().Err(err).Msg("failed to delete property")
		return utils.Fail(c, http.StatusInternalServerError, "Failed to delete property")
	}

	// Favorites pointing at a deleted property go with it.
	if _, err := pc.favorites.DeleteMany(ctx, bson.M{"propertyId": id}); err != nil {
		logger.Warn().Err(err).Str("property", id.Hex()).Msg("failed to cascade favorites")
	}

	return utils.OKMessage(c, http.StatusOK, "Property deleted successfully", nil)
}
