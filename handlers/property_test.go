package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/JusticeOpara/real-estate-hub/authz"
	"github.com/JusticeOpara/real-estate-hub/models"
	"github.com/JusticeOpara/real-estate-hub/utils"
)

func updateContext(e *echo.Echo, id primitive.ObjectID, p authz.Principal, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/properties/:id")
	c.SetParamNames("id")
	c.SetParamValues(id.Hex())
	c.Set("principal", p)
	return c, rec
}

func propertyDoc(id, owner primitive.ObjectID) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "owner", Value: owner},
		{Key: "title", Value: "Lakeside cottage"},
		{Key: "status", Value: models.StatusAvailable},
		{Key: "isActive", Value: true},
	}
}

func TestUpdateProperty(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleted between ownership check and write returns 404", func(mt *mtest.T) {
		e := echo.New()
		e.Validator = utils.NewRequestValidator()
		pc := &PropertyController{collection: mt.Coll, users: mt.Coll, favorites: mt.Coll}

		id := primitive.NewObjectID()
		owner := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "realestate.properties", mtest.FirstBatch, propertyDoc(id, owner)),
			// findAndModify with no matching document.
			bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}},
		)

		c, rec := updateContext(e, id, authz.Principal{ID: owner, Role: models.RoleSeller, Active: true}, `{"title":"Updated"}`)
		assert.NoError(t, pc.Update(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Property not found")
	})

	mt.Run("missing property returns 404", func(mt *mtest.T) {
		e := echo.New()
		e.Validator = utils.NewRequestValidator()
		pc := &PropertyController{collection: mt.Coll, users: mt.Coll, favorites: mt.Coll}

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "realestate.properties", mtest.FirstBatch),
		)

		c, rec := updateContext(e, primitive.NewObjectID(), authz.Principal{ID: primitive.NewObjectID(), Role: models.RoleSeller, Active: true}, `{"title":"Updated"}`)
		assert.NoError(t, pc.Update(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	mt.Run("non-owner seller gets 403", func(mt *mtest.T) {
		e := echo.New()
		e.Validator = utils.NewRequestValidator()
		pc := &PropertyController{collection: mt.Coll, users: mt.Coll, favorites: mt.Coll}

		id := primitive.NewObjectID()
		owner := primitive.NewObjectID()
		intruder := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "realestate.properties", mtest.FirstBatch, propertyDoc(id, owner)),
		)

		c, rec := updateContext(e, id, authz.Principal{ID: intruder, Role: models.RoleSeller, Active: true}, `{"title":"Updated"}`)
		assert.NoError(t, pc.Update(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
