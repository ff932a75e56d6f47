package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusAvailable = "available"
	StatusPending   = "pending"
	StatusSold      = "sold"
	StatusRented    = "rented"
)

// PropertyTypes and the other enum sets mirror the collection's schema; values
// outside them are rejected on writes and silently ignored as filters.
var (
	PropertyTypes = map[string]bool{
		"house":      true,
		"apartment":  true,
		"land":       true,
		"commercial": true,
		"villa":      true,
		"condo":      true,
	}
	ListingTypes = map[string]bool{
		"sale": true,
		"rent": true,
	}
	PropertyStatuses = map[string]bool{
		StatusAvailable: true,
		StatusPending:   true,
		StatusSold:      true,
		StatusRented:    true,
	}
	AreaUnits = map[string]bool{
		"sqft": true,
		"sqm":  true,
	}
)

type Coordinates struct {
	Latitude  float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
}

type Location struct {
	Address     string       `json:"address" bson:"address" validate:"required"`
	City        string       `json:"city" bson:"city" validate:"required"`
	State       string       `json:"state" bson:"state" validate:"required"`
	ZipCode     string       `json:"zipCode,omitempty" bson:"zipCode,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
}

type Specifications struct {
	Bedrooms  int     `json:"bedrooms" bson:"bedrooms" validate:"min=0"`
	Bathrooms int     `json:"bathrooms" bson:"bathrooms" validate:"min=0"`
	Area      float64 `json:"area" bson:"area" validate:"required,gt=0"`
	AreaUnit  string  `json:"areaUnit" bson:"areaUnit" validate:"omitempty,oneof=sqft sqm"`
	YearBuilt int     `json:"yearBuilt,omitempty" bson:"yearBuilt,omitempty" validate:"omitempty,min=1800"`
}

type Image struct {
	URL      string `json:"url" bson:"url" validate:"required,url"`
	PublicID string `json:"publicId,omitempty" bson:"publicId,omitempty"`
}

type Property struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Description    string             `json:"description" bson:"description"`
	Price          float64            `json:"price" bson:"price"`
	PropertyType   string             `json:"propertyType" bson:"propertyType"`
	ListingType    string             `json:"listingType" bson:"listingType"`
	Location       Location           `json:"location" bson:"location"`
	Specifications Specifications     `json:"specifications" bson:"specifications"`
	Amenities      []string           `json:"amenities" bson:"amenities"`
	Images         []Image            `json:"images" bson:"images"`
	Owner          primitive.ObjectID `json:"owner" bson:"owner"`
	OwnerInfo      *OwnerSummary      `json:"ownerInfo,omitempty" bson:"ownerInfo,omitempty"`
	Status         string             `json:"status" bson:"status"`
	Featured       bool               `json:"featured" bson:"featured"`
	Views          int64              `json:"views" bson:"views"`
	IsActive       bool               `json:"isActive" bson:"isActive"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type PropertyRequest struct {
	Title          string         `json:"title" validate:"required,max=100"`
	Description    string         `json:"description" validate:"required,max=2000"`
	Price          float64        `json:"price" validate:"min=0"`
	PropertyType   string         `json:"propertyType" validate:"required,oneof=house apartment land commercial villa condo"`
	ListingType    string         `json:"listingType" validate:"required,oneof=sale rent"`
	Location       Location       `json:"location" validate:"required"`
	Specifications Specifications `json:"specifications" validate:"required"`
	Amenities      []string       `json:"amenities"`
	Images         []Image        `json:"images" validate:"required,min=1,dive"`
}

// UpdatePropertyRequest is a partial update; nil fields are left untouched.
// Owner and views are never client-settable.
type UpdatePropertyRequest struct {
	Title          *string         `json:"title" validate:"omitempty,max=100"`
	Description    *string         `json:"description" validate:"omitempty,max=2000"`
	Price          *float64        `json:"price" validate:"omitempty,min=0"`
	PropertyType   *string         `json:"propertyType" validate:"omitempty,oneof=house apartment land commercial villa condo"`
	ListingType    *string         `json:"listingType" validate:"omitempty,oneof=sale rent"`
	Location       *Location       `json:"location"`
	Specifications *Specifications `json:"specifications"`
	Amenities      []string        `json:"amenities"`
	Images         []Image         `json:"images" validate:"omitempty,min=1,dive"`
	Status         *string         `json:"status" validate:"omitempty,oneof=available pending sold rented"`
}

type UpdateStatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=available pending sold rented"`
	Featured *bool  `json:"featured"`
}
