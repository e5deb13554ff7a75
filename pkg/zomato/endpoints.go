package zomato

import "context"

// Endpoint is a path beneath BaseURL.
type Endpoint string

const (
	EndpointCategories      Endpoint = "categories"
	EndpointCities          Endpoint = "cities"
	EndpointCollections     Endpoint = "collections"
	EndpointCuisines        Endpoint = "cuisines"
	EndpointEstablishments  Endpoint = "establishments"
	EndpointGeocode         Endpoint = "geocode"
	EndpointLocationDetails Endpoint = "location_details"
	EndpointLocations       Endpoint = "locations"
	EndpointDailyMenu       Endpoint = "dailymenu"
	EndpointRestaurant      Endpoint = "restaurant"
	EndpointReviews         Endpoint = "reviews"
	EndpointSearch          Endpoint = "search"
)

// Endpoints lists every endpoint the client has a method for.
var Endpoints = []Endpoint{
	EndpointCategories,
	EndpointCities,
	EndpointCollections,
	EndpointCuisines,
	EndpointEstablishments,
	EndpointGeocode,
	EndpointLocationDetails,
	EndpointLocations,
	EndpointDailyMenu,
	EndpointRestaurant,
	EndpointReviews,
	EndpointSearch,
}

// KnownEndpoint reports whether name is one of Endpoints.
func KnownEndpoint(name string) bool {
	for _, e := range Endpoints {
		if string(e) == name {
			return true
		}
	}
	return false
}

// EntityType is the granularity of a location entity id.
type EntityType string

const (
	EntityCity     EntityType = "city"
	EntityZone     EntityType = "zone"
	EntitySubzone  EntityType = "subzone"
	EntityLandmark EntityType = "landmark"
	EntityMetro    EntityType = "metro"
	EntityGroup    EntityType = "group"
)

// Search sort keys and orders.
const (
	SortCost         = "cost"
	SortRating       = "rating"
	SortRealDistance = "real_distance"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Category returns the list of restaurant categories.
func (c *Client) Category(ctx context.Context) (*Response, error) {
	return c.Get(ctx, EndpointCategories, nil)
}

// CitiesOptions filters the cities lookup.
type CitiesOptions struct {
	Query      string // q, city name
	Coordinate Coordinate
	CityIDs    []int // city_ids
	Count      int
	Extra      Params
}

func (o *CitiesOptions) params() Params {
	p := Params{}
	if o == nil {
		return p
	}
	p.Merge(o.Extra)
	p.setString("q", o.Query)
	p.setCoordinate(o.Coordinate)
	p.setInts("city_ids", o.CityIDs)
	p.setInt("count", o.Count)
	return p
}

// Cities returns Zomato ids and details of cities matching opts.
func (c *Client) Cities(ctx context.Context, opts *CitiesOptions) (*Response, error) {
	return c.Get(ctx, EndpointCities, opts.params())
}

// CollectionsOptions selects the city for the collections lookup.
type CollectionsOptions struct {
	CityID     int
	Coordinate Coordinate
	Count      int
	Extra      Params
}

func (o *CollectionsOptions) params() Params {
	p := Params{}
	if o == nil {
		return p
	}
	p.Merge(o.Extra)
	p.setInt("city_id", o.CityID)
	p.setCoordinate(o.Coordinate)
	p.setInt("count", o.Count)
	return p
}

// Collections returns the curated restaurant collections of a city.
func (c *Client) Collections(ctx context.Context, opts *CollectionsOptions) (*Response, error) {
	return c.Get(ctx, EndpointCollections, opts.params())
}

// CuisinesOptions selects the city for the cuisines lookup.
type CuisinesOptions struct {
	CityID     int
	Coordinate Coordinate
	Extra      Params
}

func (o *CuisinesOptions) params() Params {
	p := Params{}
	if o == nil {
		return p
	}
	p.Merge(o.Extra)
	p.setInt("city_id", o.CityID)
	p.setCoordinate(o.Coordinate)
	return p
}

// Cuisines returns the cuisines available in a city.
func (c *Client) Cuisines(ctx context.Context, opts *CuisinesOptions) (*Response, error) {
	return c.Get(ctx, EndpointCuisines, opts.params())
}

// EstablishmentsOptions selects the city for the establishment types lookup.
type EstablishmentsOptions struct {
	CityID     int
	Coordinate Coordinate
	Extra      Params
}

func (o *EstablishmentsOptions) params() Params {
	p := Params{}
	if o == nil {
		return p
	}
	p.Merge(o.Extra)
	p.setInt("city_id", o.CityID)
	p.setCoordinate(o.Coordinate)
	return p
}

// Establishments returns the restaurant types of a city.
func (c *Client) Establishments(ctx context.Context, opts *EstablishmentsOptions) (*Response, error) {
	return c.Get(ctx, EndpointEstablishments, opts.params())
}

// Geocode returns the locality and nearby restaurants at coord. A malformed
// coordinate fails before any request is sent.
func (c *Client) Geocode(ctx context.Context, coord Coordinate) (*Response, error) {
	return c.Get(ctx, EndpointGeocode, Params{CoordinateKey: coord})
}

// LocationDetails returns popularity, top cuisines and best rated restaurants
// of a location entity.
func (c *Client) LocationDetails(ctx context.Context, entityID int, entityType EntityType, extra ...Params) (*Response, error) {
	p := Params{}.Merge(extra...)
	p["entity_id"] = entityID
	p["entity_type"] = string(entityType)
	return c.Get(ctx, EndpointLocationDetails, p)
}

// LocationsOptions filters the locations lookup.
type LocationsOptions struct {
	Query      string // q, location name
	Coordinate Coordinate
	Count      int
	Extra      Params
}

func (o *LocationsOptions) params() Params {
	p := Params{}
	if o == nil {
		return p
	}
	p.Merge(o.Extra)
	p.setString("q", o.Query)
	p.setCoordinate(o.Coordinate)
	p.setInt("count", o.Count)
	return p
}

// Locations resolves a free text query into location entities.
func (c *Client) Locations(ctx context.Context, opts *LocationsOptions) (*Response, error) {
	return c.Get(ctx, EndpointLocations, opts.params())
}

// DailyMenu returns the daily menus of a restaurant.
func (c *Client) DailyMenu(ctx context.Context, resID int, extra ...Params) (*Response, error) {
	return c.Get(ctx, EndpointDailyMenu, identityParams(resID, extra))
}

// Restaurant returns the details of a restaurant.
func (c *Client) Restaurant(ctx context.Context, resID int, extra ...Params) (*Response, error) {
	return c.Get(ctx, EndpointRestaurant, identityParams(resID, extra))
}

// ReviewsOptions pages through a restaurant's reviews.
type ReviewsOptions struct {
	Start int
	Count int
	Extra Params
}

// Reviews returns user reviews of a restaurant.
func (c *Client) Reviews(ctx context.Context, resID int, opts *ReviewsOptions) (*Response, error) {
	var extra []Params
	if opts != nil {
		p := Params{}.Merge(opts.Extra)
		p.setInt("start", opts.Start)
		p.setInt("count", opts.Count)
		extra = append(extra, p)
	}
	return c.Get(ctx, EndpointReviews, identityParams(resID, extra))
}

func identityParams(resID int, extra []Params) Params {
	p := Params{}.Merge(extra...)
	p["res_id"] = resID
	return p
}

// SearchOptions are the restaurant search filters.
type SearchOptions struct {
	Query             string // q
	EntityID          int
	EntityType        EntityType
	Start             int
	Count             int
	Coordinate        Coordinate
	Radius            float64 // meters around Coordinate
	Cuisines          []int
	EstablishmentType int
	CollectionID      int
	Category          int
	Sort              string // SortCost, SortRating or SortRealDistance
	Order             string // OrderAsc or OrderDesc
	Extra             Params
}

func (o *SearchOptions) params() Params {
	p := Params{}
	if o == nil {
		return p
	}
	p.Merge(o.Extra)
	p.setString("q", o.Query)
	p.setInt("entity_id", o.EntityID)
	p.setString("entity_type", string(o.EntityType))
	p.setInt("start", o.Start)
	p.setInt("count", o.Count)
	p.setCoordinate(o.Coordinate)
	p.setFloat("radius", o.Radius)
	p.setInts("cuisines", o.Cuisines)
	p.setInt("establishment_type", o.EstablishmentType)
	p.setInt("collection_id", o.CollectionID)
	p.setInt("category", o.Category)
	p.setString("sort", o.Sort)
	p.setString("order", o.Order)
	return p
}

// Search returns restaurants matching opts.
func (c *Client) Search(ctx context.Context, opts *SearchOptions) (*Response, error) {
	return c.Get(ctx, EndpointSearch, opts.params())
}
