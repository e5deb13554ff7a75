package zomato

import "encoding/json"

// Typed projections of known endpoint payloads. Use DecodeAs; fields the
// structs don't name are still available through Response.Value. Values the
// API sends either quoted or bare are typed json.Number.

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CategoriesResult struct {
	Categories []struct {
		Categories Category `json:"categories"`
	} `json:"categories"`
}

type City struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	CountryID   int    `json:"country_id"`
	CountryName string `json:"country_name"`
	IsState     int    `json:"is_state"`
	StateID     int    `json:"state_id"`
	StateName   string `json:"state_name"`
	StateCode   string `json:"state_code"`
}

type CitiesResult struct {
	LocationSuggestions []City `json:"location_suggestions"`
	Status              string `json:"status"`
	HasMore             int    `json:"has_more"`
	HasTotal            int    `json:"has_total"`
}

type Collection struct {
	CollectionID int    `json:"collection_id"`
	ResCount     int    `json:"res_count"`
	ImageURL     string `json:"image_url"`
	URL          string `json:"url"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ShareURL     string `json:"share_url"`
}

type CollectionsResult struct {
	Collections []struct {
		Collection Collection `json:"collection"`
	} `json:"collections"`
	HasMore     int    `json:"has_more"`
	ShareURL    string `json:"share_url"`
	DisplayText string `json:"display_text"`
}

type Cuisine struct {
	CuisineID   int    `json:"cuisine_id"`
	CuisineName string `json:"cuisine_name"`
}

type CuisinesResult struct {
	Cuisines []struct {
		Cuisine Cuisine `json:"cuisine"`
	} `json:"cuisines"`
}

type Establishment struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type EstablishmentsResult struct {
	Establishments []struct {
		Establishment Establishment `json:"establishment"`
	} `json:"establishments"`
}

// Location is a location entity as returned by locations, geocode and
// location_details.
type Location struct {
	EntityType  string      `json:"entity_type"`
	EntityID    int         `json:"entity_id"`
	Title       string      `json:"title"`
	Latitude    json.Number `json:"latitude"`
	Longitude   json.Number `json:"longitude"`
	CityID      int         `json:"city_id"`
	CityName    string      `json:"city_name"`
	CountryID   int         `json:"country_id"`
	CountryName string      `json:"country_name"`
}

type LocationsResult struct {
	LocationSuggestions []Location `json:"location_suggestions"`
	Status              string     `json:"status"`
	HasMore             int        `json:"has_more"`
	HasTotal            int        `json:"has_total"`
}

type RestaurantLocation struct {
	Address   string      `json:"address"`
	Locality  string      `json:"locality"`
	City      string      `json:"city"`
	CityID    int         `json:"city_id"`
	Latitude  json.Number `json:"latitude"`
	Longitude json.Number `json:"longitude"`
	Zipcode   string      `json:"zipcode"`
	CountryID int         `json:"country_id"`
}

type UserRating struct {
	AggregateRating json.Number `json:"aggregate_rating"`
	RatingText      string      `json:"rating_text"`
	RatingColor     string      `json:"rating_color"`
	Votes           json.Number `json:"votes"`
}

type Restaurant struct {
	ID                json.Number        `json:"id"`
	Name              string             `json:"name"`
	URL               string             `json:"url"`
	Location          RestaurantLocation `json:"location"`
	AverageCostForTwo int                `json:"average_cost_for_two"`
	PriceRange        int                `json:"price_range"`
	Currency          string             `json:"currency"`
	Cuisines          string             `json:"cuisines"`
	Thumb             string             `json:"thumb"`
	FeaturedImage     string             `json:"featured_image"`
	MenuURL           string             `json:"menu_url"`
	UserRating        UserRating         `json:"user_rating"`
	HasOnlineDelivery int                `json:"has_online_delivery"`
	IsDeliveringNow   int                `json:"is_delivering_now"`
}

// RestaurantEntry is the {"restaurant": {...}} wrapper used in lists.
type RestaurantEntry struct {
	Restaurant Restaurant `json:"restaurant"`
}

type Popularity struct {
	Popularity     json.Number `json:"popularity"`
	NightlifeIndex json.Number `json:"nightlife_index"`
	TopCuisines    []string    `json:"top_cuisines"`
}

type GeocodeResult struct {
	Location          Location          `json:"location"`
	Popularity        Popularity        `json:"popularity"`
	Link              string            `json:"link"`
	NearbyRestaurants []RestaurantEntry `json:"nearby_restaurants"`
}

type LocationDetailsResult struct {
	Popularity          json.Number       `json:"popularity"`
	NightlifeIndex      json.Number       `json:"nightlife_index"`
	TopCuisines         []string          `json:"top_cuisines"`
	Location            Location          `json:"location"`
	NumRestaurant       int               `json:"num_restaurant"`
	BestRatedRestaurant []RestaurantEntry `json:"best_rated_restaurant"`
}

type Dish struct {
	DishID json.Number `json:"dish_id"`
	Name   string      `json:"name"`
	Price  string      `json:"price"`
}

type DailyMenu struct {
	DailyMenuID json.Number `json:"daily_menu_id"`
	Name        string      `json:"name"`
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	Dishes      []struct {
		Dish Dish `json:"dish"`
	} `json:"dishes"`
}

type DailyMenuResult struct {
	DailyMenus []struct {
		DailyMenu DailyMenu `json:"daily_menu"`
	} `json:"daily_menus"`
	Status string `json:"status"`
}

type User struct {
	Name           string `json:"name"`
	FoodieLevel    string `json:"foodie_level"`
	FoodieLevelNum int    `json:"foodie_level_num"`
	FoodieColor    string `json:"foodie_color"`
	ProfileURL     string `json:"profile_url"`
	ProfileImage   string `json:"profile_image"`
}

type Review struct {
	ID                 json.Number `json:"id"`
	Rating             json.Number `json:"rating"`
	ReviewText         string      `json:"review_text"`
	RatingColor        string      `json:"rating_color"`
	RatingText         string      `json:"rating_text"`
	ReviewTimeFriendly string      `json:"review_time_friendly"`
	Timestamp          int64       `json:"timestamp"`
	Likes              int         `json:"likes"`
	CommentsCount      int         `json:"comments_count"`
	User               User        `json:"user"`
}

type ReviewsResult struct {
	ReviewsCount int `json:"reviews_count"`
	ReviewsStart int `json:"reviews_start"`
	ReviewsShown int `json:"reviews_shown"`
	UserReviews  []struct {
		Review Review `json:"review"`
	} `json:"user_reviews"`
}

type SearchResult struct {
	ResultsFound int               `json:"results_found"`
	ResultsStart int               `json:"results_start"`
	ResultsShown int               `json:"results_shown"`
	Restaurants  []RestaurantEntry `json:"restaurants"`
}
