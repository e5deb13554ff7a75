// Package zomato provides a Go client for the Zomato restaurant-data REST API (v2.1).
//
// Every method maps onto one HTTP GET against a fixed path beneath BaseURL,
// authenticated by the X-Zomato-API-Key header. Responses are returned as a
// generic decoded JSON tree; the client imposes no schema on them.
//
// Basic Usage:
//
//	client, err := zomato.New(os.Getenv("ZOMATO_API_KEY"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.Geocode(ctx, zomato.CoordinateString("12.9716 77.5946"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	name, _ := resp.Lookup("nearby_restaurants", 0, "restaurant", "name")
//	fmt.Println(name)
//
// Typed projections are opt-in:
//
//	reviews, err := zomato.DecodeAs[zomato.ReviewsResult](resp)
//
// The client does not retry, rate limit, cache or paginate. HTTP status codes
// are not interpreted: an error payload sent by the API comes back as an
// ordinary Response, see Response.RemoteError.
//
// For more information about the API, visit: https://developers.zomato.com/documentation
package zomato
