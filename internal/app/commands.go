package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhishtagatya/zomathon/internal/storage"
	"github.com/abhishtagatya/zomathon/pkg/zomato"
)

// ReviewsRequest selects which reviews to print.
type ReviewsRequest struct {
	Start      int
	Count      int
	UnseenOnly bool
}

// call runs fn and turns an API error payload into a Go error. The client
// itself never does this; the command wants a non-zero exit status.
func call(fn func() (*zomato.Response, error)) (*zomato.Response, error) {
	resp, err := fn()
	if err != nil {
		return nil, err
	}
	if rerr, ok := resp.RemoteError(); ok {
		return nil, rerr
	}
	return resp, nil
}

// Categories prints the numbered list of restaurant categories.
func (a *App) Categories(ctx context.Context) error {
	resp, err := call(func() (*zomato.Response, error) { return a.client.Category(ctx) })
	if err != nil {
		return err
	}
	res, err := zomato.DecodeAs[zomato.CategoriesResult](resp)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Here are all the available categories in Zomato")
	for i, c := range res.Categories {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, c.Categories.Name)
	}
	return nil
}

// Nearby prints restaurants around coord.
func (a *App) Nearby(ctx context.Context, coord zomato.Coordinate) error {
	resp, err := call(func() (*zomato.Response, error) { return a.client.Geocode(ctx, coord) })
	if err != nil {
		return err
	}
	res, err := zomato.DecodeAs[zomato.GeocodeResult](resp)
	if err != nil {
		return err
	}

	if res.Location.Title != "" {
		fmt.Fprintf(a.out, "Near %s\n", res.Location.Title)
	}
	for i, r := range res.NearbyRestaurants {
		fmt.Fprintf(a.out, "%d. %s - %s\n", i+1, r.Restaurant.Name, r.Restaurant.Location.Address)
	}
	return nil
}

// Reviews prints a restaurant's reviews. With UnseenOnly, reviews printed by
// an earlier run are skipped and new ones are remembered.
func (a *App) Reviews(ctx context.Context, resID int, req ReviewsRequest) error {
	opts := &zomato.ReviewsOptions{Start: req.Start, Count: req.Count}
	resp, err := call(func() (*zomato.Response, error) { return a.client.Reviews(ctx, resID, opts) })
	if err != nil {
		return err
	}
	res, err := zomato.DecodeAs[zomato.ReviewsResult](resp)
	if err != nil {
		return err
	}

	ns := storage.ReviewNamespace(resID)
	printed, skipped := 0, 0
	for _, entry := range res.UserReviews {
		rv := entry.Review
		id := rv.ID.String()

		if req.UnseenOnly {
			seen, err := a.store.Seen(ns, id)
			if err != nil {
				return fmt.Errorf("check review %s/%s: %w", ns, id, err)
			}
			if seen {
				skipped++
				continue
			}
		}

		fmt.Fprintf(a.out, "%s - %s\nCommented : %s\n", rv.User.Name, rv.User.FoodieLevel, rv.ReviewText)
		printed++

		if req.UnseenOnly {
			if err := a.store.Mark(ns, id); err != nil {
				return fmt.Errorf("mark review %s/%s: %w", ns, id, err)
			}
		}
	}

	a.log.InfoObj("reviews listed", "reviews_meta", map[string]any{
		"res_id":  resID,
		"printed": printed,
		"skipped": skipped,
	})
	return nil
}

// Search prints matching restaurants with their rating.
func (a *App) Search(ctx context.Context, opts *zomato.SearchOptions) error {
	resp, err := call(func() (*zomato.Response, error) { return a.client.Search(ctx, opts) })
	if err != nil {
		return err
	}
	res, err := zomato.DecodeAs[zomato.SearchResult](resp)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%d results\n", res.ResultsFound)
	for i, r := range res.Restaurants {
		fmt.Fprintf(a.out, "%d. %s (%s) %s\n", i+1, r.Restaurant.Name, r.Restaurant.UserRating.AggregateRating, r.Restaurant.Cuisines)
	}
	return nil
}

// Restaurant prints one restaurant's headline details.
func (a *App) Restaurant(ctx context.Context, resID int) error {
	resp, err := call(func() (*zomato.Response, error) { return a.client.Restaurant(ctx, resID) })
	if err != nil {
		return err
	}
	r, err := zomato.DecodeAs[zomato.Restaurant](resp)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\n%s\n%s\nRating: %s (%s votes)\nCost for two: %d %s\n",
		r.Name, r.Location.Address, r.Cuisines,
		r.UserRating.AggregateRating, r.UserRating.Votes,
		r.AverageCostForTwo, r.Currency)
	return nil
}

// Raw calls any endpoint and pretty prints the payload exactly as received,
// API error objects included.
func (a *App) Raw(ctx context.Context, endpoint zomato.Endpoint, params zomato.Params) error {
	resp, err := a.client.Get(ctx, endpoint, params)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, resp.Raw(), "", "  "); err != nil {
		return fmt.Errorf("format %s response: %w", endpoint, err)
	}
	buf.WriteByte('\n')
	_, err = a.out.Write(buf.Bytes())
	return err
}

// ParseParams turns key=value arguments into Params. Values stay strings;
// repeated keys are joined with commas.
func ParseParams(args []string) (zomato.Params, error) {
	p := zomato.Params{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q (want key=value)", arg)
		}
		if prev, exists := p[key]; exists {
			value = fmt.Sprint(prev) + "," + value
		}
		p[key] = value
	}
	return p, nil
}
