package storage

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Store remembers records (reviews so far) the command already printed,
// grouped by namespace, so later runs can show only new ones.
type Store interface {
	Seen(namespace, id string) (bool, error)
	Mark(namespace, id string) error
	Close() error
}

// Options controls how long marks are kept and how often expired ones are swept.
type Options struct {
	TTL             time.Duration
	CleanupInterval time.Duration
}

const (
	defaultTTL             = 30 * 24 * time.Hour
	defaultCleanupInterval = 12 * time.Hour
)

// NewStore opens the backend named by typ. "none" (or empty) never remembers anything.
func NewStore(typ, path string, opts Options) (Store, error) {
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}

	switch strings.ToLower(strings.TrimSpace(typ)) {
	case "", "none", "disabled":
		return nopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		s, err := openBolt(path, opts)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

// ReviewNamespace groups the reviews of one restaurant.
func ReviewNamespace(resID int) string {
	return "reviews/" + strconv.Itoa(resID)
}

type nopStore struct{}

func (nopStore) Seen(string, string) (bool, error) { return false, nil }
func (nopStore) Mark(string, string) error         { return nil }
func (nopStore) Close() error                      { return nil }
