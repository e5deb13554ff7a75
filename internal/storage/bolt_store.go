package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Layout: root bucket "seen" holds one nested bucket per namespace; each key
// is a record id and its value the decimal unix time it was marked at.
var rootBucket = []byte("seen")

var errNoRoot = errors.New("bbolt: seen bucket missing")

type boltStore struct {
	db       *bolt.DB
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time

	mu        sync.Mutex
	nextSweep time.Time
}

func openBolt(path string, opts Options) (*boltStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(rootBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create seen bucket: %w", err)
	}

	s := &boltStore{db: db, ttl: opts.TTL, interval: opts.CleanupInterval, now: time.Now}
	s.nextSweep = s.now().Add(s.interval)
	return s, nil
}

func (s *boltStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Seen reports whether id was marked in namespace within the TTL.
func (s *boltStore) Seen(namespace, id string) (bool, error) {
	now := s.now()
	if err := s.sweepIfDue(now); err != nil {
		return false, err
	}

	var seen bool
	err := s.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(rootBucket)
		if root == nil {
			return errNoRoot
		}
		ns := root.Bucket([]byte(namespace))
		if ns == nil {
			return nil
		}
		seen = s.live(ns.Get([]byte(id)), now)
		return nil
	})
	return seen, err
}

// Mark records id in namespace as seen now.
func (s *boltStore) Mark(namespace, id string) error {
	now := s.now()
	if err := s.sweepIfDue(now); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(rootBucket)
		if root == nil {
			return errNoRoot
		}
		ns, err := root.CreateBucketIfNotExists([]byte(namespace))
		if err != nil {
			return fmt.Errorf("namespace %s: %w", namespace, err)
		}
		return ns.Put([]byte(id), strconv.AppendInt(nil, now.Unix(), 10))
	})
}

func (s *boltStore) live(markedAt []byte, now time.Time) bool {
	if markedAt == nil {
		return false
	}
	unix, err := strconv.ParseInt(string(markedAt), 10, 64)
	if err != nil {
		return false
	}
	return time.Unix(unix, 0).Add(s.ttl).After(now)
}

func (s *boltStore) sweepIfDue(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.Before(s.nextSweep) {
		return nil
	}
	if err := s.sweep(now); err != nil {
		return err
	}
	s.nextSweep = now.Add(s.interval)
	return nil
}

// sweep drops expired ids and namespaces left empty.
func (s *boltStore) sweep(now time.Time) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(rootBucket)
		if root == nil {
			return errNoRoot
		}

		var empty [][]byte
		err := root.ForEachBucket(func(name []byte) error {
			ns := root.Bucket(name)
			var expired [][]byte
			kept := 0
			err := ns.ForEach(func(k, v []byte) error {
				if s.live(v, now) {
					kept++
				} else {
					expired = append(expired, append([]byte(nil), k...))
				}
				return nil
			})
			if err != nil {
				return err
			}
			for _, k := range expired {
				if err := ns.Delete(k); err != nil {
					return err
				}
			}
			if kept == 0 {
				empty = append(empty, append([]byte(nil), name...))
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, name := range empty {
			if err := root.DeleteBucket(name); err != nil {
				return err
			}
		}
		return nil
	})
}

// size returns the number of namespaces and marked ids.
func (s *boltStore) size() (namespaces, ids int, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(rootBucket)
		return root.ForEachBucket(func(name []byte) error {
			namespaces++
			ids += root.Bucket(name).Stats().KeyN
			return nil
		})
	})
	return namespaces, ids, err
}
