// Package dedup keeps a persisted set of article URLs that were already
// registered in the external database, so repeated feed runs don't create
// duplicate records. The backing file is a flat URL-per-line text file,
// loaded fully into memory on open and appended to on every mark.
package dedup

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-pkgz/lgr"
)

// File is a seen-URL cache backed by a flat text file. No eviction, no size
// bound; unbounded growth is accepted. A missing or unreadable backing file
// is treated as an empty cache rather than a fatal error, so a lost cache
// degrades to re-offering articles instead of aborting the run.
type File struct {
	path string
	mu   sync.Mutex
	seen map[string]struct{}
}

// Open loads the cache from path. The file may not exist yet.
func Open(path string) (*File, error) {
	f := &File{path: path, seen: make(map[string]struct{})}

	fh, err := os.Open(path) //nolint:gosec // path comes from config
	if err != nil {
		if !os.IsNotExist(err) {
			lgr.Printf("[WARN] can't read seen-url cache %s, starting empty: %v", path, err)
		}
		return f, nil
	}
	defer fh.Close()

	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		url := strings.TrimSpace(scanner.Text())
		if url == "" {
			continue
		}
		f.seen[url] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		// partial load is fine, fail open
		lgr.Printf("[WARN] error reading seen-url cache %s, loaded %d entries: %v", path, len(f.seen), err)
	}

	return f, nil
}

// Seen reports whether the URL was already registered.
func (f *File) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.seen[strings.TrimSpace(url)]
	return ok
}

// MarkSeen records the URL in memory and appends it to the backing file.
func (f *File) MarkSeen(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return fmt.Errorf("empty url")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.seen[url]; ok {
		return nil
	}

	fh, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) //nolint:gosec // path comes from config
	if err != nil {
		return fmt.Errorf("open seen-url cache for append: %w", err)
	}
	defer fh.Close()

	if _, err := fh.WriteString(url + "\n"); err != nil {
		return fmt.Errorf("append url to cache: %w", err)
	}

	f.seen[url] = struct{}{}
	return nil
}

// Len returns the number of cached URLs.
func (f *File) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.seen)
}
