package theme

import (
	"errors"
	"log"
	"net/http"
	"sync"
	"time"
)

// Store is durable key/value storage for the selected mode.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// ErrNoValue is returned by stores when a key has never been written.
var ErrNoValue = errors.New("theme: no stored value")

// InitialMode reads the persisted mode. Missing, unreadable or unknown values
// fall back to auto; no error reaches the caller. Stored values must be one of
// the literal mode strings; unlike ParseMode, case and spacing are not
// forgiven.
func InitialMode(store Store) Mode {
	if store == nil {
		return ModeAuto
	}

	raw, err := store.Get(StorageKey)
	if err != nil {
		if !errors.Is(err, ErrNoValue) {
			log.Printf("level=warn event=theme_read_failed err=%q", err)
		}
		return ModeAuto
	}

	mode := Mode(raw)
	if !mode.Valid() {
		return ModeAuto
	}
	return mode
}

// MemoryStore keeps values for the life of the process.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]
	if !ok {
		return "", ErrNoValue
	}
	return v, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

const cookieMaxAge = 365 * 24 * time.Hour

// CookieStore persists values as cookies on the visitor's browser. Reads come
// from the request; writes are queued on the response and mirrored locally so
// a read after a write within the same request sees the new value.
type CookieStore struct {
	r       *http.Request
	w       http.ResponseWriter
	written map[string]string
}

// NewCookieStore binds a store to one request/response pair.
func NewCookieStore(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{r: r, w: w, written: make(map[string]string)}
}

// Get returns the value written earlier in this request, else the request
// cookie. A missing cookie is ErrNoValue.
func (s *CookieStore) Get(key string) (string, error) {
	if v, ok := s.written[key]; ok {
		return v, nil
	}

	c, err := s.r.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", ErrNoValue
	}
	if err != nil {
		return "", err
	}
	return c.Value, nil
}

// Set queues a one-year, site-wide cookie on the response.
func (s *CookieStore) Set(key, value string) error {
	// Not HttpOnly: client scripts may read the preference.
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
		HttpOnly: false,
	})
	s.written[key] = value
	return nil
}
