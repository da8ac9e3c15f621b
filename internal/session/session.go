// Package session holds completed analyses in memory for the presentation
// layer (fetch, filter, report download). This is the only state kept between
// requests; the pipeline itself stays stateless.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/pipeline"
)

// Analysis is one stored run.
type Analysis struct {
	ID        string
	FileName  string
	CreatedAt time.Time
	Result    *pipeline.Result
}

type Store struct {
	mu       sync.RWMutex
	analyses map[string]*Analysis
}

func NewStore() *Store {
	return &Store{analyses: make(map[string]*Analysis)}
}

// Put stores a completed result and returns its generated id.
func (s *Store) Put(fileName string, r *pipeline.Result) *Analysis {
	a := &Analysis{
		ID:        newID(),
		FileName:  fileName,
		CreatedAt: time.Now(),
		Result:    r,
	}
	s.mu.Lock()
	s.analyses[a.ID] = a
	s.mu.Unlock()
	return a
}

func (s *Store) Get(id string) (*Analysis, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.analyses[id]
	return a, ok
}

func newID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// fall back to a time-derived id rather than panicking a request.
		return hex.EncodeToString([]byte(time.Now().Format("20060102150405.000000000")))[:32]
	}
	return hex.EncodeToString(b[:])
}
