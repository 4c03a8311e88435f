package annotate

// Code in this file has been derived from: https://hackernoon.com/in-memory-caching-in-golang

import (
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

type cachedSession struct {
	session           *Session
	expireAtTimestamp int64
}

// SessionCache keeps the live sessions in memory with an idle TTL. Expiry is
// the only end-of-life for a session; nothing is persisted.
type SessionCache struct {
	stop chan struct{}

	wg       sync.WaitGroup
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]cachedSession
}

// NewSessionCache creates a session cache whose entries expire ttl after
// their last access, swept every cleanupInterval.
func NewSessionCache(ttl time.Duration, cleanupInterval time.Duration) *SessionCache {
	log.Info("Creating new session cache with TTL ", ttl, " and cleanup interval ", cleanupInterval)
	sc := &SessionCache{
		ttl:      ttl,
		sessions: make(map[string]cachedSession),
		stop:     make(chan struct{}),
	}

	sc.wg.Add(1)
	go func(cleanupInterval time.Duration) {
		defer sc.wg.Done()
		sc.cleanupLoop(cleanupInterval)
	}(cleanupInterval)

	return sc
}

// cleanupLoop Drop sessions whose TTL has passed
func (sc *SessionCache) cleanupLoop(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-sc.stop:
			return
		case <-t.C:
			sc.mu.Lock()
			for id, cs := range sc.sessions {
				if cs.expireAtTimestamp <= time.Now().Unix() {
					log.Info("Session expired: ", id)
					delete(sc.sessions, id)
				}
			}
			sc.mu.Unlock()
		}
	}
}

// StopCleanup stops the background sweeper and waits for it to exit.
func (sc *SessionCache) StopCleanup() {
	close(sc.stop)
	sc.wg.Wait()
}

// Update Add or refresh a session in the cache
func (sc *SessionCache) Update(s *Session) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	log.Debug("Updating session ", s.ID, " in cache")

	sc.sessions[s.ID] = cachedSession{
		session:           s,
		expireAtTimestamp: time.Now().Add(sc.ttl).Unix(),
	}
}

var ErrSessionNotFound = errors.New("the session isn't in cache")

// Read Fetch a session and refresh its TTL
func (sc *SessionCache) Read(id string) (*Session, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	log.Debug("Reading from cache with ID ", id)
	cs, ok := sc.sessions[id]
	if !ok {
		log.Debug("ID not found ", id)
		return nil, ErrSessionNotFound
	}

	cs.expireAtTimestamp = time.Now().Add(sc.ttl).Unix()
	sc.sessions[id] = cs

	return cs.session, nil
}

// Delete Remove a single session from the cache
func (sc *SessionCache) Delete(id string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	delete(sc.sessions, id)
}

// Empty Remove all sessions from the cache
func (sc *SessionCache) Empty() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	log.Debug("Emptying complete session cache.")
	for id := range sc.sessions {
		delete(sc.sessions, id)
	}
}
