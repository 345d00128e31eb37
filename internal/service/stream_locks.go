package service

import "sync"

type streamID struct {
	userID string
	key    string
}

type streamLock struct {
	sync.RWMutex
	refs int
}

// streamLocks hands out one RWMutex per (user, stream). Writers to a stream
// hold the write lock so a recalculation never reads half of an append.
// An entry lives only while some caller holds a reference to it.
type streamLocks struct {
	mu    sync.Mutex
	locks map[streamID]*streamLock
}

func newStreamLocks() *streamLocks {
	return &streamLocks{
		locks: make(map[streamID]*streamLock),
	}
}

// acquire returns the stream's lock and a release func. Release must be
// called once the lock has been unlocked.
func (sl *streamLocks) acquire(userID, key string) (*sync.RWMutex, func()) {
	id := streamID{userID: userID, key: key}
	sl.mu.Lock()
	l, ok := sl.locks[id]
	if !ok {
		l = &streamLock{}
		sl.locks[id] = l
	}
	l.refs++
	sl.mu.Unlock()

	var once sync.Once
	return &l.RWMutex, func() {
		once.Do(func() {
			sl.mu.Lock()
			defer sl.mu.Unlock()
			l.refs--
			if l.refs == 0 {
				delete(sl.locks, id)
			}
		})
	}
}

func (sl *streamLocks) len() int {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return len(sl.locks)
}
