package sheetsvc

import (
	"sync"

	"github.com/demoaplikasi02-prog/tkitharvysyah/core/sheet"
)

type snapshot struct {
	seq     uint64
	records []sheet.Record
}

// snapshotStore keeps the most recent record set per table. Fetches for the
// same table can overlap and complete out of order; each fetch takes a
// sequence number when it starts and may only commit if no later fetch has
// committed since, so a slow stale response never overwrites fresher data.
type snapshotStore struct {
	mu   sync.Mutex
	next map[string]uint64
	cur  map[string]snapshot
}

func newSnapshotStore() *snapshotStore {
	return &snapshotStore{
		next: make(map[string]uint64),
		cur:  make(map[string]snapshot),
	}
}

// begin issues the sequence number for a fetch that is starting now.
func (st *snapshotStore) begin(table string) uint64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.next[table]++
	return st.next[table]
}

// commit stores a completed fetch's records unless a later fetch already
// committed. It returns the records that are now current either way.
func (st *snapshotStore) commit(table string, seq uint64, records []sheet.Record) []sheet.Record {
	st.mu.Lock()
	defer st.mu.Unlock()
	if cur, ok := st.cur[table]; ok && cur.seq > seq {
		return cur.records
	}
	st.cur[table] = snapshot{seq: seq, records: records}
	return records
}
