package winapi

import "sync"

// mainWindowSearch is the state of one EnumWindows pass. The callback gets
// only its id as lparam and looks it up here.
type mainWindowSearch struct {
	pid   uint32
	found uintptr
}

var (
	searchMu   sync.Mutex
	searches   = map[uintptr]*mainWindowSearch{}
	lastSearch uintptr
)

func beginSearch(pid uint32) (uintptr, *mainWindowSearch) {
	searchMu.Lock()
	defer searchMu.Unlock()

	lastSearch++
	s := &mainWindowSearch{pid: pid}
	searches[lastSearch] = s
	return lastSearch, s
}

func endSearch(id uintptr) {
	searchMu.Lock()
	delete(searches, id)
	searchMu.Unlock()
}

func lookupSearch(id uintptr) *mainWindowSearch {
	searchMu.Lock()
	defer searchMu.Unlock()
	return searches[id]
}
