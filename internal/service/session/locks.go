package session

import "sync"

// keyedMutex serializes turns for the same conversation so concurrent
// messages cannot interleave their history appends. Different conversations
// never contend.
type keyedMutex struct {
	locks sync.Map // conversation id -> *sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
