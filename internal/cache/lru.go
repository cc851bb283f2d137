package cache

// lruNode is a node in a doubly-linked LRU list.
// The node stores its key for O(1) deletion from the parent map.
type lruNode[K comparable, V any] struct {
	key   K
	value V
	prev  *lruNode[K, V]
	next  *lruNode[K, V]
}

// lruList is a doubly-linked list ordered by recency.
// The head is the most recently used, tail is least recently used.
type lruList[K comparable, V any] struct {
	head *lruNode[K, V]
	tail *lruNode[K, V]
	len  int
}

// pushFront links a new node at the front (most recently used).
func (l *lruList[K, V]) pushFront(node *lruNode[K, V]) {
	node.prev = nil
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.len++
}

// moveToFront moves an existing node to the front.
func (l *lruList[K, V]) moveToFront(node *lruNode[K, V]) {
	if node == nil || node == l.head {
		return
	}
	l.unlink(node)
	l.pushFront(node)
}

// removeOldest unlinks and returns the least recently used node.
// Returns nil if the list is empty.
func (l *lruList[K, V]) removeOldest() *lruNode[K, V] {
	node := l.tail
	if node == nil {
		return nil
	}
	l.unlink(node)
	return node
}

func (l *lruList[K, V]) clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

// unlink removes a node from the list and clears its pointers.
func (l *lruList[K, V]) unlink(node *lruNode[K, V]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}

	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}

	node.prev = nil
	node.next = nil
	l.len--
}

// DefaultCapacity is used when NewLRU is given a non-positive capacity.
const DefaultCapacity = 100

// LRU is a fixed-capacity cache with strict least-recently-used eviction.
//
// LRU is not safe for concurrent use.
type LRU[K comparable, V any] struct {
	entries  map[K]*lruNode[K, V]
	order    lruList[K, V]
	capacity int

	// OnEvict, if set, is called with every entry dropped to make room.
	OnEvict func(key K, value V)
}

// NewLRU creates an LRU holding at most capacity entries.
// If capacity <= 0, DefaultCapacity is used.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU[K, V]{
		entries:  make(map[K]*lruNode[K, V], capacity),
		capacity: capacity,
	}
}

// Get returns the value stored under key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	node, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.moveToFront(node)
	return node.value, true
}

// Add stores value under key if the key is absent and reports whether it did.
// An existing entry keeps its value and its position in the recency order.
// When the cache is full the least recently used entry is evicted first.
func (c *LRU[K, V]) Add(key K, value V) bool {
	if _, ok := c.entries[key]; ok {
		return false
	}

	for c.order.len >= c.capacity {
		oldest := c.order.removeOldest()
		if oldest == nil {
			break
		}
		delete(c.entries, oldest.key)
		if c.OnEvict != nil {
			c.OnEvict(oldest.key, oldest.value)
		}
	}

	node := &lruNode[K, V]{key: key, value: value}
	c.order.pushFront(node)
	c.entries[key] = node
	return true
}

// Clear removes all entries. The map and the recency list are reset together.
func (c *LRU[K, V]) Clear() {
	c.entries = make(map[K]*lruNode[K, V], c.capacity)
	c.order.clear()
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int {
	return len(c.entries)
}

// Cap returns the maximum number of entries.
func (c *LRU[K, V]) Cap() int {
	return c.capacity
}
