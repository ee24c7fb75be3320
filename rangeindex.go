package circuit

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrKeyNotFound  = errors.New("key not found")
)

type indexNode struct {
	parent, left, right *indexNode // parent is a back-reference only
	height              int        // leaf is 0, see height()
	size                int        // number of keys in subtree

	key Key
}

func height(n *indexNode) int {
	if n == nil {
		return -1
	}
	return n.height
}

func size(n *indexNode) int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *indexNode) balance() int {
	return height(n.right) - height(n.left)
}

func (n *indexNode) update() {
	n.height = max(height(n.left), height(n.right)) + 1
	n.size = size(n.left) + size(n.right) + 1
}

func (n *indexNode) swapChild(a, b *indexNode) {
	if n.right == a {
		n.right = b
	} else {
		n.left = b
	}
	if b != nil {
		b.parent = n
	}
}

func (a *indexNode) rotateLeft() *indexNode {
	b := a.right
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.right = b.left; a.right != nil {
		a.right.parent = a
	}
	b.left = a

	// a is now below b
	a.update()
	b.update()
	return b
}

func (a *indexNode) rotateRight() *indexNode {
	b := a.left
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.left = b.right; a.left != nil {
		a.left.parent = a
	}
	b.right = a

	a.update()
	b.update()
	return b
}

func (n *indexNode) list(lo, hi Key, keys []Key) []Key {
	if n == nil {
		return keys
	}
	cmpLo, cmpHi := Compare(lo, n.key), Compare(n.key, hi)
	if cmpLo < 0 {
		keys = n.left.list(lo, hi, keys)
	}
	if cmpLo <= 0 && cmpHi <= 0 {
		keys = append(keys, n.key)
	}
	if cmpHi < 0 {
		keys = n.right.list(lo, hi, keys)
	}
	return keys
}

func (n *indexNode) Print(w io.Writer, indent int) {
	if n.right != nil {
		n.right.Print(w, indent+1)
	} else if n.left != nil {
		fmt.Fprintf(w, "%vnil\n", strings.Repeat("  ", indent+1))
	}
	fmt.Fprintf(w, "%v%v\n", strings.Repeat("  ", indent), n.key)
	if n.left != nil {
		n.left.Print(w, indent+1)
	} else if n.right != nil {
		fmt.Fprintf(w, "%vnil\n", strings.Repeat("  ", indent+1))
	}
}

// RangeIndex is an AVL tree of keys augmented with subtree sizes. It answers which keys fall within a closed range [lo,hi] in O(log n + k) and how many do in O(log n).
type RangeIndex struct {
	root *indexNode
	pool *sync.Pool
}

func NewRangeIndex() *RangeIndex {
	return &RangeIndex{
		pool: &sync.Pool{New: func() any { return &indexNode{} }},
	}
}

func (idx *RangeIndex) newNode(key Key) *indexNode {
	n := idx.pool.Get().(*indexNode)
	n.parent = nil
	n.left = nil
	n.right = nil
	n.height = 0
	n.size = 1
	n.key = key
	return n
}

func (idx *RangeIndex) returnNode(n *indexNode) {
	n.parent = nil
	n.left = nil
	n.right = nil
	n.key = Key{} // help the GC
	idx.pool.Put(n)
}

// find returns the node equal to key, or the node under which key would be inserted together with the side.
func (idx *RangeIndex) find(key Key) (*indexNode, int) {
	n := idx.root
	for n != nil {
		cmp := Compare(key, n.key)
		if cmp < 0 {
			if n.left == nil {
				return n, -1
			}
			n = n.left
		} else if 0 < cmp {
			if n.right == nil {
				return n, 1
			}
			n = n.right
		} else {
			break
		}
	}
	return n, 0
}

// rebalance walks from n up to the root, restoring heights, sizes, and the AVL balance on the way.
func (idx *RangeIndex) rebalance(n *indexNode) {
	for n != nil {
		n.update()
		if balance := n.balance(); balance == -2 {
			// left-heavy
			if n.left.balance() > 0 {
				n.left.rotateLeft()
			}
			n = n.rotateRight()
		} else if balance == 2 {
			// right-heavy
			if n.right.balance() < 0 {
				n.right.rotateRight()
			}
			n = n.rotateLeft()
		} else if balance < -2 || 2 < balance {
			panic("tree too far out of shape")
		}

		if n.parent == nil {
			idx.root = n
		}
		n = n.parent
	}
}

// Len returns the number of keys.
func (idx *RangeIndex) Len() int {
	return size(idx.root)
}

// Height returns the height of the tree, which is -1 for an empty tree and 0 for a single key.
func (idx *RangeIndex) Height() int {
	return height(idx.root)
}

// Find returns true if the index holds key.
func (idx *RangeIndex) Find(key Key) bool {
	n, cmp := idx.find(key)
	return n != nil && cmp == 0
}

// Insert adds a key to the index. It returns ErrDuplicateKey if an equal key is present.
func (idx *RangeIndex) Insert(key Key) error {
	if idx.root == nil {
		idx.root = idx.newNode(key)
		return nil
	}

	n, cmp := idx.find(key)
	if cmp == 0 {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}

	m := idx.newNode(key)
	m.parent = n
	if cmp < 0 {
		n.left = m
	} else {
		n.right = m
	}
	idx.rebalance(n)
	return nil
}

// Remove deletes the key equal to key from the index. It returns ErrKeyNotFound if no such key exists.
func (idx *RangeIndex) Remove(key Key) error {
	n, cmp := idx.find(key)
	if n == nil || cmp != 0 {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	if n.left != nil && n.right != nil {
		// splice in the in-order successor, which has no left child
		o := n.right
		for o.left != nil {
			o = o.left
		}
		n.key = o.key
		n = o
	}

	child := n.left
	if child == nil {
		child = n.right
	}
	parent := n.parent
	if parent != nil {
		parent.swapChild(n, child)
	} else {
		idx.root = child
		if child != nil {
			child.parent = nil
		}
	}
	idx.returnNode(n)
	idx.rebalance(parent)
	return nil
}

// List returns all keys k with lo <= k <= hi in ascending order. Use LowKey and HighKey to bound on coordinates.
func (idx *RangeIndex) List(lo, hi Key) []Key {
	return idx.root.list(lo, hi, nil)
}

// Count returns the number of keys k with lo <= k <= hi.
func (idx *RangeIndex) Count(lo, hi Key) int {
	if hi.Less(lo) {
		return 0
	}
	return idx.rank(hi, true) - idx.rank(lo, false)
}

// rank returns the number of keys smaller than key, or smaller than or equal to key when inclusive is set.
func (idx *RangeIndex) rank(key Key, inclusive bool) int {
	r := 0
	n := idx.root
	for n != nil {
		cmp := Compare(n.key, key)
		if cmp < 0 || (inclusive && cmp == 0) {
			r += size(n.left) + 1
			n = n.right
		} else {
			n = n.left
		}
	}
	return r
}

// Keys returns all keys in ascending order.
func (idx *RangeIndex) Keys() []Key {
	keys := make([]Key, 0, idx.Len())
	var walk func(*indexNode)
	walk = func(n *indexNode) {
		if n == nil {
			return
		}
		walk(n.left)
		keys = append(keys, n.key)
		walk(n.right)
	}
	walk(idx.root)
	return keys
}

func (idx *RangeIndex) String() string {
	if idx.root == nil {
		return "nil"
	}

	sb := strings.Builder{}
	idx.root.Print(&sb, 0)
	str := sb.String()
	if 0 < len(str) {
		str = str[:len(str)-1]
	}
	return str
}
