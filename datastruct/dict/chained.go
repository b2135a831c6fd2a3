package dict

import (
	"math"
	"os"

	"chainmap/config"
	"chainmap/lib/logger"

	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
)

// DefaultBucketCount 是默认的桶数
const DefaultBucketCount = config.DefaultBucketCount

// nilIndex 表示链表的末尾或空桶
const nilIndex = -1

// ErrInvalidArgument 表示创建哈希表时传入了不合法的桶数
var ErrInvalidArgument = errors.New("invalid argument")

type entry[K comparable, V comparable] struct {
	key   K
	value V
	next  int
}

// ChainedHashMap 是使用拉链法解决冲突的哈希表，桶数在创建后固定不变，不会扩容。
// 所有链表节点存放在同一个 entries 数组中，通过下标互相链接，删除后空出的位置由 freeHead 串起来复用。
// 相等的 key 必须有相同的哈希值，见 Hasher。非线程安全。
type ChainedHashMap[K comparable, V comparable] struct {
	heads    []int
	entries  []entry[K, V]
	freeHead int
	size     int
}

// NewChainedHashMap 按 config.Properties 中的桶数创建哈希表，未配置时为 8 个桶
func NewChainedHashMap[K comparable, V comparable]() *ChainedHashMap[K, V] {
	n := DefaultBucketCount
	if p := config.Properties; p != nil && p.DictBuckets > 0 && p.DictBuckets <= math.MaxInt32 {
		n = p.DictBuckets
	}
	return newChainedHashMap[K, V](n)
}

// NewChainedHashMapWithBuckets 创建有 nBuckets 个桶的哈希表，nBuckets 必须为正数
func NewChainedHashMapWithBuckets[K comparable, V comparable](nBuckets int) (*ChainedHashMap[K, V], error) {
	if nBuckets <= 0 || nBuckets > math.MaxInt32 {
		return nil, errors.Wrapf(ErrInvalidArgument, "bucket count %d", nBuckets)
	}
	return newChainedHashMap[K, V](nBuckets), nil
}

func newChainedHashMap[K comparable, V comparable](nBuckets int) *ChainedHashMap[K, V] {
	heads := make([]int, nBuckets)
	for i := range heads {
		heads[i] = nilIndex
	}
	logger.Debugf("chained hash map created with %d buckets", nBuckets)
	return &ChainedHashMap[K, V]{
		heads:    heads,
		freeHead: nilIndex,
	}
}

func (m *ChainedHashMap[K, V]) BucketCount() int {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	return len(m.heads)
}

func (m *ChainedHashMap[K, V]) Size() int {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	return m.size
}

func (m *ChainedHashMap[K, V]) IsEmpty() bool {
	return m.Size() == 0
}

// Put 若 key 已存在则原地更新并返回旧值，否则在链表头部插入新节点
func (m *ChainedHashMap[K, V]) Put(key K, value V) (old V, replaced bool) {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	index := m.hashIndex(key)
	if i := m.find(index, key); i != nilIndex {
		e := &m.entries[i]
		old, e.value = e.value, value
		return old, true
	}
	i := m.alloc()
	m.entries[i] = entry[K, V]{key: key, value: value, next: m.heads[index]}
	m.heads[index] = i
	m.size++
	return
}

func (m *ChainedHashMap[K, V]) Get(key K) (value V, ok bool) {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	if i := m.find(m.hashIndex(key), key); i != nilIndex {
		return m.entries[i].value, true
	}
	return
}

// ContainsKey 与 Get 的 ok 一致，值为零值的 key 同样视为存在
func (m *ChainedHashMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

func (m *ChainedHashMap[K, V]) ContainsValue(value V) bool {
	found := false
	m.ForEach(func(_ K, v V) bool {
		found = v == value
		return !found
	})
	return found
}

// Remove 将 key 所在节点从链表中摘除，并返回它的值
func (m *ChainedHashMap[K, V]) Remove(key K) (value V, ok bool) {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	index := m.hashIndex(key)
	prev := nilIndex
	for i := m.heads[index]; i != nilIndex; prev, i = i, m.entries[i].next {
		if m.entries[i].key != key {
			continue
		}
		if prev == nilIndex {
			m.heads[index] = m.entries[i].next
		} else {
			m.entries[prev].next = m.entries[i].next
		}
		value = m.entries[i].value
		m.release(i)
		m.size--
		return value, true
	}
	return
}

func (m *ChainedHashMap[K, V]) Clear() {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	for i := range m.heads {
		m.heads[i] = nilIndex
	}
	m.entries = nil
	m.freeHead = nilIndex
	m.size = 0
	logger.Debugf("chained hash map with %d buckets cleared", len(m.heads))
}

// ForEach 按桶的下标依次遍历，同一个桶内从链表头部到尾部
func (m *ChainedHashMap[K, V]) ForEach(p Processor[K, V]) {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	for _, head := range m.heads {
		for i := head; i != nilIndex; i = m.entries[i].next {
			if !p(m.entries[i].key, m.entries[i].value) {
				return
			}
		}
	}
}

func (m *ChainedHashMap[K, V]) Keys() []K {
	res := make([]K, 0, m.Size())
	m.ForEach(func(key K, _ V) bool {
		res = append(res, key)
		return true
	})
	return res
}

func (m *ChainedHashMap[K, V]) KeySet() *set.Set[K] {
	res := set.New[K](m.Size())
	m.ForEach(func(key K, _ V) bool {
		res.Insert(key)
		return true
	})
	return res
}

// PrintTable 将各个桶的冲突情况输出到标准输出
func (m *ChainedHashMap[K, V]) PrintTable() {
	if err := m.WriteTable(os.Stdout); err != nil {
		logger.Warnf("print table: %v", err)
	}
}

// hashIndex 计算 key 所在桶的下标。先取模再取绝对值，结果总在 [0, 桶数) 内
func (m *ChainedHashMap[K, V]) hashIndex(key K) int {
	index := hashCode(key) % int32(len(m.heads))
	if index < 0 {
		index = -index
	}
	return int(index)
}

// find 返回桶 index 中 key 所在节点的下标，不存在时返回 nilIndex
func (m *ChainedHashMap[K, V]) find(index int, key K) int {
	for i := m.heads[index]; i != nilIndex; i = m.entries[i].next {
		if m.entries[i].key == key {
			return i
		}
	}
	return nilIndex
}

// alloc 优先复用被删除节点的位置
func (m *ChainedHashMap[K, V]) alloc() int {
	if i := m.freeHead; i != nilIndex {
		m.freeHead = m.entries[i].next
		return i
	}
	m.entries = append(m.entries, entry[K, V]{})
	return len(m.entries) - 1
}

// release 清空节点中的 key 和 value 并将其放入空闲链表
func (m *ChainedHashMap[K, V]) release(i int) {
	m.entries[i] = entry[K, V]{next: m.freeHead}
	m.freeHead = i
}
