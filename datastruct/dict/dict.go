package dict

import "github.com/hashicorp/go-set/v3"

// Processor 遍历时对每个键值对调用，返回 false 时停止遍历
type Processor[K comparable, V comparable] func(key K, value V) bool

type Dict[K comparable, V comparable] interface {
	Size() int
	IsEmpty() bool
	Put(key K, value V) (old V, replaced bool)
	Get(key K) (value V, ok bool)
	ContainsKey(key K) bool
	ContainsValue(value V) bool
	Remove(key K) (value V, ok bool)
	ForEach(p Processor[K, V])
	Keys() []K
	KeySet() *set.Set[K]
	Clear()
}

var (
	_ Dict[string, any] = (*ChainedHashMap[string, any])(nil)
	_ Dict[string, any] = (*SimpleHashMap[string, any])(nil)
)
