package dict

import "github.com/hashicorp/go-set/v3"

// SimpleHashMap 直接基于内置 map 实现 Dict
type SimpleHashMap[K comparable, V comparable] struct {
	data map[K]V
}

func NewSimpleHashMap[K comparable, V comparable]() *SimpleHashMap[K, V] {
	return &SimpleHashMap[K, V]{data: make(map[K]V)}
}

func (m *SimpleHashMap[K, V]) Size() int {
	if m.data == nil {
		panic("Nil map")
	}
	return len(m.data)
}

func (m *SimpleHashMap[K, V]) IsEmpty() bool {
	return m.Size() == 0
}

func (m *SimpleHashMap[K, V]) Put(key K, value V) (old V, replaced bool) {
	if m.data == nil {
		panic("Nil map")
	}
	old, replaced = m.data[key]
	m.data[key] = value
	return
}

func (m *SimpleHashMap[K, V]) Get(key K) (value V, ok bool) {
	if m.data == nil {
		panic("Nil map")
	}
	value, ok = m.data[key]
	return
}

func (m *SimpleHashMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

func (m *SimpleHashMap[K, V]) ContainsValue(value V) bool {
	if m.data == nil {
		panic("Nil map")
	}
	for _, v := range m.data {
		if v == value {
			return true
		}
	}
	return false
}

func (m *SimpleHashMap[K, V]) Remove(key K) (value V, ok bool) {
	if m.data == nil {
		panic("Nil map")
	}
	value, ok = m.data[key]
	if ok {
		delete(m.data, key)
	}
	return
}

func (m *SimpleHashMap[K, V]) ForEach(p Processor[K, V]) {
	if m.data == nil {
		panic("Nil map")
	}
	for k, v := range m.data {
		if !p(k, v) {
			break
		}
	}
}

func (m *SimpleHashMap[K, V]) Keys() []K {
	if m.data == nil {
		panic("Nil map")
	}
	res := make([]K, 0, len(m.data))
	for key := range m.data {
		res = append(res, key)
	}
	return res
}

func (m *SimpleHashMap[K, V]) KeySet() *set.Set[K] {
	return set.From(m.Keys())
}

func (m *SimpleHashMap[K, V]) Clear() {
	*m = *NewSimpleHashMap[K, V]()
}
