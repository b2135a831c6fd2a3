package set

import "chainmap/datastruct/dict"

type Consumer[T comparable] func(T) bool

// HashSet 以 ChainedHashMap 的 key 存放成员
type HashSet[T comparable] struct {
	m *dict.ChainedHashMap[T, struct{}]
}

func NewHashSet[T comparable](members ...T) *HashSet[T] {
	res := &HashSet[T]{m: dict.NewChainedHashMap[T, struct{}]()}
	for _, member := range members {
		res.Add(member)
	}
	return res
}

func (s *HashSet[T]) Size() int {
	return s.m.Size()
}

// Add 返回 member 是否为新加入的成员
func (s *HashSet[T]) Add(member T) (ok bool) {
	_, replaced := s.m.Put(member, struct{}{})
	return !replaced
}

func (s *HashSet[T]) Contains(member T) bool {
	return s.m.ContainsKey(member)
}

func (s *HashSet[T]) Remove(member T) (ok bool) {
	_, ok = s.m.Remove(member)
	return
}

func (s *HashSet[T]) ForEach(c Consumer[T]) {
	s.m.ForEach(func(member T, _ struct{}) bool {
		return c(member)
	})
}

func (s *HashSet[T]) Members() []T {
	return s.m.Keys()
}

// Clone 返回包含相同成员的新集合
func (s *HashSet[T]) Clone() *HashSet[T] {
	res := NewHashSet[T]()
	s.ForEach(func(member T) bool {
		res.Add(member)
		return true
	})
	return res
}

// Intersect 遍历较小的集合，在较大的集合中查找
func (s *HashSet[T]) Intersect(s1 *HashSet[T]) *HashSet[T] {
	if s == nil {
		panic("HashSet is nil")
	}
	small, large := s, s1
	if s1.Size() < s.Size() {
		small, large = s1, s
	}
	res := NewHashSet[T]()
	small.ForEach(func(member T) bool {
		if large.Contains(member) {
			res.Add(member)
		}
		return true
	})
	return res
}

// Union 复制较大的集合，再加入较小集合的成员
func (s *HashSet[T]) Union(s1 *HashSet[T]) *HashSet[T] {
	if s == nil {
		panic("HashSet is nil")
	}
	small, large := s, s1
	if s1.Size() < s.Size() {
		small, large = s1, s
	}
	res := large.Clone()
	small.ForEach(func(member T) bool {
		res.Add(member)
		return true
	})
	return res
}

// Diff 返回 s 中不属于 s1 的成员
func (s *HashSet[T]) Diff(s1 *HashSet[T]) *HashSet[T] {
	if s == nil {
		panic("HashSet is nil")
	}
	if s1.Size() == 0 {
		return s.Clone()
	}
	res := NewHashSet[T]()
	s.ForEach(func(member T) bool {
		if !s1.Contains(member) {
			res.Add(member)
		}
		return true
	})
	return res
}
