package dict

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// BucketReport 描述单个桶的占用情况，Keys 按链表从头到尾的顺序排列
type BucketReport[K comparable] struct {
	Index     int
	Conflicts int
	Keys      []K
}

type TableReport[K comparable] struct {
	Buckets        []BucketReport[K]
	TotalConflicts int
}

// Report 统计每个桶的冲突数。有 n 个节点的桶记 max(n-1, 0) 次冲突
func (m *ChainedHashMap[K, V]) Report() *TableReport[K] {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	res := &TableReport[K]{Buckets: make([]BucketReport[K], len(m.heads))}
	for index, head := range m.heads {
		keys := make([]K, 0)
		for i := head; i != nilIndex; i = m.entries[i].next {
			keys = append(keys, m.entries[i].key)
		}
		conflicts := 0
		if len(keys) > 1 {
			conflicts = len(keys) - 1
		}
		res.Buckets[index] = BucketReport[K]{Index: index, Conflicts: conflicts, Keys: keys}
		res.TotalConflicts += conflicts
	}
	return res
}

// WriteTable 将 Report 的文本形式写入 w
func (m *ChainedHashMap[K, V]) WriteTable(w io.Writer) error {
	if _, err := m.Report().WriteTo(w); err != nil {
		return errors.Wrap(err, "write table")
	}
	return nil
}

// WriteTo 每个桶输出一行，最后一行为冲突总数：
//
//	Index 1: (1 conflicts), [i, a, ]
//	Total # of conflicts: 1
func (r *TableReport[K]) WriteTo(w io.Writer) (int64, error) {
	buf := &bytes.Buffer{}
	for _, b := range r.Buckets {
		_, _ = fmt.Fprintf(buf, "Index %d: (%d conflicts), [", b.Index, b.Conflicts)
		for _, key := range b.Keys {
			_, _ = fmt.Fprintf(buf, "%v, ", key)
		}
		buf.WriteString("]\n")
	}
	_, _ = fmt.Fprintf(buf, "Total # of conflicts: %d\n", r.TotalConflicts)
	return buf.WriteTo(w)
}

func (r *TableReport[K]) String() string {
	buf := &bytes.Buffer{}
	_, _ = r.WriteTo(buf)
	return buf.String()
}
