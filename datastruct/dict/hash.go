package dict

import (
	"encoding/binary"
	"math"
	"reflect"
	"unicode/utf16"

	"github.com/zeebo/xxh3"
)

const (
	trueHash  = int32(1231)
	falseHash = int32(1237)
)

// Hasher 可由键类型实现以给出自己的哈希值。相等的键必须返回相同的哈希值
type Hasher interface {
	HashCode() int32
}

// hashCode 计算 key 的 32 位哈希值，== 相等的 key 总是得到相同的结果
func hashCode(key any) int32 {
	if h, ok := key.(Hasher); ok {
		return h.HashCode()
	}
	return hashValue(reflect.ValueOf(key))
}

// hashValue 按 == 的比较规则取哈希：指针按地址，-0 与 +0 相同，
// 接口按动态值，结构体和数组逐个字段或元素取哈希后合并
func hashValue(v reflect.Value) int32 {
	switch v.Kind() {
	case reflect.String:
		return stringHash(v.String())
	case reflect.Bool:
		if v.Bool() {
			return trueHash
		}
		return falseHash
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return int32(v.Int())
	case reflect.Int, reflect.Int64:
		return int64Hash(v.Int())
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return int32(uint32(v.Uint()))
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return int64Hash(int64(v.Uint()))
	case reflect.Float32:
		return float32Hash(float32(v.Float()))
	case reflect.Float64:
		return float64Hash(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return 31*float64Hash(real(c)) + float64Hash(imag(c))
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return int64Hash(int64(v.Pointer()))
	case reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return hashValue(v.Elem())
	case reflect.Array:
		h := xxh3.New()
		for i := 0; i < v.Len(); i++ {
			writeHash(h, hashValue(v.Index(i)))
		}
		return int64Hash(int64(h.Sum64()))
	case reflect.Struct:
		h := xxh3.New()
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			// == 不比较空白字段
			if t.Field(i).Name == "_" {
				continue
			}
			writeHash(h, hashValue(v.Field(i)))
		}
		return int64Hash(int64(h.Sum64()))
	default:
		// Invalid 即 nil 接口；slice、map、func 不能用 == 比较
		return 0
	}
}

func writeHash(h *xxh3.Hasher, code int32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(code))
	_, _ = h.Write(buf[:])
}

// stringHash 按 UTF-16 码元计算 h = 31*h + c
func stringHash(s string) int32 {
	var h int32
	for _, r := range s {
		if r >= 0x10000 {
			hi, lo := utf16.EncodeRune(r)
			h = 31*h + int32(hi)
			h = 31*h + int32(lo)
			continue
		}
		h = 31*h + int32(r)
	}
	return h
}

// int64Hash 将 64 位的值折叠为 32 位
func int64Hash(v int64) int32 {
	u := uint64(v)
	return int32(u ^ (u >> 32))
}

func float32Hash(f float32) int32 {
	if f == 0 {
		f = 0 // -0 == +0
	}
	return int32(math.Float32bits(f))
}

func float64Hash(f float64) int32 {
	if f == 0 {
		f = 0
	}
	return int64Hash(int64(math.Float64bits(f)))
}
