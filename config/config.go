package config

import (
	"bufio"
	"io"
	"math"
	"os"
	"reflect"
	"strconv"
	"strings"

	"chainmap/lib/logger"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// DefaultBucketCount 是未配置时哈希表的桶数
const DefaultBucketCount = 8

type DictProperties struct {
	DictBuckets int    `cfg:"dict-buckets"`
	LogLevel    string `cfg:"log-level"`
}

var Properties *DictProperties

func init() {
	Properties = defaultProperties()
}

func defaultProperties() *DictProperties {
	return &DictProperties{
		DictBuckets: DefaultBucketCount,
		LogLevel:    "info",
	}
}

// SetupConfigProperties 读取配置文件，校验通过后替换全局的 Properties 并应用日志级别
func SetupConfigProperties(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "open config file")
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(file)
	p, err := parse(file)
	if err != nil {
		return err
	}
	if err = p.Validate(); err != nil {
		return err
	}
	if err = logger.SetLevel(p.LogLevel); err != nil {
		return err
	}
	Properties = p
	logger.Infof("config loaded from %s: dict-buckets=%d", filename, p.DictBuckets)
	return nil
}

// Validate 返回全部不合法的配置项
func (p *DictProperties) Validate() error {
	var res *multierror.Error
	if p.DictBuckets <= 0 || p.DictBuckets > math.MaxInt32 {
		res = multierror.Append(res, errors.Errorf("dict-buckets must be in [1, %d], got %d", math.MaxInt32, p.DictBuckets))
	}
	switch strings.ToLower(p.LogLevel) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		res = multierror.Append(res, errors.Errorf("unknown log-level %q", p.LogLevel))
	}
	return res.ErrorOrNil()
}

func parse(reader io.Reader) (*DictProperties, error) {
	res := defaultProperties()
	m := make(map[string]string)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) > 0 && line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 {
			key := line[0:pivot]
			val := strings.Trim(line[pivot+1:], " ")
			m[strings.ToLower(key)] = val
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := fillProperties(res, m); err != nil {
		return nil, err
	}
	return res, nil
}

func fillProperties(p *DictProperties, m map[string]string) error {
	fields := reflect.TypeOf(p).Elem()
	values := reflect.ValueOf(p).Elem()
	n := fields.NumField()
	for i := 0; i < n; i++ {
		field := fields.Field(i)
		fieldVal := values.Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok {
			key = field.Name
		}
		val, ok := m[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(val)
		case reflect.Int:
			intV, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return errors.Wrapf(err, "config %s", key)
			}
			fieldVal.SetInt(intV)
		}
	}
	return nil
}
