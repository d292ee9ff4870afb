package marshaller

import (
	"reflect"
	"sync"

	"github.com/speakeasy-api/asyncapi/internal/version"
)

const (
	extensionsKey   = "extensions"
	unrecognizedKey = "unrecognized"
)

type fieldInfo struct {
	index    []int
	key      string
	required bool
	since    *version.Version
}

type structInfo struct {
	fields       []*fieldInfo
	byKey        map[string]*fieldInfo
	extensions   []int
	unrecognized []int
}

var (
	structInfoMu    sync.RWMutex
	structInfoCache = map[reflect.Type]*structInfo{}
)

func getStructInfo(t reflect.Type) *structInfo {
	structInfoMu.RLock()
	info, ok := structInfoCache[t]
	structInfoMu.RUnlock()
	if ok {
		return info
	}

	info = buildStructInfo(t)

	structInfoMu.Lock()
	structInfoCache[t] = info
	structInfoMu.Unlock()

	return info
}

func buildStructInfo(t reflect.Type) *structInfo {
	info := &structInfo{
		byKey: map[string]*fieldInfo{},
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		key := field.Tag.Get("key")
		switch key {
		case "":
			continue
		case extensionsKey:
			info.extensions = field.Index
			continue
		case unrecognizedKey:
			info.unrecognized = field.Index
			continue
		}

		f := &fieldInfo{
			index:    field.Index,
			key:      key,
			required: field.Tag.Get("required") == "true",
		}

		if since := field.Tag.Get("since"); since != "" {
			f.since = version.MustParse(since)
		}

		info.fields = append(info.fields, f)
		info.byKey[key] = f
	}

	return info
}
