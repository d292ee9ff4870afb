package walk

import (
	"strconv"

	"github.com/speakeasy-api/asyncapi/errors"
	"github.com/speakeasy-api/asyncapi/jsonpointer"
)

const (
	// ErrTerminate is a sentinel error that callers can use to signal that a walk should stop early.
	ErrTerminate = errors.Error("terminate")
)

// LocationContext represents where an element is located within its parent.
type LocationContext struct {
	// Parent is the model the element was reached from.
	Parent      any
	ParentField string
	ParentKey   *string
	ParentIndex *int
}

// Locations is the path from the root model to an element.
type Locations []LocationContext

// ToJSONPointer converts the locations to a JSON pointer.
func (l Locations) ToJSONPointer() jsonpointer.JSONPointer {
	parts := make([]string, 0, len(l)*2)

	for _, location := range l {
		if location.ParentField != "" {
			parts = append(parts, location.ParentField)
		}

		if location.ParentKey != nil {
			parts = append(parts, *location.ParentKey)
		} else if location.ParentIndex != nil {
			parts = append(parts, strconv.Itoa(*location.ParentIndex))
		}
	}

	return jsonpointer.PartsToJSONPointer(parts)
}

// IsParent reports whether the element was reached through the field named parentField of its direct parent.
func (l Locations) IsParent(parentField string) bool {
	if len(l) == 0 {
		return false
	}
	return l[len(l)-1].ParentField == parentField
}

// ParentKey returns the map key the element was found at, or "" when it wasn't found in a map.
func (l Locations) ParentKey() string {
	if len(l) == 0 || l[len(l)-1].ParentKey == nil {
		return ""
	}
	return *l[len(l)-1].ParentKey
}
