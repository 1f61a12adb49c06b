package storage

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"

	"github.com/pixil98/go-errors"
)

// Identifiers are lowercase because players refer to objects with words that
// have already been case folded by the parser.
var identifierPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// CurrentVersion is the only asset envelope version understood by the loader.
const CurrentVersion = 1

type ValidatingSpec interface {
	Validate() error
}

type Identifier string

func (id Identifier) String() string {
	return string(id)
}

// Validate reports whether id is a well-formed asset id.
func (id Identifier) Validate() error {
	if id == "" {
		return fmt.Errorf("id must be set")
	}
	if !identifierPattern.MatchString(string(id)) {
		return fmt.Errorf("id %q must be lowercase alphanumeric", id)
	}
	return nil
}

// Asset is the on-disk envelope around every piece of authored content.
type Asset[T ValidatingSpec] struct {
	Version    uint       `json:"version"`
	Identifier Identifier `json:"id"`
	Spec       T          `json:"spec"`
}

func (a *Asset[T]) Id() Identifier {
	return a.Identifier
}

func (a *Asset[T]) Validate() error {
	el := errors.NewErrorList()

	switch {
	case a.Version == 0:
		el.Add(fmt.Errorf("version must be set"))
	case a.Version > CurrentVersion:
		el.Add(fmt.Errorf("version %d is not supported", a.Version))
	}

	el.Add(a.Identifier.Validate())

	if reflect.ValueOf(a.Spec).IsNil() {
		el.Add(fmt.Errorf("spec must be set"))
	} else {
		el.Add(a.Spec.Validate())
	}

	return el.Err()
}

// SmartIdentifier is a reference from one asset to another. It is unmarshalled
// from a bare id string and later resolved against the store holding the
// referenced asset type.
type SmartIdentifier[T ValidatingSpec] struct {
	key Identifier
	val T
}

func NewSmartIdentifier[T ValidatingSpec](key string) SmartIdentifier[T] {
	return SmartIdentifier[T]{key: Identifier(key)}
}

func NewResolvedSmartIdentifier[T ValidatingSpec](key string, val T) SmartIdentifier[T] {
	return SmartIdentifier[T]{key: Identifier(key), val: val}
}

func (id *SmartIdentifier[T]) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &id.key)
}

func (id SmartIdentifier[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.key)
}

func (id SmartIdentifier[T]) Validate() error {
	if id.key == "" {
		return fmt.Errorf("%s identifier is required", typeName[T]())
	}
	return nil
}

// Resolve looks the referenced asset up in st.
func (id *SmartIdentifier[T]) Resolve(st Storer[T]) error {
	id.val = st.Get(id.key)
	if !id.Resolved() {
		return fmt.Errorf("%s %q not found", typeName[T](), id.key)
	}
	return nil
}

// Resolved reports whether Resolve has found the referenced asset.
func (id SmartIdentifier[T]) Resolved() bool {
	v := reflect.ValueOf(id.val)
	return v.IsValid() && !v.IsNil()
}

// Id returns the referenced asset id.
func (id SmartIdentifier[T]) Id() Identifier {
	return id.key
}

// Get returns the resolved asset, or the zero value before resolution.
func (id SmartIdentifier[T]) Get() T {
	return id.val
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
