package transform

import (
	"fmt"

	uuid "github.com/gofrs/uuid"

	"github.com/getintently/safe-dataframe/dataframe"
)

// TransformFunc is a plain function which can back a Func transform. args
// are the arguments bound at construction time.
type TransformFunc func(df *dataframe.DataFrame, args ...interface{}) (*dataframe.DataFrame, error)

// Func adapts a plain function plus bound arguments into the Transform
// family. Each Func receives a generated name unique across the process,
// so pipeline step logs can tell dynamically created transforms apart.
type Func struct {
	name string
	fn   TransformFunc
	args []interface{}
}

// FromFunction builds a Func around fn, binding args for every application
func FromFunction(fn TransformFunc, args ...interface{}) *Func {
	name := "func"
	if id, err := uuid.NewV4(); err == nil {
		name = fmt.Sprintf("func-%s", id)
	}
	return &Func{name: name, fn: fn, args: args}
}

// Named returns a copy of this Func under a readable name
func (t *Func) Named(name string) *Func {
	return &Func{name: name, fn: t.fn, args: t.args}
}

// Name returns the name of this transform
func (t *Func) Name() string {
	return t.name
}

// Apply invokes the backing function with the bound arguments
func (t *Func) Apply(df *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	return t.fn(df, t.args...)
}
