package transform

import (
	sdf "github.com/getintently/safe-dataframe"
	"github.com/getintently/safe-dataframe/errors"
)

// Factory builds a Transform for a specific ColumnSet. Factories are
// registered against a Container so call sites never repeat which columns
// they operate on.
type Factory func(cols *sdf.ColumnSet, args ...interface{}) (sdf.Transform, error)

// A Container organizes transform factories around one ColumnSet. When a
// factory is built through the Container, the Container's ColumnSet is
// injected automatically.
type Container struct {
	cols      *sdf.ColumnSet
	factories map[string]Factory
}

// NewContainer is a factory for Containers
func NewContainer(cols *sdf.ColumnSet) *Container {
	return &Container{cols: cols, factories: make(map[string]Factory)}
}

// Columns returns the ColumnSet this Container is bound to
func (c *Container) Columns() *sdf.ColumnSet {
	return c.cols
}

// Register binds a factory under a name. Registering the same name twice
// replaces the earlier factory.
func (c *Container) Register(name string, factory Factory) {
	c.factories[name] = factory
}

// Build invokes the named factory with this Container's ColumnSet and any
// additional arguments
func (c *Container) Build(name string, args ...interface{}) (sdf.Transform, error) {
	factory, ok := c.factories[name]
	if !ok {
		return nil, errors.UnknownFactoryError{Name: name}
	}
	return factory(c.cols, args...)
}
