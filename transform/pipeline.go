package transform

import (
	sdf "github.com/getintently/safe-dataframe"
	"github.com/getintently/safe-dataframe/dataframe"
	"github.com/getintently/safe-dataframe/logging"
)

// Pipeline applies a sequence of Transforms left to right. If an
// intermediate result has no rows the remaining transforms never run and
// the empty result is returned as-is.
type Pipeline struct {
	transforms []sdf.Transform
	verbose    bool
}

// NewPipeline is a factory for Pipelines. A Pipeline over zero transforms
// is the identity.
func NewPipeline(transforms ...sdf.Transform) *Pipeline {
	return &Pipeline{transforms: transforms}
}

// WithVerbose returns a copy of this Pipeline which logs the table shape
// after every step. Diagnostic only, no behavioral effect.
func (p *Pipeline) WithVerbose() *Pipeline {
	return &Pipeline{transforms: p.transforms, verbose: true}
}

// Name returns the name of this transform
func (p *Pipeline) Name() string {
	return "pipeline"
}

// Apply runs each transform in order while the intermediate result still
// has rows
func (p *Pipeline) Apply(df *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	if p.verbose {
		rows, cols := df.Shape()
		logging.Infof("start shape (%d, %d)", rows, cols)
	}
	for _, t := range p.transforms {
		next, err := t.Apply(df)
		if err != nil {
			return nil, err
		}
		df = next
		if p.verbose {
			rows, cols := df.Shape()
			logging.Infof("%s produces shape (%d, %d)", t.Name(), rows, cols)
		}
		if df.IsEmpty() {
			break
		}
	}
	return df, nil
}
