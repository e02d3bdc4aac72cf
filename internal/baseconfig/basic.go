package baseconfig

import (
	"errors"
	"fmt"
	"math"
)

// Measure is the unit suffix for a model size: millions or billions of
// parameters.
type Measure string

const (
	MeasureMillions Measure = "M"
	MeasureBillions Measure = "B"
)

// ErrNoDataPaths is returned when a recipe supplies a data_paths list that
// is present but empty. Absent data paths are fine; an empty list has no
// meaningful equal-split weighting.
var ErrNoDataPaths = errors.New("data_paths is present but empty")

// Settings holds the run parameters resolved from a recipe. Nil fields mean
// the recipe did not supply the value; they propagate as null into the
// generated configs rather than triggering validation errors.
type Settings struct {
	NumNodes        *int
	GPUCount        *int
	MaxStepsPerRun  *int
	SeqLength       *int
	GlobalBatchSize *int
	TokenizerPath   *string
	DataPaths       []string
}

// Basic assembles the default configuration records for one training run.
// It is immutable after construction, so a single instance may be read from
// multiple goroutines without coordination.
type Basic struct {
	name    string
	version int
	size    int
	measure Measure

	numNodes        *int
	numGPUs         *int
	maxSteps        *int
	seqLength       *int
	globalBatchSize *int
	tokenizerPath   *string
	dataPaths       []string
	weights         []float64
}

// New builds a Basic from a model identity and recipe settings. Missing
// settings resolve to nil; the only rejected input is a present-but-empty
// data_paths list. An empty measure defaults to billions.
func New(name string, version, size int, measure Measure, s Settings) (*Basic, error) {
	if measure == "" {
		measure = MeasureBillions
	}

	weights, err := dataWeights(s.DataPaths)
	if err != nil {
		return nil, fmt.Errorf("model %q: %w", name, err)
	}

	return &Basic{
		name:            name,
		version:         version,
		size:            size,
		measure:         measure,
		numNodes:        s.NumNodes,
		numGPUs:         s.GPUCount,
		maxSteps:        s.MaxStepsPerRun,
		seqLength:       s.SeqLength,
		globalBatchSize: s.GlobalBatchSize,
		tokenizerPath:   s.TokenizerPath,
		dataPaths:       s.DataPaths,
		weights:         weights,
	}, nil
}

// Name returns the model name.
func (b *Basic) Name() string { return b.name }

// Version returns the model version.
func (b *Basic) Version() int { return b.version }

// Size returns the model size in units of Measure.
func (b *Basic) Size() int { return b.size }

// Measure returns the unit of the model size.
func (b *Basic) Measure() Measure { return b.measure }

// SeqLength returns the training sequence length, or nil if unset.
func (b *Basic) SeqLength() *int { return b.seqLength }

// TokenizerPath returns the tokenizer location, or nil if unset.
func (b *Basic) TokenizerPath() *string { return b.tokenizerPath }

// DataPaths returns the dataset file paths, or nil if unset.
func (b *Basic) DataPaths() []string { return b.dataPaths }

// Weights returns the per-dataset sampling weights derived at construction,
// or nil when no data paths were supplied.
func (b *Basic) Weights() []float64 { return b.weights }

// OptimConfig returns the optimizer configuration. It is a pure constant
// record, independent of the builder's state.
func (b *Basic) OptimConfig() OptimizerConfig {
	return OptimizerConfig{
		Optimizer:               "adam",
		LR:                      1e-4,
		MinLR:                   1e-5,
		UseDistributedOptimizer: true,
		BF16:                    true,
		AdamBeta1:               0.9,
		AdamBeta2:               0.95,
		OverlapGradReduce:       false,
		OverlapParamGather:      true,
	}
}

// TrainerConfig returns the training-loop configuration. The step budget
// doubles as the validation-check interval so that validation runs exactly
// once, at the end of the run.
func (b *Basic) TrainerConfig() TrainerConfig {
	return TrainerConfig{
		Accelerator:           "gpu",
		Precision:             "bf16",
		Logger:                false,
		EnableCheckpointing:   false,
		UseDistributedSampler: false,
		MaxEpochs:             nil,
		LogEveryNSteps:        1,
		LimitValBatches:       1,
		LimitTestBatches:      1,
		AccumulateGradBatches: 1,
		GradientClipVal:       1.0,
		NumNodes:              b.numNodes,
		Devices:               b.numGPUs,
		MaxSteps:              b.maxSteps,
		ValCheckInterval:      b.maxSteps,
	}
}

// DataConfig returns the dataset configuration.
func (b *Basic) DataConfig() DataConfig {
	return DataConfig{
		Paths:           b.dataPaths,
		Weights:         b.weights,
		SeqLength:       b.seqLength,
		GlobalBatchSize: b.globalBatchSize,
		NumWorkers:      2,
		Split:           "99990,8,2",
		IndexMappingDir: nil,
	}
}

// RunConfig returns the cluster job configuration.
func (b *Basic) RunConfig() RunConfig {
	return RunConfig{
		Name:       fmt.Sprintf("%s_%d%s", b.name, b.size, b.measure),
		ResultsDir: nil,
		TimeLimit:  "0-00:30:00",
	}
}

// dataWeights computes the equal-split sampling weight per dataset, rounded
// to two decimal places with round-half-to-even. The rounded weights do not
// necessarily sum to exactly 1.0 (three datasets give 0.33 each); consumers
// normalize, so the raw rounded values are preserved as-is.
func dataWeights(paths []string) ([]float64, error) {
	if paths == nil {
		return nil, nil
	}
	if len(paths) == 0 {
		return nil, ErrNoDataPaths
	}

	weight := math.RoundToEven(1/float64(len(paths))*100) / 100
	weights := make([]float64, len(paths))
	for i := range weights {
		weights[i] = weight
	}

	return weights, nil
}
