package canny

import (
	"fmt"
	"image"
	"runtime"

	"go.uber.org/multierr"
)

// Option configures a Detector.
type Option func(*options)

type options struct {
	method   Method
	operator Operator
	workers  int
}

// WithMethod selects the grayscale-derivation policy. Default MethodGrayscale.
func WithMethod(m Method) Option {
	return func(o *options) { o.method = m }
}

// WithOperator selects the derivative kernels. Default OperatorSobel.
func WithOperator(op Operator) Option {
	return func(o *options) { o.operator = op }
}

// WithWorkers bounds how many row bands the gradient and suppression stages
// process concurrently. 0 uses GOMAXPROCS; 1 (the default) is sequential.
// Hysteresis tracking always runs sequentially.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func (o *options) validate() error {
	var err error
	if o.method != MethodGrayscale && o.method != MethodColor {
		err = multierr.Append(err, fmt.Errorf("unknown method %v: %w", o.method, ErrPrecondition))
	}
	if _, kerr := o.operator.kernels(); kerr != nil {
		err = multierr.Append(err, kerr)
	}
	if o.workers < 0 {
		err = multierr.Append(err, fmt.Errorf("workers must be >= 0, got %d: %w", o.workers, ErrPrecondition))
	}
	return err
}

// Detector runs the full pipeline: gradient, suppression and hysteresis.
//
// The gradient policy is resolved once in New. A Detector holds no per-run
// state and is safe for concurrent use on different images.
type Detector struct {
	policy   GradientPolicy
	operator Operator
	workers  int
}

// New builds a Detector. Invalid options are all reported together.
//
// Selecting MethodColor succeeds here; the returned Detector fails every
// Detect call with ErrUnsupportedMode.
func New(opts ...Option) (*Detector, error) {
	o := options{
		method:   MethodGrayscale,
		operator: OperatorSobel,
		workers:  1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	policy, err := policyFor(o.method, o.workers)
	if err != nil {
		return nil, err
	}
	return &Detector{
		policy:   policy,
		operator: o.operator,
		workers:  o.workers,
	}, nil
}

// Method reports the resolved gradient policy.
func (d *Detector) Method() Method { return d.policy.Method() }

// Operator reports the derivative kernels in use.
func (d *Detector) Operator() Operator { return d.operator }

// Detect returns the binary edge map of img. Values are 0 or 255 and the
// grid has the image's dimensions, anchored at (0,0).
func (d *Detector) Detect(img image.Image) (*Grid, error) {
	magnitude, direction, err := d.policy.Gradient(img, d.operator)
	if err != nil {
		return nil, err
	}
	return d.finish(magnitude, direction)
}

// DetectGrid runs the pipeline on an intensity grid that is already single
// channel. The resolved policy still applies: a MethodColor Detector fails
// with ErrUnsupportedMode.
func (d *Detector) DetectGrid(intensity *Grid) (*Grid, error) {
	magnitude, direction, err := d.policy.GradientGrid(intensity, d.operator)
	if err != nil {
		return nil, err
	}
	return d.finish(magnitude, direction)
}

// Gradient exposes the first stage for callers that want to inspect the
// magnitude field itself.
func (d *Detector) Gradient(img image.Image) (*Grid, *DirectionGrid, error) {
	return d.policy.Gradient(img, d.operator)
}

func (d *Detector) finish(magnitude *Grid, direction *DirectionGrid) (*Grid, error) {
	edges, err := suppress(magnitude, direction, d.workers)
	if err != nil {
		return nil, err
	}
	if err := TrackEdges(edges); err != nil {
		return nil, err
	}
	return edges, nil
}
