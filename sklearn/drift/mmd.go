// Package drift detects distribution change between two samples.
package drift

import (
	"math/rand/v2"
	"time"

	"github.com/YuminosukeSato/krr/core/features"
	"github.com/YuminosukeSato/krr/core/parallel"
	"github.com/YuminosukeSato/krr/kernel"
	"github.com/YuminosukeSato/krr/pkg/errors"
	"github.com/YuminosukeSato/krr/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// MMD is a quadratic-time kernel two-sample test. The statistic is the
// unbiased estimate of the squared maximum mean discrepancy between p and q,
// and the null distribution is approximated by permuting the pooled sample.
type MMD struct {
	kernel       kernel.Kernel
	permutations int
	alpha        float64
	seed         uint64
	logger       log.Logger
}

// TestResult is the outcome of MMD.Test.
type TestResult struct {
	Statistic     float64 // MMD²_u of the observed split
	PValue        float64 // fraction of permutations at least as extreme
	Permutations  int
	DriftDetected bool // PValue < alpha
}

// MMDOption is an MMD configuration option
type MMDOption func(*MMD)

// WithPermutations sets the number of permutations for the null distribution
func WithPermutations(n int) MMDOption {
	return func(m *MMD) {
		m.permutations = n
	}
}

// WithAlpha sets the significance level
func WithAlpha(alpha float64) MMDOption {
	return func(m *MMD) {
		m.alpha = alpha
	}
}

// WithSeed makes the permutations reproducible
func WithSeed(seed uint64) MMDOption {
	return func(m *MMD) {
		m.seed = seed
	}
}

// WithLogger sets the logger
func WithLogger(l log.Logger) MMDOption {
	return func(m *MMD) {
		m.logger = l
	}
}

// NewMMD creates a two-sample test on k. The kernel is re-initialized on the
// pooled sample by every call.
func NewMMD(k kernel.Kernel, options ...MMDOption) (*MMD, error) {
	m := &MMD{
		kernel:       k,
		permutations: 250,
		alpha:        0.05,
	}
	for _, opt := range options {
		opt(m)
	}

	if k == nil {
		return nil, errors.NewValueError("drift.NewMMD", "kernel is required")
	}
	if m.permutations < 1 {
		return nil, errors.NewValidationError("permutations", "must be >= 1", m.permutations)
	}
	if m.alpha <= 0 || m.alpha >= 1 {
		return nil, errors.NewValidationError("alpha", "must be in (0, 1)", m.alpha)
	}
	if m.logger == nil {
		m.logger = log.GetLogger()
	}
	m.logger = m.logger.With(log.ModelNameKey, "QuadraticTimeMMD")
	return m, nil
}

// pooledGram stacks p over q and returns the Gram matrix of the pooled sample.
func (m *MMD) pooledGram(p, q *features.Dense) (*mat.Dense, error) {
	const op = "MMD.Test"
	if p == nil || q == nil {
		return nil, errors.NewValueError(op, "both samples are required")
	}
	if p.NumVectors() < 2 || q.NumVectors() < 2 {
		return nil, errors.NewValueError(op, "each sample needs at least 2 vectors")
	}
	if p.NumFeatures() != q.NumFeatures() {
		return nil, errors.NewDimensionError(op, p.NumFeatures(), q.NumFeatures(), 1)
	}

	var pooled mat.Dense
	pooled.Stack(p.Matrix(), q.Matrix())
	all, err := features.NewDense(&pooled)
	if err != nil {
		return nil, err
	}
	if err := m.kernel.Init(all, all); err != nil {
		return nil, err
	}
	return m.kernel.Matrix()
}

// Statistic returns MMD²_u between p and q.
func (m *MMD) Statistic(p, q *features.Dense) (float64, error) {
	K, err := m.pooledGram(p, q)
	if err != nil {
		return 0, err
	}
	return unbiasedMMD(K, identity(p.NumVectors()+q.NumVectors()), p.NumVectors()), nil
}

// Test computes the statistic and its permutation p-value.
func (m *MMD) Test(p, q *features.Dense) (*TestResult, error) {
	start := time.Now()
	K, err := m.pooledGram(p, q)
	if err != nil {
		return nil, err
	}
	nP := p.NumVectors()
	n := nP + q.NumVectors()
	observed := unbiasedMMD(K, identity(n), nP)

	rng := rand.New(rand.NewPCG(m.seed, m.seed^0x5851f42d4c957f2d))
	perms := make([][]int, m.permutations)
	for i := range perms {
		perms[i] = rng.Perm(n)
	}
	null := make([]float64, m.permutations)
	parallel.Parallelize(len(perms), func(s, e int) {
		for i := s; i < e; i++ {
			null[i] = unbiasedMMD(K, perms[i], nP)
		}
	})

	extreme := 0
	for _, v := range null {
		if v >= observed {
			extreme++
		}
	}
	res := &TestResult{
		Statistic:    observed,
		PValue:       float64(extreme+1) / float64(m.permutations+1),
		Permutations: m.permutations,
	}
	res.DriftDetected = res.PValue < m.alpha

	m.logger.Info("Two-sample test completed",
		log.KernelNameKey, m.kernel.Name(),
		log.SamplesKey, n,
		"mmd.statistic", res.Statistic,
		"mmd.p_value", res.PValue,
		"mmd.drift", res.DriftDetected,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return res, nil
}

func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// unbiasedMMD treats idx[:nP] as the first sample and idx[nP:] as the second.
func unbiasedMMD(K mat.Matrix, idx []int, nP int) float64 {
	x, y := idx[:nP], idx[nP:]
	var kxx, kyy, kxy float64
	for a, i := range x {
		for b, j := range x {
			if a != b {
				kxx += K.At(i, j)
			}
		}
		for _, j := range y {
			kxy += K.At(i, j)
		}
	}
	for a, i := range y {
		for b, j := range y {
			if a != b {
				kyy += K.At(i, j)
			}
		}
	}
	m, n := float64(len(x)), float64(len(y))
	return kxx/(m*(m-1)) + kyy/(n*(n-1)) - 2*kxy/(m*n)
}
