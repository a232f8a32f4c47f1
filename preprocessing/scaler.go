// Package preprocessing はカーネル評価の前に入力を整える変換器を提供します。
package preprocessing

import (
	"fmt"

	"github.com/YuminosukeSato/krr/core/model"
	"github.com/YuminosukeSato/krr/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// scaleEpsilon より小さい標準偏差は定数特徴量とみなす
const scaleEpsilon = 1e-8

// StandardScaler は各特徴量を平均0、標準偏差1に変換します。
// 標準偏差は母標準偏差（n で割る）です。
type StandardScaler struct {
	state *model.StateManager

	// Mean は各特徴量の平均値
	Mean []float64

	// Scale は各特徴量の標準偏差。定数特徴量では 1
	Scale []float64

	// WithMean は平均を引くかどうか
	WithMean bool

	// WithStd は標準偏差で割るかどうか
	WithStd bool
}

// NewStandardScaler は新しい StandardScaler を作成します。
//
// 使用例:
//
//	scaler := preprocessing.NewStandardScaler(true, true)
//	XScaled, err := scaler.FitTransform(X)
func NewStandardScaler(withMean, withStd bool) *StandardScaler {
	return &StandardScaler{
		state:    model.NewStateManager(),
		WithMean: withMean,
		WithStd:  withStd,
	}
}

// NewStandardScalerDefault は平均と標準偏差の両方を使う StandardScaler を作成します。
func NewStandardScalerDefault() *StandardScaler {
	return NewStandardScaler(true, true)
}

// IsFitted は Fit 済みかどうかを返します。
func (s *StandardScaler) IsFitted() bool {
	return s.state.IsFitted()
}

// Fit は X (n_samples × n_features) から各列の平均と標準偏差を求めます。
func (s *StandardScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("StandardScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	s.Mean = make([]float64, c)
	s.Scale = make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		mean, std := stat.PopMeanStdDev(col, nil)
		if !s.WithMean {
			mean = 0
		}
		if !s.WithStd || std < scaleEpsilon {
			std = 1
		}
		s.Mean[j] = mean
		s.Scale[j] = std
	}
	if err := errors.CheckNumericalStability("StandardScaler.Fit", s.Scale, 0); err != nil {
		s.state.Reset()
		return err
	}

	s.state.SetFitted(c, r)
	return nil
}

// Transform は (x - mean) / scale を返します。
func (s *StandardScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	return s.apply("Transform", X, func(v float64, j int) float64 {
		return (v - s.Mean[j]) / s.Scale[j]
	})
}

// FitTransform は X で Fit してから同じ X を変換します。
func (s *StandardScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// InverseTransform は標準化されたデータを元のスケールに戻します。
func (s *StandardScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	return s.apply("InverseTransform", X, func(v float64, j int) float64 {
		return v*s.Scale[j] + s.Mean[j]
	})
}

func (s *StandardScaler) apply(method string, X mat.Matrix, fn func(v float64, j int) float64) (mat.Matrix, error) {
	if err := s.state.RequireFitted("StandardScaler", method); err != nil {
		return nil, err
	}
	nFeatures, _ := s.state.Dimensions()
	r, c := X.Dims()
	if c != nFeatures {
		return nil, errors.NewDimensionError("StandardScaler."+method, nFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	result.Apply(func(i, j int, v float64) float64 {
		return fn(v, j)
	}, X)
	return result, nil
}

// GetParams はスケーラーのパラメータを返します。
func (s *StandardScaler) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"with_mean": s.WithMean,
		"with_std":  s.WithStd,
	}
}

func (s *StandardScaler) String() string {
	if !s.IsFitted() {
		return fmt.Sprintf("StandardScaler(with_mean=%t, with_std=%t)", s.WithMean, s.WithStd)
	}
	nFeatures, _ := s.state.Dimensions()
	return fmt.Sprintf("StandardScaler(with_mean=%t, with_std=%t, n_features=%d)",
		s.WithMean, s.WithStd, nFeatures)
}

var _ model.InverseTransformer = (*StandardScaler)(nil)
