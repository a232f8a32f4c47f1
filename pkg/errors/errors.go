// Package errors はカーネル法ライブラリ全体のエラーと警告を提供します。
// 型付きエラーはすべて cockroachdb/errors でスタックトレースを付与して返されます。
package errors

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("krr-warning: %v\n", w)
	}
	// pkg/log からの循環importを避けるため、main 側で設定する
	zerologWarnFunc func(warning error)
)

// SetWarningHandler は警告の出力先を差し替えます。nil を渡すと警告を捨てます。
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc は zerolog 経由の警告関数を設定します。
// 設定されている間は SetWarningHandler のハンドラより優先されます。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ConvergenceWarning は反復ソルバーが最大反復回数までに収束しなかったことを示します。
// 最後の反復結果はそのまま使われます。
type ConvergenceWarning struct {
	Algorithm  string
	Iterations int
	Residual   float64
}

func (w *ConvergenceWarning) Error() string {
	return fmt.Sprintf("%s failed to converge after %d iterations (last change %.3g). Consider increasing max_iter or epsilon.",
		w.Algorithm, w.Iterations, w.Residual)
}

// MarshalZerologObject は警告の内容を zerolog のイベントに書き込みます。
func (w *ConvergenceWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("algorithm", w.Algorithm).
		Int("iterations", w.Iterations).
		Float64("residual", w.Residual).
		Str("type", "ConvergenceWarning")
}

// NewConvergenceWarning は新しい ConvergenceWarning を作成します。
func NewConvergenceWarning(algorithm string, iterations int, residual float64) *ConvergenceWarning {
	return &ConvergenceWarning{Algorithm: algorithm, Iterations: iterations, Residual: residual}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// NotFittedError は学習前に Apply や Predict を呼んだ場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("krr: %s: this model is not trained yet. Call Train() or Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject はエラー情報を zerolog のイベントに書き込みます。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は NotFittedError をスタックトレース付きで返します。
func NewNotFittedError(modelName, method string) error {
	return errors.WithStack(&NotFittedError{ModelName: modelName, Method: method})
}

// DimensionError は入力の次元が期待値と異なる場合のエラーです。
// Axis が 0 ならサンプル数（行）、1 なら特徴量数（列）の不一致です。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int
}

func (e *DimensionError) axisName() string {
	if e.Axis == 0 {
		return "rows"
	}
	return "features"
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("krr: %s: dimension mismatch on axis %d (%s). Expected %d, got %d",
		e.Op, e.Axis, e.axisName(), e.Expected, e.Got)
}

// MarshalZerologObject はエラー情報を zerolog のイベントに書き込みます。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", e.axisName()).
		Str("type", "DimensionError")
}

// NewDimensionError は DimensionError をスタックトレース付きで返します。
func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// ValidationError はハイパーパラメータや設定値の検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("krr: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はエラー情報を zerolog のイベントに書き込みます。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は ValidationError をスタックトレース付きで返します。
func NewValidationError(param, reason string, value interface{}) error {
	return errors.WithStack(&ValidationError{ParamName: param, Reason: reason, Value: value})
}

// ValueError は引数の値が不正な場合のエラーです。
// 例: 範囲外のインデックス、初期化されていないカーネル。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("krr: %s: %s", e.Op, e.Message)
}

// NewValueError は ValueError をスタックトレース付きで返します。
func NewValueError(op, message string) error {
	return errors.WithStack(&ValueError{Op: op, Message: message})
}

// ModelError は学習処理そのものが失敗した場合のエラーです。
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("krr: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("krr: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError は ModelError をスタックトレース付きで返します。
func NewModelError(op, kind string, err error) error {
	return errors.WithStack(&ModelError{Op: op, Kind: kind, Err: err})
}

// NumericalInstabilityError は計算結果に NaN や Inf が現れた場合のエラーです。
type NumericalInstabilityError struct {
	Operation string
	Values    []float64
	Iteration int
}

func (e *NumericalInstabilityError) Error() string {
	parts := make([]string, 0, 6)
	for i, v := range e.Values {
		if i >= 5 {
			parts = append(parts, "...")
			break
		}
		parts = append(parts, fmt.Sprintf("%.6g", v))
	}
	return fmt.Sprintf("krr: numerical instability detected in %s at iteration %d. Values: [%s]",
		e.Operation, e.Iteration, strings.Join(parts, ", "))
}

// MarshalZerologObject はエラー情報を zerolog のイベントに書き込みます。
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Int("iteration", e.Iteration).
		Int("n_values", len(e.Values)).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError は NumericalInstabilityError をスタックトレース付きで返します。
func NewNumericalInstabilityError(operation string, values []float64, iteration int) error {
	return errors.WithStack(&NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Iteration: iteration,
	})
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーチェーンに target が含まれるかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーチェーンから target の型を取り出します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は err にメッセージを付けてラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は err をフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf はフォーマット済みの新しいエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack は err にスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix は正定値でない（分解できない）行列の場合のエラーです。
	ErrSingularMatrix = New("singular matrix")

	// ErrKernelNotInitialized はカーネルが Init される前に使われた場合のエラーです。
	ErrKernelNotInitialized = New("kernel not initialized")
)
