package model

import (
	"encoding/json"
	"fmt"

	"github.com/YuminosukeSato/krr/pkg/errors"
)

// ModelWeights はカーネルマシンの学習結果を表す構造体（シリアライゼーション用）
type ModelWeights struct {
	// ModelType はモデルの種類（KernelRidgeRegression 等）
	ModelType string `json:"model_type"`

	// Version はフォーマットのバージョン（互換性チェック用）
	Version string `json:"version"`

	// Coefficients は双対係数 α
	Coefficients []float64 `json:"coefficients"`

	// SupportVectors は α に対応する訓練ベクトル（行ごとに 1 ベクトル）
	SupportVectors [][]float64 `json:"support_vectors"`

	// Kernel はカーネル名、KernelParams はそのパラメータ
	Kernel       string                 `json:"kernel"`
	KernelParams map[string]interface{} `json:"kernel_params,omitempty"`

	// Hyperparameters はモデルのハイパーパラメータ（tau, solver 等）
	Hyperparameters map[string]interface{} `json:"hyperparameters"`

	// Metadata は学習時の統計などの追加情報
	Metadata map[string]interface{} `json:"metadata,omitempty"`

	// IsFitted はモデルが学習済みかどうか
	IsFitted bool `json:"is_fitted"`
}

// ToJSON は ModelWeights を JSON にシリアライズする
func (mw *ModelWeights) ToJSON() ([]byte, error) {
	return json.MarshalIndent(mw, "", "  ")
}

// FromJSON は JSON から ModelWeights をデシリアライズする
func (mw *ModelWeights) FromJSON(data []byte) error {
	return json.Unmarshal(data, mw)
}

// Validate は ModelWeights の整合性を検証する
func (mw *ModelWeights) Validate() error {
	if mw.ModelType == "" {
		return fmt.Errorf("model_type is required")
	}
	if mw.Version == "" {
		return fmt.Errorf("version is required")
	}
	if mw.Kernel == "" {
		return fmt.Errorf("kernel is required")
	}
	if !mw.IsFitted && len(mw.Coefficients) > 0 {
		return fmt.Errorf("unfitted model should not have coefficients")
	}
	if mw.IsFitted && len(mw.Coefficients) == 0 {
		return fmt.Errorf("fitted model must have coefficients")
	}
	if len(mw.SupportVectors) != len(mw.Coefficients) {
		return fmt.Errorf("got %d support vectors for %d coefficients", len(mw.SupportVectors), len(mw.Coefficients))
	}
	if len(mw.SupportVectors) > 0 && len(mw.SupportVectors[0]) == 0 {
		return errors.NewValueError("ModelWeights.Validate", "support vectors must have at least one feature")
	}
	for i, sv := range mw.SupportVectors {
		if len(sv) != len(mw.SupportVectors[0]) {
			return fmt.Errorf("support vector %d has %d features, want %d", i, len(sv), len(mw.SupportVectors[0]))
		}
	}
	return nil
}

// Clone は ModelWeights のディープコピーを作成する
func (mw *ModelWeights) Clone() *ModelWeights {
	clone := &ModelWeights{
		ModelType:       mw.ModelType,
		Version:         mw.Version,
		Kernel:          mw.Kernel,
		IsFitted:        mw.IsFitted,
		Coefficients:    append([]float64(nil), mw.Coefficients...),
		SupportVectors:  make([][]float64, len(mw.SupportVectors)),
		KernelParams:    copyMap(mw.KernelParams),
		Hyperparameters: copyMap(mw.Hyperparameters),
		Metadata:        copyMap(mw.Metadata),
	}
	for i, sv := range mw.SupportVectors {
		clone.SupportVectors[i] = append([]float64(nil), sv...)
	}
	return clone
}

func copyMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
