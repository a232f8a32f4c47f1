package model

import (
	"fmt"
	"io"
	"os"
)

// SaveWeights は ModelWeights を JSON ファイルに保存する
//
// 使用例:
//
//	mw, err := krr.ExportWeights()
//	err = model.SaveWeights(mw, "krr.json")
func SaveWeights(mw *ModelWeights, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return WriteWeights(mw, file)
}

// WriteWeights は ModelWeights を検証してから w に書き出す
func WriteWeights(mw *ModelWeights, w io.Writer) error {
	if err := mw.Validate(); err != nil {
		return fmt.Errorf("invalid model weights: %w", err)
	}
	data, err := mw.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write model: %w", err)
	}
	return nil
}

// LoadWeights は JSON ファイルから ModelWeights を読み込む
func LoadWeights(filename string) (*ModelWeights, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadWeights(file)
}

// ReadWeights は r から ModelWeights を読み込んで検証する
func ReadWeights(r io.Reader) (*ModelWeights, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read model: %w", err)
	}
	var mw ModelWeights
	if err := mw.FromJSON(data); err != nil {
		return nil, fmt.Errorf("failed to decode model: %w", err)
	}
	if err := mw.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model weights: %w", err)
	}
	return &mw, nil
}
