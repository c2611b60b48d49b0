package model

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// SaveModel は学習済みモデルのスナップショットをgob形式でファイルに書き出す。
// 木のノードなどインタフェース値を含む場合は、呼び出し側で事前に
// gob.Register しておくこと。
//
// 使用例:
//
//	clf := tree.NewDecisionTreeClassifier()
//	// ... Fit ...
//	err := model.SaveModel(clf, "classifier.gob")
func SaveModel(model interface{}, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create model file: %w", err)
	}
	defer file.Close()

	return SaveModelToWriter(model, file)
}

// LoadModel はSaveModelで書き出したスナップショットをファイルから復元する。
// modelには保存時と同じ型のポインタを渡す。
//
// 使用例:
//
//	clf := tree.NewDecisionTreeClassifier()
//	err := model.LoadModel(clf, "classifier.gob")
func LoadModel(model interface{}, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open model file: %w", err)
	}
	defer file.Close()

	return LoadModelFromReader(model, file)
}

// SaveModelToWriter はモデルのスナップショットを任意のio.Writerへ書き出す。
func SaveModelToWriter(model interface{}, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(model); err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}
	return nil
}

// LoadModelFromReader は任意のio.Readerからモデルのスナップショットを復元する。
func LoadModelFromReader(model interface{}, r io.Reader) error {
	if err := gob.NewDecoder(r).Decode(model); err != nil {
		return fmt.Errorf("failed to decode model: %w", err)
	}
	return nil
}
