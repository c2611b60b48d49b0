package model

// BaseEstimator は全ての推定器に埋め込まれる基底構造体。
// 学習済みかどうかのライフサイクル管理のみを担い、
// 木の構築そのものには関与しない。
type BaseEstimator struct {
	fitted bool
}

// IsFitted はモデルが学習済みかどうかを返す。
// PredictやScoreはこのゲートを通過してから動作する。
func (e *BaseEstimator) IsFitted() bool {
	return e.fitted
}

// SetFitted はモデルを学習済み状態に設定する。
// Fitの成功時とLoadによる復元時に呼び出す。
func (e *BaseEstimator) SetFitted() {
	e.fitted = true
}

// Reset はモデルを未学習状態に戻す
func (e *BaseEstimator) Reset() {
	e.fitted = false
}
