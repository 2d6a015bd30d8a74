// Package domain defines domain-level errors for the awards feature.
package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyFirm is returned when an awards lookup is requested without a company name.
var ErrEmptyFirm = errors.New("firm name is required")

// FetchErrorKind は取得失敗の分類を表します。
type FetchErrorKind string

const (
	// FetchErrNetwork はリクエストが完了しなかったことを示します（DNS、接続、タイムアウト、HTTPエラーステータス）。
	FetchErrNetwork FetchErrorKind = "network"
	// FetchErrDecode はレスポンスボディが有効なJSONでなかったことを示します。
	FetchErrDecode FetchErrorKind = "decode"
	// FetchErrShape はJSONは有効だが既知のレスポンス形状（配列 / resultsキーを持つオブジェクト）のいずれにも一致しなかったことを示します。
	FetchErrShape FetchErrorKind = "shape"
)

// FetchError は外部API取得の失敗を分類付きで表すエラーです。
// Fetcher境界（usecase）で回収され、上位層には伝播しません。
type FetchError struct {
	Kind FetchErrorKind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("awards fetch (%s): %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// NewFetchError は指定された分類のFetchErrorを生成します。
func NewFetchError(kind FetchErrorKind, err error) *FetchError {
	return &FetchError{Kind: kind, Err: err}
}

// AsFetchError はerrがFetchErrorであればそれを返します。
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
