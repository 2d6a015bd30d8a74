// Package dto defines data transfer objects for the SBIR.gov awards API responses.
package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Award はAPIレスポンス中の交付レコード1件を表します。
// award_amount と award_year は数値と文字列のどちらでも返るため、
// 許容的にデコードするフィールド型を使用します。未知のフィールドは無視されます。
type Award struct {
	Agency      string     `json:"agency"`
	Phase       string     `json:"phase"`
	Program     string     `json:"program"`
	AwardAmount FlexString `json:"award_amount"`
	AwardYear   FlexString `json:"award_year"`
	City        string     `json:"city"`
	State       string     `json:"state"`
}

// ObjectResponse は `{"results": [...]}` 形式のレスポンスです。
// Results はキーの有無を判別するためポインタで保持します。
type ObjectResponse struct {
	Results *[]Award `json:"results"`
}

// FlexString はJSON上で文字列・数値・nullのいずれでも現れうる値を
// 文字列として受け取ります。null と欠損は空文字列になります。
type FlexString string

// UnmarshalJSON はJSONスカラーを文字列へ正規化します。
// オブジェクトや配列が来た場合はエラーにせず空のまま保持します
// （レコード単位の検証は変換側で行います）。
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(strings.TrimSpace(s))
		return nil
	}
	if data[0] == '{' || data[0] == '[' {
		*f = ""
		return nil
	}
	// 数値・真偽値はそのままの字句を保持
	*f = FlexString(data)
	return nil
}

// Int は値を整数へ変換します。変換できない場合は 0 を返します。
func (f FlexString) Int() int {
	n, err := strconv.Atoi(string(f))
	if err != nil {
		return 0
	}
	return n
}
