// Package entity はawardsフィーチャーのドメインモデルを定義します。
package entity

import "github.com/shopspring/decimal"

// Award はSBIR/STTRの助成金交付1件を表します。
// Amount は有効な金額か、パース不能を示す無効値（Valid=false）のいずれかです。
// 生の文字列のままAmountが下流に渡ることはありません。
type Award struct {
	Agency  string              // 交付機関コード（例: "DOD", "NSF"）
	Phase   string              // プログラム段階（"Phase I" | "Phase II" | その他）
	Program string              // プログラム名（例: "SBIR"）
	Amount  decimal.NullDecimal // 交付額（USD）。パース不能の場合は Valid=false
	Year    int                 // 交付年。不明な場合は 0
	City    string              // 企業所在地（市）
	State   string              // 企業所在地（USA州コード）
}

// KnownAgencies はSBIRプログラムに参加する交付機関コードの一覧です。
// フロントエンドの機関フィルタ（マルチセレクト）の選択肢として提供されます。
var KnownAgencies = []string{
	"DOD", "HHS", "NASA", "NSF", "DOE",
	"USDA", "EPA", "DOC", "ED", "DOT", "DHS",
}

// KnownPhases はフェーズフィルタの選択肢として提供されるプログラム段階の一覧です。
var KnownPhases = []string{"Phase I", "Phase II"}
