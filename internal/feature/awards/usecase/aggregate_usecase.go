package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"sbir_backend/internal/feature/awards/domain/entity"
)

// FilterSpec は利用者が選択した絞り込み条件です。
// 空の集合は「制限なし」を意味します。永続化されません。
type FilterSpec struct {
	Agencies []string // 許可する交付機関コードの集合
	Phases   []string // 許可するプログラム段階の集合
}

// GroupTotal はカテゴリ値1つに対する交付額の合計です。
type GroupTotal struct {
	Key   string          `json:"key"`
	Total decimal.Decimal `json:"total_awarded"`
}

// Summary は絞り込み後のレコード集合から導出されるKPIとグループ別集計です。
// レンダリングサイクルを超えて保持されることはありません。
type Summary struct {
	TotalAwarded  decimal.Decimal `json:"total_awarded"`
	TotalProjects int             `json:"total_projects"`
	ByState       []GroupTotal    `json:"by_state"`
	ByAgency      []GroupTotal    `json:"by_agency"`
	ByPhase       []GroupTotal    `json:"by_phase"`
}

// Filter はFilterSpecに一致するレコードだけを、入力順を保って返します。
// 純粋な選択処理であり、レコードを変更しません。
func Filter(records []entity.Award, spec FilterSpec) []entity.Award {
	agencies := toSet(spec.Agencies)
	phases := toSet(spec.Phases)

	out := make([]entity.Award, 0, len(records))
	for _, r := range records {
		if len(agencies) > 0 {
			if _, ok := agencies[r.Agency]; !ok {
				continue
			}
		}
		if len(phases) > 0 {
			if _, ok := phases[r.Phase]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// Aggregate は絞り込みと集計を行い、Summaryと絞り込み後のレコード列を返します。
//
// 金額が無効（パース不能）なレコードはTotalProjectsには数えられますが、
// TotalAwardedおよびグループ別合計には寄与しません。入力が空の場合は
// すべてのKPIがゼロ、すべてのグループ別集計が空になります。
// 隠れた状態を持たない純粋関数であり、同じ入力に対して常に同じ出力を返します。
func Aggregate(records []entity.Award, spec FilterSpec) (Summary, []entity.Award) {
	filtered := Filter(records, spec)

	total := decimal.Zero
	byState := map[string]decimal.Decimal{}
	byAgency := map[string]decimal.Decimal{}
	byPhase := map[string]decimal.Decimal{}

	for _, r := range filtered {
		amount := decimal.Zero
		if r.Amount.Valid {
			amount = r.Amount.Decimal
			total = total.Add(amount)
		}
		// 金額が無効でもグループのキー自体は観測された値として出力される
		byState[r.State] = byState[r.State].Add(amount)
		byAgency[r.Agency] = byAgency[r.Agency].Add(amount)
		byPhase[r.Phase] = byPhase[r.Phase].Add(amount)
	}

	s := Summary{
		TotalAwarded:  total,
		TotalProjects: len(filtered),
		ByState:       sortedTotals(byState),
		ByAgency:      sortedTotals(byAgency),
		ByPhase:       sortedTotals(byPhase),
	}
	return s, filtered
}

// toSet はスライスを存在判定用の集合へ変換します。
func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// sortedTotals はグループ別合計をキーの辞書順で安定した列に変換します。
func sortedTotals(groups map[string]decimal.Decimal) []GroupTotal {
	out := make([]GroupTotal, 0, len(groups))
	for k, v := range groups {
		out = append(out, GroupTotal{Key: k, Total: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
