package sbirgov

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"sbir_backend/internal/feature/awards/adapters/sbirgov/dto"
	"sbir_backend/internal/feature/awards/domain"
	"sbir_backend/internal/feature/awards/domain/entity"
	"sbir_backend/internal/feature/awards/usecase"
)

// Repository はSBIR.gov公開APIから交付データを取得するAwardsRepository実装です。
type Repository struct {
	cfg    Config
	client *http.Client
}

// RepositoryがAwardsRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.AwardsRepository = (*Repository)(nil)

// NewRepository は指定された設定とHTTPクライアントでRepositoryの新しいインスタンスを生成します。
func NewRepository(cfg Config, client *http.Client) *Repository {
	return &Repository{cfg: cfg, client: client}
}

// Search は企業名でSBIR.gov awards APIを1回だけ照会し、交付レコードの列として返します。
// ページングは行わず、cfg.Rows件を超える分は切り捨てられます。
//
// レスポンスは「交付レコードの配列」か「resultsキーを持つオブジェクト」の
// どちらの形状でも受け付けます。それ以外の失敗はすべて分類付きの
// domain.FetchError として返します。
func (r *Repository) Search(ctx context.Context, firm string) ([]entity.Award, error) {
	q := url.Values{}
	q.Set("firm", firm)
	q.Set("start", "0")
	q.Set("rows", strconv.Itoa(r.cfg.Rows))

	u := fmt.Sprintf("%s/public/api/awards?%s", r.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, domain.NewFetchError(domain.FetchErrNetwork, err)
	}

	res, err := r.client.Do(req)
	if err != nil {
		return nil, domain.NewFetchError(domain.FetchErrNetwork, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, domain.NewFetchError(domain.FetchErrNetwork, fmt.Errorf("sbir.gov http %d", res.StatusCode))
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, domain.NewFetchError(domain.FetchErrNetwork, err)
	}

	raws, err := decodeAwards(body)
	if err != nil {
		return nil, err
	}

	out := make([]entity.Award, 0, len(raws))
	for i, raw := range raws {
		a, issues := toEntity(raw)
		if len(issues) > 0 {
			slog.Warn("award record has invalid fields", "firm", firm, "index", i, "issues", issues)
		}
		out = append(out, a)
	}
	return out, nil
}

// decodeAwards はレスポンスボディを既知の2形状のどちらかとしてデコードします。
func decodeAwards(body []byte) ([]dto.Award, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, domain.NewFetchError(domain.FetchErrDecode, fmt.Errorf("empty response body"))
	}

	switch body[0] {
	case '[':
		var raws []dto.Award
		if err := json.Unmarshal(body, &raws); err != nil {
			return nil, domain.NewFetchError(domain.FetchErrDecode, err)
		}
		return raws, nil
	case '{':
		var obj dto.ObjectResponse
		if err := json.Unmarshal(body, &obj); err != nil {
			return nil, domain.NewFetchError(domain.FetchErrDecode, err)
		}
		// resultsキーを持たないオブジェクト（APIエラーなど）は形状エラーとして区別する
		if obj.Results == nil {
			return nil, domain.NewFetchError(domain.FetchErrShape, fmt.Errorf("json object has no results key"))
		}
		return *obj.Results, nil
	default:
		if json.Valid(body) {
			return nil, domain.NewFetchError(domain.FetchErrShape, fmt.Errorf("unexpected top-level json value"))
		}
		return nil, domain.NewFetchError(domain.FetchErrDecode, fmt.Errorf("response body is not valid json"))
	}
}

// toEntity は生レコードを検証し、型付きのentity.Awardへ変換します。
// award_amount が数値として解釈できない場合はAmountを無効（Valid=false）とし、
// レコード自体は保持します。フィールド単位の問題はissuesとして収集されます。
func toEntity(raw dto.Award) (entity.Award, []string) {
	var issues []string

	a := entity.Award{
		Agency:  raw.Agency,
		Phase:   raw.Phase,
		Program: raw.Program,
		City:    raw.City,
		State:   raw.State,
	}

	if raw.AwardAmount == "" {
		issues = append(issues, "award_amount missing")
	} else if d, err := decimal.NewFromString(string(raw.AwardAmount)); err != nil {
		issues = append(issues, fmt.Sprintf("award_amount %q is not numeric", raw.AwardAmount))
	} else if d.IsNegative() {
		issues = append(issues, fmt.Sprintf("award_amount %q is negative", raw.AwardAmount))
	} else {
		a.Amount = decimal.NewNullDecimal(d)
	}

	// 交付年は表示専用のため、解釈できない場合は0のまま許容する
	a.Year = raw.AwardYear.Int()

	return a, issues
}
