package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sbir_backend/internal/app/di"
	"sbir_backend/internal/feature/awards/usecase"
	"sbir_backend/internal/platform/cache"
	"sbir_backend/internal/shared/ratelimiter"
)

var Cmd = &cobra.Command{
	Use:  "awardsctl",
	Long: "Fetch SBIR award records for one or more firms and print per-firm summaries as JSON",
	RunE: run,
}

var args struct {
	firms    []string
	agencies []string
	phases   []string
	timeout  time.Duration
}

// summaryOutput は1企業分のCLI出力です。
type summaryOutput struct {
	Firm    string `json:"firm"`
	usecase.Summary
	Warning string `json:"warning,omitempty"`
}

func init() {
	Cmd.Flags().StringSliceVar(&args.firms, "firm", nil, "company name to query (repeatable)")
	Cmd.Flags().StringSliceVar(&args.agencies, "agency", nil, "restrict to agency code (repeatable)")
	Cmd.Flags().StringSliceVar(&args.phases, "phase", nil, "restrict to program phase (repeatable)")
	Cmd.Flags().DurationVar(&args.timeout, "timeout", 5*time.Minute, "overall timeout")
	_ = Cmd.MarkFlagRequired("firm")
}

func main() {
	if err := Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(0)
}

func run(cmd *cobra.Command, argv []string) error {
	awardsAPI, err := di.NewAwardsAPI()
	if err != nil {
		return err
	}

	// CLIはプロセス内メモ化のみ（同一企業の重複指定で再リクエストしない）
	memoRepo := cache.NewMemoAwardsRepository(awardsAPI, 0)
	uc := usecase.NewAwardsUsecase(memoRepo, memoRepo)

	// SBIR.gov APIへの一括取得はリクエスト間隔を調整する
	rl := ratelimiter.NewRateLimiter(10, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), args.timeout)
	defer cancel()

	spec := usecase.FilterSpec{Agencies: args.agencies, Phases: args.phases}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	for _, firm := range args.firms {
		rl.WaitIfNeeded()

		records, warning, err := uc.GetAwards(ctx, firm, false)
		if err != nil {
			// 入力不正のみここに到達する（取得失敗はwarningとして返る）
			log.Printf("skipping firm %q: %v", firm, err)
			continue
		}

		summary, _ := usecase.Aggregate(records, spec)
		if err := enc.Encode(summaryOutput{Firm: firm, Summary: summary, Warning: warning}); err != nil {
			return err
		}
	}
	return nil
}
