package cmd

import (
	"log/slog"

	"github.com/shouni/go-meme-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// catalogCmd は、公開APIからミームテンプレートの一覧を取得して表示するのだ。
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "ミームテンプレートの一覧を取得して表示するのだ。",
	Long: `公開カタログAPIに1回だけGETを発行し、テンプレートの一覧（ID、名前、
寸法、キャプション枠の数）を表示するのだ。取得に失敗しても一覧が
空になるだけなのだ。`,
	Example: "  go-meme-kit catalog --limit 10",
	RunE:    catalogCommand,
}

func init() {
}

// catalogCommand は、catalog サブコマンドの実行ロジック本体なのだ。
func catalogCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig(cmd)

	slog.Info("カタログ取得を開始するのだ！", "api_url", cfg.APIURL)

	return pipeline.ExecuteCatalog(ctx, cfg)
}
