package cmd

import (
	"log/slog"

	"github.com/shouni/go-meme-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// sheetCmd は、カタログを3列のコンタクトシート画像として書き出すのだ。
var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "カタログをサムネイルのコンタクトシートとして保存するのだ。",
	Long: `カタログを再取得し、正方形サムネイルを3列のグリッドに敷き詰めた
1枚のPNGとして保存するのだ。--shuffle を付けると再取得後に一覧を
一様にシャッフルするのだ（プル・トゥ・リフレッシュ相当なのだ）。
取得に失敗したサムネイルのセルは空白のままになるのだ。`,
	Example: "  go-meme-kit sheet --shuffle -o output/memes_sheet.png",
	RunE:    sheetCommand,
}

func init() {
}

// sheetCommand は、sheet サブコマンドの実行ロジック本体なのだ。
func sheetCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig(cmd)

	slog.Info("コンタクトシートの生成を開始するのだ！",
		"api_url", cfg.APIURL,
		"output", opts.SheetOutput,
		"columns", opts.SheetColumns,
		"shuffle", opts.Shuffle)

	return pipeline.ExecuteSheet(ctx, cfg)
}
