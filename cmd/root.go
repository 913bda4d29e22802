package cmd

import (
	"fmt"

	"github.com/shouni/go-meme-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

var opts config.Options

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- カタログ取得関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.APIURL, "api-url", "u", config.DefaultAPIURL, "ミームカタログを取得するエンドポイントなのだ。")
	rootCmd.PersistentFlags().IntVarP(&opts.Limit, "limit", "n", 0, "扱うテンプレートの最大件数なのだ（0 で無制限なのだ）。")

	// --- 出力先の設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.LibraryDir, "library-dir", config.DefaultLibraryDir, "保存先ライブラリ（ローカル or gs://...）なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.ShareDir, "share-dir", config.DefaultShareDir, "共有先ディレクトリ（ローカル or gs://...）なのだ。")

	// --- 実行制御 ---
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")

	// --- シート固有設定 ---
	sheetCmd.Flags().StringVarP(&opts.SheetOutput, "sheet-output", "o", config.DefaultSheetFile, "コンタクトシートの保存パスなのだ。")
	sheetCmd.Flags().IntVar(&opts.SheetColumns, "columns", config.DefaultSheetColumns, "シートの列数なのだ。")
	sheetCmd.Flags().IntVar(&opts.ThumbSize, "thumb-size", config.DefaultThumbSize, "正方形サムネイルの1辺（ピクセル）なのだ。")
	sheetCmd.Flags().BoolVar(&opts.Shuffle, "shuffle", false, "再取得した一覧を一様にシャッフルするのだ。")

	// --- 合成（編集）固有設定 ---
	composeCmd.Flags().StringVarP(&opts.LogoPath, "logo", "l", "", "合成するロゴ画像（ローカルパスまたはURL）なのだ。")
	composeCmd.Flags().StringVarP(&opts.CaptionText, "caption", "c", "", "上部の固定矩形に描き込むキャプションなのだ。")
	composeCmd.Flags().BoolVar(&opts.Save, "save", false, "合成結果をライブラリへ保存するのだ。")
	composeCmd.Flags().BoolVar(&opts.Share, "share", false, "合成結果を共有先へ書き出すのだ。")
}

// preRunAppE は、コマンド実行前にフラグの整合性チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	if opts.HTTPTimeout <= 0 {
		return fmt.Errorf("エラー: --http-timeout には正の値を指定してほしいのだ")
	}
	return nil
}

// loadConfig は環境変数とフラグをマージした設定を組み立てるのだ。
// フラグが明示指定された場合はそちらを優先するのだ。
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.LoadConfig()

	if cmd.Flags().Changed("api-url") {
		cfg.APIURL = opts.APIURL
	}
	if cmd.Flags().Changed("library-dir") {
		cfg.LibraryDir = opts.LibraryDir
	}
	if cmd.Flags().Changed("share-dir") {
		cfg.ShareDir = opts.ShareDir
	}

	cfg.Options = opts
	return cfg
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"go-meme-kit",
		addAppFlags,
		preRunAppE,
		catalogCmd,
		sheetCmd,
		composeCmd,
	)
}
