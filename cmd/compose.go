package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-meme-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// composeCmd は、選択したテンプレートにロゴやキャプションを合成するのだ。
var composeCmd = &cobra.Command{
	Use:   "compose <meme-id>",
	Short: "テンプレートにロゴやキャプションを合成して保存・共有するのだ。",
	Long: `指定したIDのテンプレートのフル解像度画像をダウンロードし、
--logo（中央に50%スケールで合成）と --caption（上部の固定矩形に
白・太字・24ptで描き込み）を順に適用するのだ。--save でライブラリへ
保存、--share で共有先へ書き出すのだ。`,
	Example: `  go-meme-kit compose 181913649 -c "HELLO" --save
  go-meme-kit compose 181913649 -l logo.png -c "HELLO" --save --share`,
	Args: cobra.ExactArgs(1),
	RunE: composeCommand,
}

func init() {
}

// composeCommand は、compose サブコマンドの実行ロジック本体なのだ。
func composeCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	memeID := args[0]

	// 何の操作も指定されていない編集は無意味なのだ
	if opts.LogoPath == "" && opts.CaptionText == "" && !opts.Save && !opts.Share {
		return fmt.Errorf("操作（--logo / --caption / --save / --share）を少なくとも1つ指定してほしいのだ")
	}

	cfg := loadConfig(cmd)

	slog.Info("編集フローを起動するのだ！",
		"id", memeID,
		"logo", opts.LogoPath,
		"caption", opts.CaptionText,
		"save", opts.Save,
		"share", opts.Share)

	return pipeline.ExecuteCompose(ctx, cfg, memeID)
}
