package runner

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/shouni/go-meme-kit/internal/config"
	"github.com/shouni/go-meme-kit/pkg/editor"
	"github.com/shouni/go-meme-kit/pkg/fetcher"
	"github.com/shouni/go-meme-kit/pkg/publisher"

	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// ComposeRunner は1枚のテンプレートに対する編集フローを実行するのだ。
// フル画像のダウンロード → ロゴ合成 → キャプション描き込み → 保存/共有の
// 順で、編集画面の操作をそのまま再現するのだ。
type ComposeRunner struct {
	catalog   *CatalogRunner
	images    *fetcher.ImageFetcher
	reader    remoteio.InputReader
	publisher *publisher.MemePublisher
	options   config.Options
}

// NewComposeRunner は ComposeRunner の新しいインスタンスを生成して返す。
func NewComposeRunner(
	catalog *CatalogRunner,
	images *fetcher.ImageFetcher,
	reader remoteio.InputReader,
	pub *publisher.MemePublisher,
	options config.Options,
) *ComposeRunner {
	return &ComposeRunner{
		catalog:   catalog,
		images:    images,
		reader:    reader,
		publisher: pub,
		options:   options,
	}
}

// Run は指定されたIDのテンプレートに編集操作を適用するのだ。
// ID が見つからない場合だけはエラーを返すのだ（CLIには戻る画面が
// 無いのだ）。合成や書き出しの失敗はログだけ残して飲み込むのだ。
func (cr *ComposeRunner) Run(ctx context.Context, memeID string) error {
	memes := cr.catalog.Run(ctx)
	rec, ok := memes.FindByID(memeID)
	if !ok {
		return fmt.Errorf("ID %q のテンプレートが見つからないのだ", memeID)
	}

	// フル解像度のベース画像をダウンロードするのだ。失敗してもセッションは
	// 続行し、以降の合成操作がすべて no-op になるだけなのだ
	base, err := cr.images.Fetch(ctx, rec.URL)
	if err != nil {
		slog.Error("フル画像の取得に失敗したのだ。以降の操作は no-op になるのだ",
			"id", rec.ID, "url", rec.URL, "error", err)
	}

	session := editor.NewSession(rec, base)
	slog.Info("編集セッションを開始するのだ", "id", rec.ID, "name", rec.Name)

	if cr.options.LogoPath != "" {
		cr.applyLogo(ctx, session)
	}
	if cr.options.CaptionText != "" {
		cr.applyCaption(session)
	}
	if cr.options.Save {
		cr.save(ctx, session)
	}
	if cr.options.Share {
		cr.share(ctx, session)
	}

	return nil
}

// applyLogo はロゴ画像を読み込んで合成するのだ。読み込みに失敗した場合は
// ピッカーのキャンセルと同じ扱いで、何も変更しないのだ。
func (cr *ComposeRunner) applyLogo(ctx context.Context, session *editor.Session) {
	if err := session.Select(editor.ActionAddLogo); err != nil {
		slog.Warn("ロゴ合成を選択できなかったのだ", "error", err)
		return
	}
	defer session.Close()

	logo, err := cr.loadLogo(ctx, cr.options.LogoPath)
	if err != nil {
		slog.Warn("ロゴ画像の読み込みに失敗したのでキャンセル扱いにするのだ",
			"logo", cr.options.LogoPath, "error", err)
		return
	}

	session.ApplyLogo(logo)
	slog.Info("ロゴを合成したのだ", "logo", cr.options.LogoPath)
}

func (cr *ComposeRunner) applyCaption(session *editor.Session) {
	if err := session.Select(editor.ActionAddText); err != nil {
		slog.Warn("キャプションを選択できなかったのだ", "error", err)
		return
	}
	defer session.Close()

	session.ApplyCaption(cr.options.CaptionText)
	slog.Info("キャプションを描き込んだのだ", "text", cr.options.CaptionText)
}

// save は合成結果をライブラリへ保存するのだ。失敗してもユーザーへの
// フィードバックはログ以外に無いのだ。
func (cr *ComposeRunner) save(ctx context.Context, session *editor.Session) {
	if err := session.Select(editor.ActionSave); err != nil {
		slog.Warn("保存を選択できなかったのだ", "error", err)
		return
	}
	defer session.Close()

	if session.Current() == nil {
		slog.Warn("保存できる合成結果が無いのだ", "id", session.Record().ID)
		return
	}

	path, err := cr.publisher.SaveToLibrary(ctx, session.Current(), cr.fileName(session))
	if err != nil {
		slog.Error("ライブラリへの保存に失敗したのだ", "error", err)
		return
	}
	slog.Info("ライブラリへ保存したのだ", "path", path)
}

func (cr *ComposeRunner) share(ctx context.Context, session *editor.Session) {
	if err := session.Select(editor.ActionShare); err != nil {
		slog.Warn("共有を選択できなかったのだ", "error", err)
		return
	}
	defer session.Close()

	if session.Current() == nil {
		slog.Warn("共有できる合成結果が無いのだ", "id", session.Record().ID)
		return
	}

	if _, err := cr.publisher.Share(ctx, session.Current(), cr.fileName(session)); err != nil {
		slog.Error("共有先への書き出しに失敗したのだ", "error", err)
	}
}

// loadLogo はロゴをURLまたはローカル/GCSパスから読み込むのだ。
func (cr *ComposeRunner) loadLogo(ctx context.Context, path string) (image.Image, error) {
	if isHTTPURL(path) {
		return cr.images.Fetch(ctx, path)
	}

	rc, err := cr.reader.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("ロゴファイルを開けませんでした %s: %w", path, err)
	}
	defer rc.Close()

	img, _, err := image.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("ロゴ画像のデコードに失敗しました %s: %w", path, err)
	}
	return img, nil
}

func (cr *ComposeRunner) fileName(session *editor.Session) string {
	return fmt.Sprintf("meme_%s.png", session.Record().ID)
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
