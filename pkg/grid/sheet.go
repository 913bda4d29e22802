// Package grid は、カタログをサムネイルのコンタクトシート（格子状の
// 一覧画像）としてレンダリングします。
package grid

import (
	"context"
	"image"
	"image/draw"
	"log/slog"

	"github.com/shouni/go-meme-kit/pkg/domain"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	// DefaultColumns はコンタクトシートの列数です。
	DefaultColumns = 3
	// DefaultThumbSize は正方形サムネイルの1辺（ピクセル）です。
	DefaultThumbSize = 80

	defaultRateBurst = 2
)

// ImageFetcher はサムネイル元画像の取得に使う最小インターフェースです。
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (image.Image, error)
}

// SheetBuilder はカタログからコンタクトシートを組み立てる構造体です。
type SheetBuilder struct {
	fetcher   ImageFetcher
	columns   int
	thumbSize int
	limiter   *rate.Limiter
}

// NewSheetBuilder は SheetBuilder を初期化します。columns / thumbSize に
// 0 以下を渡した場合はデフォルト値を使用します。limiter が nil の場合は
// 流量制限なしで動作します。
func NewSheetBuilder(fetcher ImageFetcher, columns, thumbSize int, limiter *rate.Limiter) *SheetBuilder {
	if columns <= 0 {
		columns = DefaultColumns
	}
	if thumbSize <= 0 {
		thumbSize = DefaultThumbSize
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, defaultRateBurst)
	}
	return &SheetBuilder{
		fetcher:   fetcher,
		columns:   columns,
		thumbSize: thumbSize,
		limiter:   limiter,
	}
}

// Build は全レコードのサムネイルを並列で取得し、1枚のシートに合成するのだ。
// セルの並びはカタログの並びをそのまま保持するのだ。取得に失敗したセルは
// ログだけ残して空白のままにするのだ（エラーは表に出さないのだ）。
func (sb *SheetBuilder) Build(ctx context.Context, memes domain.Memes) (*image.RGBA, error) {
	rows := (len(memes) + sb.columns - 1) / sb.columns
	if rows < 1 {
		rows = 1
	}
	sheet := image.NewRGBA(image.Rect(0, 0, sb.columns*sb.thumbSize, rows*sb.thumbSize))

	thumbs := make([]image.Image, len(memes))
	eg, egCtx := errgroup.WithContext(ctx)

	slog.Info("サムネイルの並列取得を開始するのだ", "count", len(memes), "columns", sb.columns)

	for i, meme := range memes {
		i, meme := i, meme // ゴルーチンのクロージャ対策なのだ

		eg.Go(func() error {
			// レートリミットに従って、自分の番が来るまで待機するのだ
			if err := sb.limiter.Wait(egCtx); err != nil {
				return err
			}

			img, err := sb.fetcher.Fetch(egCtx, meme.URL)
			if err != nil {
				// 失敗したサムネイルは何も描かない。これはエラーではないのだ
				slog.Warn("サムネイルの取得に失敗したのでセルは空白になるのだ",
					"id", meme.ID, "name", meme.Name, "error", err)
				return nil
			}

			thumbs[i] = sb.thumbnail(img)
			return nil
		})
	}

	// キャンセル以外でエラーは返らないのだ
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for i, thumb := range thumbs {
		if thumb == nil {
			continue
		}
		x0 := (i % sb.columns) * sb.thumbSize
		y0 := (i / sb.columns) * sb.thumbSize
		target := image.Rect(x0, y0, x0+sb.thumbSize, y0+sb.thumbSize)
		draw.Draw(sheet, target, thumb, thumb.Bounds().Min, draw.Src)
	}

	slog.Info("コンタクトシートを組み立てたのだ",
		"cells", len(memes), "width", sheet.Bounds().Dx(), "height", sheet.Bounds().Dy())
	return sheet, nil
}

// thumbnail は元画像を正方形セルのサイズに拡縮します。セルが正方形のため
// アスペクト比は維持しません。
func (sb *SheetBuilder) thumbnail(src image.Image) image.Image {
	thumb := image.NewRGBA(image.Rect(0, 0, sb.thumbSize, sb.thumbSize))
	xdraw.ApproxBiLinear.Scale(thumb, thumb.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return thumb
}
