package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"time"

	// カタログの画像は JPEG / PNG / GIF のいずれかで配信されます
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/cenkalti/backoff/v4"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	defaultCacheExpiration = 30 * time.Minute
	cacheCleanupInterval   = 1 * time.Hour
	maxDownloadRetries     = 3
)

// ImageFetcher は画像バイト列のダウンロードを担う構造体です。
// 同一URLの同時要求は singleflight で1本にまとめ、取得結果はキャッシュし、
// CDNへのリクエスト間隔はレートリミッターで制御します。
type ImageFetcher struct {
	client        Doer
	imgCache      *cache.Cache
	limiter       *rate.Limiter
	downloadGroup singleflight.Group
}

// NewImageFetcher は ImageFetcher を初期化します。limiter に nil を渡した
// 場合は流量制限なしで動作します。
func NewImageFetcher(client Doer, limiter *rate.Limiter) (*ImageFetcher, error) {
	if client == nil {
		return nil, fmt.Errorf("HTTPクライアントは必須です")
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &ImageFetcher{
		client:   client,
		imgCache: cache.New(defaultCacheExpiration, cacheCleanupInterval),
		limiter:  limiter,
	}, nil
}

// FetchBytes は指定されたURLの画像バイト列を取得するのだ。
// キャッシュにあればネットワークへは出ないのだ。
func (f *ImageFetcher) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	if cached, found := f.imgCache.Get(url); found {
		return cached.([]byte), nil
	}

	// 同じURLへの並行ダウンロードを1本化するのだ
	val, err, _ := f.downloadGroup.Do(url, func() (interface{}, error) {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		data, err := f.download(ctx, url)
		if err != nil {
			return nil, err
		}

		f.imgCache.Set(url, data, cache.DefaultExpiration)
		return data, nil
	})
	if err != nil {
		return nil, err
	}

	return val.([]byte), nil
}

// Fetch は画像を取得してデコード済みの image.Image として返すのだ。
func (f *ImageFetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	data, err := f.FetchBytes(ctx, url)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("画像のデコードに失敗しました %s: %w", url, err)
	}

	slog.Debug("画像をデコードしたのだ", "url", url, "format", format, "bytes", len(data))
	return img, nil
}

// download は1枚の画像を、指数バックオフ付きで最大3回まで試行して取得します。
func (f *ImageFetcher) download(ctx context.Context, url string) ([]byte, error) {
	var data []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("画像リクエストの構築に失敗しました: %w", err))
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return fmt.Errorf("画像の取得に失敗しました %s: %w", url, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err = fmt.Errorf("画像サーバーが異常ステータスを返しました %s: %s", url, resp.Status)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				// クライアントエラーは何度試しても結果が変わらないのだ
				return backoff.Permanent(err)
			}
			return err
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("画像ボディの読み込みに失敗しました %s: %w", url, err)
		}
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxDownloadRetries)
	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, err
	}
	return data, nil
}
