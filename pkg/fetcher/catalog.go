package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shouni/go-meme-kit/pkg/domain"
)

// DefaultCatalogURL はミームテンプレートのカタログを提供する公開エンドポイントです。
const DefaultCatalogURL = "https://api.imgflip.com/get_memes"

// Doer は HTTP リクエストを実行するための最小インターフェースです。
// 本番では *http.Client を渡し、テストではスタブに差し替えます。
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient は指定されたタイムアウトを持つ標準の HTTP クライアントを生成します。
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// CatalogFetcher はカタログAPIからテンプレート一覧を取得する構造体です。
type CatalogFetcher struct {
	client Doer
	apiURL string
}

// NewCatalogFetcher は CatalogFetcher を初期化します。apiURL が空の場合は
// デフォルトのエンドポイントを使用します。
func NewCatalogFetcher(client Doer, apiURL string) (*CatalogFetcher, error) {
	if client == nil {
		return nil, fmt.Errorf("HTTPクライアントは必須です")
	}
	if apiURL == "" {
		apiURL = DefaultCatalogURL
	}
	return &CatalogFetcher{
		client: client,
		apiURL: apiURL,
	}, nil
}

// Fetch はカタログを1回だけ取得してデコードするのだ。
// リトライは行わず、失敗の握りつぶしは呼び出し側（runner 層）の責務なのだ。
func (cf *CatalogFetcher) Fetch(ctx context.Context) (domain.Memes, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cf.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("カタログリクエストの構築に失敗しました: %w", err)
	}

	resp, err := cf.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("カタログの取得に失敗しました: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("カタログAPIが異常ステータスを返しました: %s", resp.Status)
	}

	var catalog domain.CatalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("カタログJSONのデコードに失敗しました: %w", err)
	}
	if !catalog.Success {
		return nil, fmt.Errorf("カタログAPIが success=false を返しました")
	}

	return catalog.Data.Memes, nil
}
