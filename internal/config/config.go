package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"

	"github.com/shouni/go-meme-kit/pkg/fetcher"
)

// デフォルト値の定義なのだ
const (
	DefaultAPIURL        = fetcher.DefaultCatalogURL
	DefaultHTTPTimeout   = 30 * time.Second
	DefaultRateInterval  = 200 * time.Millisecond // 画像CDNへのリクエスト間隔
	DefaultSheetColumns  = 3
	DefaultThumbSize     = 80
	DefaultSheetFile     = "output/memes_sheet.png" // コンタクトシートのデフォルト保存先なのだ
	DefaultLibraryDir    = "output/library"         // 端末のフォトライブラリに相当する保存先なのだ
	DefaultShareDir      = ""                       // 共有先は明示指定が必要なのだ
	DefaultComposeOutput = "meme.png"
)

// Config はアプリケーション全体の環境設定を保持する構造体なのだ。
type Config struct {
	APIURL     string
	LibraryDir string
	ShareDir   string

	Options Options
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	cfg := &Config{
		APIURL:     envutil.GetEnv("MEME_API_URL", DefaultAPIURL),
		LibraryDir: envutil.GetEnv("MEME_LIBRARY_DIR", DefaultLibraryDir),
		ShareDir:   envutil.GetEnv("MEME_SHARE_DIR", DefaultShareDir),
	}
	return cfg
}

// Options は CLI フラグから渡される実行時のパラメータなのだ。
type Options struct {
	// カタログ・シート関連
	APIURL       string // --api-url
	SheetOutput  string // --sheet-output
	SheetColumns int    // --columns
	ThumbSize    int    // --thumb-size
	Shuffle      bool   // --shuffle: 再取得後に一様シャッフルするのだ
	Limit        int    // --limit

	// 合成（編集）関連
	LogoPath    string // --logo: ローカルパスまたはURL
	CaptionText string // --caption
	Save        bool   // --save
	Share       bool   // --share

	// 出力先
	LibraryDir string // --library-dir
	ShareDir   string // --share-dir

	// 実行制御
	HTTPTimeout time.Duration // --http-timeout
}
