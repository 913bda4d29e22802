package builder

import (
	"github.com/shouni/go-meme-kit/internal/config"

	"github.com/shouni/go-meme-kit/pkg/fetcher"
	"github.com/shouni/go-meme-kit/pkg/publisher"

	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する。
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config    *config.Config           // Configは、環境変数から読み込まれたグローバルな設定です。
	Options   config.Options           // Optionsは、コマンドラインから渡された実行時の設定です。
	Catalog   *fetcher.CatalogFetcher  // Catalogは、テンプレート一覧の取得に使うフェッチャーです。
	Images    *fetcher.ImageFetcher    // Imagesは、サムネイル・フル画像の取得に使うフェッチャーです。
	Reader    remoteio.InputReader     // Readerは、ローカルやGCSのファイル読み込みに使う入力元です。
	Writer    remoteio.OutputWriter    // Writerは、合成結果を保存するための出力先です。
	Publisher *publisher.MemePublisher // Publisherは、ライブラリ保存と共有書き出しを担います。
}

// NewAppContext は AppContext の新しいインスタンスを生成する
func NewAppContext(
	cfg *config.Config,
	catalog *fetcher.CatalogFetcher,
	images *fetcher.ImageFetcher,
	reader remoteio.InputReader,
	writer remoteio.OutputWriter,
	pub *publisher.MemePublisher,
) AppContext {
	return AppContext{
		Config:    cfg,
		Options:   cfg.Options,
		Catalog:   catalog,
		Images:    images,
		Reader:    reader,
		Writer:    writer,
		Publisher: pub,
	}
}
