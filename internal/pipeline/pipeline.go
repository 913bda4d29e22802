package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-meme-kit/internal/builder"
	"github.com/shouni/go-meme-kit/internal/config"
	"github.com/shouni/go-meme-kit/internal/runner"

	"github.com/shouni/go-meme-kit/pkg/fetcher"
	"github.com/shouni/go-meme-kit/pkg/grid"
	"github.com/shouni/go-meme-kit/pkg/publisher"

	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"golang.org/x/time/rate"
)

// ExecuteCatalog はカタログを取得して一覧を標準出力に表示するのだ。
func ExecuteCatalog(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	catalogRunner := runner.NewCatalogRunner(appCtx.Catalog)
	memes := catalogRunner.Run(ctx)
	memes = memes.Limit(cfg.Options.Limit)

	fmt.Print(catalogRunner.RenderList(memes))
	return nil
}

// ExecuteSheet はカタログを再取得し、コンタクトシートを組み立てて保存するのだ。
func ExecuteSheet(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	sheetBuilder := grid.NewSheetBuilder(
		appCtx.Images,
		cfg.Options.SheetColumns,
		cfg.Options.ThumbSize,
		rate.NewLimiter(rate.Every(config.DefaultRateInterval), 2),
	)

	sheetRunner := runner.NewSheetRunner(
		runner.NewCatalogRunner(appCtx.Catalog),
		sheetBuilder,
		appCtx.Publisher,
		cfg.Options,
	)
	return sheetRunner.Run(ctx)
}

// ExecuteCompose は指定されたテンプレートに編集操作を適用するのだ。
func ExecuteCompose(ctx context.Context, cfg *config.Config, memeID string) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	composeRunner := runner.NewComposeRunner(
		runner.NewCatalogRunner(appCtx.Catalog),
		appCtx.Images,
		appCtx.Reader,
		appCtx.Publisher,
		cfg.Options,
	)

	if err := composeRunner.Run(ctx, memeID); err != nil {
		return err
	}

	slog.Info("編集フローが完了したのだ！", "id", memeID)
	return nil
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、
// アプリケーションコンテキストを初期化して返すのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	httpClient := fetcher.NewHTTPClient(cfg.Options.HTTPTimeout)

	catalogFetcher, err := fetcher.NewCatalogFetcher(httpClient, cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("カタログフェッチャーの初期化に失敗しました: %w", err)
	}

	imageFetcher, err := fetcher.NewImageFetcher(
		httpClient,
		rate.NewLimiter(rate.Every(config.DefaultRateInterval), 2),
	)
	if err != nil {
		return nil, fmt.Errorf("画像フェッチャーの初期化に失敗しました: %w", err)
	}

	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.NewOutputWriter()
	if err != nil {
		return nil, err
	}

	pub, err := publisher.NewMemePublisher(writer, cfg.LibraryDir, cfg.ShareDir)
	if err != nil {
		return nil, fmt.Errorf("パブリッシャーの初期化に失敗しました: %w", err)
	}

	appCtx := builder.NewAppContext(cfg, catalogFetcher, imageFetcher, reader, writer, pub)
	return &appCtx, nil
}
