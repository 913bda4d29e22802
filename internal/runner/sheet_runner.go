package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-meme-kit/internal/config"
	"github.com/shouni/go-meme-kit/pkg/grid"
	"github.com/shouni/go-meme-kit/pkg/publisher"
)

// SheetRunner はカタログの取得からコンタクトシートの保存までを担うのだ。
type SheetRunner struct {
	catalog   *CatalogRunner
	builder   *grid.SheetBuilder
	publisher *publisher.MemePublisher
	options   config.Options
}

// NewSheetRunner は SheetRunner の新しいインスタンスを生成して返す。
func NewSheetRunner(catalog *CatalogRunner, builder *grid.SheetBuilder, pub *publisher.MemePublisher, options config.Options) *SheetRunner {
	return &SheetRunner{
		catalog:   catalog,
		builder:   builder,
		publisher: pub,
		options:   options,
	}
}

// Run はカタログを再取得し、必要ならシャッフルしてからシートを組み立てて
// 保存するのだ。カタログの取得失敗は空のシートとして扱われるのだ。
func (sr *SheetRunner) Run(ctx context.Context) error {
	memes := sr.catalog.Run(ctx)

	// プル・トゥ・リフレッシュ相当: 再取得した一覧を一様にシャッフルするのだ
	if sr.options.Shuffle {
		memes = memes.Shuffled()
		slog.Info("一覧をシャッフルしたのだ", "count", len(memes))
	}
	memes = memes.Limit(sr.options.Limit)

	sheet, err := sr.builder.Build(ctx, memes)
	if err != nil {
		return fmt.Errorf("シートの組み立てに失敗したのだ: %w", err)
	}

	if err := sr.publisher.SaveSheet(ctx, sheet, sr.options.SheetOutput); err != nil {
		return fmt.Errorf("シートの保存に失敗したのだ: %w", err)
	}

	slog.Info("コンタクトシートが完成したのだ！", "path", sr.options.SheetOutput, "cells", len(memes))
	return nil
}
