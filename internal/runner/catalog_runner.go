package runner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-meme-kit/pkg/domain"
	"github.com/shouni/go-meme-kit/pkg/fetcher"
)

// CatalogRunner はカタログの取得と一覧表示を担う構造体なのだ。
type CatalogRunner struct {
	catalog *fetcher.CatalogFetcher
}

// NewCatalogRunner は CatalogRunner の新しいインスタンスを生成して返す。
func NewCatalogRunner(catalog *fetcher.CatalogFetcher) *CatalogRunner {
	return &CatalogRunner{catalog: catalog}
}

// Run はカタログを取得して返すのだ。取得に失敗してもエラーは表に出さず、
// ログだけ残して空のリストを返すのだ（画面が空のままになるのと同じなのだ）。
func (cr *CatalogRunner) Run(ctx context.Context) domain.Memes {
	memes, err := cr.catalog.Fetch(ctx)
	if err != nil {
		slog.Error("カタログの取得に失敗したのだ。一覧は空のままなのだ", "error", err)
		return nil
	}

	slog.Info("カタログを取得したのだ", "count", len(memes))
	return memes
}

// RenderList はカタログの一覧をテキストとして整形します。
func (cr *CatalogRunner) RenderList(memes domain.Memes) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-12s %-40s %-10s %s\n", "ID", "NAME", "SIZE", "BOXES"))
	for _, m := range memes {
		size := fmt.Sprintf("%dx%d", m.Width, m.Height)
		sb.WriteString(fmt.Sprintf("%-12s %-40s %-10s %d\n",
			m.ID, truncateString(m.Name, 37), size, m.BoxCount))
	}
	return sb.String()
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
