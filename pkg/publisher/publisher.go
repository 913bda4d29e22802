// Package publisher は、合成結果のビットマップを端末の「ライブラリ」
// 相当のディレクトリや共有先へ書き出します。書き出し先はローカルパスと
// gs:// の両方を透過的に扱います。
package publisher

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
)

const pngContentType = "image/png"

// OutputWriter はデータを外部ストレージに保存するためのインターフェースです。
// remoteio.OutputWriter がそのまま適合します。
type OutputWriter interface {
	Write(ctx context.Context, path string, data io.Reader, contentType string) error
}

// MemePublisher は合成画像の永続化を担います。
type MemePublisher struct {
	writer     OutputWriter
	libraryDir string
	shareDir   string
}

// NewMemePublisher は MemePublisher を初期化します。writer は必須です。
func NewMemePublisher(writer OutputWriter, libraryDir, shareDir string) (*MemePublisher, error) {
	if writer == nil {
		return nil, fmt.Errorf("OutputWriter は必須です")
	}
	return &MemePublisher{
		writer:     writer,
		libraryDir: libraryDir,
		shareDir:   shareDir,
	}, nil
}

// SaveToLibrary は合成画像をライブラリディレクトリへPNGで保存し、
// 保存先のパスを返すのだ。端末のフォトライブラリ書き込みに相当するのだ。
func (p *MemePublisher) SaveToLibrary(ctx context.Context, img image.Image, fileName string) (string, error) {
	return p.write(ctx, img, p.libraryDir, fileName)
}

// Share は合成画像を共有先へPNGで書き出し、その先のパスを返すのだ。
// 共有シートの代わりに、共有用ディレクトリ（ローカル or gs://）へ
// 成果物を渡すのだ。
func (p *MemePublisher) Share(ctx context.Context, img image.Image, fileName string) (string, error) {
	if p.shareDir == "" {
		return "", fmt.Errorf("共有先ディレクトリが設定されていません")
	}
	path, err := p.write(ctx, img, p.shareDir, fileName)
	if err != nil {
		return "", err
	}
	slog.Info("共有先へ書き出したのだ", "path", path)
	return path, nil
}

// SaveSheet はコンタクトシートを指定されたパスへそのまま保存します。
func (p *MemePublisher) SaveSheet(ctx context.Context, img image.Image, fullPath string) error {
	data, err := encodePNG(img)
	if err != nil {
		return err
	}
	if err := p.writer.Write(ctx, fullPath, bytes.NewReader(data), pngContentType); err != nil {
		return fmt.Errorf("シートの書き込みに失敗しました %s: %w", fullPath, err)
	}
	return nil
}

func (p *MemePublisher) write(ctx context.Context, img image.Image, baseDir, fileName string) (string, error) {
	if img == nil {
		return "", fmt.Errorf("書き出す画像がありません")
	}

	fullPath, err := ResolveOutputPath(baseDir, fileName)
	if err != nil {
		return "", fmt.Errorf("出力パスの解決に失敗しました: %w", err)
	}

	data, err := encodePNG(img)
	if err != nil {
		return "", err
	}

	if err := p.writer.Write(ctx, fullPath, bytes.NewReader(data), pngContentType); err != nil {
		return "", fmt.Errorf("画像の書き込みに失敗しました %s: %w", fullPath, err)
	}
	return fullPath, nil
}

func encodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("エンコードする画像がありません")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("PNGエンコードに失敗しました: %w", err)
	}
	return buf.Bytes(), nil
}
