package publisher

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"testing"
)

// memoryWriter は書き込みをメモリに保持するテスト用ライターです。
type memoryWriter struct {
	files map[string][]byte
	types map[string]string
}

func newMemoryWriter() *memoryWriter {
	return &memoryWriter{
		files: make(map[string][]byte),
		types: make(map[string]string),
	}
}

func (w *memoryWriter) Write(_ context.Context, path string, data io.Reader, contentType string) error {
	b, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	w.files[path] = b
	w.types[path] = contentType
	return nil
}

func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 64, 48))
}

func TestMemePublisher_SaveToLibrary(t *testing.T) {
	t.Run("PNGとしてライブラリ配下に保存されること", func(t *testing.T) {
		w := newMemoryWriter()
		p, err := NewMemePublisher(w, "library", "shared")
		if err != nil {
			t.Fatalf("初期化に失敗しました: %v", err)
		}

		path, err := p.SaveToLibrary(context.Background(), testImage(), "meme_1.png")
		if err != nil {
			t.Fatalf("保存に失敗しました: %v", err)
		}

		data, ok := w.files[path]
		if !ok {
			t.Fatalf("保存先 %s にデータがありません", path)
		}
		if w.types[path] != "image/png" {
			t.Errorf("Content-Type が一致しません: %s", w.types[path])
		}

		decoded, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("保存されたデータがPNGではありません: %v", err)
		}
		if b := decoded.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
			t.Errorf("保存された画像の寸法が一致しません: %v", b)
		}
	})

	t.Run("nil 画像はエラーになること", func(t *testing.T) {
		p, _ := NewMemePublisher(newMemoryWriter(), "library", "")
		if _, err := p.SaveToLibrary(context.Background(), nil, "x.png"); err == nil {
			t.Error("nil 画像でエラーが返りませんでした")
		}
	})
}

func TestMemePublisher_Share(t *testing.T) {
	t.Run("共有先へ書き出されること", func(t *testing.T) {
		w := newMemoryWriter()
		p, _ := NewMemePublisher(w, "library", "shared")

		path, err := p.Share(context.Background(), testImage(), "meme_1.png")
		if err != nil {
			t.Fatalf("共有に失敗しました: %v", err)
		}
		if _, ok := w.files[path]; !ok {
			t.Fatalf("共有先 %s にデータがありません", path)
		}
	})

	t.Run("共有先未設定はエラーになること", func(t *testing.T) {
		p, _ := NewMemePublisher(newMemoryWriter(), "library", "")
		if _, err := p.Share(context.Background(), testImage(), "x.png"); err == nil {
			t.Error("共有先未設定でエラーが返りませんでした")
		}
	})
}

func TestMemePublisher_SaveSheet(t *testing.T) {
	w := newMemoryWriter()
	p, _ := NewMemePublisher(w, "library", "")

	if err := p.SaveSheet(context.Background(), testImage(), "output/sheet.png"); err != nil {
		t.Fatalf("シートの保存に失敗しました: %v", err)
	}
	if _, ok := w.files["output/sheet.png"]; !ok {
		t.Error("指定したパスにシートが保存されていません")
	}
}

func TestNewMemePublisher(t *testing.T) {
	if _, err := NewMemePublisher(nil, "library", ""); err == nil {
		t.Error("nil ライターでエラーが返りませんでした")
	}
}
