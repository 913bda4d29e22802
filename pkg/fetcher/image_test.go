package fetcher

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// encodePNG はテスト用の単色PNGバイト列を生成するのだ。
func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("PNGエンコードに失敗したのだ: %v", err)
	}
	return buf.Bytes()
}

func TestImageFetcher_Fetch(t *testing.T) {
	t.Run("画像を取得してデコードできるのだ", func(t *testing.T) {
		data := encodePNG(t, 40, 30, color.RGBA{R: 255, A: 255})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			w.Write(data)
		}))
		defer srv.Close()

		f, err := NewImageFetcher(NewHTTPClient(5*time.Second), nil)
		if err != nil {
			t.Fatalf("初期化に失敗したのだ: %v", err)
		}

		img, err := f.Fetch(context.Background(), srv.URL+"/meme.png")
		if err != nil {
			t.Fatalf("取得に失敗したのだ: %v", err)
		}
		if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
			t.Errorf("サイズが一致しないのだ: %v", b)
		}
	})

	t.Run("2回目の取得はキャッシュから返るのだ", func(t *testing.T) {
		var hits atomic.Int64
		data := encodePNG(t, 10, 10, color.White)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.Write(data)
		}))
		defer srv.Close()

		f, _ := NewImageFetcher(NewHTTPClient(5*time.Second), nil)
		url := srv.URL + "/cached.png"

		if _, err := f.FetchBytes(context.Background(), url); err != nil {
			t.Fatalf("1回目の取得に失敗したのだ: %v", err)
		}
		if _, err := f.FetchBytes(context.Background(), url); err != nil {
			t.Fatalf("2回目の取得に失敗したのだ: %v", err)
		}

		if hits.Load() != 1 {
			t.Errorf("サーバーへのアクセスは1回のはずなのだ。実際: %d", hits.Load())
		}
	})

	t.Run("404はリトライせず即座に失敗するのだ", func(t *testing.T) {
		var hits atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			http.NotFound(w, r)
		}))
		defer srv.Close()

		f, _ := NewImageFetcher(NewHTTPClient(5*time.Second), nil)
		if _, err := f.FetchBytes(context.Background(), srv.URL+"/missing.png"); err == nil {
			t.Error("404 でエラーが返らなかったのだ")
		}
		if hits.Load() != 1 {
			t.Errorf("クライアントエラーはリトライしないはずなのだ。実際: %d 回", hits.Load())
		}
	})

	t.Run("一時的な5xxはリトライして成功するのだ", func(t *testing.T) {
		var hits atomic.Int64
		data := encodePNG(t, 10, 10, color.Black)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hits.Add(1) == 1 {
				http.Error(w, "flaky", http.StatusBadGateway)
				return
			}
			w.Write(data)
		}))
		defer srv.Close()

		f, _ := NewImageFetcher(NewHTTPClient(5*time.Second), nil)
		got, err := f.FetchBytes(context.Background(), srv.URL+"/flaky.png")
		if err != nil {
			t.Fatalf("リトライ後も失敗したのだ: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Error("取得したバイト列が一致しないのだ")
		}
		if hits.Load() < 2 {
			t.Errorf("リトライが行われていないのだ。実際: %d 回", hits.Load())
		}
	})

	t.Run("画像でないボディはデコードエラーになるのだ", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("this is not an image"))
		}))
		defer srv.Close()

		f, _ := NewImageFetcher(NewHTTPClient(5*time.Second), nil)
		if _, err := f.Fetch(context.Background(), srv.URL+"/text.png"); err == nil {
			t.Error("非画像データでデコードエラーが返らなかったのだ")
		}
	})
}
