package compositor

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

var (
	captionFaceOnce sync.Once
	cachedFace      font.Face
)

// captionFace はキャプション描画用の太字フェイスを返すのだ。
// フォントは Go Bold を埋め込みで使うため、実行環境のフォント設定には
// 依存しないのだ。パースは初回の1度だけ行うのだ。
func captionFace() font.Face {
	captionFaceOnce.Do(func() {
		parsed, err := opentype.Parse(gobold.TTF)
		if err != nil {
			// 埋め込みフォントのパース失敗はビルド成果物の破損を意味するのだ
			panic(fmt.Sprintf("compositor: 埋め込みフォントのパースに失敗したのだ: %v", err))
		}

		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    CaptionFontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			panic(fmt.Sprintf("compositor: フォントフェイスの生成に失敗したのだ: %v", err))
		}
		cachedFace = face
	})
	return cachedFace
}
