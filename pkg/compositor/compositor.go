// Package compositor は、ベース画像に対する2つの純粋な合成操作を提供します。
// Overlay はロゴ画像の貼り付け、Caption はテキストの描き込みで、どちらも
// 入力を変更せず、ベースと同じ寸法の新しいビットマップを返します。
package compositor

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

const (
	// CaptionMargin はキャプション矩形の上・左・右マージン（ピクセル）です。
	CaptionMargin = 10
	// CaptionHeight はキャプション矩形の高さ（ピクセル）です。
	CaptionHeight = 100
	// CaptionFontSize はキャプションのフォントサイズ（ポイント）です。
	CaptionFontSize = 24

	captionLineSpacing = 1.2
)

// Overlay はロゴをベースの幅・高さそれぞれ50%に拡縮（アスペクト比は維持
// しない）し、中央に貼り付けた新しい画像を返します。
// ベースまたはロゴが nil の場合は何もせずベースをそのまま返します。
func Overlay(base image.Image, logo image.Image) image.Image {
	if base == nil || logo == nil {
		return base
	}

	dst := cloneRGBA(base)
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()

	scaledW, scaledH := w/2, h/2
	if scaledW < 1 || scaledH < 1 {
		return dst
	}

	scaled := image.NewRGBA(image.Rect(0, 0, scaledW, scaledH))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), logo, logo.Bounds(), xdraw.Src, nil)

	// 中央配置: 左上は ((W-W/2)/2, (H-H/2)/2) になります
	x0 := (w - scaledW) / 2
	y0 := (h - scaledH) / 2
	target := image.Rect(x0, y0, x0+scaledW, y0+scaledH)
	draw.Draw(dst, target, scaled, image.Point{}, draw.Over)

	return dst
}

// Caption はテキストをベース上部の固定矩形（左右マージン10px・高さ100px）に
// 白・太字・24ptで中央揃えに描き込んだ新しい画像を返します。
// テキストは矩形幅で折り返し、はみ出す部分は矩形でクリップされます。
// 空文字列（空白のみを含む）は恒等変換で、ベースのコピーを返します。
// ベースが nil の場合は何もしません。
func Caption(base image.Image, text string) image.Image {
	if base == nil {
		return nil
	}

	dst := cloneRGBA(base)
	if strings.TrimSpace(text) == "" {
		return dst
	}

	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	boxW := w - 2*CaptionMargin
	boxH := CaptionHeight
	if boxW < 1 || h <= CaptionMargin {
		// キャプション矩形が成立しないほど小さい画像には描き込みません
		return dst
	}

	// テキストは矩形と同サイズのオフスクリーンに描画してから貼り付けます。
	// これにより、レイアウトエンジンの挙動によらずはみ出しが矩形で
	// 確実にクリップされます。
	box := image.NewRGBA(image.Rect(0, 0, boxW, boxH))
	dc := gg.NewContextForRGBA(box)
	dc.SetFontFace(captionFace())
	dc.SetColor(color.White)
	dc.DrawStringWrapped(
		text,
		float64(boxW)/2, float64(boxH)/2,
		0.5, 0.5,
		float64(boxW),
		captionLineSpacing,
		gg.AlignCenter,
	)

	target := image.Rect(CaptionMargin, CaptionMargin, CaptionMargin+boxW, CaptionMargin+boxH)
	draw.Draw(dst, target, box, image.Point{}, draw.Over)

	return dst
}

// cloneRGBA はソース画像を原点 (0,0) の *image.RGBA に複製します。
func cloneRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
