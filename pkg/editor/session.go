// Package editor は、選択した1枚のテンプレートに対する編集セッションを
// 管理します。セッションは画面1枚分の一時的な状態で、永続化されません。
package editor

import (
	"fmt"
	"image"

	"github.com/shouni/go-meme-kit/pkg/compositor"
	"github.com/shouni/go-meme-kit/pkg/domain"
)

// Session は1枚のテンプレートに対する編集状態を保持する構造体です。
// 合成結果は常に「ベース画像に対して、操作を呼び出し順に適用した結果」に
// なります。操作の取り消しやレイヤー管理はありません（last-write-wins）。
type Session struct {
	record     domain.MemeRecord
	base       image.Image
	composited image.Image
	action     Action
}

// NewSession は編集セッションを開始します。base はダウンロード済みの
// フル解像度画像で、nil のまま開始することもできます（その場合、合成
// 操作はすべて no-op になります）。
func NewSession(record domain.MemeRecord, base image.Image) *Session {
	return &Session{
		record:     record,
		base:       base,
		composited: base,
		action:     ActionNone,
	}
}

// Record はセッション対象のテンプレート情報を返します。
func (s *Session) Record() domain.MemeRecord {
	return s.record
}

// Current は現在の合成結果を返します。一度も操作していなければベース
// 画像そのものです。
func (s *Session) Current() image.Image {
	return s.composited
}

// Selected は現在選択中の操作を返します。
func (s *Session) Selected() Action {
	return s.action
}

// Select は操作を選択するのだ。別の操作が選択中の場合は拒否するのだ
// （シートは同時に1枚しか開けないのだ）。
func (s *Session) Select(a Action) error {
	if a == ActionNone {
		s.action = ActionNone
		return nil
	}
	if s.action != ActionNone {
		return fmt.Errorf("操作 %s が進行中のため %s は選択できません", s.action, a)
	}
	s.action = a
	return nil
}

// Close は選択中の操作を閉じて ActionNone に戻すのだ。
func (s *Session) Close() {
	s.action = ActionNone
}

// ApplyLogo はロゴを現在の合成結果に重ねて、結果を新しい合成結果として
// 差し替えます。ベース画像が無い場合や logo が nil の場合は何もしません
// （ピッカーのキャンセルに相当します）。
func (s *Session) ApplyLogo(logo image.Image) {
	if s.composited == nil || logo == nil {
		return
	}
	s.composited = compositor.Overlay(s.composited, logo)
}

// ApplyCaption はキャプションを現在の合成結果に描き込んで、結果を新しい
// 合成結果として差し替えます。ベース画像が無い場合は何もしません。
func (s *Session) ApplyCaption(text string) {
	if s.composited == nil {
		return
	}
	s.composited = compositor.Caption(s.composited, text)
}
