package editor

// Action は編集画面で選択できる操作の種別です。
// 一度に選択できる操作は1つだけで、閉じると ActionNone に戻ります。
type Action int

const (
	// ActionNone は何も選択されていない状態です。
	ActionNone Action = iota
	// ActionAddLogo はロゴ画像の合成を選択した状態です。
	ActionAddLogo
	// ActionAddText はキャプションの描き込みを選択した状態です。
	ActionAddText
	// ActionSave は合成結果のライブラリ保存を選択した状態です。
	ActionSave
	// ActionShare は合成結果の共有先への書き出しを選択した状態です。
	ActionShare
)

// String は Action の表示名を返します。
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionAddLogo:
		return "add_logo"
	case ActionAddText:
		return "add_text"
	case ActionSave:
		return "save"
	case ActionShare:
		return "share"
	default:
		return "unknown"
	}
}
