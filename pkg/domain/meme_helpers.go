package domain

import "math/rand/v2"

// Shuffled はリストを一様にシャッフルした新しいスライスを返します。
// 元のスライスは変更しません。
func (ms Memes) Shuffled() Memes {
	shuffled := make(Memes, len(ms))
	copy(shuffled, ms)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// FindByID は ID が一致するレコードを検索します。
func (ms Memes) FindByID(id string) (MemeRecord, bool) {
	for _, m := range ms {
		if m.ID == id {
			return m, true
		}
	}
	return MemeRecord{}, false
}

// Limit は先頭から最大 n 件のレコードを返します。n が 0 以下、もしくは
// リスト長以上の場合はリスト全体をそのまま返します。
func (ms Memes) Limit(n int) Memes {
	if n <= 0 || n >= len(ms) {
		return ms
	}
	return ms[:n]
}

// IDs は全レコードの ID を出現順に抽出します。
func (ms Memes) IDs() []string {
	ids := make([]string, 0, len(ms))
	for _, m := range ms {
		ids = append(ids, m.ID)
	}
	return ids
}
