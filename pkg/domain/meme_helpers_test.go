package domain

import (
	"sort"
	"testing"
)

func sampleMemes(n int) Memes {
	ms := make(Memes, 0, n)
	for i := 0; i < n; i++ {
		ms = append(ms, MemeRecord{
			ID:     string(rune('a' + i)),
			Name:   "meme",
			Width:  100,
			Height: 100,
		})
	}
	return ms
}

func TestMemes_Shuffled(t *testing.T) {
	t.Run("シャッフル結果は元リストの順列であること", func(t *testing.T) {
		original := sampleMemes(20)
		shuffled := original.Shuffled()

		if len(shuffled) != len(original) {
			t.Fatalf("要素数が変わりました。期待: %d, 実際: %d", len(original), len(shuffled))
		}

		// 多重集合として一致することを確認します
		wantIDs := append([]string(nil), original.IDs()...)
		gotIDs := append([]string(nil), shuffled.IDs()...)
		sort.Strings(wantIDs)
		sort.Strings(gotIDs)
		for i := range wantIDs {
			if wantIDs[i] != gotIDs[i] {
				t.Fatalf("ID の多重集合が一致しません。期待: %v, 実際: %v", wantIDs, gotIDs)
			}
		}
	})

	t.Run("元のスライスを破壊しないこと", func(t *testing.T) {
		original := sampleMemes(10)
		before := append([]string(nil), original.IDs()...)
		original.Shuffled()
		after := original.IDs()
		for i := range before {
			if before[i] != after[i] {
				t.Fatal("Shuffled が元のスライスを書き換えました")
			}
		}
	})
}

func TestMemes_FindByID(t *testing.T) {
	ms := Memes{
		{ID: "1", Name: "one"},
		{ID: "2", Name: "two"},
	}

	if m, ok := ms.FindByID("2"); !ok || m.Name != "two" {
		t.Errorf("ID=2 が見つかりません: %+v, %v", m, ok)
	}
	if _, ok := ms.FindByID("999"); ok {
		t.Error("存在しない ID でレコードが返りました")
	}
}

func TestMemes_Limit(t *testing.T) {
	ms := sampleMemes(5)

	if got := ms.Limit(3); len(got) != 3 {
		t.Errorf("期待値 3, 実際の値 %d", len(got))
	}
	if got := ms.Limit(0); len(got) != 5 {
		t.Errorf("0 はリスト全体を返すはずです。実際の値 %d", len(got))
	}
	if got := ms.Limit(10); len(got) != 5 {
		t.Errorf("リスト長超過はリスト全体を返すはずです。実際の値 %d", len(got))
	}
}
