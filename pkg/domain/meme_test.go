package domain

import (
	"encoding/json"
	"testing"
)

func TestCatalogResponse_JSON(t *testing.T) {
	t.Run("本物のエンドポイントの形式をシミュレートするのだ", func(t *testing.T) {
		inputJSON := `{
			"success": true,
			"data": {
				"memes": [
					{
						"id": "181913649",
						"name": "Drake Hotline Bling",
						"url": "https://i.imgflip.com/30b1gx.jpg",
						"width": 1200,
						"height": 1200,
						"box_count": 2
					}
				]
			}
		}`

		var resp CatalogResponse
		if err := json.Unmarshal([]byte(inputJSON), &resp); err != nil {
			t.Fatalf("パース失敗なのだ: %v", err)
		}

		if !resp.Success {
			t.Error("success フラグが読めていないのだ")
		}
		if len(resp.Data.Memes) != 1 {
			t.Fatalf("レコード数が違うのだ: %d", len(resp.Data.Memes))
		}

		m := resp.Data.Memes[0]
		if m.ID != "181913649" || m.Name != "Drake Hotline Bling" {
			t.Errorf("レコード内容が正しくパースされていないのだ: %+v", m)
		}
		if m.Width != 1200 || m.Height != 1200 || m.BoxCount != 2 {
			t.Errorf("数値フィールドが正しくパースされていないのだ: %+v", m)
		}
	})

	t.Run("空のカタログも問題なく読めるのだ", func(t *testing.T) {
		var resp CatalogResponse
		if err := json.Unmarshal([]byte(`{"success":true,"data":{"memes":[]}}`), &resp); err != nil {
			t.Fatalf("パース失敗なのだ: %v", err)
		}
		if len(resp.Data.Memes) != 0 {
			t.Errorf("空のはずが %d 件あるのだ", len(resp.Data.Memes))
		}
	})
}
