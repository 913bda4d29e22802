package domain

// MemeRecord はカタログAPIから返される1枚のミームテンプレートの情報です。
// デコード後は不変で、ID が同一性のキーになります。
type MemeRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	BoxCount int    `json:"box_count"`
}

// Memes はカタログに含まれるテンプレートのリストです。
type Memes []MemeRecord

// CatalogResponse はカタログAPIのレスポンス全体の構造です。
// 実際のエンドポイントは {"success": true, "data": {"memes": [...]}} の
// 形でリストを包んで返します。
type CatalogResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Memes Memes `json:"memes"`
	} `json:"data"`
}
