// Package entity はanalysisフィーチャーのドメインモデルを定義します。
package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// BusinessProfile は分析対象となる事業の入力フォームを表します。
// リクエスト単位でのみ存在し、永続化はしません。
type BusinessProfile struct {
	BusinessName        string       `json:"businessName"`
	Industry            string       `json:"industry"`
	BusinessDescription string       `json:"businessDescription"`
	BusinessAge         FlexibleText `json:"businessAge"`
	TeamSize            FlexibleText `json:"teamSize"`
}

// FlexibleText は文字列・数値のどちらで送られても文字列として保持するJSON値です。
// フロントエンドは "1-3 years" のような選択肢を送りますが、APIクライアントは 3 のような数値を送ることがあります。
type FlexibleText string

// UnmarshalJSON は文字列・数値・真偽値・nullを受け付けます。
func (f *FlexibleText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexibleText(s)
		return nil
	case '{', '[':
		return fmt.Errorf("flexible text: objects and arrays are not supported")
	default:
		// 数値・真偽値はそのままのリテラル表記を使う
		var n json.Number
		if err := json.Unmarshal(data, &n); err == nil {
			*f = FlexibleText(n.String())
			return nil
		}
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("flexible text: %w", err)
		}
		*f = FlexibleText(fmt.Sprintf("%t", b))
		return nil
	}
}

// String は保持している文字列を返します。
func (f FlexibleText) String() string {
	return string(f)
}
