// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/loginエンドポイントのリクエストボディを表します。
// 必須フィールドと携帯番号形式のバリデーションを含みます。
type LoginReq struct {
	Mobile   string `json:"mobile" binding:"required,numeric,min=10,max=15"`
	Password string `json:"password" binding:"required"`
}
