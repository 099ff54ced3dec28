package entity

// UploadAuthorization is the ephemeral signed credential handed to the
// client for one direct-to-CDN upload. It is never persisted; the CDN
// rejects it after Expire or first use.
type UploadAuthorization struct {
	Signature string `json:"signature"`
	Expire    int64  `json:"expire"`
	Token     string `json:"token"`
	PublicKey string `json:"-"`
}
