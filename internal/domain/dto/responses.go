package dto

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type AuthParams struct {
	Signature string `json:"signature"`
	Expire    int64  `json:"expire"`
	Token     string `json:"token"`
}

// UploadAuthResponse matches the CDN client SDK's expected shape: the
// signed parameters plus the disclosable public key.
type UploadAuthResponse struct {
	AuthParams AuthParams `json:"authParams"`
	PublicKey  string     `json:"publicKey"`
}

type AnalyzeResponse struct {
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}
