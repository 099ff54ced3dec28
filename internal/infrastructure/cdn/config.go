package cdn

type Config struct {
	// UploadEndpoint is the CDN's HTTP upload API. The CDN performs the
	// real chunking and retry; this client only streams one request.
	UploadEndpoint string `yaml:"upload_endpoint"`
	Timeout        int64  `yaml:"timeout_in_ms"`
}
