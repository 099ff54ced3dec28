package usecase

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // the CDN's signing scheme is HMAC-SHA1
	"encoding/hex"
	"strconv"
	"time"

	"github.com/google/uuid"

	"mediavault/internal/domain/domainerr"
	"mediavault/internal/domain/entity"
)

// MaxTokenTTL is the CDN's hard ceiling on authorization lifetime.
const MaxTokenTTL = time.Hour

const DefaultTokenTTL = 30 * time.Minute

type IssuerConfig struct {
	PrivateKey    string `yaml:"-"`
	PublicKey     string `yaml:"-"`
	TokenTTLInSec int64  `yaml:"token_ttl_in_sec"`
}

// Issuer mints short-lived signed upload authorizations for the CDN's
// direct-upload API. It runs server-side only: the private key never
// leaves this process, only the signature does.
type Issuer struct {
	privateKey string
	publicKey  string
	ttl        time.Duration
}

func NewIssuer(cfg IssuerConfig) *Issuer {
	ttl := time.Duration(cfg.TokenTTLInSec) * time.Second
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	if ttl > MaxTokenTTL {
		ttl = MaxTokenTTL
	}

	return &Issuer{
		privateKey: cfg.PrivateKey,
		publicKey:  cfg.PublicKey,
		ttl:        ttl,
	}
}

// Issue mints a fresh single-use authorization: a random token, an
// expiry, and hex(HMAC-SHA1(privateKey, token||expire)) over both.
// Every call produces an independent bundle; nothing is cached.
func (i *Issuer) Issue() (entity.UploadAuthorization, error) {
	if i.privateKey == "" {
		return entity.UploadAuthorization{},
			domainerr.New(domainerr.KindMisconfigured, "upload private key is not configured")
	}
	if i.publicKey == "" {
		return entity.UploadAuthorization{},
			domainerr.New(domainerr.KindMisconfigured, "upload public key is not configured")
	}

	token := uuid.NewString()
	expire := time.Now().Add(i.ttl).Unix()

	return entity.UploadAuthorization{
		Signature: Sign(i.privateKey, token, expire),
		Expire:    expire,
		Token:     token,
		PublicKey: i.publicKey,
	}, nil
}

// Sign computes the CDN's request signature for a token/expire pair.
func Sign(privateKey, token string, expire int64) string {
	mac := hmac.New(sha1.New, []byte(privateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))

	return hex.EncodeToString(mac.Sum(nil))
}
