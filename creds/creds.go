package creds

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ServiceAccount holds the parsed service-account credential used to derive
// the token-signing secret and the default media bucket name.
type ServiceAccount struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	ClientID     string `json:"client_id"`
	TokenURI     string `json:"token_uri"`
}

const (
	envJSON   = "SERVICE_ACCOUNT_JSON"
	envPath   = "SERVICE_ACCOUNT_PATH"
	localFile = "./serviceAccountKey.json"
)

var ErrNotConfigured = errors.New(
	"service account credentials not provided. Either:\n" +
		" - set SERVICE_ACCOUNT_JSON (inline JSON, base64 JSON, or a file path)\n" +
		" - set SERVICE_ACCOUNT_PATH\n" +
		" - add serviceAccountKey.json in project root")

// Resolve locates and parses the service-account credential. Resolution
// order, first success wins: SERVICE_ACCOUNT_JSON as inline JSON, then as
// base64 JSON, then as a file path; SERVICE_ACCOUNT_PATH as a file path;
// finally ./serviceAccountKey.json. The caller treats an error as fatal.
func Resolve() (*ServiceAccount, error) {
	var sa *ServiceAccount

	if v := os.Getenv(envJSON); v != "" {
		sa = parse([]byte(v))
		if sa == nil {
			if decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(v)); err == nil {
				sa = parse(decoded)
			}
		}
		if sa == nil {
			if raw, err := os.ReadFile(v); err == nil {
				sa = parse(raw)
			}
		}
	}

	if sa == nil {
		if p := os.Getenv(envPath); p != "" {
			if raw, err := os.ReadFile(p); err == nil {
				sa = parse(raw)
			}
		}
	}

	if sa == nil {
		if raw, err := os.ReadFile(localFile); err == nil {
			sa = parse(raw)
		}
	}

	if sa == nil {
		return nil, ErrNotConfigured
	}

	// Env-provided keys commonly arrive with escaped newlines.
	sa.PrivateKey = strings.ReplaceAll(sa.PrivateKey, `\n`, "\n")

	if sa.ProjectID == "" {
		sa.ProjectID = os.Getenv("PROJECT_ID")
	}
	return sa, nil
}

func parse(raw []byte) *ServiceAccount {
	var sa ServiceAccount
	if err := json.Unmarshal(raw, &sa); err != nil {
		return nil
	}
	if sa.PrivateKey == "" && sa.ProjectID == "" {
		return nil
	}
	return &sa
}

// SigningSecret returns the HMAC secret used to verify bearer tokens: the
// JWT_SECRET env override when present, else the account's private key.
func (sa *ServiceAccount) SigningSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte(sa.PrivateKey)
}

// Bucket returns the media bucket name: the S3_BUCKET env override when
// present, else "<project_id>-media".
func (sa *ServiceAccount) Bucket() string {
	if b := os.Getenv("S3_BUCKET"); b != "" {
		return b
	}
	return fmt.Sprintf("%s-media", sa.ProjectID)
}
