package urlfilter

import (
	"net/url"
	"path"
	"strings"
)

// ScoreWeights defines scoring weights for various URL characteristics.
type ScoreWeights struct {
	SensitiveFile int // .env, config.php, credentials.json
	Repository    int // .git, .svn expuestos
	BackupFile    int // .bak, .old, .sql
	AdminPath     int
	AuthPath      int
	APIEndpoint   int
	UploadPath    int
	HasParameters int

	StaticAsset    int
	CommonAssetDir int
}

// DefaultScoreWeights returns balanced default weights.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		SensitiveFile: 1000,
		Repository:    800,
		BackupFile:    600,
		AdminPath:     400,
		AuthPath:      350,
		APIEndpoint:   300,
		UploadPath:    250,
		HasParameters: 100,

		StaticAsset:    -200,
		CommonAssetDir: -100,
	}
}

// ScoredURL represents a URL with its priority score.
type ScoredURL struct {
	URL     string
	Score   int
	Reasons []string
}

var (
	sensitiveFiles = []string{".env", "config.php", "wp-config.php", "credentials", "secrets", ".htpasswd", "id_rsa", "web.config", "settings.py"}
	repoMarkers    = []string{"/.git", "/.svn", "/.hg"}
	backupExts     = []string{".bak", ".old", ".backup", ".sql", ".dump", ".swp", ".tar.gz", ".zip"}
	adminMarkers   = []string{"/admin", "/dashboard", "/console", "/manage", "/phpmyadmin", "/adminer"}
	authMarkers    = []string{"/login", "/signin", "/auth", "/oauth", "/sso", "/register", "/reset", "/token"}
	apiMarkers     = []string{"/api/", "/rest/", "/graphql", "/v1/", "/v2/", "/swagger", "/openapi"}
	uploadMarkers  = []string{"/upload", "/files/", "/attachments"}
	assetDirs      = []string{"/assets/", "/static/", "/images/", "/img/", "/fonts/", "/css/"}
	staticExts     = map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".svg": true, ".ico": true, ".webp": true,
		".css": true, ".woff": true, ".woff2": true, ".ttf": true, ".eot": true, ".mp4": true, ".mp3": true,
	}
)

// Score calculates the priority score of rawURL with weights w.
func Score(rawURL string, w ScoreWeights) ScoredURL {
	scored := ScoredURL{URL: rawURL}

	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		scored.Score = -1000
		scored.Reasons = append(scored.Reasons, "invalid_url")
		return scored
	}

	p := strings.ToLower(parsed.Path)
	add := func(ok bool, weight int, reason string) {
		if ok {
			scored.Score += weight
			scored.Reasons = append(scored.Reasons, reason)
		}
	}

	add(containsAny(path.Base(p), sensitiveFiles), w.SensitiveFile, "sensitive_file")
	add(containsAny(p, repoMarkers), w.Repository, "repository")
	add(hasSuffixAny(p, backupExts), w.BackupFile, "backup_file")
	add(containsAny(p, adminMarkers), w.AdminPath, "admin_path")
	add(containsAny(p, authMarkers), w.AuthPath, "auth_path")
	add(containsAny(p, apiMarkers), w.APIEndpoint, "api_endpoint")
	add(containsAny(p, uploadMarkers), w.UploadPath, "upload_path")
	add(parsed.RawQuery != "", w.HasParameters, "has_parameters")
	add(staticExts[path.Ext(p)], w.StaticAsset, "static_asset")
	add(containsAny(p, assetDirs), w.CommonAssetDir, "asset_dir")

	return scored
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasSuffixAny(s string, suffixes []string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
