// Package fingerprint produces deterministic content digests and cache keys.
//
// Every hash is a lowercase hex-encoded SHA-256 over a canonical byte form,
// so identical inputs produce identical digests across processes and
// platforms. Metadata maps are serialized with recursively sorted keys;
// values must be plain strings, numbers, booleans, or nestings thereof;
// anything else is a caller error, not a defended-against input.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"sort"
	"strings"

	"github.com/studyowl/canon/internal/models"
	"github.com/studyowl/canon/internal/normalize"
)

const (
	// metaSeparator joins normalized text and serialized metadata.
	metaSeparator = "|||"
	// optionSeparator joins question text and sorted option bodies.
	optionSeparator = "###"
	// ShortLength is the prefix length of Short digests, for UI display only.
	ShortLength = 12
)

// Prompt hashes normalized text plus optional metadata into a 64-character
// lowercase hex digest. Metadata key insertion order never affects the
// result.
func Prompt(text string, meta map[string]interface{}) string {
	payload := normalize.Text(text) + metaSeparator + canonicalJSON(meta)
	return digest(payload)
}

// Short returns the first 12 hex characters of the prompt hash. Display
// only; offers no uniqueness guarantee.
func Short(text string) string {
	return Prompt(text, nil)[:ShortLength]
}

// Content hashes the aggressively normalized form of text (lower-cased,
// punctuation stripped), so near-duplicates differing only in case,
// punctuation, or formatting collide.
func Content(text string) string {
	return digest(normalize.Content(text) + metaSeparator)
}

// Question hashes question text together with its option bodies. Bodies are
// normalized and sorted lexicographically first, so two renderings of the
// same question with options in different order hash identically.
func Question(questionText string, opts models.OptionSet) string {
	payload := normalize.Text(questionText)
	if len(opts) > 0 {
		bodies := make([]string, len(opts))
		for i, opt := range opts {
			bodies[i] = normalize.Text(opt.Normalized)
		}
		sort.Strings(bodies)
		payload += optionSeparator + strings.Join(bodies, optionSeparator)
	}
	return digest(payload)
}

var keySanitizeRe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Key joins a prefix and sanitized parts with ":". Empty parts are dropped;
// non-alphanumeric runs inside a part become single underscores. Not itself
// cryptographic.
func Key(prefix string, parts ...string) string {
	segments := []string{prefix}
	for _, part := range parts {
		clean := strings.Trim(keySanitizeRe.ReplaceAllString(part, "_"), "_")
		if clean == "" {
			continue
		}
		segments = append(segments, strings.ToLower(clean))
	}
	return strings.Join(segments, ":")
}

// Metadata token defaults used when a field is absent.
const (
	defaultSubject    = "general"
	defaultGrade      = "any"
	defaultSourceLang = "en"
	defaultTargetLang = "en"
)

// AnswerKey composes the question hash with metadata tokens into the lookup
// key for the external answer cache.
func AnswerKey(questionText string, opts models.OptionSet, meta *models.Metadata) string {
	subject, grade, source, target := defaultSubject, defaultGrade, defaultSourceLang, defaultTargetLang
	if meta != nil {
		if meta.Subject != "" {
			subject = meta.Subject
		}
		if meta.Grade != "" {
			grade = meta.Grade
		}
		if meta.Language != "" {
			source = meta.Language
		}
		if meta.TargetLanguage != "" {
			target = meta.TargetLanguage
		}
	}
	return Key("answer", Question(questionText, opts), subject, grade, source, target)
}

const (
	sentinelNoIP        = "noip"
	sentinelNoUserAgent = "noua"
	maxUserAgentLength  = 64
)

// User hashes identity components into an opaque fingerprint the external
// rate-limiter can compare for equality without storing raw IP or UA.
func User(userID, ip, userAgent string) string {
	if ip == "" {
		ip = sentinelNoIP
	}
	if userAgent == "" {
		userAgent = sentinelNoUserAgent
	}
	if len(userAgent) > maxUserAgentLength {
		userAgent = userAgent[:maxUserAgentLength]
	}
	return digest(userID + "|" + ip + "|" + userAgent)
}

var hashRe = regexp.MustCompile(`^[a-f0-9]{64}$`)

// IsValid reports whether hash is structurally a lowercase hex SHA-256
// digest. Used defensively on hashes read back from external stores.
func IsValid(hash string) bool {
	return hashRe.MatchString(hash)
}

func digest(payload string) string {
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
