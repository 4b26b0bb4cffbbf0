// Package i18n translates user-facing error messages. English is the
// default; Bahasa Malaysia is served for Accept-Language: ms.
package i18n

import (
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	// DefaultLocale is used when the caller names no supported language.
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator maps message keys to text per locale. It is read-only after
// construction and safe for concurrent use.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a translator with the built-in messages.
func NewTranslator() *Translator {
	return &Translator{messages: getDefaultMessages()}
}

// GetTranslator returns the process-wide translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the text for key in locale, then in DefaultLocale, and
// finally the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supports reports whether locale has a message table.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// Locales lists the supported locales in sorted order.
func (t *Translator) Locales() []string {
	locales := make([]string, 0, len(t.messages))
	for l := range t.messages {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	return locales
}

// GetLocale picks the supported language with the highest q-value from the
// Accept-Language header of c, e.g. "en-US;q=0.5, ms-MY" selects "ms".
func GetLocale(c *gin.Context) string {
	return NegotiateLocale(c.GetHeader(AcceptLanguageHeader), GetTranslator())
}

// NegotiateLocale is GetLocale for a raw header value. A header that does
// not parse selects DefaultLocale.
func NegotiateLocale(header string, t *Translator) string {
	tags, weights, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return DefaultLocale
	}
	// tags arrive sorted by descending weight.
	for i, tag := range tags {
		if weights[i] <= 0 {
			break
		}
		base, _ := tag.Base()
		if lang := base.String(); t.Supports(lang) {
			return lang
		}
	}
	return DefaultLocale
}

// getDefaultMessages returns the built-in English and Malay messages.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			ErrKeyInvalidRequest:      "Invalid request",
			ErrKeyInvalidRequestBody:  "Invalid request body",
			ErrKeyInternalError:       "An unexpected error occurred",
			ErrKeyUnauthorized:        "Unauthorized",
			ErrKeyInvalidCredentials:  "Invalid email or password",
			ErrKeyAPIKeyRequired:      "API key is required",
			ErrKeyInvalidAPIKey:       "Invalid API key",
			ErrKeyNotFound:            "Not found",
			ErrKeyRateLimitExceeded:   "Too many requests, please try again later",
			ErrKeyConflict:            "Conflict",
			ErrKeyInvalidToken:        "Invalid or expired token",
			ErrKeyTokenRequired:       "Authentication token is required",
			ErrKeyTimeout:             "Request timed out",
			ErrKeyServiceUnavailable:  "Service temporarily unavailable",
			ErrKeyInvalidLotShape:     "Please enter valid Number of Boxes and Pieces per Box.",
			ErrKeyLotSizeTooSmall:     "Lot Size must be 2 or greater.",
			ErrKeyInvalidQualityLevel: "Please select Strict (only 1% defective allowed), Standard (up to 2.5% defective allowed), or Low (up to 4% defective allowed) AQL.",
			ErrKeyInvalidDefectCount:  "Please enter a valid number of defects (0 or more).",
			ErrKeyNoSamplingPlan:      "No sampling plan found for this lot size and AQL.",
			ErrKeyContainerTooSmall:   "Each box must hold at least 2 pieces to split the sample.",
			ErrKeyInspectionNotFound:  "Inspection report not found",
			ErrKeyPhotoNotFound:       "Photo not found",
			ErrKeyPhotoLimitReached:   "Maximum 10 photos reached.",
			ErrKeyPhotoNotImage:       "No valid images selected.",
			ErrKeyPhotoTooLarge:       "Photo is too large",
			ErrKeyPhotoMissing:        "No photo file in request",
			ErrKeyEmailAlreadyInUse:   "Email is already registered",
			ErrKeyInvalidEmail:        "A valid email is required",
			ErrKeyInvalidPassword:     "Password must be at least 6 characters",
		},
		"ms": {
			ErrKeyInvalidRequest:      "Permintaan tidak sah",
			ErrKeyInvalidRequestBody:  "Kandungan permintaan tidak sah",
			ErrKeyInternalError:       "Ralat tidak dijangka berlaku",
			ErrKeyUnauthorized:        "Tiada kebenaran",
			ErrKeyInvalidCredentials:  "E-mel atau kata laluan tidak sah",
			ErrKeyAPIKeyRequired:      "Kunci API diperlukan",
			ErrKeyInvalidAPIKey:       "Kunci API tidak sah",
			ErrKeyNotFound:            "Tidak dijumpai",
			ErrKeyRateLimitExceeded:   "Terlalu banyak permintaan, sila cuba sebentar lagi",
			ErrKeyConflict:            "Konflik",
			ErrKeyInvalidToken:        "Token tidak sah atau telah tamat tempoh",
			ErrKeyTokenRequired:       "Token pengesahan diperlukan",
			ErrKeyTimeout:             "Permintaan tamat masa",
			ErrKeyServiceUnavailable:  "Perkhidmatan tidak tersedia buat sementara",
			ErrKeyInvalidLotShape:     "Sila masukkan Bilangan Kotak dan Kepingan setiap Kotak yang sah.",
			ErrKeyLotSizeTooSmall:     "Saiz Lot mestilah 2 atau lebih.",
			ErrKeyInvalidQualityLevel: "Sila pilih AQL Ketat (1%), Standard (2.5%) atau Rendah (4%).",
			ErrKeyInvalidDefectCount:  "Sila masukkan bilangan kecacatan yang sah (0 atau lebih).",
			ErrKeyNoSamplingPlan:      "Tiada pelan persampelan untuk saiz lot dan AQL ini.",
			ErrKeyContainerTooSmall:   "Setiap kotak mesti mengandungi sekurang-kurangnya 2 kepingan.",
			ErrKeyInspectionNotFound:  "Laporan pemeriksaan tidak dijumpai",
			ErrKeyPhotoNotFound:       "Foto tidak dijumpai",
			ErrKeyPhotoLimitReached:   "Had maksimum 10 foto telah dicapai.",
			ErrKeyPhotoNotImage:       "Tiada imej yang sah dipilih.",
			ErrKeyPhotoTooLarge:       "Foto terlalu besar",
			ErrKeyPhotoMissing:        "Tiada fail foto dalam permintaan",
			ErrKeyEmailAlreadyInUse:   "E-mel telah didaftarkan",
			ErrKeyInvalidEmail:        "E-mel yang sah diperlukan",
			ErrKeyInvalidPassword:     "Kata laluan mesti sekurang-kurangnya 6 aksara",
		},
	}
}
