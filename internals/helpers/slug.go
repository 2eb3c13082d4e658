// file: internals/helpers/slug.go
package helper

import "strings"

// Batas panjang slug; selaras dengan nama file turunan upload.
const SlugMaxLen = 50

// Slugify menurunkan nama tampilan jadi potongan nama file yang aman.
// Urutan replace harus persis seperti ini supaya nama file lama tetap
// cocok: lowercase, spasi→_, &→and, -→_, buang kurung, /→_.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "&", "and")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "(", "")
	s = strings.ReplaceAll(s, ")", "")
	s = strings.ReplaceAll(s, "/", "_")
	if len(s) > SlugMaxLen {
		s = s[:SlugMaxLen]
	}
	return s
}

// SanitizeFilename membersihkan nama file hasil turunan sebelum dipakai
// di filesystem: tanpa path separator, tanpa karakter aneh.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "._")
}
