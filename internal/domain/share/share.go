// Package share builds pre-filled WhatsApp share links.
package share

import (
	"fmt"
	"strings"
)

const whatsAppBase = "https://wa.me/?text="

// WhatsAppURL returns the share link for message and pageURL. Both parts are
// component-encoded and joined by a literal space, which is how the messaging
// service expects the text parameter.
func WhatsAppURL(message, pageURL string) string {
	return whatsAppBase + EncodeURIComponent(message) + " " + EncodeURIComponent(pageURL)
}

// TestimonialMessage is the text shared for a testimonial.
func TestimonialMessage(brand, comment, name string) string {
	return fmt.Sprintf("Découvrez ce témoignage sur %s : \"%s\" - %s", brand, comment, name)
}

// NewsMessage is the text shared for a news item.
func NewsMessage(brand, title string) string {
	return fmt.Sprintf("Découvrez cette actualité d'%s : %s", brand, title)
}

// SiteMessage is the text shared for the whole site.
func SiteMessage(name, subtitle, slogan string) string {
	return fmt.Sprintf("Découvrez %s – %s, %s ! 🎉", name, subtitle, slogan)
}

// EncodeURIComponent percent-encodes s as UTF-8, leaving only
// A-Z a-z 0-9 - _ . ! ~ * ' ( ) unescaped.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
