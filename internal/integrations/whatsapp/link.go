package whatsapp

import (
	"net/url"
	"strings"
)

const baseURL = "https://wa.me/"

// DigitsOnly strips every non-numeric character from a contact
// identifier, leaving the bare phone number wa.me expects
func DigitsOnly(contact string) string {
	var b strings.Builder
	b.Grow(len(contact))
	for _, r := range contact {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildLink derives the click-to-chat deep link for a notification:
// https://wa.me/<digitsOnly(contact)>?text=<urlEncoded(message)>
func BuildLink(contact, message string) string {
	return baseURL + DigitsOnly(contact) + "?text=" + url.QueryEscape(message)
}
