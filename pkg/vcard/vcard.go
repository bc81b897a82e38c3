// Package vcard builds VERSION:3.0 vCard payloads for QR encoding.
// Only contact fields are supported, no addresses.
package vcard

import "strings"

// Card holds the contact fields. Empty optional fields are omitted
// from the output.
type Card struct {
	FirstName string
	LastName  string
	Org       string
	Phone     string
	Email     string
	URL       string
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\n", `\n`,
)

// escape protects the vCard structural characters and trims the
// surrounding whitespace.
func escape(val string) string {
	return strings.TrimSpace(escaper.Replace(val))
}

// Build serializes the card with CRLF line endings per RFC 2426.
func (c Card) Build() string {
	first := escape(c.FirstName)
	last := escape(c.LastName)

	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + last + ";" + first + ";;;",
		"FN:" + strings.TrimSpace(first+" "+last),
	}
	if org := escape(c.Org); org != "" {
		lines = append(lines, "ORG:"+org)
	}
	if phone := escape(c.Phone); phone != "" {
		lines = append(lines, "TEL;TYPE=WORK,VOICE:"+phone)
	}
	if email := escape(c.Email); email != "" {
		lines = append(lines, "EMAIL;TYPE=INTERNET,WORK:"+email)
	}
	if url := escape(c.URL); url != "" {
		lines = append(lines, "URL:"+url)
	}
	lines = append(lines, "END:VCARD")

	return strings.Join(lines, "\r\n")
}
