package card

import "strings"

type ContactKind string

const (
	ContactPhone   ContactKind = "phone"
	ContactEmail   ContactKind = "email"
	ContactWebsite ContactKind = "website"
	ContactAddress ContactKind = "address"
)

// ContactLine is one present contact field, ready to be paired with an icon.
type ContactLine struct {
	Kind ContactKind
	Text string
}

// ContactLines returns the non-empty contact fields in card order:
// phone, email, website, address.
func ContactLines(d AgentCardData) []ContactLine {
	fields := []ContactLine{
		{ContactPhone, d.Phone},
		{ContactEmail, d.Email},
		{ContactWebsite, d.Website},
		{ContactAddress, d.Address},
	}
	out := make([]ContactLine, 0, len(fields))
	for _, f := range fields {
		t := strings.TrimSpace(f.Text)
		if t == "" {
			continue
		}
		out = append(out, ContactLine{Kind: f.Kind, Text: t})
	}
	return out
}

// DisplayWebsite strips the scheme and trailing slash for printing.
func DisplayWebsite(u string) string {
	u = strings.TrimSpace(u)
	for _, p := range []string{"https://", "http://"} {
		if len(u) >= len(p) && strings.EqualFold(u[:len(p)], p) {
			u = u[len(p):]
			break
		}
	}
	return strings.TrimSuffix(u, "/")
}

// Slug turns a display name into a filename-safe token.
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if b.Len() > 0 && !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "agent"
	}
	return s
}

// VCard builds a minimal vCard 3.0 payload for the back-side QR code.
func VCard(d AgentCardData) string {
	lines := []string{"BEGIN:VCARD", "VERSION:3.0", "FN:" + escapeVCard(d.FullName)}
	if d.RoleLabel != "" {
		lines = append(lines, "TITLE:"+escapeVCard(d.RoleLabel))
	}
	if d.Phone != "" {
		lines = append(lines, "TEL;TYPE=WORK:"+escapeVCard(d.Phone))
	}
	if d.Email != "" {
		lines = append(lines, "EMAIL:"+escapeVCard(d.Email))
	}
	if d.Website != "" {
		lines = append(lines, "URL:"+escapeVCard(d.Website))
	}
	if d.Address != "" {
		lines = append(lines, "ADR;TYPE=WORK:;;"+escapeVCard(d.Address)+";;;;")
	}
	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\r\n")
}

func escapeVCard(s string) string {
	r := strings.NewReplacer(`\`, `\\`, ",", `\,`, ";", `\;`, "\n", `\n`)
	return r.Replace(s)
}
