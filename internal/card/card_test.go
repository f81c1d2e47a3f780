package card

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullAgent() AgentCardData {
	return AgentCardData{
		FullName: "Jordan Avery",
		Phone:    "+1 555 0100",
		Email:    "jordan@example.com",
		Website:  "https://jordan.example.com/",
		Address:  "12 Harbor Rd, Portland",
		PhotoURL: "https://cdn.example.com/jordan.jpg",
	}
}

func TestContactLines_Order(t *testing.T) {
	lines := ContactLines(fullAgent())
	require.Len(t, lines, 4)
	assert.Equal(t, []ContactKind{ContactPhone, ContactEmail, ContactWebsite, ContactAddress},
		[]ContactKind{lines[0].Kind, lines[1].Kind, lines[2].Kind, lines[3].Kind})
}

func TestContactLines_SkipsAbsentFields(t *testing.T) {
	tests := []struct {
		name  string
		data  AgentCardData
		kinds []ContactKind
	}{
		{"email only", AgentCardData{FullName: "A", Email: "a@example.com"}, []ContactKind{ContactEmail}},
		{"blank strings", AgentCardData{FullName: "A", Phone: "  ", Address: "\t"}, nil},
		{"phone and address", AgentCardData{FullName: "A", Phone: "1", Address: "x"}, []ContactKind{ContactPhone, ContactAddress}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []ContactKind
			for _, l := range ContactLines(tt.data) {
				got = append(got, l.Kind)
			}
			assert.Equal(t, tt.kinds, got)
		})
	}
}

func TestContactLines_RemovingFieldDropsOneLine(t *testing.T) {
	base := fullAgent()
	n := len(ContactLines(base))
	for _, strip := range []func(*AgentCardData){
		func(d *AgentCardData) { d.Phone = "" },
		func(d *AgentCardData) { d.Email = "" },
		func(d *AgentCardData) { d.Website = "" },
		func(d *AgentCardData) { d.Address = "" },
	} {
		d := base
		strip(&d)
		assert.Equal(t, n-1, len(ContactLines(d)))
	}
}

func TestNormalize(t *testing.T) {
	d := AgentCardData{FullName: "  Sam Lee ", Email: " sam@example.com "}.Normalize()
	assert.Equal(t, "Sam Lee", d.FullName)
	assert.Equal(t, "sam@example.com", d.Email)
	assert.Equal(t, DefaultRoleLabel, d.RoleLabel)
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, AgentCardData{}.Validate(), ErrMissingName)
	assert.NoError(t, fullAgent().Validate())
}

func TestParseSide(t *testing.T) {
	s, err := ParseSide("BACK")
	require.NoError(t, err)
	assert.Equal(t, Back, s)

	s, err = ParseSide("")
	require.NoError(t, err)
	assert.Equal(t, Front, s)

	_, err = ParseSide("inside")
	assert.Error(t, err)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "jordan-avery", Slug("Jordan Avery"))
	assert.Equal(t, "o-brien-jr", Slug("  O'Brien, Jr. "))
	assert.Equal(t, "agent", Slug("***"))
}

func TestDisplayWebsite(t *testing.T) {
	assert.Equal(t, "jordan.example.com", DisplayWebsite("https://jordan.example.com/"))
	assert.Equal(t, "example.com/me", DisplayWebsite("HTTP://example.com/me"))
}

func TestVCard(t *testing.T) {
	v := VCard(AgentCardData{FullName: "Doe, Jane", Email: "j@example.com"})
	assert.True(t, strings.HasPrefix(v, "BEGIN:VCARD\r\n"))
	assert.Contains(t, v, `FN:Doe\, Jane`)
	assert.Contains(t, v, "EMAIL:j@example.com")
	assert.NotContains(t, v, "TEL")
}

func TestLoadAgentsCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agents.csv")
	body := "Name,Phone,Email,Photo\n" +
		"Jordan Avery,555,jordan@example.com,https://cdn.example.com/j.jpg\n" +
		",555,nobody@example.com,\n" +
		"Sam Lee,,,\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	agents, err := LoadAgentsCSV(path)
	require.NoError(t, err)
	require.Len(t, agents, 2)
	assert.Equal(t, "Jordan Avery", agents[0].FullName)
	assert.Equal(t, "https://cdn.example.com/j.jpg", agents[0].PhotoURL)
	assert.Equal(t, DefaultRoleLabel, agents[1].RoleLabel)
}

func TestLoadAgentsCSV_ByteOrderMark(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.csv")
	body := "\ufefffull_name,email\nJordan Avery,jordan@example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	agents, err := LoadAgentsCSV(path)
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "Jordan Avery", agents[0].FullName)
	assert.Equal(t, "jordan@example.com", agents[0].Email)
}

func TestLoadAgentsCSV_MissingNameColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("phone\n555\n"), 0o644))
	_, err := LoadAgentsCSV(path)
	assert.Error(t, err)
}

func TestFilter(t *testing.T) {
	agents := []AgentCardData{
		{FullName: "Jordan Avery", Address: "12 Harbor Rd, Portland", PhotoURL: "https://cdn.example.com/j.jpg"},
		{FullName: "Sam Lee", RoleLabel: "Broker", Address: "Seattle"},
		{FullName: "Ana Portland"},
	}

	assert.Len(t, Filter(agents, FilterOptions{}), 3)
	assert.Equal(t, []AgentCardData{agents[0]}, Filter(agents, FilterOptions{WithPhoto: true}))

	got := Filter(agents, FilterOptions{FreeWords: "portland"})
	require.Len(t, got, 2)
	assert.Equal(t, "Jordan Avery", got[0].FullName)
	assert.Equal(t, "Ana Portland", got[1].FullName)

	got = Filter(agents, FilterOptions{FreeWords: "BROKER seattle"})
	require.Len(t, got, 1)
	assert.Equal(t, "Sam Lee", got[0].FullName)
}
