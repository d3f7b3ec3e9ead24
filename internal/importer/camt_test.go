package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const camtHeader = "Auftragskonto;Buchungstag;Valutadatum;Buchungstext;Verwendungszweck;Glaeubiger ID;Mandatsreferenz;Kundenreferenz;Sammlerreferenz;Lastschrift Ursprungsbetrag;Auslagenersatz Ruecklastschrift;Beguenstigter/Zahlungspflichtiger;IBAN;BIC;Betrag;Waehrung;Info"

// camtRow builds one 17-column statement row with the consumed fields set.
func camtRow(date, desc, party, amount string) string {
	fields := make([]string, camtNumFields)
	fields[camtColDate] = date
	fields[camtColDesc] = desc
	fields[camtColParty] = party
	fields[camtColAmount] = amount
	fields[15] = "EUR"
	return strings.Join(fields, ";")
}

func camtFile(rows ...string) string {
	return camtHeader + "\n" + strings.Join(rows, "\n") + "\n"
}

func TestCamtParser_Parse(t *testing.T) {
	input := camtFile(
		camtRow("05.03.2014", "Einkauf", "ALDI SUED SAGT DANKE 123", "-12,50"),
		camtRow("07.03.2014", "Gehalt Maerz", "ACME GmbH", "2.500,00"),
	)

	p := &CamtParser{}
	expenses, failures, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, failures)
	require.Len(t, expenses, 2)

	first := expenses[0]
	assert.Equal(t, "ALDI SUED SAGT DANKE 123", first.Party)
	assert.Equal(t, "Einkauf", first.Description)
	assert.Equal(t, "-12.5", first.Amount.String())
	assert.Equal(t, 2014, first.Date.Year())
	assert.Equal(t, 3, int(first.Date.Month()))
	assert.Equal(t, 5, first.Date.Day())

	second := expenses[1]
	assert.Equal(t, "2500", second.Amount.String())
	assert.True(t, second.Amount.IsPositive())
}

func TestCamtParser_NormalizesWhitespace(t *testing.T) {
	input := camtFile(
		camtRow("05.03.2014", "  REWE   sagt danke ", "  REWE  Filiale   12 ", "-45,30"),
	)

	p := &CamtParser{}
	expenses, _, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, expenses, 1)

	assert.Equal(t, "REWE Filiale 12", expenses[0].Party)
	assert.Equal(t, "REWE sagt danke", expenses[0].Description)
}

func TestCamtParser_MalformedRowsAreCollected(t *testing.T) {
	input := camtFile(
		camtRow("05.03.2014", "ok", "ALDI", "-1,00"),
		camtRow("NOTADATE", "bad date", "ALDI", "-2,00"),
		camtRow("06.03.2014", "bad amount", "REWE", "abc"),
		camtRow("07.03.2014", "ok too", "Netto-einfach besser", "-3,00"),
	)

	p := &CamtParser{}
	expenses, failures, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)

	// Good rows before and after the broken ones survive.
	require.Len(t, expenses, 2)
	assert.Equal(t, "ALDI", expenses[0].Party)
	assert.Equal(t, "Netto-einfach besser", expenses[1].Party)

	require.Len(t, failures, 2)
	assert.Equal(t, 3, failures[0].Row)
	assert.ErrorIs(t, failures[0].Err, ErrMalformedDate)
	assert.Equal(t, 4, failures[1].Row)
	assert.ErrorIs(t, failures[1].Err, ErrMalformedAmount)
	assert.Contains(t, failures[1].Value, "abc")
}

func TestCamtParser_ShortRow(t *testing.T) {
	input := camtHeader + "\na;b;c\n"

	p := &CamtParser{}
	expenses, failures, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, expenses)
	require.Len(t, failures, 1)
	assert.Equal(t, 2, failures[0].Row)
}

func TestCamtParser_EmptyFile(t *testing.T) {
	p := &CamtParser{}
	expenses, failures, err := p.Parse(strings.NewReader(camtHeader + "\n"))
	require.NoError(t, err)
	assert.Nil(t, expenses)
	assert.Nil(t, failures)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"-12,50", "-12.5"},
		{"-1.234,56", "-1234.56"},
		{"2.500,00", "2500"},
		{"0,00", "0"},
		{"500,00", "500"},
		{" -7,99 ", "-7.99"},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got.String(), "input %q", tt.in)
	}
}

func TestParseAmount_Malformed(t *testing.T) {
	for _, in := range []string{"", "abc", "--1,0", "1,2,3"} {
		_, err := ParseAmount(in)
		assert.ErrorIs(t, err, ErrMalformedAmount, "input %q", in)
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  ALDI   SUED  ", "ALDI SUED"},
		{"a\tb\n c", "a b c"},
		{"already clean", "already clean"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeText(tt.in))
	}
}

func TestCamtParser_Format(t *testing.T) {
	p := &CamtParser{}
	assert.Equal(t, "camt", p.Format())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("camt"))

	r.Register(&CamtParser{})
	require.NotNil(t, r.Get("camt"))
	assert.NotNil(t, r.Get("CAMT"))

	assert.Panics(t, func() { r.Register(&CamtParser{}) })
}

func TestDefaultRegistry(t *testing.T) {
	assert.NotNil(t, DefaultRegistry().Get("camt"))
}
