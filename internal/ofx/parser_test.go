package ofx

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worthit/worthit/internal/model"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20260315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20260301120000[0:GMT]
<DTEND>20260331120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260310120000[0:GMT]
<TRNAMT>-4.75
<FITID>2026031001
<NAME>DOWNTOWN COFFEE ROASTERS
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260312120000[0:GMT]
<TRNAMT>-48.20
<FITID>2026031201
<NAME>POS PURCHASE SHELL FUEL 0042
</STMTTRN>
<STMTTRN>
<TRNTYPE>INT
<DTPOSTED>20260315120000[0:GMT]
<TRNAMT>1.25
<FITID>2026031501
<NAME>INTEREST PAYMENT
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20260331120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParser_ParseFile(t *testing.T) {
	p := NewParser()

	txns, err := p.ParseFile(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, txns, 3)

	byNote := make(map[string]model.Transaction, len(txns))
	for _, txn := range txns {
		byNote[txn.Note] = txn
	}

	coffee, ok := byNote["DOWNTOWN COFFEE ROASTERS"]
	require.True(t, ok, "coffee transaction missing")
	assert.Equal(t, 4.75, coffee.Amount)
	assert.False(t, coffee.IsIncome)
	assert.Equal(t, model.CategoryFood, coffee.Category)
	assert.Equal(t, 2026, coffee.Date.Year())
	assert.NotEmpty(t, coffee.ID)

	// The processor prefix is stripped before categorization.
	fuel, ok := byNote["SHELL FUEL 0042"]
	require.True(t, ok, "fuel transaction missing, notes: %v", notes(txns))
	assert.Equal(t, 48.20, fuel.Amount)
	assert.Equal(t, model.CategoryTransport, fuel.Category)

	interest, ok := byNote["INTEREST PAYMENT"]
	require.True(t, ok, "interest transaction missing")
	assert.True(t, interest.IsIncome)
	assert.Equal(t, "Interest", interest.IncomeCategory)
	assert.Equal(t, 1.25, interest.Amount)
}

func TestParser_TransactionsValidate(t *testing.T) {
	p := NewParser()

	txns, err := p.ParseFile(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)

	for _, txn := range txns {
		assert.NoError(t, txn.Validate(), "note %q", txn.Note)
	}
}

func TestParser_PreprocessOFX(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "uppercases severity",
			input: "<SEVERITY>Info</SEVERITY>",
			want:  "<SEVERITY>INFO</SEVERITY>",
		},
		{
			name:  "closes bare tags",
			input: "<STMTTRN",
			want:  "<STMTTRN>",
		},
		{
			name:  "trims leading blank lines",
			input: "\n\n  OFXHEADER:100",
			want:  "OFXHEADER:100",
		},
		{
			name:  "leaves well-formed content alone",
			input: "<TRNAMT>-4.75",
			want:  "<TRNAMT>-4.75",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.preprocessOFX(tt.input))
		})
	}
}

func TestParser_InvalidInput(t *testing.T) {
	p := NewParser()

	_, err := p.ParseFile(context.Background(), strings.NewReader("not an ofx file"))
	assert.Error(t, err)
}

func notes(txns []model.Transaction) []string {
	out := make([]string, len(txns))
	for i, txn := range txns {
		out[i] = txn.Note
	}
	return out
}
