package ofx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketledger/pocketledger/internal/model"
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
<DTSERVER>20240315120000[0:GMT]
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
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>1500.00
<FITID>2024012001
<NAME>PAYROLL DEPOSIT
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParseFile(t *testing.T) {
	t.Run("bank statement", func(t *testing.T) {
		parser := NewParser()

		entries, err := parser.ParseFile(strings.NewReader(sampleBankOFX))
		require.NoError(t, err)
		require.Len(t, entries, 2)

		coffee := entries[0]
		assert.Equal(t, model.TypeExpense, coffee.Type)
		assert.InDelta(t, 25.50, coffee.Amount, 1e-9)
		assert.Equal(t, "STARBUCKS STORE #1234", coffee.Payee)
		assert.Equal(t, 2024, coffee.Date.Year())
		assert.Equal(t, time.January, coffee.Date.Month())

		payroll := entries[1]
		assert.Equal(t, model.TypeIncome, payroll.Type)
		assert.InDelta(t, 1500.00, payroll.Amount, 1e-9)
		assert.Equal(t, "PAYROLL DEPOSIT", payroll.Payee)
	})

	t.Run("leading whitespace before header", func(t *testing.T) {
		parser := NewParser()

		entries, err := parser.ParseFile(strings.NewReader("\n\n  " + sampleBankOFX))
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("mixed-case severity is repaired", func(t *testing.T) {
		parser := NewParser()

		out := parser.preprocess("<SEVERITY>Info</SEVERITY>")
		assert.Equal(t, "<SEVERITY>INFO</SEVERITY>", out)
	})

	t.Run("missing closing brackets are repaired", func(t *testing.T) {
		parser := NewParser()

		out := parser.preprocess("<OFX>\n<TRNAMT\n</OFX>")
		assert.Contains(t, out, "<TRNAMT>")
	})

	t.Run("garbage input fails", func(t *testing.T) {
		parser := NewParser()

		_, err := parser.ParseFile(strings.NewReader("this is not an OFX file"))
		require.Error(t, err)
	})
}
