package ofx

import (
	"strings"
	"testing"

	"monedero/internal/model"
)

const testOFX = `OFXHEADER:100
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
<CURDEF>EUR
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
<FITID>JAN15-001
<NAME>FUEL STATION
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240116120000[0:GMT]
<TRNAMT>180.00
<FITID>JAN16-001
<NAME>CARD SETTLEMENT
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

func TestParser_ParseFile(t *testing.T) {
	parser := NewParser()

	txns, err := parser.ParseFile(strings.NewReader(testOFX))
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("ParseFile() returned %d transactions, want 2", len(txns))
	}

	debit := txns[0]
	if debit.ID != "JAN15-001" {
		t.Errorf("debit ID = %q, want JAN15-001", debit.ID)
	}
	if debit.Type != model.TypeExpense {
		t.Errorf("debit type = %q, want expense", debit.Type)
	}
	if debit.Amount != 25.50 {
		t.Errorf("debit amount = %v, want 25.50 (positive)", debit.Amount)
	}
	if debit.Description != "FUEL STATION" {
		t.Errorf("debit description = %q, want FUEL STATION", debit.Description)
	}

	credit := txns[1]
	if credit.Type != model.TypeIncome {
		t.Errorf("credit type = %q, want income", credit.Type)
	}
	if credit.Amount != 180.00 {
		t.Errorf("credit amount = %v, want 180.00", credit.Amount)
	}

	for _, txn := range txns {
		if err := txn.Validate(); err != nil {
			t.Errorf("parsed transaction %q fails validation: %v", txn.ID, err)
		}
	}
}

func TestParser_ParseFileGarbage(t *testing.T) {
	parser := NewParser()
	if _, err := parser.ParseFile(strings.NewReader("not an ofx document")); err == nil {
		t.Error("ParseFile() of garbage succeeded")
	}
}
