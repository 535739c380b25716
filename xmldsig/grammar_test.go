package xmldsig

import (
	"testing"

	"github.com/go-ev/iso15118exi/exi"
	"github.com/stretchr/testify/assert"
)

func TestGrammarTableWidths(t *testing.T) {
	tables := map[string][]exi.State{
		"canonicalizationMethod": canonicalizationMethodStates,
		"signatureMethod":        signatureMethodStates,
		"digestMethod":           digestMethodStates,
		"transform":              transformStates,
		"transforms":             transformsStates,
		"reference":              referenceStates,
		"signedInfo":             signedInfoStates,
		"x509IssuerSerial":       x509IssuerSerialStates,
		"x509Data":               x509DataStates,
		"keyInfo":                keyInfoStates,
		"signature":              signatureStates,
	}
	for name, states := range tables {
		for _, s := range states {
			assert.Truef(t, s.WidthOK(), "%s: state %d width mismatch", name, s.ID)
		}
	}
}
