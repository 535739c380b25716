package v2g

import (
	"testing"

	"github.com/go-ev/iso15118exi/exi"
	"github.com/stretchr/testify/assert"
)

func TestGrammarTableWidths(t *testing.T) {
	tables := map[string][]exi.State{
		"header":                            headerStates,
		"receipt":                           receiptStates,
		"scheduledDCParameter":              scheduledDCParameterStates,
		"bptDCParameter":                    bptDCParameterStates,
		"rationalNumber":                    rationalNumberStates,
		"cableCheckReq":                     cableCheckReqStates,
		"cableCheckRes":                     cableCheckResStates,
		"chargeParameterDiscoveryReq":       chargeParameterDiscoveryReqStates,
		"chargeParameterDiscoveryRes":       chargeParameterDiscoveryResStates,
		"chargeLoopReq":                     chargeLoopReqStates,
		"chargeLoopRes":                     chargeLoopResStates,
		"weldingDetectionReq":               weldingDetectionReqStates,
		"weldingDetectionRes":               weldingDetectionResStates,
	}
	for name, states := range tables {
		for _, s := range states {
			assert.Truef(t, s.WidthOK(), "%s: state %d width mismatch", name, s.ID)
		}
	}
}
