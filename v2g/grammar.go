package v2g

import "github.com/go-ev/iso15118exi/exi"

const (
	hStart exi.StateID = iota // SessionID
	hAfterSessionID           // TimeStamp
	hAfterTimeStamp           // Signature, ExtensionsList, or end
	hAfterSignature           // ExtensionsList or end
	hAfterExtensions          // end only
)

var headerStates = []exi.State{
	{ID: hStart, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "SessionID", Next: hAfterSessionID},
	}},
	{ID: hAfterSessionID, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "TimeStamp", Next: hAfterTimeStamp},
	}},
	{ID: hAfterTimeStamp, Width: 2, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Signature", Next: hAfterSignature},
		{Kind: exi.ProdStart, Particle: "ExtensionsList", Next: hAfterExtensions},
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
	{ID: hAfterSignature, Width: 1, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "ExtensionsList", Next: hAfterExtensions},
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
	{ID: hAfterExtensions, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
}

// receiptStates is the "repetition as state chain" shape for
// ReceiptType.TaxCosts, built with exi.BuildRepeatedChainStates rather than
// hand-listed, since every one of its 12 states follows the same rule. The
// chain runs one state past MaxTaxCosts: state MaxTaxCosts still offers
// START, so a stream carrying an extra occurrence is recognized and
// DecodeReceipt rejects it with ErrArrayOutOfBounds. EncodeReceipt never
// writes more than MaxTaxCosts occurrences.
var receiptStates = exi.BuildRepeatedChainStates(0, "TaxCosts", 0, MaxTaxCosts+1)

const (
	sdStart exi.StateID = iota
	sdAfterMaxChargePower
)

var scheduledDCParameterStates = []exi.State{
	{ID: sdStart, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "MaximumChargePower", Next: sdAfterMaxChargePower},
	}},
	{ID: sdAfterMaxChargePower, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
}

const (
	bptStart exi.StateID = iota
	bptAfterMaxChargePower
	bptAfterMaxDischargePower
)

var bptDCParameterStates = []exi.State{
	{ID: bptStart, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "MaximumChargePower", Next: bptAfterMaxChargePower},
	}},
	{ID: bptAfterMaxChargePower, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "MaximumDischargePower", Next: bptAfterMaxDischargePower},
	}},
	{ID: bptAfterMaxDischargePower, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
}

const (
	rnStart exi.StateID = iota
	rnAfterExponent
	rnAfterValue
)

var rationalNumberStates = []exi.State{
	{ID: rnStart, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Exponent", Next: rnAfterExponent},
	}},
	{ID: rnAfterExponent, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Value", Next: rnAfterValue},
	}},
	{ID: rnAfterValue, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
}

const (
	ccqStart exi.StateID = iota
	ccqAfterHeader
)

var cableCheckReqStates = []exi.State{
	{ID: ccqStart, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Header", Next: ccqAfterHeader},
	}},
	{ID: ccqAfterHeader, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
}

const (
	ccrStart exi.StateID = iota
	ccrAfterHeader
	ccrAfterResponseCode
	ccrAfterEVSEProcessing
)

var cableCheckResStates = []exi.State{
	{ID: ccrStart, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Header", Next: ccrAfterHeader},
	}},
	{ID: ccrAfterHeader, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "ResponseCode", Next: ccrAfterResponseCode},
	}},
	{ID: ccrAfterResponseCode, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "EVSEProcessing", Next: ccrAfterEVSEProcessing},
	}},
	{ID: ccrAfterEVSEProcessing, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
}

const (
	cpqStart exi.StateID = iota
	cpqAfterHeader
	cpqAfterMaxChargePower
)

var chargeParameterDiscoveryReqStates = []exi.State{
	{ID: cpqStart, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Header", Next: cpqAfterHeader},
	}},
	{ID: cpqAfterHeader, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "EVMaximumChargePower", Next: cpqAfterMaxChargePower},
	}},
	{ID: cpqAfterMaxChargePower, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
}

const (
	cprStart exi.StateID = iota
	cprAfterHeader
	cprAfterResponseCode
	cprAfterEnergyTransferMode
)

var chargeParameterDiscoveryResStates = []exi.State{
	{ID: cprStart, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Header", Next: cprAfterHeader},
	}},
	{ID: cprAfterHeader, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "ResponseCode", Next: cprAfterResponseCode},
	}},
	{ID: cprAfterResponseCode, Width: 1, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Scheduled", Next: cprAfterEnergyTransferMode},
		{Kind: exi.ProdStart, Particle: "BPTScheduled", Next: cprAfterEnergyTransferMode},
	}},
	{ID: cprAfterEnergyTransferMode, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
}

const (
	clqStart exi.StateID = iota
	clqAfterHeader
	clqAfterVoltage
)

var chargeLoopReqStates = []exi.State{
	{ID: clqStart, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Header", Next: clqAfterHeader},
	}},
	{ID: clqAfterHeader, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "EVPresentVoltage", Next: clqAfterVoltage},
	}},
	{ID: clqAfterVoltage, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
}

const (
	clrStart exi.StateID = iota
	clrAfterHeader
	clrAfterVoltage
)

var chargeLoopResStates = []exi.State{
	{ID: clrStart, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Header", Next: clrAfterHeader},
	}},
	{ID: clrAfterHeader, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "EVSEPresentVoltage", Next: clrAfterVoltage},
	}},
	{ID: clrAfterVoltage, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
}

const (
	wdqStart exi.StateID = iota
	wdqAfterHeader
)

var weldingDetectionReqStates = []exi.State{
	{ID: wdqStart, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Header", Next: wdqAfterHeader},
	}},
	{ID: wdqAfterHeader, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
}

const (
	wdrStart exi.StateID = iota
	wdrAfterHeader
	wdrAfterResponseCode
	wdrAfterVoltage
)

var weldingDetectionResStates = []exi.State{
	{ID: wdrStart, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Header", Next: wdrAfterHeader},
	}},
	{ID: wdrAfterHeader, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "ResponseCode", Next: wdrAfterResponseCode},
	}},
	{ID: wdrAfterResponseCode, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "EVSEPresentVoltage", Next: wdrAfterVoltage},
	}},
	{ID: wdrAfterVoltage, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
}
