package xmldsig

import "github.com/go-ev/iso15118exi/exi"

// State IDs are local to each type's table; each only requires uniqueness
// within one complex type's grammar, not process-wide.
const (
	csStart exi.StateID = iota
	csAfterAlgorithm
)

// canonicalizationMethodStates, signatureMethodStates and digestMethodStates
// share one shape: a single required Algorithm attribute followed by end.
// Grouped into one table-building helper so the three hand-authored tables
// cannot drift apart by a copy-paste slip.
func algorithmOnlyStates() []exi.State {
	return []exi.State{
		{ID: csStart, Width: 0, Productions: []exi.Production{
			{Kind: exi.ProdStart, Particle: "Algorithm", Next: csAfterAlgorithm},
		}},
		{ID: csAfterAlgorithm, Width: 0, Productions: []exi.Production{
			{Kind: exi.ProdEndElement, Next: exi.EndDone},
		}},
	}
}

var canonicalizationMethodStates = algorithmOnlyStates()
var signatureMethodStates = algorithmOnlyStates()
var digestMethodStates = algorithmOnlyStates()
var transformStates = algorithmOnlyStates()

const (
	tsStart exi.StateID = iota // 0 transforms seen, min 1 required
	tsAfter1
	tsAfter2
	tsAfter3
	tsAfter4 // MaxTransforms reached, no further START alternative
)

var transformsStates = []exi.State{
	{ID: tsStart, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Transform", Next: tsAfter1},
	}},
	{ID: tsAfter1, Width: 1, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Transform", Next: tsAfter2},
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
	{ID: tsAfter2, Width: 1, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Transform", Next: tsAfter3},
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
	{ID: tsAfter3, Width: 1, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Transform", Next: tsAfter4},
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
	{ID: tsAfter4, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
}

const (
	rsStart exi.StateID = iota // URI, Transforms, DigestMethod all reachable
	rsAfterURI                 // Transforms, DigestMethod reachable
	rsAfterTransforms           // DigestMethod only
	rsAfterDigestMethod         // DigestValue only
	rsAfterDigestValue          // end only
)

var referenceStates = []exi.State{
	{ID: rsStart, Width: 2, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "URI", Next: rsAfterURI},
		{Kind: exi.ProdStart, Particle: "Transforms", Next: rsAfterTransforms},
		{Kind: exi.ProdStart, Particle: "DigestMethod", Next: rsAfterDigestMethod},
	}},
	{ID: rsAfterURI, Width: 1, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Transforms", Next: rsAfterTransforms},
		{Kind: exi.ProdStart, Particle: "DigestMethod", Next: rsAfterDigestMethod},
	}},
	{ID: rsAfterTransforms, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "DigestMethod", Next: rsAfterDigestMethod},
	}},
	{ID: rsAfterDigestMethod, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "DigestValue", Next: rsAfterDigestValue},
	}},
	{ID: rsAfterDigestValue, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
}

const (
	siStart exi.StateID = iota // 0 references seen, waiting for CanonicalizationMethod
	siAfterCanonicalization
	siAfterSignatureMethod
	siAfterRef1
	siAfterRef2
	siAfterRef3
	siAfterRef4 // MaxReferences reached
)

var signedInfoStates = []exi.State{
	{ID: siStart, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "CanonicalizationMethod", Next: siAfterCanonicalization},
	}},
	{ID: siAfterCanonicalization, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "SignatureMethod", Next: siAfterSignatureMethod},
	}},
	{ID: siAfterSignatureMethod, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Reference", Next: siAfterRef1},
	}},
	{ID: siAfterRef1, Width: 1, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Reference", Next: siAfterRef2},
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
	{ID: siAfterRef2, Width: 1, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Reference", Next: siAfterRef3},
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
	{ID: siAfterRef3, Width: 1, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "Reference", Next: siAfterRef4},
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
	{ID: siAfterRef4, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
}

const (
	xisStart exi.StateID = iota
	xisAfterIssuerName
	xisAfterSerialNumber
)

var x509IssuerSerialStates = []exi.State{
	{ID: xisStart, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "X509IssuerName", Next: xisAfterIssuerName},
	}},
	{ID: xisAfterIssuerName, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "X509SerialNumber", Next: xisAfterSerialNumber},
	}},
	{ID: xisAfterSerialNumber, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
}

// x509DataStates models the two wired X509Data alternatives as independent
// optionals rather than the schema's unbounded choice sequence (see
// DESIGN.md): both, either, or neither may appear, each at most once here.
const (
	xdStart exi.StateID = iota // both alternatives or end reachable
	xdAfterIssuerSerial        // only X509Certificate or end left reachable
	xdAfterCertificate         // end only
)

var x509DataStates = []exi.State{
	{ID: xdStart, Width: 2, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "X509IssuerSerial", Next: xdAfterIssuerSerial},
		{Kind: exi.ProdStart, Particle: "X509Certificate", Next: xdAfterCertificate},
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
	{ID: xdAfterIssuerSerial, Width: 1, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "X509Certificate", Next: xdAfterCertificate},
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
	{ID: xdAfterCertificate, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
}

const (
	kiStart exi.StateID = iota
	kiAfterX509Data
)

var keyInfoStates = []exi.State{
	{ID: kiStart, Width: 1, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "X509Data", Next: kiAfterX509Data},
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
	{ID: kiAfterX509Data, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
}

const (
	sigStart exi.StateID = iota
	sigAfterSignedInfo
	sigAfterSignatureValue
	sigAfterKeyInfo
)

var signatureStates = []exi.State{
	{ID: sigStart, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "SignedInfo", Next: sigAfterSignedInfo},
	}},
	{ID: sigAfterSignedInfo, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "SignatureValue", Next: sigAfterSignatureValue},
	}},
	{ID: sigAfterSignatureValue, Width: 1, Productions: []exi.Production{
		{Kind: exi.ProdStart, Particle: "KeyInfo", Next: sigAfterKeyInfo},
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
	{ID: sigAfterKeyInfo, Width: 0, Productions: []exi.Production{
		{Kind: exi.ProdEndElement, Next: exi.EndDone},
	}},
}
