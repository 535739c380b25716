package xmldsig

import "github.com/go-ev/iso15118exi/exi"

// DecodeCanonicalizationMethod implements the single-attribute
// CanonicalizationMethodType shape.
func DecodeCanonicalizationMethod(bs *exi.Bitstream) (*CanonicalizationMethodType, error) {
	v := &CanonicalizationMethodType{}
	if _, err := exi.ReadEventCode(bs, canonicalizationMethodStates, csStart); err != nil {
		return nil, err
	}
	algorithm, err := exi.DecodeAttributeString(bs, MaxAlgorithmLen)
	if err != nil {
		return nil, err
	}
	v.Algorithm = algorithm
	if _, err := exi.ReadEventCode(bs, canonicalizationMethodStates, csAfterAlgorithm); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeCanonicalizationMethod is the encode-side counterpart.
func EncodeCanonicalizationMethod(bs *exi.Bitstream, v *CanonicalizationMethodType) error {
	if err := exi.WriteEventCode(bs, canonicalizationMethodStates, csStart, 0); err != nil {
		return err
	}
	if err := exi.EncodeAttributeString(bs, v.Algorithm, MaxAlgorithmLen); err != nil {
		return err
	}
	return exi.WriteEventCode(bs, canonicalizationMethodStates, csAfterAlgorithm, 0)
}

// DecodeSignatureMethod implements the same algorithm-only shape.
func DecodeSignatureMethod(bs *exi.Bitstream) (*SignatureMethodType, error) {
	v := &SignatureMethodType{}
	if _, err := exi.ReadEventCode(bs, signatureMethodStates, csStart); err != nil {
		return nil, err
	}
	algorithm, err := exi.DecodeAttributeString(bs, MaxAlgorithmLen)
	if err != nil {
		return nil, err
	}
	v.Algorithm = algorithm
	if _, err := exi.ReadEventCode(bs, signatureMethodStates, csAfterAlgorithm); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeSignatureMethod is the encode-side counterpart.
func EncodeSignatureMethod(bs *exi.Bitstream, v *SignatureMethodType) error {
	if err := exi.WriteEventCode(bs, signatureMethodStates, csStart, 0); err != nil {
		return err
	}
	if err := exi.EncodeAttributeString(bs, v.Algorithm, MaxAlgorithmLen); err != nil {
		return err
	}
	return exi.WriteEventCode(bs, signatureMethodStates, csAfterAlgorithm, 0)
}

// DecodeDigestMethod implements the same algorithm-only shape.
func DecodeDigestMethod(bs *exi.Bitstream) (*DigestMethodType, error) {
	v := &DigestMethodType{}
	if _, err := exi.ReadEventCode(bs, digestMethodStates, csStart); err != nil {
		return nil, err
	}
	algorithm, err := exi.DecodeAttributeString(bs, MaxAlgorithmLen)
	if err != nil {
		return nil, err
	}
	v.Algorithm = algorithm
	if _, err := exi.ReadEventCode(bs, digestMethodStates, csAfterAlgorithm); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeDigestMethod is the encode-side counterpart.
func EncodeDigestMethod(bs *exi.Bitstream, v *DigestMethodType) error {
	if err := exi.WriteEventCode(bs, digestMethodStates, csStart, 0); err != nil {
		return err
	}
	if err := exi.EncodeAttributeString(bs, v.Algorithm, MaxAlgorithmLen); err != nil {
		return err
	}
	return exi.WriteEventCode(bs, digestMethodStates, csAfterAlgorithm, 0)
}

// DecodeTransform implements the same algorithm-only shape.
func DecodeTransform(bs *exi.Bitstream) (*TransformType, error) {
	v := &TransformType{}
	if _, err := exi.ReadEventCode(bs, transformStates, csStart); err != nil {
		return nil, err
	}
	algorithm, err := exi.DecodeAttributeString(bs, MaxAlgorithmLen)
	if err != nil {
		return nil, err
	}
	v.Algorithm = algorithm
	if _, err := exi.ReadEventCode(bs, transformStates, csAfterAlgorithm); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeTransform is the encode-side counterpart.
func EncodeTransform(bs *exi.Bitstream, v *TransformType) error {
	if err := exi.WriteEventCode(bs, transformStates, csStart, 0); err != nil {
		return err
	}
	if err := exi.EncodeAttributeString(bs, v.Algorithm, MaxAlgorithmLen); err != nil {
		return err
	}
	return exi.WriteEventCode(bs, transformStates, csAfterAlgorithm, 0)
}

// DecodeTransforms implements the repetition-as-state-chain shape: one or
// more Transform, capped at MaxTransforms.
func DecodeTransforms(bs *exi.Bitstream) (*TransformsType, error) {
	v := &TransformsType{}
	state := tsStart
	for {
		prod, err := exi.ReadEventCode(bs, transformsStates, state)
		if err != nil {
			return nil, err
		}
		if prod.Kind == exi.ProdEndElement {
			return v, nil
		}
		if v.Count >= MaxTransforms {
			return nil, exi.NewError(exi.ErrArrayOutOfBounds, "Transforms: more than %d Transform", MaxTransforms)
		}
		t, err := DecodeTransform(bs)
		if err != nil {
			return nil, err
		}
		v.Transform[v.Count] = *t
		v.Count++
		state = prod.Next
	}
}

// EncodeTransforms is the encode-side counterpart.
func EncodeTransforms(bs *exi.Bitstream, v *TransformsType) error {
	if v.Count < 1 || v.Count > MaxTransforms {
		return exi.NewError(exi.ErrInvariantViolation, "Transforms.Count %d out of [1,%d]", v.Count, MaxTransforms)
	}
	state := tsStart
	for i := 0; i < v.Count; i++ {
		// state tsStart has only production 0 (START); every later state
		// lists START at index 0 and END_ELEMENT at index 1.
		if err := exi.WriteEventCode(bs, transformsStates, state, 0); err != nil {
			return err
		}
		if err := EncodeTransform(bs, &v.Transform[i]); err != nil {
			return err
		}
		st, _ := exi.FindState(transformsStates, state)
		state = st.Productions[0].Next
	}
	// state is now tsAfter<Count>; write END_ELEMENT. tsStart has no
	// END_ELEMENT alternative, but Count >= 1 guarantees we are past it.
	st, _ := exi.FindState(transformsStates, state)
	endIdx := len(st.Productions) - 1
	return exi.WriteEventCode(bs, transformsStates, state, endIdx)
}

// DecodeReference implements the optional-attribute/optional-complex/
// required-complex/required-simple sequence shape.
func DecodeReference(bs *exi.Bitstream) (*ReferenceType, error) {
	v := &ReferenceType{}
	state := rsStart
	for {
		prod, err := exi.ReadEventCode(bs, referenceStates, state)
		if err != nil {
			return nil, err
		}
		switch prod.Particle {
		case "URI":
			s, err := exi.DecodeAttributeString(bs, MaxURILen)
			if err != nil {
				return nil, err
			}
			v.URI = exi.Some(s)
		case "Transforms":
			t, err := DecodeTransforms(bs)
			if err != nil {
				return nil, err
			}
			v.Transforms = exi.Some(*t)
		case "DigestMethod":
			dm, err := DecodeDigestMethod(bs)
			if err != nil {
				return nil, err
			}
			v.DigestMethod = *dm
		case "DigestValue":
			dv, err := exi.DecodeSimpleHexBinary(bs, MaxDigestValueLen)
			if err != nil {
				return nil, err
			}
			v.DigestValue = dv
		}
		state = prod.Next
		if state == exi.EndDone {
			return v, nil
		}
	}
}

// EncodeReference is the encode-side counterpart.
func EncodeReference(bs *exi.Bitstream, v *ReferenceType) error {
	state := rsStart
	for state != exi.EndDone {
		st, ok := exi.FindState(referenceStates, state)
		if !ok {
			return exi.NewError(exi.ErrUnknownGrammarID, "Reference: state %d missing", state)
		}
		idx := -1
		for i, p := range st.Productions {
			switch p.Particle {
			case "URI":
				if v.URI.Set {
					idx = i
				}
			case "Transforms":
				if v.Transforms.Set {
					idx = i
				}
			case "DigestMethod":
				idx = i
			case "DigestValue":
				idx = i
			}
			if idx == i {
				break
			}
		}
		if idx == -1 {
			return exi.NewError(exi.ErrInvariantViolation, "Reference: required particle missing at state %d", state)
		}
		if err := exi.WriteEventCode(bs, referenceStates, state, idx); err != nil {
			return err
		}
		switch st.Productions[idx].Particle {
		case "URI":
			if err := exi.EncodeAttributeString(bs, v.URI.Value, MaxURILen); err != nil {
				return err
			}
		case "Transforms":
			t := v.Transforms.Value
			if err := EncodeTransforms(bs, &t); err != nil {
				return err
			}
		case "DigestMethod":
			if err := EncodeDigestMethod(bs, &v.DigestMethod); err != nil {
				return err
			}
		case "DigestValue":
			if err := exi.EncodeSimpleHexBinary(bs, v.DigestValue, MaxDigestValueLen); err != nil {
				return err
			}
		}
		state = st.Productions[idx].Next
	}
	return nil
}

// DecodeSignedInfo implements nested/recursive example root:
// CanonicalizationMethod, SignatureMethod, one or more Reference.
func DecodeSignedInfo(bs *exi.Bitstream) (*SignedInfoType, error) {
	v := &SignedInfoType{}
	if _, err := exi.ReadEventCode(bs, signedInfoStates, siStart); err != nil {
		return nil, err
	}
	cm, err := DecodeCanonicalizationMethod(bs)
	if err != nil {
		return nil, err
	}
	v.CanonicalizationMethod = *cm

	if _, err := exi.ReadEventCode(bs, signedInfoStates, siAfterCanonicalization); err != nil {
		return nil, err
	}
	sm, err := DecodeSignatureMethod(bs)
	if err != nil {
		return nil, err
	}
	v.SignatureMethod = *sm

	state := siAfterSignatureMethod
	for {
		prod, err := exi.ReadEventCode(bs, signedInfoStates, state)
		if err != nil {
			return nil, err
		}
		if prod.Kind == exi.ProdEndElement {
			return v, nil
		}
		if v.ReferenceCount >= MaxReferences {
			return nil, exi.NewError(exi.ErrArrayOutOfBounds, "SignedInfo: more than %d Reference", MaxReferences)
		}
		r, err := DecodeReference(bs)
		if err != nil {
			return nil, err
		}
		v.Reference[v.ReferenceCount] = *r
		v.ReferenceCount++
		state = prod.Next
	}
}

// EncodeSignedInfo is the encode-side counterpart.
func EncodeSignedInfo(bs *exi.Bitstream, v *SignedInfoType) error {
	if v.ReferenceCount < 1 || v.ReferenceCount > MaxReferences {
		return exi.NewError(exi.ErrInvariantViolation, "SignedInfo.ReferenceCount %d out of [1,%d]", v.ReferenceCount, MaxReferences)
	}
	if err := exi.WriteEventCode(bs, signedInfoStates, siStart, 0); err != nil {
		return err
	}
	if err := EncodeCanonicalizationMethod(bs, &v.CanonicalizationMethod); err != nil {
		return err
	}
	if err := exi.WriteEventCode(bs, signedInfoStates, siAfterCanonicalization, 0); err != nil {
		return err
	}
	if err := EncodeSignatureMethod(bs, &v.SignatureMethod); err != nil {
		return err
	}
	state := siAfterSignatureMethod
	for i := 0; i < v.ReferenceCount; i++ {
		if err := exi.WriteEventCode(bs, signedInfoStates, state, 0); err != nil {
			return err
		}
		if err := EncodeReference(bs, &v.Reference[i]); err != nil {
			return err
		}
		st, _ := exi.FindState(signedInfoStates, state)
		state = st.Productions[0].Next
	}
	st, _ := exi.FindState(signedInfoStates, state)
	endIdx := len(st.Productions) - 1
	return exi.WriteEventCode(bs, signedInfoStates, state, endIdx)
}

// DecodeX509IssuerSerial implements KeyInfo → X509Data →
// X509IssuerSerial nested-recursion example's leaf.
func DecodeX509IssuerSerial(bs *exi.Bitstream) (*X509IssuerSerialType, error) {
	v := &X509IssuerSerialType{}
	if _, err := exi.ReadEventCode(bs, x509IssuerSerialStates, xisStart); err != nil {
		return nil, err
	}
	name, err := exi.DecodeSimpleString(bs, MaxIssuerNameLen)
	if err != nil {
		return nil, err
	}
	v.X509IssuerName = name

	if _, err := exi.ReadEventCode(bs, x509IssuerSerialStates, xisAfterIssuerName); err != nil {
		return nil, err
	}
	serial, err := exi.DecodeSimpleInt64(bs)
	if err != nil {
		return nil, err
	}
	v.X509SerialNumber = serial

	if _, err := exi.ReadEventCode(bs, x509IssuerSerialStates, xisAfterSerialNumber); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeX509IssuerSerial is the encode-side counterpart.
func EncodeX509IssuerSerial(bs *exi.Bitstream, v *X509IssuerSerialType) error {
	if err := exi.WriteEventCode(bs, x509IssuerSerialStates, xisStart, 0); err != nil {
		return err
	}
	if err := exi.EncodeSimpleString(bs, v.X509IssuerName, MaxIssuerNameLen); err != nil {
		return err
	}
	if err := exi.WriteEventCode(bs, x509IssuerSerialStates, xisAfterIssuerName, 0); err != nil {
		return err
	}
	if err := exi.EncodeSimpleInt64(bs, v.X509SerialNumber); err != nil {
		return err
	}
	return exi.WriteEventCode(bs, x509IssuerSerialStates, xisAfterSerialNumber, 0)
}

// DecodeX509Data implements the two-independent-optionals simplification
// documented in DESIGN.md.
func DecodeX509Data(bs *exi.Bitstream) (*X509DataType, error) {
	v := &X509DataType{}
	state := xdStart
	for {
		prod, err := exi.ReadEventCode(bs, x509DataStates, state)
		if err != nil {
			return nil, err
		}
		switch prod.Particle {
		case "X509IssuerSerial":
			is, err := DecodeX509IssuerSerial(bs)
			if err != nil {
				return nil, err
			}
			v.X509IssuerSerial = exi.Some(*is)
		case "X509Certificate":
			cert, err := exi.DecodeSimpleHexBinary(bs, MaxCertificateLen)
			if err != nil {
				return nil, err
			}
			v.X509Certificate = exi.Some(cert)
		}
		state = prod.Next
		if state == exi.EndDone {
			return v, nil
		}
	}
}

// EncodeX509Data is the encode-side counterpart.
func EncodeX509Data(bs *exi.Bitstream, v *X509DataType) error {
	state := xdStart
	for state != exi.EndDone {
		st, _ := exi.FindState(x509DataStates, state)
		idx := -1
		for i, p := range st.Productions {
			if p.Particle == "X509IssuerSerial" && v.X509IssuerSerial.Set {
				idx = i
				break
			}
			if p.Particle == "X509Certificate" && v.X509Certificate.Set {
				idx = i
				break
			}
		}
		if idx == -1 {
			// no more optional alternatives available at this state: take
			// the END_ELEMENT production, which is always last.
			idx = len(st.Productions) - 1
			if st.Productions[idx].Kind != exi.ProdEndElement {
				return exi.NewError(exi.ErrInvariantViolation, "X509Data: no particle to write at state %d", state)
			}
			if err := exi.WriteEventCode(bs, x509DataStates, state, idx); err != nil {
				return err
			}
			return nil
		}
		if err := exi.WriteEventCode(bs, x509DataStates, state, idx); err != nil {
			return err
		}
		switch st.Productions[idx].Particle {
		case "X509IssuerSerial":
			is := v.X509IssuerSerial.Value
			if err := EncodeX509IssuerSerial(bs, &is); err != nil {
				return err
			}
		case "X509Certificate":
			if err := exi.EncodeSimpleHexBinary(bs, v.X509Certificate.Value, MaxCertificateLen); err != nil {
				return err
			}
		}
		state = st.Productions[idx].Next
	}
	return nil
}

// DecodeKeyInfo implements the optional-X509Data shape.
func DecodeKeyInfo(bs *exi.Bitstream) (*KeyInfoType, error) {
	v := &KeyInfoType{}
	prod, err := exi.ReadEventCode(bs, keyInfoStates, kiStart)
	if err != nil {
		return nil, err
	}
	if prod.Kind == exi.ProdEndElement {
		return v, nil
	}
	xd, err := DecodeX509Data(bs)
	if err != nil {
		return nil, err
	}
	v.X509Data = exi.Some(*xd)
	if _, err := exi.ReadEventCode(bs, keyInfoStates, kiAfterX509Data); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeKeyInfo is the encode-side counterpart.
func EncodeKeyInfo(bs *exi.Bitstream, v *KeyInfoType) error {
	if v.X509Data.Set {
		if err := exi.WriteEventCode(bs, keyInfoStates, kiStart, 0); err != nil {
			return err
		}
		xd := v.X509Data.Value
		if err := EncodeX509Data(bs, &xd); err != nil {
			return err
		}
		return exi.WriteEventCode(bs, keyInfoStates, kiAfterX509Data, 0)
	}
	return exi.WriteEventCode(bs, keyInfoStates, kiStart, 1)
}

// DecodeSignature implements the document/fragment root shape: SignedInfo,
// SignatureValue, optional KeyInfo.
func DecodeSignature(bs *exi.Bitstream) (*SignatureType, error) {
	v := &SignatureType{}
	if _, err := exi.ReadEventCode(bs, signatureStates, sigStart); err != nil {
		return nil, err
	}
	si, err := DecodeSignedInfo(bs)
	if err != nil {
		return nil, err
	}
	v.SignedInfo = *si

	if _, err := exi.ReadEventCode(bs, signatureStates, sigAfterSignedInfo); err != nil {
		return nil, err
	}
	sv, err := exi.DecodeSimpleBase64Binary(bs, MaxSignatureLen)
	if err != nil {
		return nil, err
	}
	v.SignatureValue = sv

	prod, err := exi.ReadEventCode(bs, signatureStates, sigAfterSignatureValue)
	if err != nil {
		return nil, err
	}
	if prod.Kind == exi.ProdEndElement {
		return v, nil
	}
	ki, err := DecodeKeyInfo(bs)
	if err != nil {
		return nil, err
	}
	v.KeyInfo = exi.Some(*ki)
	if _, err := exi.ReadEventCode(bs, signatureStates, sigAfterKeyInfo); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeSignature is the encode-side counterpart.
func EncodeSignature(bs *exi.Bitstream, v *SignatureType) error {
	if err := exi.WriteEventCode(bs, signatureStates, sigStart, 0); err != nil {
		return err
	}
	if err := EncodeSignedInfo(bs, &v.SignedInfo); err != nil {
		return err
	}
	if err := exi.WriteEventCode(bs, signatureStates, sigAfterSignedInfo, 0); err != nil {
		return err
	}
	if err := exi.EncodeSimpleBase64Binary(bs, v.SignatureValue, MaxSignatureLen); err != nil {
		return err
	}
	if v.KeyInfo.Set {
		if err := exi.WriteEventCode(bs, signatureStates, sigAfterSignatureValue, 0); err != nil {
			return err
		}
		ki := v.KeyInfo.Value
		if err := EncodeKeyInfo(bs, &ki); err != nil {
			return err
		}
		return exi.WriteEventCode(bs, signatureStates, sigAfterKeyInfo, 0)
	}
	return exi.WriteEventCode(bs, signatureStates, sigAfterSignatureValue, 1)
}
