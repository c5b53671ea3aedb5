package agent

import "github.com/KilimcininKorOglu/dsagent/internal/secretcrypto"

// GetSecretDecryptor implements §4.1.5's policy table. The cursor's
// position is saved before any index switch and restored on every exit
// path, including errors, because the cursor is shared with the caller's
// in-flight enumeration.
func (a *Agent) GetSecretDecryptor(bootKey []byte) (dec *secretcrypto.Decryptor, err error) {
	cur := a.ctx.Cursor()
	loc := cur.SaveLocation()
	defer func() {
		if restoreErr := cur.RestoreLocation(loc); restoreErr != nil && err == nil {
			dec, err = nil, wrapStorageErr(restoreErr)
		}
	}()

	header := a.ctx.DCHeader()
	variant, state, domainNC, configNC, schemaNC := header.Snapshot()

	if state == StateBoot {
		return nil, nil
	}

	switch variant {
	case ADDS:
		if isZeroOrEmpty(bootKey) {
			return nil, nil
		}
		if len(bootKey) != secretcrypto.BootKeyLength {
			return nil, &InvalidArgumentError{Param: "bootKey"}
		}
		if domainNC == nil {
			return nil, &NotFoundError{Identifier: "domain"}
		}
		blob, err := a.readAttributeBytes(*domainNC, AttrPEKList)
		if err != nil {
			return nil, err
		}
		return secretcrypto.NewDecryptor(blob, bootKey)

	default: // ADLDS
		rootFragment, err := a.readAttributeBytes(configNC, AttrBootKeyFragment)
		if err != nil {
			return nil, err
		}
		schemaFragment, err := a.readAttributeBytes(schemaNC, AttrBootKeyFragment)
		if err != nil {
			return nil, err
		}
		composed := secretcrypto.ComposeLDSBootKey(rootFragment, schemaFragment)

		blob, err := a.readAttributeBytes(configNC, AttrPEKList)
		if err != nil {
			return nil, err
		}
		return secretcrypto.NewDecryptor(blob, composed)
	}
}

// readAttributeBytes finds the object at dnt and returns attr as a byte
// slice, used to pull the PEK-list blob and the ADLDS boot-key fragments
// off their holder objects.
func (a *Agent) readAttributeBytes(dnt DNT, attr AttributeID) ([]byte, error) {
	view, err := a.FindObject(ByDNT(dnt))
	if err != nil {
		return nil, err
	}
	raw, ok := view.ReadAttribute(attr)
	if !ok {
		return nil, &NotFoundError{Identifier: ByDNT(dnt).String()}
	}
	blob, ok := raw.([]byte)
	if !ok {
		return nil, &StorageError{Inner: errAttributeTypeMismatch}
	}
	return blob, nil
}

func isZeroOrEmpty(key []byte) bool {
	if len(key) == 0 {
		return true
	}
	for _, b := range key {
		if b != 0 {
			return false
		}
	}
	return true
}
