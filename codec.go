package binuuid

// TextToBinary decodes the canonical text form and, if swap is set,
// reorders the result into storage order.
func TextToBinary(text string, swap bool) (UUID, error) {
	bin, err := Parse(text)
	if err != nil {
		return Nil, err
	}
	if swap {
		return bin.ToStorageOrder(), nil
	}
	return bin, nil
}

// BinaryToText is the inverse of TextToBinary. bin must be in storage order
// when swap is set.
func BinaryToText(bin UUID, swap bool) string {
	if swap {
		bin = bin.FromStorageOrder()
	}
	return bin.String()
}

// UUIDToBin is TextToBinary over raw buffers. The returned slice is always
// BinaryLength bytes on success.
func UUIDToBin(text []byte, swap bool) ([]byte, error) {
	bin, err := TextToBinary(string(text), swap)
	if err != nil {
		return nil, err
	}
	return bin[:], nil
}

// BinToUUID is BinaryToText over raw buffers. It fails only when bin is not
// BinaryLength bytes long.
func BinToUUID(bin []byte, swap bool) ([]byte, error) {
	u, err := FromBytes(bin)
	if err != nil {
		return nil, err
	}
	if swap {
		u = u.FromStorageOrder()
	}
	return u.MarshalText()
}
