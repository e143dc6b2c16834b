package binuuid

// ToStorageOrder moves time_hi_and_version to the front, followed by
// time_mid and time_low, so that version 1 UUIDs generated close together in
// time share a prefix and sort roughly by creation time in an index.
// Bytes 8-15 (clock_seq and node) are copied unchanged.
func (u UUID) ToStorageOrder() UUID {
	var s UUID
	s[0], s[1] = u[6], u[7]
	s[2], s[3] = u[4], u[5]
	s[4], s[5], s[6], s[7] = u[0], u[1], u[2], u[3]
	copy(s[8:], u[8:])
	return s
}

// FromStorageOrder reverts ToStorageOrder.
func (u UUID) FromStorageOrder() UUID {
	var n UUID
	n[0], n[1], n[2], n[3] = u[4], u[5], u[6], u[7]
	n[4], n[5] = u[2], u[3]
	n[6], n[7] = u[0], u[1]
	copy(n[8:], u[8:])
	return n
}
