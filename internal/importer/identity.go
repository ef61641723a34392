package importer

// ResolveID derives a stable identity for an imported record from its
// business key (PMO ID + order number). Rows where both keys are blank fall
// back to their batch position, which is not stable across reorderings; that
// only affects draft rows that have no identity of their own yet.
//
// The hash is the 32-bit rolling polynomial h = h*31 + codeunit over
// "{pmoID}-{order}", wrapped to signed 32 bits, absolute value. Collisions
// between distinct key pairs are theoretically possible and deliberately not
// handled at this scale.
func ResolveID(pmoID, order string, position int) int64 {
	if pmoID == "" && order == "" {
		return int64(position + 1)
	}
	var h int32
	for _, r := range pmoID + "-" + order {
		h = h*31 + int32(r)
	}
	id := int64(h)
	if id < 0 {
		id = -id
	}
	if id == 0 {
		return int64(position + 1)
	}
	return id
}
