package bitcursor

// getBits returns n bits of buf starting at bit pos, most significant bit
// first.  n is at most 64.  The bits are taken a byte at a time.
func getBits(buf []byte, pos, n uint) uint64 {
	var v uint64
	for n > 0 {
		offset := pos % 8
		take := 8 - offset
		if take > n {
			take = n
		}
		chunk := uint64(buf[pos/8]) >> (8 - offset - take) & (1<<take - 1)
		v = v<<take | chunk
		pos += take
		n -= take
	}
	return v
}

// signExtend treats the bottom n bits of v as a two's complement number.
func signExtend(v uint64, n uint) int64 {
	if n == 0 || n >= 64 {
		return int64(v)
	}
	shift := 64 - n
	return int64(v<<shift) >> shift
}

// putBits writes the bottom n bits of v into buf starting at bit pos.  The
// bits around them are left alone.
func putBits(buf []byte, pos, n uint, v uint64) {
	for n > 0 {
		offset := pos % 8
		take := 8 - offset
		if take > n {
			take = n
		}
		shift := 8 - offset - take
		mask := byte(1<<take-1) << shift
		chunk := byte(v>>(n-take)) << shift
		buf[pos/8] = buf[pos/8]&^mask | chunk&mask
		pos += take
		n -= take
	}
}
