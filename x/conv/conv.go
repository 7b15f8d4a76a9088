// Package conv has allocation-free number formatting for MCU builds, where
// pulling in fmt is too expensive.
package conv

// AppendUint appends the base-10 representation of n to dst.
func AppendUint(dst []byte, n uint64) []byte {
	var buf [20]byte
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return append(dst, buf[i:]...)
}

// AppendHex8 appends b as "0x" and two lowercase hex digits.
func AppendHex8(dst []byte, b uint8) []byte {
	const hexd = "0123456789abcdef"
	return append(dst, '0', 'x', hexd[b>>4], hexd[b&0xF])
}

// AppendInt appends the base-10 representation of n, with a leading '-' when
// negative.
func AppendInt(dst []byte, n int64) []byte {
	if n < 0 {
		dst = append(dst, '-')
		return AppendUint(dst, uint64(-n))
	}
	return AppendUint(dst, uint64(n))
}
