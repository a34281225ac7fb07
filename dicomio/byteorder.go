package dicomio

import "encoding/binary"

// nativeByteOrder is observed once at process startup (spec.md §3: "A
// 'platform endian' is observed once at startup") by asking the runtime
// directly, rather than assuming little-endian the way the teacher's
// hardcoded `var NativeByteOrder = binary.LittleEndian` did.
var nativeByteOrder binary.ByteOrder

func init() {
	nativeByteOrder = detectNativeByteOrder()
}

func detectNativeByteOrder() binary.ByteOrder {
	var probe uint16 = 0x0102
	buf := make([]byte, 2)
	binary.NativeEndian.PutUint16(buf, probe)
	if buf[0] == 0x02 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// NativeByteOrder returns this process's platform byte order, used by the
// decoder's endian-aware integer reads (spec.md §4.4.5) to decide whether
// wire bytes need swapping.
func NativeByteOrder() binary.ByteOrder {
	return nativeByteOrder
}
