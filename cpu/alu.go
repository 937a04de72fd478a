package cpu

import (
	"math/bits"
)

// The ALU is a set of pure functions: operands and the relevant incoming
// flags go in, the result byte and the complete new flag state come out.
// Nothing here touches CPU or memory state.

// szp computes the three flags that depend only on the result byte.
func szp(r uint8) (fl Flags) {
	fl.S = r&0x80 != 0
	fl.Z = r == 0
	fl.P = bits.OnesCount8(r)%2 == 0

	return
}

// AluAdd adds b and a carry-in bit to a.
func AluAdd(a, b, carry uint8) (r uint8, fl Flags) {
	sum := uint16(a) + uint16(b) + uint16(carry)
	r = uint8(sum)

	fl = szp(r)
	fl.CY = sum > 0xff
	fl.AC = (a&0x0f)+(b&0x0f)+carry > 0x0f

	return
}

// AluSub subtracts b and a borrow-in bit from a. CY is the borrow out of
// bit 7, AC the borrow into bit 4.
func AluSub(a, b, borrow uint8) (r uint8, fl Flags) {
	r = a - b - borrow

	fl = szp(r)
	fl.CY = uint16(b)+uint16(borrow) > uint16(a)
	fl.AC = (b&0x0f)+borrow > a&0x0f

	return
}

// AluAnd computes a AND b. Logical operations reset CY and AC.
func AluAnd(a, b uint8) (r uint8, fl Flags) {
	r = a & b
	fl = szp(r)

	return
}

// AluXor computes a XOR b. Logical operations reset CY and AC.
func AluXor(a, b uint8) (r uint8, fl Flags) {
	r = a ^ b
	fl = szp(r)

	return
}

// AluOr computes a OR b. Logical operations reset CY and AC.
func AluOr(a, b uint8) (r uint8, fl Flags) {
	r = a | b
	fl = szp(r)

	return
}

// AluInc increments v. The returned flags leave CY cleared; INR never
// changes CY, so the executor carries the old value over.
func AluInc(v uint8) (r uint8, fl Flags) {
	r = v + 1
	fl = szp(r)
	fl.AC = v&0x0f+1 > 0x0f

	return
}

// AluDec decrements v. The returned flags leave CY cleared; DCR never
// changes CY, so the executor carries the old value over.
func AluDec(v uint8) (r uint8, fl Flags) {
	r = v - 1
	fl = szp(r)
	fl.AC = v&0x0f == 0

	return
}

// AluRlc rotates a left one bit. The bit rotated out of bit 7 becomes
// both the carry and bit 0.
func AluRlc(a uint8) (r uint8, cy bool) {
	cy = a&0x80 != 0
	r = a<<1 | a>>7

	return
}

// AluRrc rotates a right one bit. The bit rotated out of bit 0 becomes
// both the carry and bit 7.
func AluRrc(a uint8) (r uint8, cy bool) {
	cy = a&0x01 != 0
	r = a>>1 | a<<7

	return
}

// AluRal rotates a left through the carry: a 9-bit rotation where the old
// carry enters at bit 0 and bit 7 leaves into the carry.
func AluRal(a uint8, carry bool) (r uint8, cy bool) {
	cy = a&0x80 != 0
	r = a << 1
	if carry {
		r |= 0x01
	}

	return
}

// AluRar rotates a right through the carry: a 9-bit rotation where the old
// carry enters at bit 7 and bit 0 leaves into the carry.
func AluRar(a uint8, carry bool) (r uint8, cy bool) {
	cy = a&0x01 != 0
	r = a >> 1
	if carry {
		r |= 0x80
	}

	return
}

// AluDaa decimal-adjusts the accumulator after a BCD addition. If the low
// nibble exceeds 9 or AC is set, 6 is added and AC records the adjustment;
// if the resulting high nibble then exceeds 9 or CY is set, 0x60 is added
// and CY is set. S, Z and P are recomputed from the final value.
func AluDaa(a uint8, fl Flags) (r uint8, out Flags) {
	r = a

	lo := r&0x0f > 9 || fl.AC
	if lo {
		r += 0x06
	}

	hi := r>>4 > 9 || fl.CY
	if hi {
		r += 0x60
	}

	out = szp(r)
	out.AC = lo
	out.CY = hi

	return
}
