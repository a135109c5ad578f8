package ring

// ModExp performs the modular exponentiation x^e mod p,
// x and p are required to be at most 64 bits to avoid an overflow.
func ModExp(x, e, p uint64) (result uint64) {
	constants, err := GetMulModConstants(p)
	if err != nil {
		panic(err)
	}
	result = 1
	for i := e; i > 0; i >>= 1 {
		if i&1 == 1 {
			result = BRed(result, x, p, constants.BRedConstant)
		}
		x = BRed(x, x, p, constants.BRedConstant)
	}
	return result
}

// ModExpMontgomery performs the modular exponentiation x^e mod p,
// with x in the Montgomery form, and returns x^e in the Montgomery form.
func ModExpMontgomery(x uint64, e int, q, mredconstant uint64, bredconstant [2]uint64) (result uint64) {
	result = MForm(1, q, bredconstant)
	for i := e; i > 0; i >>= 1 {
		if i&1 == 1 {
			result = MRed(result, x, q, mredconstant)
		}
		x = MRed(x, x, q, mredconstant)
	}
	return result
}
