package mpin

// Sequential reports whether every adjacent digit pair steps by the same +1
// or -1, wrapping through the 0-9 cycle. "8901" ascends through the wrap and
// "9876" descends; constant steps other than one keypress ("2468") do not
// count.
func Sequential(pin string) bool {
	if len(pin) < 3 {
		return false
	}
	step := (int(pin[1]) - int(pin[0]) + 10) % 10
	if step != 1 && step != 9 {
		return false
	}
	for i := 1; i < len(pin)-1; i++ {
		if (int(pin[i+1])-int(pin[i])+10)%10 != step {
			return false
		}
	}
	return true
}

// Repeated reports whether pin is a short unit repeated to fill its length:
// a single digit ("1111"), a two-digit unit ("1212", "121212"), or for
// six-digit PINs a three-digit unit ("123123").
func Repeated(pin string) bool {
	n := len(pin)
	if n < 2 {
		return false
	}
	for unit := 1; unit <= n/2; unit++ {
		if n%unit != 0 {
			continue
		}
		match := true
		for i := unit; i < n; i++ {
			if pin[i] != pin[i-unit] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// Palindrome reports whether pin reads identically in both directions.
func Palindrome(pin string) bool {
	for i, j := 0, len(pin)-1; i < j; i, j = i+1, j-1 {
		if pin[i] != pin[j] {
			return false
		}
	}
	return len(pin) > 0
}
