package common

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach moves current toward target by at most step and never
// overshoots.
func Approach(current, target, step float64) float64 {
	if current < target {
		current += step
		if current > target {
			return target
		}
		return current
	}
	current -= step
	if current < target {
		return target
	}
	return current
}
