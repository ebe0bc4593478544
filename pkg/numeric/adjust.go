package numeric

// AdjustFloat32s applies v[i] = v[i]*scale + shift in place, skipping
// whichever halves of the transform are identities.
func AdjustFloat32s(v []float32, scale, shift float32) {
	switch {
	case scale != 1 && shift != 0:
		parallel(len(v), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				v[i] = v[i]*scale + shift
			}
		})
	case scale != 1:
		parallel(len(v), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				v[i] *= scale
			}
		})
	case shift != 0:
		parallel(len(v), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				v[i] += shift
			}
		})
	}
}

// AdjustFloat64s applies v[i] = v[i]*scale + shift in place.
func AdjustFloat64s(v []float64, scale, shift float64) {
	switch {
	case scale != 1 && shift != 0:
		parallel(len(v), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				v[i] = v[i]*scale + shift
			}
		})
	case scale != 1:
		parallel(len(v), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				v[i] *= scale
			}
		})
	case shift != 0:
		parallel(len(v), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				v[i] += shift
			}
		})
	}
}

// AdjustInt32s applies v[i] = v[i]*scale + shift in place.
func AdjustInt32s(v []int32, scale, shift int32) {
	switch {
	case scale != 1 && shift != 0:
		parallel(len(v), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				v[i] = v[i]*scale + shift
			}
		})
	case scale != 1:
		parallel(len(v), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				v[i] *= scale
			}
		})
	case shift != 0:
		parallel(len(v), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				v[i] += shift
			}
		})
	}
}
