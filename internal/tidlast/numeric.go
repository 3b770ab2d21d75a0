package tidlast

import "strconv"

// trimFloat renders f the way a numeric literal should look in emitted TIDL:
// integral values print without a trailing ".0", matching how the reference
// printer displays f64 numeric literals.
func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
