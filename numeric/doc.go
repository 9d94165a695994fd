// Package numeric holds small numeric helpers: rounding a value to a multiple
// and generating integer ranges. It also declares the Number and Integer type
// constraints shared by the other generic packages of this module.
package numeric
