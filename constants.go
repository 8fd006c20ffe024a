package specials

// Compiled-in constants. Conversion factors are written to 17 significant
// digits so the decimal literal round-trips to the exact float64.
const (
	// degPerRad is 180/π, the degrees-per-radian conversion.
	degPerRad = 57.29577951308232
	// sqrt2Pi is √(2π), the Lanczos core prefactor.
	sqrt2Pi = 2.5066282746310002
	// sqrt2 is √2, the erf argument scaling.
	sqrt2 = 1.4142135623730951
	// lanczosG is the Lanczos "g" parameter paired with the nine-term
	// coefficient set below.
	lanczosG = 7
)

// lanczosCoeff is the g=7, nine-term Lanczos coefficient set. Accurate to
// roughly 15 significant digits for arguments handled by the stable branch.
var lanczosCoeff = [9]float64{
	0.99999999999980993,
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-06,
	1.5056327351493116e-07,
}
