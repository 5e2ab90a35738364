package burn

// AgeGroup identifies one of the six Lund-Browder age bands. Values are the
// band's lower bound in years as printed on the reference chart.
type AgeGroup string

const (
	AgeGroupInfant  AgeGroup = "0"
	AgeGroupOne     AgeGroup = "1"
	AgeGroupFive    AgeGroup = "5"
	AgeGroupTen     AgeGroup = "10"
	AgeGroupFifteen AgeGroup = "15"
	AgeGroupAdult   AgeGroup = "Adult"
)

// AgeGroups lists every band in ascending age order.
var AgeGroups = []AgeGroup{
	AgeGroupInfant,
	AgeGroupOne,
	AgeGroupFive,
	AgeGroupTen,
	AgeGroupFifteen,
	AgeGroupAdult,
}

// Valid age domain in months (0 through 100 years).
const (
	MinAgeMonths = 0.0
	MaxAgeMonths = 1200.0
)

// ClassifyAge maps an age in months to its Lund-Browder age band. Every age
// in [0, 1200] months maps to exactly one band; anything outside that domain
// is a RangeError.
func ClassifyAge(ageMonths float64) (AgeGroup, error) {
	if err := checkRange("ageMonths", ageMonths, MinAgeMonths, MaxAgeMonths); err != nil {
		return "", err
	}
	years := ageMonths / 12
	switch {
	case years < 1:
		return AgeGroupInfant, nil
	case years < 5:
		return AgeGroupOne, nil
	case years < 10:
		return AgeGroupFive, nil
	case years < 15:
		return AgeGroupTen, nil
	case years < 18:
		return AgeGroupFifteen, nil
	default:
		return AgeGroupAdult, nil
	}
}
