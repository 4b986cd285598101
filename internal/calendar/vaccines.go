package calendar

import (
	"fmt"
)

const defaultColor = "#888"

type vaccineInfo struct {
	label string
	color string
}

// catalog maps vaccine type codes to their display label and color.
var catalog = map[string]vaccineInfo{
	"BCG":  {"결핵", "#6b7ae3"},
	"HepB": {"B형간염", "#f0ad4e"},
	"DTaP": {"디프테리아/파상풍/백일해", "#5bc0de"},
	"Tdap": {"파상풍/디프테리아/백일해", "#5bc0de"},
	"IPV":  {"소아마비", "#5cb85c"},
	"Hib":  {"b형 헤모필루스", "#d9534f"},
	"PCV":  {"폐렴구균", "#17a2b8"},
	"MMR":  {"홍역/유행성이하선염/풍진", "#f06292"},
	"VAR":  {"수두", "#ba68c8"},
	"HepA": {"A형간염", "#ff7043"},
	"IJEV": {"일본뇌염(불활성화)", "#9575cd"},
	"LJEV": {"일본뇌염(생백신)", "#7986cb"},
	"HPV":  {"사람유두종바이러스", "#4db6ac"},
	"RV1":  {"로타바이러스(1가)", "#81c784"},
	"RV5":  {"로타바이러스(5가)", "#81c784"},
}

// Label returns the Korean name of a vaccine code, or the code itself.
func Label(code string) string {
	if v, ok := catalog[code]; ok {
		return v.label
	}
	return code
}

// Color returns the indicator color of a vaccine code.
func Color(code string) string {
	if v, ok := catalog[code]; ok {
		return v.color
	}
	return defaultColor
}

func markLabel(s Schedule) string {
	status := "접종예정"
	if s.Completed {
		status = "접종완료"
	}
	name := s.DiseaseName
	if name == "" {
		name = Label(s.VaccineCode)
	}
	if s.VaccineName != "" {
		name = fmt.Sprintf("%s (%s)", name, s.VaccineName)
	}
	return fmt.Sprintf("%s %d차 - %s", name, s.DoseNumber, status)
}
