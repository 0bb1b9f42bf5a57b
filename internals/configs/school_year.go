package configs

// WeekDateRange borne une semaine scolaire (dates ISO, dimanche → jeudi).
type WeekDateRange struct {
	Start string
	End   string
}

// WeekDateRanges fige le calendrier de l'année scolaire 2024/2025.
// Les semaines 49 à 53 restent des numéros valides côté API mais n'ont
// pas de dates : les exports datés échouent alors explicitement.
var WeekDateRanges = map[int]WeekDateRange{
	1:  {Start: "2024-08-25", End: "2024-08-29"},
	2:  {Start: "2024-09-01", End: "2024-09-05"},
	3:  {Start: "2024-09-08", End: "2024-09-12"},
	4:  {Start: "2024-09-15", End: "2024-09-19"},
	5:  {Start: "2024-09-22", End: "2024-09-26"},
	6:  {Start: "2024-09-29", End: "2024-10-03"},
	7:  {Start: "2024-10-06", End: "2024-10-10"},
	8:  {Start: "2024-10-13", End: "2024-10-17"},
	9:  {Start: "2024-10-20", End: "2024-10-24"},
	10: {Start: "2024-10-27", End: "2024-10-31"},
	11: {Start: "2024-11-03", End: "2024-11-07"},
	12: {Start: "2024-11-10", End: "2024-11-14"},
	13: {Start: "2024-11-17", End: "2024-11-21"},
	14: {Start: "2024-11-24", End: "2024-11-28"},
	15: {Start: "2024-12-01", End: "2024-12-05"},
	16: {Start: "2024-12-08", End: "2024-12-12"},
	17: {Start: "2024-12-15", End: "2024-12-19"},
	18: {Start: "2024-12-22", End: "2024-12-26"},
	19: {Start: "2024-12-29", End: "2025-01-02"},
	20: {Start: "2025-01-05", End: "2025-01-09"},
	21: {Start: "2025-01-12", End: "2025-01-16"},
	22: {Start: "2025-01-19", End: "2025-01-23"},
	23: {Start: "2025-01-26", End: "2025-01-30"},
	24: {Start: "2025-02-02", End: "2025-02-06"},
	25: {Start: "2025-02-09", End: "2025-02-13"},
	26: {Start: "2025-02-16", End: "2025-02-20"},
	27: {Start: "2025-02-23", End: "2025-02-27"},
	28: {Start: "2025-03-02", End: "2025-03-06"},
	29: {Start: "2025-03-09", End: "2025-03-13"},
	30: {Start: "2025-03-16", End: "2025-03-20"},
	31: {Start: "2025-03-23", End: "2025-03-27"},
	32: {Start: "2025-03-30", End: "2025-04-03"},
	33: {Start: "2025-04-06", End: "2025-04-10"},
	34: {Start: "2025-04-13", End: "2025-04-17"},
	35: {Start: "2025-04-20", End: "2025-04-24"},
	36: {Start: "2025-04-27", End: "2025-05-01"},
	37: {Start: "2025-05-04", End: "2025-05-08"},
	38: {Start: "2025-05-11", End: "2025-05-15"},
	39: {Start: "2025-05-18", End: "2025-05-22"},
	40: {Start: "2025-05-25", End: "2025-05-29"},
	41: {Start: "2025-06-01", End: "2025-06-05"},
	42: {Start: "2025-06-08", End: "2025-06-12"},
	43: {Start: "2025-06-15", End: "2025-06-19"},
	44: {Start: "2025-06-22", End: "2025-06-26"},
	45: {Start: "2025-06-29", End: "2025-07-03"},
	46: {Start: "2025-07-06", End: "2025-07-10"},
	47: {Start: "2025-07-13", End: "2025-07-17"},
	48: {Start: "2025-07-20", End: "2025-07-24"},
}
