package valueobject

// AllCities - значение фильтра каталога без ограничения по городу.
const AllCities = "All Cities"

// MaxHourlyRate - верхняя граница ставки при регистрации, в рупиях.
const MaxHourlyRate = 100000

// DefaultHourlyRate подставляется, если юрист не указал ставку.
const DefaultHourlyRate = 1500

var Cities = []string{"Delhi", "Mumbai", "Bangalore", "Chennai", "Hyderabad", "Pune", "Kolkata"}

var Specializations = []string{
	"UPI Fraud",
	"Phishing",
	"Banking Fraud",
	"Investment Scam",
	"Aadhaar Fraud",
	"Identity Theft",
	"Ransomware",
}

func IsKnownCity(city string) bool {
	return contains(Cities, city)
}

func IsKnownSpecialization(spec string) bool {
	return contains(Specializations, spec)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
