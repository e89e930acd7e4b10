package faker

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
)

type britishLocale struct{}

var (
	gbFirstNames = []string{
		"Oliver", "George", "Harry", "Jack", "Jacob", "Noah", "Charlie", "Thomas",
		"Oscar", "William", "James", "Henry", "Leo", "Alfie", "Joshua", "Freddie",
		"Olivia", "Amelia", "Isla", "Ava", "Emily", "Sophie", "Grace", "Lily",
		"Mia", "Poppy", "Ella", "Jessica", "Evie", "Isabella", "Charlotte", "Ruby",
		"Eleanor", "Margaret", "Susan", "David", "Ian", "Graham", "Alan", "Janet",
	}
	gbLastNames = []string{
		"Smith", "Jones", "Williams", "Taylor", "Brown", "Davies", "Evans", "Wilson",
		"Thomas", "Johnson", "Roberts", "Robinson", "Thompson", "Wright", "Walker", "White",
		"Edwards", "Hughes", "Green", "Hall", "Lewis", "Harris", "Clarke", "Patel",
		"Jackson", "Wood", "Turner", "Martin", "Cooper", "Hill", "Ward", "Morris",
		"Moore", "Clark", "Lee", "King", "Baker", "Harrison", "Morgan", "Allen",
	}
	gbCities = []string{
		"London", "Birmingham", "Manchester", "Leeds", "Liverpool", "Sheffield", "Bristol", "Newcastle upon Tyne",
		"Nottingham", "Leicester", "Coventry", "Bradford", "Cardiff", "Swansea", "Edinburgh", "Glasgow",
		"Aberdeen", "Dundee", "Belfast", "Southampton", "Portsmouth", "Plymouth", "Exeter", "Norwich",
		"Cambridge", "Oxford", "York", "Hull", "Derby", "Stoke-on-Trent", "Brighton", "Reading",
		"Milton Keynes", "Northampton", "Preston", "Sunderland", "Wolverhampton", "Bath", "Lincoln", "Inverness",
	}
	gbPostcodeAreas = []string{
		"AB", "B", "BA", "BN", "BS", "CB", "CF", "CV", "DE", "DN", "E", "EC",
		"EH", "EX", "G", "HU", "IV", "L", "LE", "LN", "LS", "M", "MK", "N",
		"NE", "NG", "NN", "NR", "NW", "OX", "PL", "PO", "PR", "RG", "S", "SA",
		"SE", "SO", "SR", "ST", "SW", "W", "WV", "YO",
	}
	// Inward-code letters never include C, I, K, M, O or V.
	gbInwardLetters = "ABDEFGHJLNPQRSTUWXYZ"
)

func (britishLocale) firstName(f *gofakeit.Faker) string {
	return f.RandomString(gbFirstNames)
}

func (britishLocale) lastName(f *gofakeit.Faker) string {
	return f.RandomString(gbLastNames)
}

func (britishLocale) city(f *gofakeit.Faker) string {
	return f.RandomString(gbCities)
}

// postcode builds "<area><district> <sector><unit>", e.g. "LS12 4QX"
func (britishLocale) postcode(f *gofakeit.Faker) string {
	area := f.RandomString(gbPostcodeAreas)
	district := f.IntRange(1, 29)
	sector := f.IntRange(0, 9)
	unit := []byte{
		gbInwardLetters[f.IntRange(0, len(gbInwardLetters)-1)],
		gbInwardLetters[f.IntRange(0, len(gbInwardLetters)-1)],
	}
	return fmt.Sprintf("%s%d %d%s", area, district, sector, unit)
}

type americanLocale struct{}

func (americanLocale) firstName(f *gofakeit.Faker) string {
	return f.FirstName()
}

func (americanLocale) lastName(f *gofakeit.Faker) string {
	return f.LastName()
}

func (americanLocale) city(f *gofakeit.Faker) string {
	return f.City()
}

func (americanLocale) postcode(f *gofakeit.Faker) string {
	return f.Zip()
}
