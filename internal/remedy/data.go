package remedy

// Policy snapshot tables. The rates, lists and heading prefixes below mirror
// a specific policy period and are expected to be updated as USTR/BIS actions
// change; the lookup logic only depends on their shape.

// countryNames maps ISO 3166-1 alpha-2 codes to display names for the
// countries the service commonly sees.
var countryNames = map[string]string{
	"CN": "China",
	"VN": "Vietnam",
	"MX": "Mexico",
	"CA": "Canada",
	"IN": "India",
	"BD": "Bangladesh",
	"DE": "Germany",
	"JP": "Japan",
	"KR": "South Korea",
	"TW": "Taiwan",
	"TH": "Thailand",
	"AU": "Australia",
}

// section301Country is the designated Section 301 target country.
const section301Country = "CN"

// section301TextileChapters are the 2-digit chapters (apparel/textiles) that
// fall under List 4A at the reduced rate; everything else from the target
// country falls under Lists 1-3.
var section301TextileChapters = map[string]bool{
	"61": true,
	"62": true,
	"63": true,
}

const (
	section301TextileRate = 7.5
	section301DefaultRate = 25
)

// section232SteelHeadings are the 4-digit steel headings subject to the 25%
// national-security tariff.
var section232SteelHeadings = []string{
	"7206", "7207", "7208", "7209", "7210", "7211", "7212",
	"7213", "7214", "7215", "7216", "7217", "7218", "7219",
	"7220", "7221", "7222", "7223", "7224", "7225", "7226",
	"7227", "7228", "7229",
}

// section232AluminumHeadings are the aluminum headings subject to the 10%
// national-security tariff.
var section232AluminumHeadings = []string{
	"7601", "7604", "7605", "7606", "7607", "7608", "7609",
}

const (
	section232SteelRate    = 25
	section232AluminumRate = 10
)

// ftaAgreements lists free-trade agreements and their partner countries, in
// stable output order.
var ftaAgreements = []struct {
	Name     string
	Partners []string
}{
	{"USMCA", []string{"MX", "CA"}},
	{"KORUS FTA", []string{"KR"}},
	{"AUSFTA", []string{"AU"}},
}
