// README: Fare rate definitions per vehicle class.
package pricing

type Rate struct {
	Class    string
	BaseFare float64
	PerKm    float64
	Currency string
}

// Vehicle classes the fleet operates. Unknown classes are rejected at trip
// creation, never priced with a fallback rate.
const (
	ClassEconomy = "Economy"
	ClassLarge   = "Large"
	ClassVIP     = "VIP"
	ClassPet     = "Pet"
)

const defaultCurrency = "EGP"

var rates = map[string]Rate{
	ClassEconomy: {Class: ClassEconomy, BaseFare: 20, PerKm: 5, Currency: defaultCurrency},
	ClassLarge:   {Class: ClassLarge, BaseFare: 30, PerKm: 7, Currency: defaultCurrency},
	ClassVIP:     {Class: ClassVIP, BaseFare: 50, PerKm: 10, Currency: defaultCurrency},
	ClassPet:     {Class: ClassPet, BaseFare: 25, PerKm: 6, Currency: defaultCurrency},
}

// KnownClass reports whether the class has a configured rate.
func KnownClass(class string) bool {
	_, ok := rates[class]
	return ok
}
