package scoring

// RefDataVersion identifies the editorial reference data bundled with
// this build. The checklist and keyword list are content, not logic;
// only the category structure and point allocations are contractual.
const RefDataVersion = "2025.1"

// EssentialCategory is one group of the essential-amenity checklist.
// A group counts as covered when any listed amenity name contains any
// of its items, case-insensitively.
type EssentialCategory struct {
	Name  string
	Items []string
}

// DefaultEssentials returns the bundled eight-group checklist.
func DefaultEssentials() []EssentialCategory {
	return []EssentialCategory{
		{Name: "Internet & workspace", Items: []string{"wifi", "internet", "dedicated workspace"}},
		{Name: "Kitchen", Items: []string{"kitchen", "refrigerator", "microwave", "cooking basics"}},
		{Name: "Laundry", Items: []string{"washer", "dryer", "laundry"}},
		{Name: "Climate control", Items: []string{"air conditioning", "heating", "ceiling fan"}},
		{Name: "Safety", Items: []string{"smoke alarm", "carbon monoxide alarm", "first aid kit", "fire extinguisher"}},
		{Name: "Bathroom basics", Items: []string{"shampoo", "hot water", "hair dryer", "towels"}},
		{Name: "Entertainment", Items: []string{"tv", "television", "streaming"}},
		{Name: "Parking", Items: []string{"free parking", "parking", "ev charger"}},
	}
}

// DefaultLuxuryKeywords returns the keywords that mark a property type
// as luxury for the cancellation policy lookup.
func DefaultLuxuryKeywords() []string {
	return []string{"luxury", "luxe", "villa", "penthouse", "mansion", "estate", "castle", "chalet"}
}
