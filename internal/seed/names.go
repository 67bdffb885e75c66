package seed

// First names - globally diverse, accented entries fold cleanly to ASCII
// for email derivation.
var firstNames = []string{
	"Aisha", "Alice", "Amara", "Anders", "Astrid", "Ayo",
	"Björn", "Bob", "Camila", "Carol", "Chidi", "Daniel",
	"Diego", "Elena", "Émile", "Farah", "Gabriel", "Hana",
	"Hiroshi", "Imani", "Ines", "Jin", "José", "Kenji",
	"Layla", "Lucia", "Marcus", "Mateo", "Mei", "Nadia",
	"Nasir", "Noor", "Olga", "Omar", "Priya", "Rafael",
	"Renée", "Sofia", "Soraya", "Tariq", "Vera", "Vikram",
	"Wren", "Yuki", "Zara", "Zoë",
}

// Last names.
var lastNames = []string{
	"Abara", "Ahmed", "Andersson", "Bailey", "Böhm", "Brown",
	"Chen", "Costa", "Diallo", "Durand", "Dvořák", "Fernandez",
	"García", "Hart", "Haugen", "Ivanova", "Johnson", "Kimura",
	"Kowalski", "Lowe", "Mbeki", "Muñoz", "Nakamura", "Nguyen",
	"Okafor", "Okonkwo", "Patel", "Price", "Rahman", "Rossi",
	"Sato", "Silva", "Singh", "Smith", "Tanaka", "Yilmaz",
}

// Email providers used for derived addresses.
var emailDomains = []string{
	"gmail.com", "yahoo.com", "outlook.com",
	"icloud.com", "proton.me", "fastmail.com",
}

// registryTags is the initial tag registry, kept sorted case-insensitively.
// Contact tags draw from the same table so seeded data stays discoverable
// through the registry.
var registryTags = []string{
	"Family", "Friends", "Gym", "Neighbours", "School", "Work",
}
