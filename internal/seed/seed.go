// Package seed provides synthetic startup data for the contact store and
// tag registry.
package seed

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jalvarado/contacts-api/internal/domain"
)

// NewRNG creates a seeded random number generator.
// If seed is 0, uses the current time so every start gets fresh data.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Tags returns the initial tag registry, sorted case-insensitively.
func Tags() []string {
	return slices.Clone(registryTags)
}

// Contacts generates n synthetic contacts from the name tables. A fixed
// source reproduces the exact same collection, ids included.
func Contacts(rng *rand.Rand, n int) []*domain.Contact {
	contacts := make([]*domain.Contact, 0, n)
	for i := 0; i < n; i++ {
		contacts = append(contacts, newContact(rng))
	}
	return contacts
}

func newContact(rng *rand.Rand) *domain.Contact {
	first := firstNames[rng.Intn(len(firstNames))]
	last := lastNames[rng.Intn(len(lastNames))]

	contact := &domain.Contact{
		ID:         newID(rng),
		Name:       first + " " + last,
		Phone:      fmt.Sprintf("(%03d) 555-%04d", 200+rng.Intn(800), rng.Intn(10000)),
		IsFavorite: rng.Intn(4) == 0,
		Tags:       pickTags(rng),
	}

	// A share of contacts stay without email or avatar so listings look
	// like a collection real users half-filled.
	if rng.Intn(5) != 0 {
		host := emailDomains[rng.Intn(len(emailDomains))]
		contact.Email = fmt.Sprintf("%s.%s@%s", emailLocal(first), emailLocal(last), host)
	}
	if rng.Intn(6) != 0 {
		contact.ImageURL = fmt.Sprintf("https://i.pravatar.cc/150?img=%d", 1+rng.Intn(70))
	}
	return contact
}

// newID derives a v4 UUID from the generator's source so deterministic
// seeds stay deterministic end to end.
func newID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func pickTags(rng *rand.Rand) []string {
	count := rng.Intn(4)
	tags := make([]string, 0, count)
	for _, idx := range rng.Perm(len(registryTags))[:count] {
		tags = append(tags, registryTags[idx])
	}
	return tags
}

// emailFold strips the combining marks accented table names carry, keeping
// derived addresses plain ASCII.
var emailFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func emailLocal(name string) string {
	folded, _, err := transform.String(emailFold, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(folded)
}
