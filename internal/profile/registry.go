package profile

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/public-api-fetcher/models"
)

const (
	// JSONPlaceholderID is the identifier of the default profile.
	JSONPlaceholderID = "jsonplaceholder"
	// RandomUserID is the identifier of the Random User Generator profile.
	RandomUserID = "randomuser"
	// CoinGeckoID is the identifier of the CoinGecko markets profile.
	CoinGeckoID = "coingecko"
)

// registry keeps profiles in display order.
var registry = []models.Profile{
	{
		Kind:           models.KindJSONPlaceholder,
		ID:             JSONPlaceholderID,
		Endpoint:       "https://jsonplaceholder.typicode.com/users",
		DisplayName:    "JSONPlaceholder Users API",
		ExpectedFields: []string{"name", "username", "email", "city"},
		RecordLabel:    "User",
		CityPath:       []string{"address", "city"},
	},
	{
		Kind:           models.KindRandomUser,
		ID:             RandomUserID,
		Endpoint:       "https://randomuser.me/api/?results=10",
		DisplayName:    "Random User Generator API",
		ExpectedFields: []string{"name", "email", "city", "country"},
		RecordLabel:    "User",
		ResultsKey:     "results",
		CityPath:       []string{"location", "city"},
	},
	{
		Kind:           models.KindCoinGecko,
		ID:             CoinGeckoID,
		Endpoint:       "https://api.coingecko.com/api/v3/coins/markets?vs_currency=usd&order=market_cap_desc&per_page=10&page=1",
		DisplayName:    "CoinGecko Cryptocurrency API",
		ExpectedFields: []string{"name", "symbol", "current_price", "market_cap"},
		RecordLabel:    "Crypto",
	},
}

var byID = func() map[string]int {
	idx := make(map[string]int, len(registry))
	for i, p := range registry {
		idx[p.ID] = i
	}
	return idx
}()

// Lookup returns the profile registered under id.
//
// The returned value is a copy; mutating its slices does not affect the
// registry. An unknown id yields an error wrapping [ErrInvalidConfiguration].
func Lookup(id string) (models.Profile, error) {
	i, ok := byID[id]
	if !ok {
		return models.Profile{}, fmt.Errorf("%w: unknown API type %q, choose from: %s",
			ErrInvalidConfiguration, id, strings.Join(IDs(), ", "))
	}

	return registry[i].WithEndpoint(registry[i].Endpoint), nil
}

// List returns copies of all registered profiles in registry order.
func List() []models.Profile {
	out := make([]models.Profile, 0, len(registry))
	for _, p := range registry {
		out = append(out, p.WithEndpoint(p.Endpoint))
	}
	return out
}

// IDs returns the registered identifiers in registry order.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for _, p := range registry {
		ids = append(ids, p.ID)
	}
	return ids
}
