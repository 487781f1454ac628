package carbon

import (
	_ "embed"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"sync"
)

// CSV column indices in data/server_profiles.csv.
const (
	colServerModel     = 0
	colManufacturingKg = 1
	colServerVendor    = 2
)

// DefaultServerModel is the profile used when a model is not in the catalog.
// It is also the lowest-footprint entry.
const DefaultServerModel = "Dell R710"

//go:embed data/server_profiles.csv
var serverProfilesCSV string

// ServerProfile identifies a server model and its manufacturing footprint.
type ServerProfile struct {
	// Model is the display name, e.g. "Dell R740".
	Model string `json:"model" yaml:"model"`

	// Vendor is the manufacturer.
	Vendor string `json:"vendor" yaml:"vendor"`

	// ManufacturingKg is the embodied carbon of one unit in kg CO2-eq.
	ManufacturingKg float64 `json:"manufacturing_kg" yaml:"manufacturing_kg"`
}

var (
	serverProfiles     map[string]ServerProfile
	serverProfileByKey map[string]ServerProfile
	serverProfileOrder []string
	serverProfilesOnce sync.Once
)

// parseServerProfiles loads the embedded catalog. Rows with an empty model
// or a non-positive footprint are skipped.
func parseServerProfiles() {
	serverProfiles = make(map[string]ServerProfile)
	serverProfileByKey = make(map[string]ServerProfile)
	serverProfileOrder = nil

	reader := csv.NewReader(strings.NewReader(serverProfilesCSV))

	// Skip header row
	_, err := reader.Read()
	if err != nil {
		logger.Error().Err(err).Msg("failed to read server profiles CSV header")
		return
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn().Err(err).Msg("skipping malformed server profiles CSV row")
			continue
		}

		if len(record) <= colServerVendor {
			continue
		}

		model := strings.TrimSpace(record[colServerModel])
		if model == "" {
			continue
		}

		kg, err := strconv.ParseFloat(strings.TrimSpace(record[colManufacturingKg]), 64)
		if err != nil || kg <= 0 {
			logger.Warn().Str("model", model).Msg("skipping server profile with invalid footprint")
			continue
		}

		profile := ServerProfile{
			Model:           model,
			Vendor:          strings.TrimSpace(record[colServerVendor]),
			ManufacturingKg: kg,
		}
		if _, dup := serverProfiles[model]; !dup {
			serverProfileOrder = append(serverProfileOrder, model)
		}
		serverProfiles[model] = profile
		serverProfileByKey[normalizeModelKey(model)] = profile
	}
}

// normalizeModelKey lowercases a model name and drops spaces, dashes and
// underscores so "dell-r740" and "Dell R740" resolve to the same key.
func normalizeModelKey(model string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '\t':
			return -1
		}
		return r
	}, strings.ToLower(model))
}

// LookupServerProfile returns the catalog entry for model and whether it was
// found. The exact display name is tried first, then the normalized key.
func LookupServerProfile(model string) (ServerProfile, bool) {
	serverProfilesOnce.Do(parseServerProfiles)
	if p, ok := serverProfiles[model]; ok {
		return p, true
	}
	p, ok := serverProfileByKey[normalizeModelKey(model)]
	return p, ok
}

// GetServerProfile returns the profile for model. Unknown models fall back to
// DefaultServerModel without error.
func GetServerProfile(model string) ServerProfile {
	if p, ok := LookupServerProfile(model); ok {
		return p
	}
	p, ok := serverProfiles[DefaultServerModel]
	if !ok {
		// Catalog failed to load; keep the documented default footprint.
		return ServerProfile{Model: DefaultServerModel, Vendor: "Dell", ManufacturingKg: 400}
	}
	return p
}

// ServerProfiles returns the catalog in file order.
func ServerProfiles() []ServerProfile {
	serverProfilesOnce.Do(parseServerProfiles)
	out := make([]ServerProfile, 0, len(serverProfileOrder))
	for _, model := range serverProfileOrder {
		out = append(out, serverProfiles[model])
	}
	return out
}
