package project

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/CartonPack/internal/model"
)

// DefaultCarriersPath returns the default file path for custom carriers.
func DefaultCarriersPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "cartonpack", "carriers.json"), nil
}

// SaveCustomCarriers saves custom carrier profiles to a JSON file.
func SaveCustomCarriers(path string, carriers []model.CarrierProfile) error {
	return saveJSON(path, carriers)
}

// LoadCustomCarriers loads custom carrier profiles from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadCustomCarriers(path string) ([]model.CarrierProfile, error) {
	var carriers []model.CarrierProfile
	if err := loadJSON(path, &carriers); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.CarrierProfile{}, nil
		}
		return nil, err
	}

	// Ensure loaded carriers are not marked as built-in
	for i := range carriers {
		carriers[i].IsBuiltIn = false
	}
	return carriers, nil
}

// SaveCustomCarriersToDefault saves custom carriers to the default path.
func SaveCustomCarriersToDefault(carriers []model.CarrierProfile) error {
	path, err := DefaultCarriersPath()
	if err != nil {
		return err
	}
	return SaveCustomCarriers(path, carriers)
}

// LoadCustomCarriersFromDefault loads custom carriers from the default path.
func LoadCustomCarriersFromDefault() ([]model.CarrierProfile, error) {
	path, err := DefaultCarriersPath()
	if err != nil {
		return nil, err
	}
	return LoadCustomCarriers(path)
}

// ExportCarrier exports a single carrier profile to a JSON file (for sharing).
func ExportCarrier(path string, carrier model.CarrierProfile) error {
	carrier.IsBuiltIn = false
	return saveJSON(path, carrier)
}

// ImportCarrier imports a single carrier profile from a JSON file.
func ImportCarrier(path string) (model.CarrierProfile, error) {
	var carrier model.CarrierProfile
	if err := loadJSON(path, &carrier); err != nil {
		return model.CarrierProfile{}, err
	}

	carrier.IsBuiltIn = false
	if carrier.Name == "" {
		return model.CarrierProfile{}, errors.New("imported carrier has no name")
	}
	return carrier, nil
}
