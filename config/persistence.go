package config

import (
	"log"

	"github.com/quasilyte/gdata"
)

const tuningKey = "physics"

// Store persists the last used tuning between runs.
type Store struct {
	manager *gdata.Manager
}

// OpenStore initializes the gdata manager for the given application name.
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, err
	}
	return &Store{manager: m}, nil
}

// LoadTuning returns the saved configuration, or nil when nothing was saved.
func (s *Store) LoadTuning() (*Config, error) {
	if s == nil || s.manager == nil {
		return nil, nil
	}

	data, err := s.manager.LoadItem(tuningKey)
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return nil, err
	}
	if data == nil {
		// No saved tuning yet, use defaults
		return nil, nil
	}

	cfg, err := Parse(data)
	if err != nil {
		log.Printf("Warning: Could not parse saved tuning: %v", err)
		return nil, err
	}
	return cfg, nil
}

// SaveTuning writes c to disk.
func (s *Store) SaveTuning(c Config) error {
	if s == nil || s.manager == nil {
		return nil
	}

	data, err := c.Marshal()
	if err != nil {
		log.Printf("Warning: Could not serialize tuning: %v", err)
		return err
	}
	if err := s.manager.SaveItem(tuningKey, data); err != nil {
		log.Printf("Warning: Could not save tuning: %v", err)
		return err
	}
	return nil
}
