package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest lists the input files of a build. Relative paths are resolved
// against the data directory.
type Manifest struct {
	RewardWeights string          `yaml:"reward_weights" validate:"required"`
	Rewards       string          `yaml:"rewards" validate:"required"`
	LootTables    string          `yaml:"loot_tables" validate:"required"`
	LootBuckets   string          `yaml:"loot_buckets" validate:"required"`
	Catalogs      CatalogManifest `yaml:"catalogs"`
}

// CatalogManifest lists the optional enrichment sources.
type CatalogManifest struct {
	Items        string `yaml:"items"`
	Localization string `yaml:"localization"`
	Emotes       string `yaml:"emotes"`
	Housing      string `yaml:"housing"`
	GameEvents   string `yaml:"game_events"`
}

// DefaultManifest returns the conventional export file names.
func DefaultManifest() Manifest {
	return Manifest{
		RewardWeights: DefaultRewardWeightsFile,
		Rewards:       DefaultRewardsFile,
		LootTables:    DefaultLootTablesFile,
		LootBuckets:   DefaultLootBucketsFile,
		Catalogs: CatalogManifest{
			Items:        DefaultItemCSVFile,
			Localization: DefaultLocalizationFile,
			Emotes:       DefaultEmotesFile,
			Housing:      DefaultHousingFile,
			GameEvents:   DefaultGameEventsFile,
		},
	}
}

// LoadManifest reads and validates a YAML manifest.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s %s: %w", ErrMsgReadManifest, path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("%s %s: %w", ErrMsgParseManifest, path, err)
	}

	if err := validateStruct(&m, ErrMsgInvalidManifest); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// ManifestFor returns the manifest configured for cfg: the file at
// MANIFEST_PATH when set, else the defaults. Paths come back resolved
// against DATA_DIR.
func ManifestFor(cfg *Config) (Manifest, error) {
	m := DefaultManifest()
	if cfg.ManifestPath != "" {
		loaded, err := LoadManifest(cfg.ManifestPath)
		if err != nil {
			return Manifest{}, err
		}
		m = loaded
	}
	return m.Resolve(cfg.DataDir), nil
}

// Resolve joins every relative path onto dir. Empty paths stay empty.
func (m Manifest) Resolve(dir string) Manifest {
	join := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	return Manifest{
		RewardWeights: join(m.RewardWeights),
		Rewards:       join(m.Rewards),
		LootTables:    join(m.LootTables),
		LootBuckets:   join(m.LootBuckets),
		Catalogs: CatalogManifest{
			Items:        join(m.Catalogs.Items),
			Localization: join(m.Catalogs.Localization),
			Emotes:       join(m.Catalogs.Emotes),
			Housing:      join(m.Catalogs.Housing),
			GameEvents:   join(m.Catalogs.GameEvents),
		},
	}
}
