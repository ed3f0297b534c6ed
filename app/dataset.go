package app

import (
	"evident/adapters/excel"
	"evident/internal/config"
	"evident/internal/errors"
)

// LoadDataset reads the configured input files. Either diversity file may
// be empty, but not both.
func LoadDataset(cfg config.DataConfig) (Dataset, error) {
	var data Dataset
	if cfg.MetadataFile == "" {
		return data, errors.InvalidInput("METADATA_FILE is required", nil)
	}
	if cfg.AlphaDiversityFile == "" && cfg.BetaDiversityFile == "" {
		return data, errors.InvalidInput("ALPHA_DIVERSITY_FILE or BETA_DIVERSITY_FILE is required", nil)
	}

	md, err := excel.ReadMetadata(cfg.MetadataFile)
	if err != nil {
		return data, errors.InvalidInput("failed to read metadata", err)
	}
	data.Metadata = md

	if cfg.AlphaDiversityFile != "" {
		if data.Alpha, err = excel.ReadAlphaDiversity(cfg.AlphaDiversityFile); err != nil {
			return data, errors.InvalidInput("failed to read alpha diversity", err)
		}
	}
	if cfg.BetaDiversityFile != "" {
		if data.Beta, err = excel.ReadDistanceMatrix(cfg.BetaDiversityFile); err != nil {
			return data, errors.InvalidInput("failed to read beta diversity", err)
		}
	}
	return data, nil
}
