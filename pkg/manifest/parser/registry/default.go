package registry

import (
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/delimited"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/edi"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/marker"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/sniff"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/tabular"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/xmlbill"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/xmlenvelope"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/reference"
)

type Config struct {
	SniffBytes  int `yaml:"sniff_bytes"`
	CSVMinScore int `yaml:"csv_min_score"`
}

func (c Config) withDefaults() Config {
	if c.SniffBytes <= 0 {
		c.SniffBytes = sniff.DefaultHeadSize
	}
	if c.CSVMinScore <= 0 {
		c.CSVMinScore = delimited.DefaultMinScore
	}
	return c
}

// Default registers every supported format in detection priority order.
func Default(catalog *reference.Catalog, cfg Config) *Registry {
	cfg = cfg.withDefaults()
	return New(
		edi.New(edi.WithSniffBytes(cfg.SniffBytes)),
		xmlenvelope.New(xmlenvelope.WithSniffBytes(cfg.SniffBytes)),
		xmlbill.New(xmlbill.WithSniffBytes(cfg.SniffBytes)),
		marker.NewBL(marker.WithSniffBytes(cfg.SniffBytes)),
		marker.NewManifest(marker.WithSniffBytes(cfg.SniffBytes)),
		tabular.NewConsolidated(),
		tabular.NewConvoy(),
		delimited.New(catalog.CSVKeywords(), delimited.WithSniffBytes(cfg.SniffBytes), delimited.WithMinScore(cfg.CSVMinScore)),
	)
}
