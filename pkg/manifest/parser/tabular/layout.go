package tabular

import (
	"github.com/samber/lo"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/sniff"
)

// Metadata keys read from fixed cells above the header row.
const (
	MetaCarrier       = "carrier"
	MetaVoyage        = "voyage"
	MetaLoadingPort   = "loading_port"
	MetaDischargePort = "discharge_port"
	MetaDeparture     = "departure"
	MetaTug           = "tug"
)

// Layout describes where one spreadsheet dialect keeps its title, metadata and rows.
type Layout struct {
	// Title words looked for in A1. All of TitleAll and one of TitleAny must appear.
	TitleAll []string
	TitleAny []string
	// Rows are one based, as displayed by spreadsheet programs.
	HeaderRow int
	DataRow   int
	// Meta maps a cell to a metadata key.
	Meta map[string]string
	// GroupByBarge opens one shipment per barge named in column BE.
	GroupByBarge bool
}

var consolidatedLayout = Layout{
	TitleAll:  []string{"MANIFIESTO", "CONSOLIDADO"},
	HeaderRow: 7,
	DataRow:   8,
	Meta: map[string]string{
		"B2": MetaCarrier,
		"B3": MetaVoyage,
		"B4": MetaLoadingPort,
		"B5": MetaDischargePort,
		"B6": MetaDeparture,
	},
}

var convoyLayout = Layout{
	TitleAny:  []string{"CONVOY", "BARCAZA"},
	HeaderRow: 4,
	DataRow:   5,
	Meta: map[string]string{
		"B2": MetaVoyage,
		"B3": MetaTug,
	},
	GroupByBarge: true,
}

func (l Layout) matchTitle(title string) bool {
	if !lo.EveryBy(l.TitleAll, func(w string) bool { return sniff.ContainsFold(title, w) }) {
		return false
	}
	return len(l.TitleAny) == 0 || sniff.ContainsFold(title, l.TitleAny...)
}
