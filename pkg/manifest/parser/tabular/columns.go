package tabular

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Field names of the fixed-column layout shared by both spreadsheet dialects.
const (
	FieldSequence           = "sequence"
	FieldManifestLine       = "manifest_line"
	FieldBillNumber         = "bill_number"
	FieldMasterBill         = "master_bill"
	FieldBillDate           = "bill_date"
	FieldLoadingPort        = "loading_port"
	FieldDischargePort      = "discharge_port"
	FieldTransshipmentPort  = "transshipment_port"
	FieldFinalDestination   = "final_destination"
	FieldShipperName        = "shipper_name"
	FieldShipperTaxID       = "shipper_tax_id"
	FieldShipperAddress     = "shipper_address"
	FieldShipperCountry     = "shipper_country"
	FieldConsigneeName      = "consignee_name"
	FieldConsigneeTaxID     = "consignee_tax_id"
	FieldConsigneeAddress   = "consignee_address"
	FieldConsigneeCountry   = "consignee_country"
	FieldNotifyName         = "notify_name"
	FieldNotifyTaxID        = "notify_tax_id"
	FieldNotifyAddress      = "notify_address"
	FieldContainerNumber    = "container_number"
	FieldContainerType      = "container_type"
	FieldContainerStatus    = "container_status"
	FieldSeal1              = "seal_1"
	FieldSeal2              = "seal_2"
	FieldSeal3              = "seal_3"
	FieldTareWeight         = "tare_weight"
	FieldContainerGross     = "container_gross"
	FieldVGM                = "vgm"
	FieldPackageCount       = "package_count"
	FieldPackageType        = "package_type"
	FieldDescription        = "description"
	FieldMarks              = "marks"
	FieldGrossWeight        = "gross_weight"
	FieldNetWeight          = "net_weight"
	FieldVolume             = "volume"
	FieldCommodityCode      = "commodity_code"
	FieldCommodityText      = "commodity_description"
	FieldDangerous          = "dangerous"
	FieldIMOClass           = "imo_class"
	FieldUNNumber           = "un_number"
	FieldTempMin            = "temp_min"
	FieldTempMax            = "temp_max"
	FieldReefer             = "reefer"
	FieldFreightTerms       = "freight_terms"
	FieldFreightAmount      = "freight_amount"
	FieldFreightCurrency    = "freight_currency"
	FieldDeclaredValue      = "declared_value"
	FieldValueCurrency      = "value_currency"
	FieldPermitNumber       = "permit_number"
	FieldCustomsRegime      = "customs_regime"
	FieldCustomsOffice      = "customs_office"
	FieldLoadingDate        = "loading_date"
	FieldDischargeDate      = "discharge_date"
	FieldCarrierCode        = "carrier_code"
	FieldVesselName         = "vessel_name"
	FieldBargeName          = "barge_name"
	FieldBargeRegistration  = "barge_registration"
	FieldTugName            = "tug_name"
	FieldVoyageNumber       = "voyage_number"
	FieldTerminal           = "terminal"
	FieldWarehouse          = "warehouse"
	FieldCargoType          = "cargo_type"
	FieldObservations       = "observations"
	FieldAgentCode          = "agent_code"
	FieldAgentName          = "agent_name"
	FieldBookingNumber      = "booking_number"
	FieldBillType           = "bill_type"
	FieldConsolidated       = "consolidated"
	FieldHouseNumber        = "house_number"
	FieldOriginCountry      = "origin_country"
	FieldDestinationCountry = "destination_country"
)

// Columns maps every column letter of the layout to its field.
var Columns = map[string]string{
	"A": FieldSequence, "B": FieldManifestLine, "C": FieldBillNumber, "D": FieldMasterBill,
	"E": FieldBillDate, "F": FieldLoadingPort, "G": FieldDischargePort, "H": FieldTransshipmentPort,
	"I": FieldFinalDestination, "J": FieldShipperName, "K": FieldShipperTaxID, "L": FieldShipperAddress,
	"M": FieldShipperCountry, "N": FieldConsigneeName, "O": FieldConsigneeTaxID, "P": FieldConsigneeAddress,
	"Q": FieldConsigneeCountry, "R": FieldNotifyName, "S": FieldNotifyTaxID, "T": FieldNotifyAddress,
	"U": FieldContainerNumber, "V": FieldContainerType, "W": FieldContainerStatus, "X": FieldSeal1,
	"Y": FieldSeal2, "Z": FieldSeal3,
	"AA": FieldTareWeight, "AB": FieldContainerGross, "AC": FieldVGM, "AD": FieldPackageCount,
	"AE": FieldPackageType, "AF": FieldDescription, "AG": FieldMarks, "AH": FieldGrossWeight,
	"AI": FieldNetWeight, "AJ": FieldVolume, "AK": FieldCommodityCode, "AL": FieldCommodityText,
	"AM": FieldDangerous, "AN": FieldIMOClass, "AO": FieldUNNumber, "AP": FieldTempMin,
	"AQ": FieldTempMax, "AR": FieldReefer, "AS": FieldFreightTerms, "AT": FieldFreightAmount,
	"AU": FieldFreightCurrency, "AV": FieldDeclaredValue, "AW": FieldValueCurrency, "AX": FieldPermitNumber,
	"AY": FieldCustomsRegime, "AZ": FieldCustomsOffice,
	"BA": FieldLoadingDate, "BB": FieldDischargeDate, "BC": FieldCarrierCode, "BD": FieldVesselName,
	"BE": FieldBargeName, "BF": FieldBargeRegistration, "BG": FieldTugName, "BH": FieldVoyageNumber,
	"BI": FieldTerminal, "BJ": FieldWarehouse, "BK": FieldCargoType, "BL": FieldObservations,
	"BM": FieldAgentCode, "BN": FieldAgentName, "BO": FieldBookingNumber, "BP": FieldBillType,
	"BQ": FieldConsolidated, "BR": FieldHouseNumber, "BS": FieldOriginCountry, "BT": FieldDestinationCountry,
}

// extraFields are copied into the bill's format specific fields when present.
var extraFields = []string{
	FieldCustomsRegime, FieldCustomsOffice, FieldBookingNumber, FieldAgentCode,
	FieldTerminal, FieldWarehouse, FieldHouseNumber, FieldIMOClass, FieldUNNumber,
}

// columnIndex is the zero based position of each field within a row.
var columnIndex = func() map[string]int {
	out := make(map[string]int, len(Columns))
	for letter, field := range Columns {
		n, err := excelize.ColumnNameToNumber(letter)
		if err != nil {
			panic(fmt.Sprintf("column %s: %v", letter, err))
		}
		out[field] = n - 1
	}
	return out
}()

// ColumnOf returns the column letter of a field.
func ColumnOf(field string) string {
	name, _ := excelize.ColumnNumberToName(columnIndex[field] + 1)
	return name
}
