package xmlbill

import (
	"encoding/xml"
	"time"

	"github.com/shopspring/decimal"
)

// Document is one bill of lading.
type Document struct {
	XMLName       xml.Name `xml:"ConocimientoEmbarque"`
	Number        string   `xml:"Numero"`
	Vessel        string   `xml:"Buque"`
	Voyage        string   `xml:"Viaje"`
	LoadingPort   string   `xml:"PuertoCarga"`
	DischargePort string   `xml:"PuertoDescarga"`
	LoadingDate   string   `xml:"FechaEmbarque"`
	ArrivalDate   string   `xml:"FechaArribo"`
	Shipper       Party    `xml:"Embarcador"`
	Consignee     Party    `xml:"Consignatario"`
	Notify        Party    `xml:"Notificar"`
	Lines         []Line   `xml:"LineasDetalle>LineaDetalle"`

	loadingAt time.Time
	arrivalAt time.Time
	problems  []error
}

type Party struct {
	Name    string `xml:"Nombre"`
	TaxID   string `xml:"Identificacion"`
	Address string `xml:"Direccion"`
	Country string `xml:"Pais"`
}

type Line struct {
	Container   string   `xml:"NumeroContenedor"`
	Type        string   `xml:"TipoContenedor"`
	TareRaw     string   `xml:"Tara"`
	NetRaw      string   `xml:"PesoNeto"`
	GrossRaw    string   `xml:"PesoBruto"`
	VGMRaw      string   `xml:"VGM"`
	Seals       []string `xml:"Precintos>Precinto"`
	NCM         []string `xml:"CodigosNCM>NCM"`
	PackagesRaw string   `xml:"Bultos"`
	Packaging   string   `xml:"Embalaje"`
	Description string   `xml:"Descripcion"`
	TempMinRaw  string   `xml:"TempMin"`
	TempMaxRaw  string   `xml:"TempMax"`
	DangerRaw   string   `xml:"Peligrosa"`

	Tare      decimal.Decimal  `xml:"-"`
	Net       decimal.Decimal  `xml:"-"`
	Gross     decimal.Decimal  `xml:"-"`
	VGM       decimal.Decimal  `xml:"-"`
	Packages  int              `xml:"-"`
	TempMin   *decimal.Decimal `xml:"-"`
	TempMax   *decimal.Decimal `xml:"-"`
	Dangerous bool             `xml:"-"`
}
