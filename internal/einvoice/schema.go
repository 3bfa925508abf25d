package einvoice

// NIC e-invoice schema (INV-01, version 1.1). Field names and JSON tags
// follow the authority's published schema byte-for-byte; do not rename.

// SchemaVersion is the e-invoice schema version submitted to the authority.
const SchemaVersion = "1.1"

// DocDateFormat is the DD/MM/YYYY format the authority requires for Dt fields.
const DocDateFormat = "02/01/2006"

// Payload is the complete INV-01 document.
type Payload struct {
	Version    string    `json:"Version"`
	TranDtls   TranDtls  `json:"TranDtls"`
	DocDtls    DocDtls   `json:"DocDtls"`
	SellerDtls PartyDtls `json:"SellerDtls"`
	BuyerDtls  PartyDtls `json:"BuyerDtls"`
	ItemList   []Item    `json:"ItemList"`
	ValDtls    ValDtls   `json:"ValDtls"`
}

// TranDtls describes the transaction category.
type TranDtls struct {
	TaxSch string `json:"TaxSch"` // always "GST"
	SupTyp string `json:"SupTyp"` // "B2B" or "B2C"
	RegRev string `json:"RegRev"` // reverse charge: "Y"/"N"
}

// DocDtls identifies the document.
type DocDtls struct {
	Typ string `json:"Typ"` // "INV"
	No  string `json:"No"`
	Dt  string `json:"Dt"` // DD/MM/YYYY
}

// PartyDtls describes the seller or buyer.
type PartyDtls struct {
	Gstin string `json:"Gstin"`
	LglNm string `json:"LglNm"`
	TrdNm string `json:"TrdNm,omitempty"`
	Addr1 string `json:"Addr1"`
	Addr2 string `json:"Addr2,omitempty"`
	Loc   string `json:"Loc"`
	Pin   int    `json:"Pin"`
	Stcd  string `json:"Stcd"`
	Pos   string `json:"Pos,omitempty"` // place of supply, buyer only
}

// Item is one invoice line in the external schema.
type Item struct {
	SlNo       string  `json:"SlNo"`
	PrdDesc    string  `json:"PrdDesc"`
	IsServc    string  `json:"IsServc"` // "Y"/"N"
	HsnCd      string  `json:"HsnCd"`
	Qty        float64 `json:"Qty"`
	Unit       string  `json:"Unit"`
	UnitPrice  float64 `json:"UnitPrice"`
	TotAmt     float64 `json:"TotAmt"`
	Discount   float64 `json:"Discount"`
	AssAmt     float64 `json:"AssAmt"`
	GstRt      float64 `json:"GstRt"`
	IgstAmt    float64 `json:"IgstAmt"`
	CgstAmt    float64 `json:"CgstAmt"`
	SgstAmt    float64 `json:"SgstAmt"`
	TotItemVal float64 `json:"TotItemVal"`
}

// ValDtls carries the document-level values.
type ValDtls struct {
	AssVal    float64 `json:"AssVal"`
	CgstVal   float64 `json:"CgstVal"`
	SgstVal   float64 `json:"SgstVal"`
	IgstVal   float64 `json:"IgstVal"`
	Discount  float64 `json:"Discount"`
	RndOffAmt float64 `json:"RndOffAmt"`
	TotInvVal float64 `json:"TotInvVal"`
}
