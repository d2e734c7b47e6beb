package domain

// Account identifies the statement account together with its owner and servicing bank.
type Account struct {
	ID       AccountID `xml:"Id"`
	Currency string    `xml:"Ccy"`
	Name     string    `xml:"Nm"`
	Owner    Owner     `xml:"Ownr"`
	Servicer Servicer  `xml:"Svcr"`
}

// AccountID holds the account identifier. The IBAN is optional in the document but
// mandatory when projecting to a message.
type AccountID struct {
	IBAN string `xml:"IBAN,omitempty"`
}

// Owner is the account holder.
type Owner struct {
	Name          string        `xml:"Nm"`
	PostalAddress PostalAddress `xml:"PstlAdr"`
	ID            OwnerID       `xml:"Id"`
}

type PostalAddress struct {
	StreetName     string   `xml:"StrtNm,omitempty"`
	BuildingNumber string   `xml:"BldgNb,omitempty"`
	PostCode       string   `xml:"PstCd,omitempty"`
	TownName       string   `xml:"TwnNm,omitempty"`
	Country        string   `xml:"Ctry,omitempty"`
	AddressLines   []string `xml:"AdrLine,omitempty"`
}

type OwnerID struct {
	OrganisationID OrganisationID `xml:"OrgId"`
}

type OrganisationID struct {
	Other GenericID `xml:"Othr"`
}

type GenericID struct {
	ID         string     `xml:"Id"`
	SchemeName SchemeName `xml:"SchmeNm"`
}

type SchemeName struct {
	Code string `xml:"Cd"`
}

// Servicer is the bank servicing the account.
type Servicer struct {
	FinancialInstitution FinancialInstitutionID `xml:"FinInstnId"`
}

type FinancialInstitutionID struct {
	BIC           string         `xml:"BIC,omitempty"`
	Name          string         `xml:"Nm,omitempty"`
	PostalAddress *PostalAddress `xml:"PstlAdr,omitempty"`
}
