package domain

// Entry is one booked transaction on the statement (<Ntry>).
type Entry struct {
	Reference                string               `xml:"NtryRef"`
	Amount                   Amount               `xml:"Amt"`
	Indicator                CreditDebitIndicator `xml:"CdtDbtInd"`
	ReversalIndicator        bool                 `xml:"RvslInd,omitempty"`
	Status                   string               `xml:"Sts"`
	BookingDate              DateChoice           `xml:"BookgDt"`
	ValueDate                DateChoice           `xml:"ValDt"`
	AccountServicerReference string               `xml:"AcctSvcrRef"`
	BankTransactionCode      BankTransactionCode  `xml:"BkTxCd"`
	Details                  EntryDetails         `xml:"NtryDtls"`
}

// FirstDetails returns the first transaction details record of the entry, or nil.
func (e *Entry) FirstDetails() *TransactionDetails {
	if len(e.Details.TransactionDetails) == 0 {
		return nil
	}
	return &e.Details.TransactionDetails[0]
}

// BankTransactionCode carries both the structured domain/family code and the
// bank's proprietary code.
type BankTransactionCode struct {
	Domain      TransactionDomain `xml:"Domn"`
	Proprietary ProprietaryCode   `xml:"Prtry"`
}

type TransactionDomain struct {
	Code   string            `xml:"Cd"`
	Family TransactionFamily `xml:"Fmly"`
}

type TransactionFamily struct {
	Code          string `xml:"Cd"`
	SubFamilyCode string `xml:"SubFmlyCd"`
}

type ProprietaryCode struct {
	Code   string `xml:"Cd"`
	Issuer string `xml:"Issr"`
}

type EntryDetails struct {
	TransactionDetails []TransactionDetails `xml:"TxDtls"`
}

// TransactionDetails is the nested per-transaction record of an entry. Every part is optional.
type TransactionDetails struct {
	References     *References     `xml:"Refs,omitempty"`
	AmountDetails  *AmountDetails  `xml:"AmtDtls,omitempty"`
	RelatedParties *RelatedParties `xml:"RltdPties,omitempty"`
	RelatedDates   *RelatedDates   `xml:"RltdDts,omitempty"`
}

// EndToEndID returns the end-to-end id, or "" when absent.
func (d *TransactionDetails) EndToEndID() string {
	if d == nil || d.References == nil {
		return ""
	}
	return d.References.EndToEndID
}

// CreditorAccountID returns the creditor account id, or "" when absent.
func (d *TransactionDetails) CreditorAccountID() string {
	if d == nil || d.RelatedParties == nil || d.RelatedParties.CreditorAccount == nil {
		return ""
	}
	if other := d.RelatedParties.CreditorAccount.ID.Other; other != nil {
		return other.ID
	}
	return ""
}

// AcceptanceDateTime returns the acceptance timestamp literal, or "" when absent.
func (d *TransactionDetails) AcceptanceDateTime() string {
	if d == nil || d.RelatedDates == nil {
		return ""
	}
	return d.RelatedDates.AcceptanceDateTime
}

type References struct {
	EndToEndID string `xml:"EndToEndId,omitempty"`
}

type AmountDetails struct {
	TransactionAmount TransactionAmount `xml:"TxAmt"`
}

type TransactionAmount struct {
	Amount Amount `xml:"Amt"`
}

type RelatedParties struct {
	CreditorAccount *CounterpartyAccount `xml:"CdtrAcct,omitempty"`
}

type CounterpartyAccount struct {
	ID CounterpartyAccountID `xml:"Id"`
}

type CounterpartyAccountID struct {
	Other *OtherID `xml:"Othr,omitempty"`
}

type OtherID struct {
	ID string `xml:"Id"`
}

type RelatedDates struct {
	AcceptanceDateTime string `xml:"AccptncDtTm"`
}
