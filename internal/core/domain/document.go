package domain

import "encoding/xml"

// StatementDocument is a camt.053 bank-to-customer statement holding one statement
// period for one account.
type StatementDocument struct {
	XMLName       xml.Name                `xml:"Document"`
	Namespace     string                  `xml:"xmlns,attr,omitempty"`
	BkToCstmrStmt BankToCustomerStatement `xml:"BkToCstmrStmt"`
}

// CAMT053Namespace is the default namespace written on serialized documents.
const CAMT053Namespace = "urn:iso:std:iso:20022:tech:xsd:camt.053.001.02"

// Statement is a shortcut to the single statement of the document.
func (d *StatementDocument) Statement() *Statement {
	return &d.BkToCstmrStmt.Statement
}

type BankToCustomerStatement struct {
	GroupHeader GroupHeader `xml:"GrpHdr"`
	Statement   Statement   `xml:"Stmt"`
}

type GroupHeader struct {
	MessageID        string `xml:"MsgId"`
	CreationDateTime string `xml:"CreDtTm"`
}

type Statement struct {
	ID                       string              `xml:"Id"`
	ElectronicSequenceNumber int                 `xml:"ElctrncSeqNb"`
	LegalSequenceNumber      int                 `xml:"LglSeqNb"`
	CreationDateTime         string              `xml:"CreDtTm"`
	Period                   Period              `xml:"FrToDt"`
	Account                  Account             `xml:"Acct"`
	Balances                 []Balance           `xml:"Bal"`
	TransactionSummary       *TransactionSummary `xml:"TxsSummry,omitempty"`
	Entries                  []Entry             `xml:"Ntry"`
}

type Period struct {
	FromDateTime string `xml:"FrDtTm"`
	ToDateTime   string `xml:"ToDtTm"`
}

// Balance is one typed balance of the statement.
type Balance struct {
	Type      BalanceTypeChoice    `xml:"Tp"`
	Amount    Amount               `xml:"Amt"`
	Indicator CreditDebitIndicator `xml:"CdtDbtInd"`
	Date      DateChoice           `xml:"Dt"`
}

// Code returns the balance type code.
func (b *Balance) Code() BalanceType {
	return b.Type.CodeOrProprietary.Code
}

type BalanceTypeChoice struct {
	CodeOrProprietary BalanceTypeCode `xml:"CdOrPrtry"`
}

type BalanceTypeCode struct {
	Code BalanceType `xml:"Cd"`
}

// NewBalance builds a balance of the given type.
func NewBalance(code BalanceType, amount Amount, indicator CreditDebitIndicator, date string) Balance {
	return Balance{
		Type:      BalanceTypeChoice{CodeOrProprietary: BalanceTypeCode{Code: code}},
		Amount:    amount,
		Indicator: indicator,
		Date:      DateChoice{Date: date},
	}
}

// TransactionSummary aggregates the statement entries.
type TransactionSummary struct {
	TotalEntries       TotalEntries `xml:"TtlNtries"`
	TotalCreditEntries NumberAndSum `xml:"TtlCdtNtries"`
	TotalDebitEntries  NumberAndSum `xml:"TtlDbtNtries"`
}

type TotalEntries struct {
	NumberOfEntries     string               `xml:"NbOfNtries"`
	TotalNetEntryAmount string               `xml:"TtlNetNtryAmt"`
	Indicator           CreditDebitIndicator `xml:"CdtDbtInd"`
}

type NumberAndSum struct {
	NumberOfEntries string `xml:"NbOfNtries"`
	Sum             string `xml:"Sum"`
}
