// Package ofx imports OFX/QFX bank statements into ledger transactions.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/worthit/worthit/internal/detect"
	"github.com/worthit/worthit/internal/model"
)

// Parser implements OFX/QFX file parsing.
type Parser struct {
	detector *detect.Detector
}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{detector: detect.NewDetector()}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// Fix mixed-case SEVERITY values (should be INFO, WARN, or ERROR)
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// Fix missing closing angle brackets in SGML-style OFX files
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX file and returns expense transactions with
// guessed categories. Credits (deposits) become income transactions.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			transactions = append(transactions, p.processTransactionList(stmt.BankTranList)...)
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			transactions = append(transactions, p.processTransactionList(stmt.BankTranList)...)
		}
	}

	slog.Info("Parsed OFX file",
		"total_transactions", len(transactions),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return transactions, nil
}

func (p *Parser) processTransactionList(list *ofxgo.TransactionList) []model.Transaction {
	if list == nil {
		return nil
	}

	transactions := make([]model.Transaction, 0, len(list.Transactions))
	for _, ofxTx := range list.Transactions {
		if txn, ok := p.convertTransaction(ofxTx); ok {
			transactions = append(transactions, txn)
		}
	}
	return transactions
}

// convertTransaction maps one OFX transaction onto the ledger model. OFX
// uses negative amounts for debits; zero-amount entries are dropped.
func (p *Parser) convertTransaction(ofxTx ofxgo.Transaction) (model.Transaction, bool) {
	amount, _ := ofxTx.TrnAmt.Float64()
	if amount == 0 {
		return model.Transaction{}, false
	}

	name := cleanDescription(ofxTx)

	txn := model.Transaction{
		Date:   ofxTx.DtPosted.Time,
		Amount: amount,
		Note:   name,
	}

	if amount < 0 {
		txn.Amount = -amount
		txn.Category = p.detector.Detect(name, txn.Amount).Category
	} else {
		txn.IsIncome = true
		txn.IncomeCategory = incomeCategory(fmt.Sprintf("%v", ofxTx.TrnType))
	}

	txn.ID = txn.GenerateID()
	return txn, true
}

func incomeCategory(trnType string) string {
	switch trnType {
	case "INT":
		return "Interest"
	case "DIV":
		return "Dividends"
	default:
		return "Deposit"
	}
}

// cleanDescription extracts a usable description from OFX payee/name/memo
// fields and strips common processor prefixes.
func cleanDescription(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}

	name := strings.TrimSpace(string(tx.Name))
	if name == "" && tx.Memo != "" {
		name = strings.TrimSpace(string(tx.Memo))
	}

	prefixes := []string{
		"POS PURCHASE ",
		"PURCHASE AUTHORIZED ON ",
		"DEBIT CARD PURCHASE ",
		"ACH DEBIT ",
		"CHECK CARD ",
		"VISA PURCHASE ",
		"MC PURCHASE ",
		"DEBIT PURCHASE ",
	}
	upper := strings.ToUpper(name)
	for _, prefix := range prefixes {
		if strings.HasPrefix(upper, prefix) {
			name = name[len(prefix):]
			break
		}
	}

	return strings.TrimSpace(name)
}
