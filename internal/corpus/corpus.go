// Package corpus holds the fixed retrieval corpus for the batch-tracking
// domain: worked question⇒SQL exemplars that teach the model SQL phrasing,
// and schema-fact sentences that ground exact table and column names.
// Both kinds live in one index so retrieval returns a blended context in a
// single pass. The corpus is static; changing it requires deleting the
// persisted index blob so it gets rebuilt on the next start.
package corpus

import (
	"fmt"
	"strings"

	"github.com/arturoeanton/go-batch-assistant-ollama/internal/domain"
)

// examples are literal natural-language question / SQL pairs.
var examples = [][2]string{
	// Basic status queries
	{"Where is batch VDT-052025-A?",
		"SELECT status FROM batch_tracking JOIN batches ON batch_tracking.batch_id = batches.id WHERE batches.batch_code = 'VDT-052025-A' ORDER BY timestamp DESC LIMIT 1;"},
	{"What is the current status of batch PRG-052025-B?",
		"SELECT status FROM batch_tracking JOIN batches ON batch_tracking.batch_id = batches.id WHERE batches.batch_code = 'PRG-052025-B' ORDER BY timestamp DESC LIMIT 1;"},
	{"What are all the statuses for batch VDT-052025-A in order?",
		"SELECT status FROM batch_tracking JOIN batches ON batch_tracking.batch_id = batches.id WHERE batches.batch_code = 'VDT-052025-A' ORDER BY timestamp;"},

	// Who did what
	{"Who delivered VDT-052025-A?",
		"SELECT employees.name FROM batch_tracking JOIN batches ON batch_tracking.batch_id = batches.id JOIN employees ON batch_tracking.employee_id = employees.id WHERE batches.batch_code = 'VDT-052025-A' AND batch_tracking.status = 'Dispatched';"},
	{"Who inspected batch CSY-052025-C?",
		"SELECT employees.name FROM batch_tracking JOIN batches ON batch_tracking.batch_id = batches.id JOIN employees ON batch_tracking.employee_id = employees.id WHERE batches.batch_code = 'CSY-052025-C' AND batch_tracking.status = 'Inspected';"},
	{"Which employee stored CSY-052025-C?",
		"SELECT employees.name FROM batch_tracking JOIN batches ON batch_tracking.batch_id = batches.id JOIN employees ON batch_tracking.employee_id = employees.id WHERE batches.batch_code = 'CSY-052025-C' AND batch_tracking.status = 'Stored';"},
	{"Which batches did John work on?",
		"SELECT DISTINCT batches.batch_code FROM batches JOIN batch_tracking ON batches.id = batch_tracking.batch_id JOIN employees ON batch_tracking.employee_id = employees.id WHERE employees.name = 'John';"},
	{"Which batches did Riya store?",
		"SELECT batches.batch_code FROM batches JOIN batch_tracking ON batches.id = batch_tracking.batch_id JOIN employees ON batch_tracking.employee_id = employees.id WHERE batch_tracking.status = 'Stored' AND employees.name = 'Riya';"},

	// Departments
	{"Which department handled PRG-052025-B?",
		"SELECT departments.name FROM batch_tracking JOIN batches ON batch_tracking.batch_id = batches.id JOIN departments ON batch_tracking.department_id = departments.id WHERE batches.batch_code = 'PRG-052025-B';"},
	{"Which department dispatched PRG-052025-B?",
		"SELECT departments.name FROM batch_tracking JOIN batches ON batch_tracking.batch_id = batches.id JOIN departments ON batch_tracking.department_id = departments.id WHERE batches.batch_code = 'PRG-052025-B' AND batch_tracking.status = 'Dispatched';"},
	{"Which departments were involved in VDT-052025-A?",
		"SELECT DISTINCT departments.name FROM batch_tracking JOIN batches ON batch_tracking.batch_id = batches.id JOIN departments ON batch_tracking.department_id = departments.id WHERE batches.batch_code = 'VDT-052025-A';"},
	{"Which department inspected VDT-052025-A?",
		"SELECT departments.name FROM batch_tracking JOIN batches ON batch_tracking.batch_id = batches.id JOIN departments ON batch_tracking.department_id = departments.id WHERE batches.batch_code = 'VDT-052025-A' AND batch_tracking.status = 'Inspected';"},

	// Products
	{"What is the product for batch VDT-052025-A?",
		"SELECT products.name FROM batches JOIN products ON batches.product_id = products.id WHERE batches.batch_code = 'VDT-052025-A';"},
	{"What are all batches for Cough Syrup?",
		"SELECT batches.batch_code FROM batches JOIN products ON batches.product_id = products.id WHERE products.name = 'Cough Syrup';"},
	{"Which product did Anna dispatch?",
		"SELECT DISTINCT products.name FROM products JOIN batches ON products.id = batches.product_id JOIN batch_tracking ON batches.id = batch_tracking.batch_id JOIN employees ON batch_tracking.employee_id = employees.id WHERE batch_tracking.status = 'Dispatched' AND employees.name = 'Anna';"},

	// Time and history
	{"When was batch CSY-052025-C dispatched?",
		"SELECT timestamp FROM batch_tracking JOIN batches ON batch_tracking.batch_id = batches.id WHERE batches.batch_code = 'CSY-052025-C' AND batch_tracking.status = 'Dispatched' ORDER BY timestamp DESC LIMIT 1;"},
	{"Show the full processing history of VDT-052025-A",
		"SELECT employees.name AS employee, departments.name AS department, batch_tracking.status, batch_tracking.timestamp FROM batch_tracking JOIN batches ON batch_tracking.batch_id = batches.id JOIN employees ON batch_tracking.employee_id = employees.id JOIN departments ON batch_tracking.department_id = departments.id WHERE batches.batch_code = 'VDT-052025-A' ORDER BY timestamp;"},

	// Summaries and lists
	{"List all batches that were stored.",
		"SELECT DISTINCT batches.batch_code FROM batches JOIN batch_tracking ON batches.id = batch_tracking.batch_id WHERE batch_tracking.status = 'Stored';"},
	{"List all employees who handled Dispatched status.",
		"SELECT DISTINCT employees.name FROM employees JOIN batch_tracking ON employees.id = batch_tracking.employee_id WHERE batch_tracking.status = 'Dispatched';"},
	{"Which employees belong to the Storage department?",
		"SELECT employees.name FROM employees JOIN departments ON employees.department_id = departments.id WHERE departments.name = 'Storage';"},
}

// schemaFacts describe the batch-tracking tables and columns, one sentence each.
var schemaFacts = []string{
	"Table: departments - Stores department info",
	"Column: departments.id - Unique department ID",
	"Column: departments.name - Department name",

	"Table: employees - Stores employee records",
	"Column: employees.id - Employee ID",
	"Column: employees.name - Name of employee",
	"Column: employees.department_id - FK to departments",

	"Table: products - Product details",
	"Column: products.id - Product ID",
	"Column: products.name - Product name",
	"Column: products.code - Product code",

	"Table: batches - Contains batch data",
	"Column: batches.id - Batch ID",
	"Column: batches.batch_code - Batch code",
	"Column: batches.product_id - FK to product",

	"Table: batch_tracking - Tracks batch status",
	"Column: batch_tracking.id - Tracking ID",
	"Column: batch_tracking.batch_id - FK to batch",
	"Column: batch_tracking.status - Stage like Packed, Dispatched",
	"Column: batch_tracking.department_id - FK to department",
	"Column: batch_tracking.employee_id - FK to employee",
	"Column: batch_tracking.timestamp - Time of update",
}

// Documents returns the full corpus in fixed order: exemplars first, then
// schema facts. Document identity is positional, so the order must never
// change between the index build and later lookups.
func Documents() []domain.Document {
	docs := make([]domain.Document, 0, len(examples)+len(schemaFacts))
	for _, ex := range examples {
		docs = append(docs, domain.Document{
			Text: fmt.Sprintf("%s => %s", strings.TrimSpace(ex[0]), strings.TrimSpace(ex[1])),
			Kind: domain.KindExample,
		})
	}
	for _, fact := range schemaFacts {
		docs = append(docs, domain.Document{Text: fact, Kind: domain.KindSchemaFact})
	}
	return docs
}
