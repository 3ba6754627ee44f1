package table

import (
	"github.com/go-jet/jet/v2/postgres"
)

// the three signal tables share a layout
var (
	NewsSignalsFull    = newSignalsFullTable("public", "news_signals_full", "")
	GtrendSignalsFull  = newSignalsFullTable("public", "gtrend_signals_full", "")
	TwitterSignalsFull = newSignalsFullTable("public", "twitter_signals_full", "")
)

type signalsFullTable struct {
	postgres.Table

	// Columns
	Date       postgres.ColumnDate
	CompSymbol postgres.ColumnString
	Sentiment  postgres.ColumnString
	EntryPrice postgres.ColumnFloat

	AllColumns     postgres.ColumnList
	MutableColumns postgres.ColumnList
}

type SignalsFullTable struct {
	signalsFullTable

	EXCLUDED signalsFullTable
}

// AS creates new SignalsFullTable with assigned alias
func (a SignalsFullTable) AS(alias string) *SignalsFullTable {
	return newSignalsFullTable(a.SchemaName(), a.TableName(), alias)
}

func newSignalsFullTable(schemaName, tableName, alias string) *SignalsFullTable {
	return &SignalsFullTable{
		signalsFullTable: newSignalsFullTableImpl(schemaName, tableName, alias),
		EXCLUDED:         newSignalsFullTableImpl("", "excluded", ""),
	}
}

func newSignalsFullTableImpl(schemaName, tableName, alias string) signalsFullTable {
	var (
		DateColumn       = postgres.DateColumn("date")
		CompSymbolColumn = postgres.StringColumn("comp_symbol")
		SentimentColumn  = postgres.StringColumn("sentiment")
		EntryPriceColumn = postgres.FloatColumn("entry_price")
		allColumns       = postgres.ColumnList{DateColumn, CompSymbolColumn, SentimentColumn, EntryPriceColumn}
		mutableColumns   = postgres.ColumnList{DateColumn, CompSymbolColumn, SentimentColumn, EntryPriceColumn}
	)

	return signalsFullTable{
		Table: postgres.NewTable(schemaName, tableName, alias, allColumns...),

		//Columns
		Date:       DateColumn,
		CompSymbol: CompSymbolColumn,
		Sentiment:  SentimentColumn,
		EntryPrice: EntryPriceColumn,

		AllColumns:     allColumns,
		MutableColumns: mutableColumns,
	}
}
