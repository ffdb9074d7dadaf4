// Package logicpaper turns raw tabular values into document-ready text.
// It implements the formatting pipeline that sits between spreadsheet cells
// and rendered DOCX/PPTX output: a directive parser, a set of type-specific
// formatting strategies, an inline {{ tag | filter() }} substitution engine
// for formats without native templating, and a template/column validator.
//
// Basic Usage:
//
//	reg := logicpaper.NewStrategyRegistry(logicpaper.NewLocaleProvider("pt_BR"))
//
//	// One value through a directive
//	d := logicpaper.ParseDirective("currency;USD")
//	res := reg.Format(1234.5, d)
//	fmt.Println(res.Text())
//
//	// Inline tags in a text run
//	engine := logicpaper.NewTagEngine(reg)
//	out := engine.Substitute("Total: {{ total | format_currency('USD') }}", row)
//
//	// Validate templates against available columns
//	report := logicpaper.Compare(columns, map[string]string{
//	    "contract.docx": "/templates/contract.docx",
//	})
//
// Formatting never aborts a render: malformed directives, unknown filters and
// unparsable values all degrade to a plain string conversion of the input,
// with the reasons reported through Result.Warnings.
package logicpaper
