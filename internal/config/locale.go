package config

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/likelens/internal/dataset"
)

// ParseDelimiter maps a config value to a CSV delimiter; "" means auto.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case "\t", "tab":
		return '\t', nil
	case ";":
		return ';', nil
	default:
		return 0, fmt.Errorf("unsupported csv_delimiter: %s", s)
	}
}

// ParseDecimal maps a config value to a decimal separator; "" means auto.
func ParseDecimal(s string) (rune, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ",", "comma":
		return ',', nil
	case ".", "dot":
		return '.', nil
	case "":
		return 0, nil
	default:
		return 0, fmt.Errorf("unsupported decimal_separator: %s (use '.'|'comma')", s)
	}
}

// ParseThousands maps a config value to a thousands separator; "" means auto.
func ParseThousands(s string) (rune, error) {
	switch strings.ToLower(s) {
	case ",":
		return ',', nil
	case ".":
		return '.', nil
	case "space", " ":
		return ' ', nil
	case "":
		return 0, nil
	default:
		return 0, fmt.Errorf("unsupported thousands_separator: %s (use ','|'.'|'space')", s)
	}
}

// DatasetOptions converts the parsing settings into loader options.
func (c *Global) DatasetOptions() (dataset.Options, error) {
	opt := dataset.DefaultOptions()
	var err error
	if opt.Delimiter, err = ParseDelimiter(c.CSVDelimiter); err != nil {
		return opt, err
	}
	if opt.DecimalSeparator, err = ParseDecimal(c.DecimalSeparator); err != nil {
		return opt, err
	}
	if opt.ThousandsSeparator, err = ParseThousands(c.ThousandsSeparator); err != nil {
		return opt, err
	}
	opt.MaxRows = c.MaxRows
	opt.SheetName = c.SheetName
	return opt, nil
}
