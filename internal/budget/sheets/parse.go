package sheets

import (
	"fmt"
	"strconv"
	"strings"

	"budgetplan/internal/core"
)

// parseBudgets converts a values matrix (as returned by the Sheets API) into
// budgets. The first row must hold the Month and Amount headers.
func parseBudgets(values [][]interface{}) ([]core.Budget, error) {
	if len(values) == 0 {
		return nil, nil
	}
	headers := toStrings(values[0])
	colMonth := indexOf(headers, "month")
	colAmount := indexOf(headers, "amount")
	if colMonth == -1 || colAmount == -1 {
		return nil, fmt.Errorf("unexpected header: want Month and Amount, got %v", headers)
	}

	var out []core.Budget
	for i := 1; i < len(values); i++ {
		row := toStrings(values[i])
		monthStr := strings.TrimSpace(safeGet(row, colMonth))
		amountStr := strings.TrimSpace(safeGet(row, colAmount))
		if monthStr == "" && amountStr == "" {
			continue
		}
		month, err := core.ParseYearMonth(monthStr)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		amount, err := core.ParseAmount(amountStr)
		if err != nil {
			return nil, fmt.Errorf("row %d: amount %q: %w", i+1, amountStr, err)
		}
		out = append(out, core.Budget{Month: month, Amount: amount})
	}
	return out, nil
}

// toStrings renders cells as strings. Whole floats, which the API returns for
// unformatted numbers, lose their ".0".
func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		switch x := v.(type) {
		case string:
			out[i] = x
		case float64:
			out[i] = strconv.FormatFloat(x, 'f', -1, 64)
		default:
			out[i] = fmt.Sprint(x)
		}
	}
	return out
}

func indexOf(headers []string, name string) int {
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

func safeGet(row []string, i int) string {
	if i >= 0 && i < len(row) {
		return row[i]
	}
	return ""
}
