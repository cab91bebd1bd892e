package lib

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
)

// Rejection is a column value the grammar did not accept.
type Rejection struct {
	Row   int
	Value string
	Err   error
}

type ColumnReport struct {
	Grammar  Grammar
	Rows     int
	Accepted int
	Rejected []Rejection
}

type rowSource interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// CheckColumn runs query against a Postgres database and scans the first
// column of every row with g. NULL is checked as an empty input.
func CheckColumn(ctx context.Context, connectionString string, query string, g Grammar) (ColumnReport, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return ColumnReport{}, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return ColumnReport{}, err
	}
	defer rows.Close()

	return checkRows(rows, g)
}

func checkRows(rows rowSource, g Grammar) (ColumnReport, error) {
	report := ColumnReport{Grammar: g, Rejected: []Rejection{}}

	for rows.Next() {
		var value sql.NullString
		err := rows.Scan(&value)
		if err != nil {
			return ColumnReport{}, err
		}
		report.Rows++

		_, err = g.Scan(value.String)
		if err == nil {
			report.Accepted++
			continue
		}
		// err is a *LexerError, or a strconv error for integers out of range.
		report.Rejected = append(report.Rejected, Rejection{Row: report.Rows, Value: value.String, Err: err})
	}

	if err := rows.Err(); err != nil {
		return ColumnReport{}, err
	}
	return report, nil
}
